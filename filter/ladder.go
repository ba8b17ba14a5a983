// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/vadsp/dspmath"
	"github.com/ik5/vadsp/param"
	"github.com/ik5/vadsp/saturator"
)

// Parameter ids of the Ladder.
const (
	LadderCutoff param.ID = iota
	LadderResonance
)

// LadderTopology computes the next integrator state vector of a 4-pole
// ladder, given the normalized angular frequency, the feedback-summed
// input and the previous states. Saturator state, where a topology has
// any, lives inside the topology value.
type LadderTopology interface {
	NextOutput(g, y0 float64, y [4]float64) [4]float64
}

// IdealLadder is the linear ladder topology; the only nonlinearity is
// a hard clip of the stage differentials to keep runaway feedback
// bounded.
type IdealLadder struct{}

func (IdealLadder) NextOutput(g, y0 float64, y [4]float64) [4]float64 {
	yd := [4]float64{y[0] - y0, y[1] - y[0], y[2] - y[1], y[3] - y[2]}
	for i, v := range yd {
		y[i] -= g * dspmath.Clamp(v, -1, 1)
	}
	return y
}

// OTALadder models an OTA-based ladder: each stage passes its
// differential through its own saturator. With Tanh saturators this
// mimics the output saturation of an OTA chip.
type OTALadder struct {
	Sats [4]saturator.Saturator
}

// NewOTALadder builds the topology with four tanh stages.
func NewOTALadder() *OTALadder {
	return &OTALadder{Sats: [4]saturator.Saturator{
		saturator.Tanh{}, saturator.Tanh{}, saturator.Tanh{}, saturator.Tanh{},
	}}
}

func (t *OTALadder) NextOutput(g, y0 float64, y [4]float64) [4]float64 {
	yd := [4]float64{y[0] - y0, y[1] - y[0], y[2] - y[1], y[3] - y[2]}
	for i, v := range yd {
		s := t.Sats[i].Saturate(v)
		t.Sats[i].UpdateState(v, s)
		y[i] -= g * s
	}
	return y
}

// TransistorLadder models the transistor ladder: the input and each
// state pass through their own saturator before differencing.
type TransistorLadder struct {
	Sats [5]saturator.Saturator
}

// NewTransistorLadder builds the topology with five stages of the
// given saturator.
func NewTransistorLadder(sats [5]saturator.Saturator) *TransistorLadder {
	return &TransistorLadder{Sats: sats}
}

func (t *TransistorLadder) NextOutput(g, y0 float64, y [4]float64) [4]float64 {
	y0sat := g * t.Sats[4].Saturate(y0)
	var ysat [4]float64
	for i, v := range y {
		ysat[i] = g * t.Sats[i].Saturate(v)
	}
	yd := [4]float64{
		ysat[0] - y0sat,
		ysat[1] - ysat[0],
		ysat[2] - ysat[1],
		ysat[3] - ysat[2],
	}
	for i := range y {
		t.Sats[i].UpdateState(y[i], ysat[i])
	}
	t.Sats[4].UpdateState(y0, y0sat)
	for i, v := range yd {
		y[i] -= v
	}
	return y
}

// Ladder is a saturated 4-pole lowpass with global negative feedback.
// Resonance runs 0.. with self-oscillation starting near 4. When
// Compensated is set, the DC gain loss at high resonance is offset by
// an input gain of k+1.
type Ladder struct {
	wc         float64
	samplerate float64
	inv2fs     float64
	s          [4]float64
	topo       LadderTopology
	k          float64

	// Compensated offsets the DC gain loss at higher resonance.
	Compensated bool

	out [1]float64
}

// NewLadder builds a ladder at the given sample rate, cutoff (Hz) and
// resonance, with the given topology.
func NewLadder(samplerate, cutoff, resonance float64, topo LadderTopology) *Ladder {
	l := &Ladder{
		samplerate: samplerate,
		inv2fs:     1 / (2 * samplerate),
		topo:       topo,
		k:          resonance,
	}
	l.SetCutoff(cutoff)
	return l
}

// SetCutoff sets the cutoff frequency in Hz, with bounded bilinear
// prewarping so the digital response lands on the analog target.
func (l *Ladder) SetCutoff(freq float64) {
	l.wc = dspmath.BilinearPrewarmBounded(l.samplerate, 2*2*math.Pi*freq)
}

// SetResonance sets the resonance amount (0.., self-oscillation near
// 4).
func (l *Ladder) SetResonance(k float64) { l.k = k }

// SetParameter routes remote-control values onto cutoff and resonance.
func (l *Ladder) SetParameter(id param.ID, value float32) {
	switch id {
	case LadderCutoff:
		l.SetCutoff(float64(value))
	case LadderResonance:
		l.SetResonance(float64(value))
	}
}

func (l *Ladder) SetSampleRate(hz float64) {
	l.samplerate = hz
	l.inv2fs = 1 / (hz + hz)
}

func (l *Ladder) Latency() int    { return 4 }
func (l *Ladder) NumInputs() int  { return 1 }
func (l *Ladder) NumOutputs() int { return 1 }

func (l *Ladder) Reset() {
	l.s = [4]float64{}
}

// quadFalloff compensates the resonance falling off as the cutoff
// approaches Nyquist. The shape is hand-tuned; regression outputs
// depend on this exact form.
func quadFalloff(t float64) float64 {
	u := 1 - dspmath.Clamp(t, 0, 1)
	return u * u
}

func (l *Ladder) Process(in []float64) []float64 {
	x := in[0]
	if l.Compensated {
		x *= l.k + 1
	}
	qCorrection := quadFalloff(l.wc * l.inv2fs / (2 * math.Pi))
	y0 := x - l.k*l.s[3]*qCorrection
	g := l.wc * l.inv2fs
	l.s = l.topo.NextOutput(g, y0, l.s)
	l.out[0] = l.s[3]
	return l.out[:]
}
