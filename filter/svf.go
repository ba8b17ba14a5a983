// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"

	"github.com/ik5/vadsp/param"
	"github.com/ik5/vadsp/saturator"
)

// Parameter ids of the SVF.
const (
	SVFCutoff param.ID = iota
	SVFResonance
)

// SVF is a state-variable filter in zero-delay-feedback topology,
// resolved with the one-sample trick from the VA Filter Design book.
// One Process call yields all three responses (LP, BP, HP) at once.
// An optional saturator shapes the first integrator state.
type SVF struct {
	s [2]float64

	r     float64 // damping, stored as 2R
	fc    float64
	g     float64
	g1    float64
	d     float64
	wStep float64

	sat saturator.Saturator

	out [3]float64
}

// NewSVF builds a filter at the given sample rate, cutoff (Hz) and
// resonance (0..1 for stable filters; beyond that only with bounded
// saturators).
func NewSVF(samplerate, fc, r float64) *SVF {
	f := &SVF{
		r:     2 * r,
		fc:    fc,
		wStep: math.Pi / samplerate,
		sat:   saturator.Linear{},
	}
	f.updateCoefficients()
	return f
}

// WithSaturator installs a saturator on the first integrator state and
// returns the filter.
func (f *SVF) WithSaturator(sat saturator.Saturator) *SVF {
	f.sat = sat
	return f
}

// SetSaturator installs a saturator on the first integrator state.
func (f *SVF) SetSaturator(sat saturator.Saturator) { f.sat = sat }

// SetCutoff sets the cutoff frequency in Hz.
func (f *SVF) SetCutoff(fc float64) {
	f.fc = fc
	f.updateCoefficients()
}

// SetResonance sets the resonance amount (0..1 for stable filters).
func (f *SVF) SetResonance(r float64) {
	f.r = 2 * r
	f.updateCoefficients()
}

// SetParameter routes remote-control values onto cutoff and resonance.
func (f *SVF) SetParameter(id param.ID, value float32) {
	switch id {
	case SVFCutoff:
		f.SetCutoff(float64(value))
	case SVFResonance:
		f.SetResonance(float64(value))
	}
}

func (f *SVF) updateCoefficients() {
	f.g = f.wStep * f.fc
	f.g1 = f.r + f.g
	f.d = 1 / (1 + f.r*f.g + f.g*f.g)
}

func (f *SVF) SetSampleRate(hz float64) {
	f.wStep = math.Pi / hz
	f.updateCoefficients()
}

func (f *SVF) Latency() int    { return 2 }
func (f *SVF) NumInputs() int  { return 1 }
func (f *SVF) NumOutputs() int { return 3 }

func (f *SVF) Reset() {
	f.s = [2]float64{}
}

// Process runs one sample and returns (LP, BP, HP).
func (f *SVF) Process(in []float64) []float64 {
	s1, s2 := f.s[0], f.s[1]

	hp := (in[0] - f.g1*s1 - s2) * f.d

	v1 := f.g * hp
	bp := v1 + s1
	s1 = bp + v1

	v2 := f.g * bp
	lp := v2 + s2
	s2 = lp + v2

	// The saturator sees the state scaled down by 10 so bounded maps
	// keep a wide linear window, matching the biquad's feedback path.
	ss := f.sat.Saturate(s1 / 10)
	f.sat.UpdateState(s1/10, ss)
	f.s[0] = ss * 10
	f.s[1] = s2

	f.out = [3]float64{lp, bp, hp}
	return f.out[:]
}
