// SPDX-License-Identifier: EPL-2.0

package filter

import "math"

// OnePole is a first-order topology-preserving filter resolved with
// the one-sample feedback trick over a transposed integrator. One
// Process call yields (LP, HP, AP).
type OnePole struct {
	wStep float64
	fc    float64
	s     float64

	out [3]float64
}

// NewOnePole builds the filter at the given sample rate and cutoff
// (Hz).
func NewOnePole(samplerate, fc float64) *OnePole {
	return &OnePole{wStep: math.Pi / samplerate, fc: fc}
}

// SetCutoff sets the cutoff frequency in Hz.
func (p *OnePole) SetCutoff(fc float64) { p.fc = fc }

func (p *OnePole) SetSampleRate(hz float64) {
	p.wStep = math.Pi / hz
}

func (p *OnePole) Latency() int    { return 0 }
func (p *OnePole) NumInputs() int  { return 1 }
func (p *OnePole) NumOutputs() int { return 3 }

func (p *OnePole) Reset() { p.s = 0 }

func (p *OnePole) Process(in []float64) []float64 {
	g := p.wStep * p.fc
	k := g / (1 + g)
	v := k * (in[0] - p.s)
	lp := v + p.s
	p.s = lp + v

	hp := in[0] - lp
	ap := 2*lp - in[0]
	p.out = [3]float64{lp, hp, ap}
	return p.out[:]
}
