// SPDX-License-Identifier: EPL-2.0

// Package dsptest supplies mock processors and deterministic signal
// generators for the process-abstraction law tests.
package dsptest

import "math"

// Gain is a 1-in/1-out per-sample processor scaling by a constant.
type Gain struct {
	// Amount is the linear gain.
	Amount float64

	out [1]float64
}

func (g *Gain) SetSampleRate(float64) {}
func (g *Gain) Latency() int          { return 0 }
func (g *Gain) Reset()                {}
func (g *Gain) NumInputs() int        { return 1 }
func (g *Gain) NumOutputs() int       { return 1 }

func (g *Gain) Process(in []float64) []float64 {
	g.out[0] = in[0] * g.Amount
	return g.out[:]
}

// Delay is a 1-in/1-out fixed delay line, the canonical
// latency-reporting processor.
type Delay struct {
	buf []float64
	pos int

	out [1]float64
}

// NewDelay allocates a delay of n samples.
func NewDelay(n int) *Delay {
	return &Delay{buf: make([]float64, n)}
}

func (d *Delay) SetSampleRate(float64) {}
func (d *Delay) Latency() int          { return len(d.buf) }
func (d *Delay) NumInputs() int        { return 1 }
func (d *Delay) NumOutputs() int       { return 1 }

func (d *Delay) Reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
}

func (d *Delay) Process(in []float64) []float64 {
	if len(d.buf) == 0 {
		d.out[0] = in[0]
		return d.out[:]
	}
	d.out[0] = d.buf[d.pos]
	d.buf[d.pos] = in[0]
	d.pos++
	if d.pos == len(d.buf) {
		d.pos = 0
	}
	return d.out[:]
}

// Impulse returns a unit impulse of the given length.
func Impulse(n int) []float64 {
	out := make([]float64, n)
	out[0] = 1
	return out
}

// Sine returns a sine of the given frequency at the given sample
// rate.
func Sine(n int, freq, samplerate float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / samplerate)
	}
	return out
}

// Noise returns deterministic white noise in [-1, 1] from a fixed
// linear congruential generator, so fixtures derived from it are
// stable.
func Noise(n int, seed uint64) []float64 {
	out := make([]float64, n)
	state := seed
	for i := range out {
		state = state*6364136223846793005 + 1442695040888963407
		out[i] = float64(int64(state>>11))/float64(1<<52) - 1
	}
	return out
}
