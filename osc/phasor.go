// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// Phasor is a normalized phase accumulator wrapping in [0, 1),
// advancing by frequency/samplerate per sample. The position is
// externally settable for phase modulation or hard sync.
type Phasor struct {
	// Phase is the current position in [0, 1).
	Phase float64

	step       float64
	frequency  float64
	samplerate float64
}

// NewPhasor builds a phasor at the given sample rate and frequency
// (Hz).
func NewPhasor(samplerate, frequency float64) *Phasor {
	return &Phasor{
		step:       frequency / samplerate,
		frequency:  frequency,
		samplerate: samplerate,
	}
}

// SetFrequency updates the oscillation frequency in Hz.
func (p *Phasor) SetFrequency(freq float64) {
	p.frequency = freq
	p.step = freq / p.samplerate
}

// Step returns the per-sample phase increment.
func (p *Phasor) Step() float64 { return p.step }

// SetSampleRate rescales the phase increment.
func (p *Phasor) SetSampleRate(hz float64) {
	p.samplerate = hz
	p.step = p.frequency / hz
}

// NextSample returns the current phase and advances by one step.
func (p *Phasor) NextSample() float64 {
	out := p.Phase
	p.Phase += p.step
	p.Phase -= math.Floor(p.Phase)
	return out
}

// Reset rewinds the phase to zero.
func (p *Phasor) Reset() { p.Phase = 0 }
