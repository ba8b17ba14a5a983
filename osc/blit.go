// SPDX-License-Identifier: EPL-2.0

package osc

import "math"

// BLIT is a band-limited impulse train: the sinc formulation with a
// maximum-phase bound pmax = 0.5*fs/fc, flipping signs at zero
// crossings and at pmax. Raw BLIT output feeds leaky integrators to
// reconstruct classical waveforms.
type BLIT struct {
	// P is the current phase. It can be changed directly for phase
	// modulation, at the cost of aliasing.
	P float64

	dp         float64
	pmax       float64
	fc         float64
	samplerate float64
}

// NewBLIT builds an impulse train at the given sample rate and
// oscillation frequency (Hz).
func NewBLIT(samplerate, freq float64) *BLIT {
	b := &BLIT{dp: 1, fc: freq, samplerate: samplerate}
	b.updateCoefficients()
	return b
}

// Pmax returns the maximum phase value.
func (b *BLIT) Pmax() float64 { return b.pmax }

// SetFrequency updates the oscillation frequency in Hz.
func (b *BLIT) SetFrequency(freq float64) {
	b.fc = freq
	b.updateCoefficients()
}

// SetPosition moves the oscillator to the given normalized position.
func (b *BLIT) SetPosition(pos float64) {
	b.P = pos * b.pmax
}

// SetSampleRate rescales the phase bound.
func (b *BLIT) SetSampleRate(hz float64) {
	b.samplerate = hz
	b.updateCoefficients()
}

func (b *BLIT) updateCoefficients() {
	b.pmax = 0.5 * b.samplerate / b.fc
}

// NextSample produces one impulse-train sample.
func (b *BLIT) NextSample() float64 {
	b.P += b.dp

	if b.P < 0 {
		b.P = -b.P
		b.dp = -b.dp
	}
	if b.P > b.pmax {
		b.P = b.pmax + b.pmax - b.P
		b.dp = -b.dp
	}

	x := math.Pi * b.P
	if x < 1e-5 {
		x = 1e-5
	}
	return math.Sin(x) / x
}

// Reset rewinds the phase.
func (b *BLIT) Reset() {
	b.P = 0
	b.dp = 1
}

// Sawtooth reconstructs a sawtooth from a BLIT through a leaky
// integrator with a DC-removal offset.
type Sawtooth struct {
	blit            *BLIT
	integratorState float64
	dc              float64
}

// NewSawtooth builds a BLIT sawtooth at the given sample rate and
// frequency (Hz).
func NewSawtooth(samplerate, freq float64) *Sawtooth {
	blit := NewBLIT(samplerate, freq)
	return &Sawtooth{blit: blit, dc: sawtoothDC(blit.pmax)}
}

// SetFrequency updates the oscillation frequency in Hz.
func (s *Sawtooth) SetFrequency(freq float64) {
	s.blit.SetFrequency(freq)
	s.dc = sawtoothDC(s.blit.pmax)
}

// SetSampleRate rescales the underlying impulse train.
func (s *Sawtooth) SetSampleRate(hz float64) {
	s.blit.SetSampleRate(hz)
	s.dc = sawtoothDC(s.blit.pmax)
}

func sawtoothDC(pmax float64) float64 {
	return -0.498 / pmax
}

// NextSample produces one sawtooth sample.
func (s *Sawtooth) NextSample() float64 {
	x := s.blit.NextSample()
	s.integratorState = s.dc + x + 0.995*s.integratorState
	return s.integratorState
}

// Reset clears the integrator and rewinds the impulse train.
func (s *Sawtooth) Reset() {
	s.blit.Reset()
	s.integratorState = 0
}

// Square reconstructs a pulse wave from two BLITs offset by the pulse
// width, subtracted and leaky-integrated.
type Square struct {
	blitPos         *BLIT
	blitNeg         *BLIT
	pw              float64
	integratorState float64
}

// NewSquare builds a BLIT pulse wave at the given sample rate,
// frequency (Hz) and pulse width in (0, 1).
func NewSquare(samplerate, freq, pw float64) *Square {
	s := &Square{
		blitPos: NewBLIT(samplerate, freq),
		blitNeg: NewBLIT(samplerate, freq),
	}
	s.SetPulseWidth(pw)
	return s
}

// SetPulseWidth moves the negative impulse train relative to the
// positive one and compensates the integrator for the DC shift.
func (s *Square) SetPulseWidth(pw float64) {
	delta := pw - s.pw
	s.blitNeg.P += 2 * delta * s.blitNeg.pmax
	s.integratorState += pw - s.pw
	s.pw = pw
}

// SetFrequency updates the oscillation frequency in Hz.
func (s *Square) SetFrequency(freq float64) {
	s.blitPos.SetFrequency(freq)
	s.blitNeg.SetFrequency(freq)
}

// SetSampleRate rescales both impulse trains.
func (s *Square) SetSampleRate(hz float64) {
	s.blitPos.SetSampleRate(hz)
	s.blitNeg.SetSampleRate(hz)
}

// NextSample produces one pulse-wave sample.
func (s *Square) NextSample() float64 {
	summed := s.blitPos.NextSample() - s.blitNeg.NextSample()
	s.integratorState = summed + 0.9995*s.integratorState
	return s.integratorState
}

// Reset clears the integrator and rewinds both impulse trains.
func (s *Square) Reset() {
	s.blitPos.Reset()
	s.blitNeg.Reset()
	s.integratorState = 0
}
