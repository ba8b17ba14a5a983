// SPDX-License-Identifier: EPL-2.0

package osc

import (
	"math"

	"github.com/ik5/vadsp/dspmath"
	"github.com/ik5/vadsp/filter"
)

// PolyBLEP is one polynomial band-limited step correction: a quadratic
// smoothing of a unit discontinuity at the given phase offset, scaled
// by Amplitude.
type PolyBLEP struct {
	Amplitude float64
	Phase     float64
}

// Eval computes the correction for the given phase increment dt and
// oscillator phase.
func (b PolyBLEP) Eval(dt, phase float64) float64 {
	t := phase + b.Phase
	t -= math.Floor(t)
	switch {
	case t < dt:
		t /= dt
		return b.Amplitude * (t + t - t*t - 1)
	case t > 1-dt:
		t = (t - 1) / dt
		return b.Amplitude * (t*t + t + t + 1)
	default:
		return 0
	}
}

// PolyBLEPSaw is a sawtooth built from the naive ramp plus one BLEP
// correction at the wrap.
type PolyBLEPSaw struct {
	phasor *Phasor
}

// NewPolyBLEPSaw builds the oscillator at the given sample rate and
// frequency (Hz).
func NewPolyBLEPSaw(samplerate, frequency float64) *PolyBLEPSaw {
	return &PolyBLEPSaw{phasor: NewPhasor(samplerate, frequency)}
}

// SetFrequency updates the oscillation frequency in Hz.
func (s *PolyBLEPSaw) SetFrequency(freq float64) { s.phasor.SetFrequency(freq) }

// SetSampleRate rescales the phase increment.
func (s *PolyBLEPSaw) SetSampleRate(hz float64) { s.phasor.SetSampleRate(hz) }

// NextSample produces one sawtooth sample.
func (s *PolyBLEPSaw) NextSample() float64 {
	phase := s.phasor.NextSample()
	y := 2*phase - 1
	y += PolyBLEP{Amplitude: -1}.Eval(s.phasor.Step(), phase)
	return y
}

// Reset rewinds the phase.
func (s *PolyBLEPSaw) Reset() { s.phasor.Reset() }

// PolyBLEPSquare is a pulse wave with variable width built from the
// naive waveform plus BLEP corrections at both edges.
type PolyBLEPSquare struct {
	phasor *Phasor
	pw     float64
}

// NewPolyBLEPSquare builds the oscillator at the given sample rate,
// frequency (Hz) and pulse width clamped to [0, 1].
func NewPolyBLEPSquare(samplerate, frequency, pw float64) *PolyBLEPSquare {
	return &PolyBLEPSquare{
		phasor: NewPhasor(samplerate, frequency),
		pw:     dspmath.Clamp(pw, 0, 1),
	}
}

// SetPulseWidth updates the pulse width, clamped to [0, 1].
func (s *PolyBLEPSquare) SetPulseWidth(pw float64) {
	s.pw = dspmath.Clamp(pw, 0, 1)
}

// SetFrequency updates the oscillation frequency in Hz.
func (s *PolyBLEPSquare) SetFrequency(freq float64) { s.phasor.SetFrequency(freq) }

// SetSampleRate rescales the phase increment.
func (s *PolyBLEPSquare) SetSampleRate(hz float64) { s.phasor.SetSampleRate(hz) }

// NextSample produces one pulse-wave sample.
func (s *PolyBLEPSquare) NextSample() float64 {
	phase := s.phasor.NextSample()
	dcOffset := dspmath.Lerp(s.pw, -1, 1)
	y := -1.0
	if phase > s.pw {
		y = 1
	}
	y += dcOffset
	y += PolyBLEP{Amplitude: 1, Phase: 0}.Eval(s.phasor.Step(), phase)
	y += PolyBLEP{Amplitude: -1, Phase: 1 - s.pw}.Eval(s.phasor.Step(), phase)
	return y
}

// Reset rewinds the phase.
func (s *PolyBLEPSquare) Reset() { s.phasor.Reset() }

// PolyBLEPTriangle integrates a BLEP square through a one-pole
// lowpass tracking the oscillation frequency.
type PolyBLEPTriangle struct {
	square     *PolyBLEPSquare
	integrator *filter.OnePole

	in [1]float64
}

// NewPolyBLEPTriangle builds the oscillator at the given sample rate,
// frequency (Hz) and starting phase.
func NewPolyBLEPTriangle(samplerate, frequency, phase float64) *PolyBLEPTriangle {
	square := NewPolyBLEPSquare(samplerate, frequency, 0.5)
	square.phasor.Phase = phase
	return &PolyBLEPTriangle{
		square:     square,
		integrator: filter.NewOnePole(samplerate, frequency),
	}
}

// SetFrequency updates the oscillation frequency in Hz, retuning the
// integrator alongside.
func (t *PolyBLEPTriangle) SetFrequency(freq float64) {
	t.square.SetFrequency(freq)
	t.integrator.SetCutoff(freq)
}

// SetSampleRate rescales both stages.
func (t *PolyBLEPTriangle) SetSampleRate(hz float64) {
	t.square.SetSampleRate(hz)
	t.integrator.SetSampleRate(hz)
}

// NextSample produces one triangle sample.
func (t *PolyBLEPTriangle) NextSample() float64 {
	t.in[0] = t.square.NextSample()
	return t.integrator.Process(t.in[:])[0]
}

// Reset rewinds the phase and clears the integrator.
func (t *PolyBLEPTriangle) Reset() {
	t.square.Reset()
	t.integrator.Reset()
}
