// SPDX-License-Identifier: EPL-2.0

package saturator

import "github.com/ik5/vadsp/dspmath"

// Slew is a rate limiter: the output can only move towards the input by
// at most a fixed amount per sample. Its one-sample memory is the last
// output.
type Slew struct {
	// MaxDiff is the maximum difference between two consecutive
	// output samples.
	MaxDiff float64

	lastOut float64
}

// NewSlew builds a slew limiter from a maximum rate in units per second
// at the given sample rate.
func NewSlew(samplerate, maxPerSecond float64) *Slew {
	return &Slew{MaxDiff: maxPerSecond / samplerate}
}

// SetMaxDiff updates the maximum rate (units per second) for the given
// sample rate.
func (s *Slew) SetMaxDiff(maxPerSecond, samplerate float64) {
	s.MaxDiff = maxPerSecond / samplerate
}

// WithState returns s with its last output set to the given value.
func (s *Slew) WithState(state float64) *Slew {
	s.lastOut = state
	return s
}

// CurrentValue returns the last output.
func (s *Slew) CurrentValue() float64 { return s.lastOut }

// IsChanging reports whether the output is still moving towards target.
func (s *Slew) IsChanging(target float64) bool {
	d := target - s.lastOut
	if d < 0 {
		d = -d
	}
	return d > 1e-6
}

// Reset clears the limiter state.
func (s *Slew) Reset() { s.lastOut = 0 }

func (s *Slew) slewDiff(x float64) float64 {
	return dspmath.Clamp(x-s.lastOut, -s.MaxDiff, s.MaxDiff)
}

func (s *Slew) Saturate(x float64) float64 {
	return s.lastOut + s.slewDiff(x)
}

func (s *Slew) UpdateState(x, y float64) {
	s.lastOut = y
}

func (s *Slew) SatDiff(x float64) float64 {
	d := x - s.lastOut
	if d < -s.MaxDiff || d > s.MaxDiff {
		return 0
	}
	return 1
}

// Process computes and commits one sample in one call.
func (s *Slew) Process(x float64) float64 {
	y := s.Saturate(x)
	s.lastOut = y
	return y
}
