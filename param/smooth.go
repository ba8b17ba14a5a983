// SPDX-License-Identifier: EPL-2.0

package param

import (
	"github.com/ik5/vadsp/dsp"
	"github.com/ik5/vadsp/dspmath"
)

type smoothingKind uint8

const (
	smoothingExponential smoothingKind = iota
	smoothingLinear
)

// SmoothedParam pairs a raw parameter target with a one-pole
// exponential or slew-limited linear smoother. NextSample ticks
// exactly one output sample of the smoother towards the current
// target.
type SmoothedParam struct {
	// Param is the raw target value. Overwrite it directly, or feed it
	// from a Parameter pull.
	Param float64

	kind       smoothingKind
	state      float64
	samplerate float64

	// exponential
	fc, lambda float64
	// linear
	maxPerSec float64
}

// LinearSmoothed creates a slew-limited linear smoothed parameter.
// durationMS is the time a sweep across the full unit range takes;
// note that the resulting rate is 1/durationMS units per second, so a
// duration given in milliseconds crosses the range in that many
// seconds. This parameterization is a long-standing quirk preserved
// for compatibility; see the package documentation.
func LinearSmoothed(initial, samplerate, durationMS float64) *SmoothedParam {
	return &SmoothedParam{
		Param:      initial,
		kind:       smoothingLinear,
		state:      initial,
		samplerate: samplerate,
		maxPerSec:  1 / durationMS,
	}
}

// LinearSmoothedRate creates a slew-limited linear smoothed parameter
// from an explicit maximum rate in units per second.
func LinearSmoothedRate(initial, samplerate, maxPerSec float64) *SmoothedParam {
	return &SmoothedParam{
		Param:      initial,
		kind:       smoothingLinear,
		state:      initial,
		samplerate: samplerate,
		maxPerSec:  maxPerSec,
	}
}

// ExponentialSmoothed creates a one-pole exponential smoothed
// parameter with the given T60 in milliseconds: after a step, the
// output is within 0.1% of the target after t60MS milliseconds.
func ExponentialSmoothed(initial, samplerate, t60MS float64) *SmoothedParam {
	tau := 6.91 / t60MS * 1e3
	return &SmoothedParam{
		Param:      initial,
		kind:       smoothingExponential,
		state:      initial,
		samplerate: samplerate,
		fc:         tau,
		lambda:     tau / samplerate,
	}
}

// SetSampleRate rescales the smoothing coefficients.
func (s *SmoothedParam) SetSampleRate(hz float64) {
	s.samplerate = hz
	if s.kind == smoothingExponential {
		s.lambda = s.fc / hz
	}
}

// NextSample advances the smoother by one sample and returns its
// output.
func (s *SmoothedParam) NextSample() float64 {
	switch s.kind {
	case smoothingLinear:
		maxDiff := s.maxPerSec / s.samplerate
		s.state += dspmath.Clamp(s.Param-s.state, -maxDiff, maxDiff)
	default:
		s.state += (s.Param - s.state) * s.lambda
	}
	return s.state
}

// CurrentValue returns the smoother output without advancing it.
func (s *SmoothedParam) CurrentValue() float64 { return s.state }

// IsChanging reports whether the output is still converging towards
// the target.
func (s *SmoothedParam) IsChanging() bool {
	d := s.Param - s.state
	if d < 0 {
		d = -d
	}
	return d > 1e-6
}

// Reset snaps the smoother onto its target.
func (s *SmoothedParam) Reset() { s.state = s.Param }

// FilteredParam feeds a raw parameter value through an arbitrary
// 1-in/1-out per-sample processor, turning the pair into a generator:
// each NextSample call processes the current Param value through the
// filter. Useful to drive a custom smoother or filter directly from a
// control value without an external input frame.
type FilteredParam struct {
	// Param is the raw value fed into the filter each sample.
	Param float64
	// Filter is the 1-in/1-out processor shaping the value.
	Filter dsp.PerSample

	in [1]float64
}

// NextSample processes the current parameter value through the filter.
func (f *FilteredParam) NextSample() float64 {
	f.in[0] = f.Param
	return f.Filter.Process(f.in[:])[0]
}
