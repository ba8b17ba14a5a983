// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"
	"math/cmplx"

	"github.com/ik5/vadsp/saturator"
)

// Biquad is a two-pole, two-zero filter in Transposed Direct Form II,
// with two saturator slots applied to the state-feedback path.
// Coefficients are normalized to a0 == 1 and stored with the feedback
// signs pre-negated.
//
// The factory constructors take the cutoff as a frequency normalized
// to the sample rate (1 == samplerate); the filter itself holds no
// sample rate, so a rate change means re-deriving the coefficients.
type Biquad struct {
	na [2]float64
	b  [3]float64
	s  [2]float64

	sats [2]saturator.Saturator

	out [1]float64
}

// NewBiquad builds a biquad from feedforward coefficients b and
// feedback coefficients a (excluding a0, assumed 1), with linear
// (pass-through) state saturators.
func NewBiquad(b [3]float64, a [2]float64) *Biquad {
	return &Biquad{
		na:   [2]float64{-a[0], -a[1]},
		b:    b,
		sats: [2]saturator.Saturator{saturator.Linear{}, saturator.Linear{}},
	}
}

// WithSaturators replaces both state saturators and returns the
// filter.
func (f *Biquad) WithSaturators(s0, s1 saturator.Saturator) *Biquad {
	f.sats = [2]saturator.Saturator{s0, s1}
	return f
}

// SetSaturators replaces both state saturators.
func (f *Biquad) SetSaturators(s0, s1 saturator.Saturator) {
	f.sats = [2]saturator.Saturator{s0, s1}
}

// UpdateCoefficients copies the coefficients (not the state) from
// another biquad, e.g. one freshly built by a factory constructor.
func (f *Biquad) UpdateCoefficients(other *Biquad) {
	f.na = other.na
	f.b = other.b
}

func rbjCommon(fc, q float64) (cw0, alpha float64) {
	w0 := 2 * math.Pi * fc
	sw0, cw0 := math.Sincos(w0)
	alpha = sw0 / (2 * q)
	return cw0, alpha
}

func normalized(b0, b1, b2, a0, a1, a2 float64) *Biquad {
	return NewBiquad(
		[3]float64{b0 / a0, b1 / a0, b2 / a0},
		[2]float64{a1 / a0, a2 / a0},
	)
}

// NewBiquadLowpass designs a lowpass at the normalized cutoff fc with
// resonance q.
func NewBiquadLowpass(fc, q float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	b1 := 1 - cw0
	b0 := b1 / 2
	return normalized(b0, b1, b0, 1+alpha, -2*cw0, 1-alpha)
}

// NewBiquadHighpass designs a highpass at the normalized cutoff fc
// with resonance q.
func NewBiquadHighpass(fc, q float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	b1 := -(1 + cw0)
	b0 := -b1 / 2
	return normalized(b0, b1, b0, 1+alpha, -2*cw0, 1-alpha)
}

// NewBiquadBandpass designs a bandpass at the normalized cutoff fc
// with resonance q, normalized so the peak of the transfer function
// sits at 0 dB.
func NewBiquadBandpass(fc, q float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	return normalized(alpha, 0, -alpha, 1+alpha, -2*cw0, 1-alpha)
}

// NewBiquadNotch designs a notch at the normalized cutoff fc with
// resonance q.
func NewBiquadNotch(fc, q float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	return normalized(1, -2*cw0, 1, 1+alpha, -2*cw0, 1-alpha)
}

// NewBiquadAllpass designs an allpass at the normalized cutoff fc with
// resonance q.
func NewBiquadAllpass(fc, q float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	b0 := 1 - alpha
	b1 := -2 * cw0
	b2 := 1 + alpha
	return normalized(b0, b1, b2, b2, b1, b0)
}

// NewBiquadPeaking designs a peaking EQ at the normalized cutoff fc
// with resonance q and linear amplitude amp.
func NewBiquadPeaking(fc, q, amp float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	return normalized(
		1+alpha*amp, -2*cw0, 1-alpha*amp,
		1+alpha/amp, -2*cw0, 1-alpha/amp,
	)
}

// NewBiquadLowShelf designs a low shelf at the normalized cutoff fc
// with resonance q and linear amplitude amp.
func NewBiquadLowShelf(fc, q, amp float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	u := 2 * math.Sqrt(amp) * alpha

	t := (amp + 1) - (amp-1)*cw0
	tp := (amp - 1) - (amp+1)*cw0
	b0 := amp * (t + u)
	b1 := 2 * amp * tp
	b2 := amp * (t - u)

	t = (amp + 1) + (amp-1)*cw0
	return normalized(b0, b1, b2, t+u, -2*((amp-1)+(amp+1)*cw0), t-u)
}

// NewBiquadHighShelf designs a high shelf at the normalized cutoff fc
// with resonance q and linear amplitude amp.
func NewBiquadHighShelf(fc, q, amp float64) *Biquad {
	cw0, alpha := rbjCommon(fc, q)
	u := 2 * math.Sqrt(amp) * alpha

	b0 := amp * ((amp + 1) + (amp-1)*cw0 + u)
	b1 := -2 * amp * ((amp + 1) + (amp-1)*cw0)
	b2 := amp * ((amp + 1) + (amp-1)*cw0 - u)

	a0 := (amp + 1) - (amp-1)*cw0 + u
	a1 := 2 * ((amp - 1) - (amp+1)*cw0)
	a2 := (amp + 1) - (amp-1)*cw0 - u
	return normalized(b0, b1, b2, a0, a1, a2)
}

// NewDCBlocker is a highpass at 5 Hz with Butterworth damping,
// removing DC offset while leaving the audible band untouched.
func NewDCBlocker(samplerate float64) *Biquad {
	return NewBiquadHighpass(5/samplerate, 0.707)
}

func (f *Biquad) SetSampleRate(hz float64) {}
func (f *Biquad) Latency() int             { return 0 }
func (f *Biquad) NumInputs() int           { return 1 }
func (f *Biquad) NumOutputs() int          { return 1 }

func (f *Biquad) Reset() {
	f.s = [2]float64{}
}

// Process runs one sample through the filter. The state saturators see
// the feedback value scaled down by 10 and their output scaled back
// up, which widens the linear window of bounded saturators; the
// scaling is part of the filter's high-drive character and must not be
// folded away.
func (f *Biquad) Process(in []float64) []float64 {
	x := in[0]
	in0 := x*f.b[0] + f.s[0]
	y0 := f.sats[0].Saturate(in0 / 10)
	y1 := f.sats[1].Saturate(in0 / 10)
	f.s[0] = x*f.b[1] + f.s[1] + y0*10*f.na[0]
	f.s[1] = x*f.b[2] + y1*10*f.na[1]

	f.sats[0].UpdateState(in0/10, y0)
	f.sats[1].UpdateState(in0/10, y1)

	f.out[0] = in0
	return f.out[:]
}

// Response evaluates the linear transfer function at the given z.
func (f *Biquad) Response(z complex128) complex128 {
	zi := 1 / z
	num := complex(f.b[0], 0) + complex(f.b[1], 0)*zi + complex(f.b[2], 0)*zi*zi
	den := 1 - complex(f.na[0], 0)*zi - complex(f.na[1], 0)*zi*zi
	return num / den
}

// FreqResponse evaluates the linear magnitude response at frequency f
// (Hz) for the given sample rate.
func (f *Biquad) FreqResponse(samplerate, freq float64) float64 {
	z := cmplx.Exp(complex(0, 2*math.Pi*freq/samplerate))
	return cmplx.Abs(f.Response(z))
}
