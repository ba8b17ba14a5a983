// SPDX-License-Identifier: EPL-2.0

package oversample

import (
	"math/bits"

	"github.com/ik5/vadsp/dsp"
)

// resampleStage is one 2x step of the cascade: a single half-band
// filter producing two filtered outputs per stage iteration.
type resampleStage struct {
	filter *HalfbandFilter
}

func newResampleStage() resampleStage {
	return resampleStage{filter: NewSteepHalfband()}
}

// upsample doubles the rate: for each input x it pushes 2x then 0
// through the filter and keeps both outputs.
func (s *resampleStage) upsample(in, out []float64) {
	for i, x := range in {
		out[2*i] = s.filter.Process(x + x)
		out[2*i+1] = s.filter.Process(0)
	}
}

// downsample halves the rate: for every two input samples it pushes
// both through the filter and keeps only the first output.
func (s *resampleStage) downsample(in, out []float64) {
	for i := range out {
		out[i] = s.filter.Process(in[2*i])
		s.filter.Process(in[2*i+1])
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Oversample runs a signal through K stages of 2x upsampling, hands
// the oversampled buffer to the caller, then downsamples through K
// matching stages. All buffers and stages are allocated for the
// maximum factor at construction; the active factor can be changed at
// run time without allocating.
type Oversample struct {
	maxFactor       int
	numStagesActive int
	buf             pingPongBuffer
	up              []resampleStage
	down            []resampleStage
}

// NewOversample allocates an oversampler for up to maxFactor
// (rounded up to a power of two) and blocks of up to maxBlockSize
// input samples. The active factor starts at the maximum.
func NewOversample(maxFactor, maxBlockSize int) *Oversample {
	if maxFactor < 1 {
		panic("oversample: max factor must be at least 1")
	}
	maxFactor = nextPowerOfTwo(maxFactor)
	numStages := bits.Len(uint(maxFactor)) - 1
	up := make([]resampleStage, numStages)
	down := make([]resampleStage, numStages)
	for i := range up {
		up[i] = newResampleStage()
		down[i] = newResampleStage()
	}
	return &Oversample{
		maxFactor:       maxFactor,
		numStagesActive: numStages,
		buf:             newPingPongBuffer(maxBlockSize * maxFactor),
		up:              up,
		down:            down,
	}
}

// OversamplingAmount returns the active oversampling factor.
func (o *Oversample) OversamplingAmount() int {
	return 1 << o.numStagesActive
}

// SetOversamplingAmount selects the active factor, rounding up to the
// next power of two and capping at the construction-time maximum. It
// selects how many of the pre-allocated stages run; nothing is
// allocated.
func (o *Oversample) SetOversamplingAmount(amt int) {
	if amt < 1 {
		amt = 1
	}
	amt = nextPowerOfTwo(amt)
	if amt > o.maxFactor {
		amt = o.maxFactor
	}
	o.numStagesActive = bits.Len(uint(amt)) - 1
}

// MaxBlockSize reports the largest input block supported at the
// current factor.
func (o *Oversample) MaxBlockSize() int {
	return o.buf.len() / o.OversamplingAmount()
}

// OSLen returns the oversampled length of an input block.
func (o *Oversample) OSLen(inputLen int) int {
	return inputLen * o.OversamplingAmount()
}

// Latency reports the combined up- and downsampling latency at the
// current factor.
func (o *Oversample) Latency() int {
	total := 2 * o.numStagesActive
	for i := 0; i < o.numStagesActive; i++ {
		total += o.up[i].filter.Latency()
		total += o.down[i].filter.Latency()
	}
	return total
}

// Reset clears the intermediate buffer and every stage filter.
func (o *Oversample) Reset() {
	o.buf.fill(0)
	for i := range o.up {
		o.up[i].filter.Reset()
		o.down[i].filter.Reset()
	}
}

// Upsample runs the input through the active upsampling stages and
// returns the oversampled buffer for in-place processing. The returned
// slice stays valid until the next Upsample or Downsample call.
func (o *Oversample) Upsample(input []float64) []float64 {
	if len(input) > o.MaxBlockSize() {
		panic("oversample: block larger than max block size")
	}
	if o.numStagesActive == 0 {
		_, out := o.buf.ioBuffers(len(input))
		copy(out, input)
		return out
	}

	osLen := o.OSLen(len(input))
	length := len(input)
	_, out := o.buf.ioBuffers(length)
	copy(out, input)
	for i := 0; i < o.numStagesActive; i++ {
		o.buf.switchBuffers()
		in, out := o.buf.ioBuffers(2 * length)
		o.up[i].upsample(in[:length], out)
		length *= 2
	}
	_, out = o.buf.ioBuffers(osLen)
	return out
}

// Downsample runs the oversampled buffer through the active
// downsampling stages into out, which must have the length of the
// original input block.
func (o *Oversample) Downsample(out []float64) {
	if o.numStagesActive == 0 {
		o.buf.copyInto(out)
		return
	}

	length := o.OSLen(len(out))
	for i := 0; i < o.numStagesActive; i++ {
		o.buf.switchBuffers()
		in, dst := o.buf.ioBuffers(length)
		o.down[i].downsample(in, dst[:length/2])
		length /= 2
	}
	o.buf.copyInto(out)
}

// Oversampled wraps a 1-in/1-out block processor so it transparently
// runs at base samplerate times the oversampling factor. On
// construction and on factor changes the inner processor's sample
// rate is recomputed as base * factor.
type Oversampled struct {
	// OS is the underlying oversampling cascade.
	OS *Oversample
	// Inner is the wrapped block processor, running oversampled.
	Inner dsp.PerBlock

	staging        []float64
	baseSamplerate float64

	innerIn, innerOut [1][]float64
}

// NewOversampled wraps inner, immediately setting its sample rate to
// samplerate scaled by the active factor.
func NewOversampled(os *Oversample, inner dsp.PerBlock, samplerate float64) *Oversampled {
	o := &Oversampled{
		OS:             os,
		Inner:          inner,
		staging:        make([]float64, os.buf.len()),
		baseSamplerate: samplerate,
	}
	inner.SetSampleRate(samplerate * float64(os.OversamplingAmount()))
	return o
}

// OSFactor returns the active oversampling factor.
func (o *Oversampled) OSFactor() int { return o.OS.OversamplingAmount() }

// InnerSampleRate returns the rate the wrapped processor runs at.
func (o *Oversampled) InnerSampleRate() float64 {
	return o.baseSamplerate * float64(o.OSFactor())
}

// SetOversamplingAmount changes the active factor and recomputes the
// inner processor's sample rate.
func (o *Oversampled) SetOversamplingAmount(amt int) {
	o.OS.SetOversamplingAmount(amt)
	o.SetSampleRate(o.baseSamplerate)
}

func (o *Oversampled) SetSampleRate(hz float64) {
	o.baseSamplerate = hz
	o.Inner.SetSampleRate(hz * float64(o.OSFactor()))
}

// Latency reports the wrapped latency expressed in base-rate samples.
func (o *Oversampled) Latency() int {
	return (o.OS.Latency() + o.Inner.Latency()) / o.OSFactor()
}

func (o *Oversampled) NumInputs() int    { return 1 }
func (o *Oversampled) NumOutputs() int   { return 1 }
func (o *Oversampled) MaxBlockSize() int { return o.OS.MaxBlockSize() }

func (o *Oversampled) Reset() {
	o.OS.Reset()
	o.Inner.Reset()
}

func (o *Oversampled) ProcessBlock(in, out [][]float64) {
	osBlock := o.OS.Upsample(in[0])

	staged := o.staging[:len(osBlock)]
	copy(staged, osBlock)
	o.innerIn[0] = staged
	o.innerOut[0] = osBlock
	o.Inner.ProcessBlock(o.innerIn[:], o.innerOut[:])

	o.OS.Downsample(out[0])
}
