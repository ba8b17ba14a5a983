// SPDX-License-Identifier: EPL-2.0

package dsp

// BlockAdapter wraps a PerSample processor so it satisfies PerBlock,
// simply iterating frames. It adds zero latency over Inner.
type BlockAdapter struct {
	Inner PerSample

	inBuf, outBuf []float64
}

func NewBlockAdapter(inner PerSample) *BlockAdapter {
	return &BlockAdapter{
		Inner: inner,
		inBuf: make([]float64, inner.NumInputs()),
	}
}

func (a *BlockAdapter) SetSampleRate(hz float64) { a.Inner.SetSampleRate(hz) }
func (a *BlockAdapter) Latency() int             { return a.Inner.Latency() }
func (a *BlockAdapter) Reset()                   { a.Inner.Reset() }
func (a *BlockAdapter) NumInputs() int           { return a.Inner.NumInputs() }
func (a *BlockAdapter) NumOutputs() int          { return a.Inner.NumOutputs() }
func (a *BlockAdapter) MaxBlockSize() int        { return 0 }

// ProcessBlock iterates frame by frame, calling Inner.Process once per
// sample index.
func (a *BlockAdapter) ProcessBlock(in, out [][]float64) {
	if len(in) == 0 {
		return
	}
	n := len(in[0])
	for i := 0; i < n; i++ {
		for ch := range in {
			a.inBuf[ch] = in[ch][i]
		}
		frame := a.Inner.Process(a.inBuf)
		for ch := range out {
			out[ch][i] = frame[ch]
		}
	}
}

// DefaultSampleAdapterBufferSize is the staging buffer size used by
// NewSampleAdapter when none is specified.
const DefaultSampleAdapterBufferSize = 64

// SampleAdapter wraps a PerBlock processor so it satisfies PerSample. It
// holds an input staging buffer of fixed size B and an output buffer of
// the same size:
//
//  1. each Process(frame) call writes frame into position inputFilled,
//     and increments it;
//  2. when inputFilled == B, Inner is invoked with the full input
//     buffer producing the full output buffer; inputFilled and
//     outputFilled both reset to 0;
//  3. the returned frame is outputBuffer[outputFilled] if outputFilled
//     < B, else zeros.
//
// Reported latency is Inner.Latency() + B - 1. After Reset, inputFilled
// = 0 and outputFilled = B, so the adapter emits zeros until the first
// full block has been processed.
type SampleAdapter struct {
	Inner PerBlock

	bufSize int
	inBuf   [][]float64
	outBuf  [][]float64

	inputFilled  int
	outputFilled int

	frameOut []float64
}

func NewSampleAdapter(inner PerBlock) *SampleAdapter {
	return NewSampleAdapterWithBufferSize(inner, DefaultSampleAdapterBufferSize)
}

func NewSampleAdapterWithBufferSize(inner PerBlock, bufSize int) *SampleAdapter {
	a := &SampleAdapter{Inner: inner, bufSize: bufSize}
	a.inBuf = make([][]float64, inner.NumInputs())
	a.outBuf = make([][]float64, inner.NumOutputs())
	for i := range a.inBuf {
		a.inBuf[i] = make([]float64, bufSize)
	}
	for i := range a.outBuf {
		a.outBuf[i] = make([]float64, bufSize)
	}
	a.outputFilled = bufSize
	a.frameOut = make([]float64, inner.NumOutputs())
	return a
}

func (a *SampleAdapter) SetSampleRate(hz float64) { a.Inner.SetSampleRate(hz) }

func (a *SampleAdapter) Latency() int {
	return a.Inner.Latency() + a.bufSize - 1
}

func (a *SampleAdapter) Reset() {
	a.Inner.Reset()
	a.inputFilled = 0
	a.outputFilled = a.bufSize
}

func (a *SampleAdapter) NumInputs() int  { return a.Inner.NumInputs() }
func (a *SampleAdapter) NumOutputs() int { return a.Inner.NumOutputs() }

func (a *SampleAdapter) Process(in []float64) []float64 {
	for ch, v := range in {
		a.inBuf[ch][a.inputFilled] = v
	}
	a.inputFilled++

	if a.inputFilled == a.bufSize {
		a.Inner.ProcessBlock(a.inBuf, a.outBuf)
		a.inputFilled = 0
		a.outputFilled = 0
	}

	if a.outputFilled < a.bufSize {
		for ch := range a.outBuf {
			a.frameOut[ch] = a.outBuf[ch][a.outputFilled]
		}
		a.outputFilled++
	} else {
		for ch := range a.frameOut {
			a.frameOut[ch] = 0
		}
	}
	return a.frameOut
}
