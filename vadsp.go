// SPDX-License-Identifier: EPL-2.0

package vadsp

import "github.com/ik5/vadsp/dsp"

// ProcessBuffer runs a block processor over a whole pair of buffers,
// sub-slicing into chunks no larger than the processor's declared
// MaxBlockSize. Both buffers must share the same sample count; channel
// counts must match the processor's signature.
func ProcessBuffer(p dsp.PerBlock, in, out dsp.Buffer) {
	total := in.Samples()
	chunk := p.MaxBlockSize()
	if chunk <= 0 || chunk > total {
		chunk = total
	}
	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		p.ProcessBlock(in.Slice(start, end).Channels(), out.Slice(start, end).Channels())
	}
}

// ProcessSamples is the mono convenience form of ProcessBuffer: it
// runs a 1-in/1-out block processor over a sample slice, returning a
// freshly allocated output slice. Setup-time helper; it allocates.
func ProcessSamples(p dsp.PerBlock, input []float64) []float64 {
	output := make([]float64, len(input))
	ProcessBuffer(p, dsp.Wrap(input), dsp.Wrap(output))
	return output
}
