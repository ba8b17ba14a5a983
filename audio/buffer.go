// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"

	"github.com/ik5/vadsp/dsp"
)

// ReadAll drains a Source into an owned per-channel dsp.Buffer,
// deinterleaving as it goes. maxSamples bounds the per-channel length
// (0 means unbounded). This is setup-time host glue; it allocates and
// must not run on the audio thread.
func ReadAll(src Source, maxSamples int) (dsp.Buffer, error) {
	ch := src.Channels()
	if ch < 1 {
		return dsp.Buffer{}, ErrInvalidDstSize
	}

	channels := make([][]float64, ch)
	tmp := make([]float64, 4096*ch)

	for {
		n, err := src.ReadSamples(tmp)
		frames := n / ch
		for i := 0; i < frames; i++ {
			for c := 0; c < ch; c++ {
				channels[c] = append(channels[c], tmp[i*ch+c])
			}
		}
		if maxSamples > 0 && len(channels[0]) >= maxSamples {
			for c := range channels {
				channels[c] = channels[c][:maxSamples]
			}
			break
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return dsp.Buffer{}, err
		}
		if n == 0 {
			break
		}
	}

	return dsp.Wrap(channels...), nil
}

// Interleave packs a per-channel buffer back into an interleaved
// slice, the layout decoders and encoders speak.
func Interleave(buf dsp.Buffer) []float64 {
	ch := buf.NumChannels()
	out := make([]float64, ch*buf.Samples())
	for i := 0; i < buf.Samples(); i++ {
		for c := 0; c < ch; c++ {
			out[i*ch+c] = buf.Channel(c)[i]
		}
	}
	return out
}
