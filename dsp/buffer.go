// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// Buffer is a semantic container of N channels over per-channel
// contiguous float64 slices. The zero value is not usable; construct one
// with NewBuffer (owned) or Wrap (borrowed, possibly mutable).
//
// Every channel in a Buffer has the same length, its sample count. No
// operation on a Buffer ever changes its channel count.
type Buffer struct {
	channels [][]float64
	samples  int
}

// NewBuffer allocates an owned, zeroed buffer of the given channel count
// and sample count. This allocates and must never be called on the
// audio thread after construction-time setup.
func NewBuffer(numChannels, numSamples int) Buffer {
	chans := make([][]float64, numChannels)
	for i := range chans {
		chans[i] = make([]float64, numSamples)
	}
	return Buffer{channels: chans, samples: numSamples}
}

// Wrap builds a Buffer borrowing the given channel slices. All channels
// must share the same length, or Wrap panics — a mismatched channel
// shape is a construction-time programmer error, never a runtime one.
func Wrap(channels ...[]float64) Buffer {
	if len(channels) == 0 {
		return Buffer{}
	}
	n := len(channels[0])
	for i, c := range channels {
		if len(c) != n {
			panic(fmt.Sprintf("dsp: channel %d has %d samples, want %d", i, len(c), n))
		}
	}
	return Buffer{channels: channels, samples: n}
}

// NumChannels reports the channel count.
func (b Buffer) NumChannels() int { return len(b.channels) }

// Samples reports the sample count shared by every channel.
func (b Buffer) Samples() int { return b.samples }

// Channel returns the contiguous slice backing channel ch. Mutating it
// mutates the buffer.
func (b Buffer) Channel(ch int) []float64 { return b.channels[ch] }

// Channels exposes the raw per-channel slices, e.g. to hand to a
// PerBlock.ProcessBlock call.
func (b Buffer) Channels() [][]float64 { return b.channels }

// Frame returns the one sample at index i across every channel, as a
// freshly built slice (allocates; do not call in the audio path —
// prefer GetFrameInto).
func (b Buffer) Frame(i int) []float64 {
	out := make([]float64, len(b.channels))
	b.GetFrameInto(i, out)
	return out
}

// GetFrameInto writes sample i of every channel into dst without
// allocating.
func (b Buffer) GetFrameInto(i int, dst []float64) {
	for ch, c := range b.channels {
		dst[ch] = c[i]
	}
}

// SetFrame writes one multichannel sample at index i.
func (b Buffer) SetFrame(i int, frame []float64) {
	for ch, v := range frame {
		b.channels[ch][i] = v
	}
}

// Slice returns a re-sliced Buffer view over [start, end) of every
// channel, without copying.
func (b Buffer) Slice(start, end int) Buffer {
	out := make([][]float64, len(b.channels))
	for i, c := range b.channels {
		out[i] = c[start:end]
	}
	return Buffer{channels: out, samples: end - start}
}

// CopyFrom copies src into b channel-by-channel; both must have equal
// channel and sample counts.
func (b Buffer) CopyFrom(src Buffer) {
	for i := range b.channels {
		copy(b.channels[i], src.channels[i])
	}
}

// Fill sets every sample in every channel to v.
func (b Buffer) Fill(v float64) {
	for _, c := range b.channels {
		for i := range c {
			c[i] = v
		}
	}
}

// MixWithGain adds src scaled by gain into b, in place.
func (b Buffer) MixWithGain(src Buffer, gain float64) {
	for ch := range b.channels {
		dst, s := b.channels[ch], src.channels[ch]
		for i := range dst {
			dst[i] += s[i] * gain
		}
	}
}
