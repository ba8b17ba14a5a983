// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float64, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(sample, channel int) float64 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	mixer := NewMonoMixer(src)

	buf := make([]float64, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if math.Abs(buf[i]-0.5) > 1e-9 {
			t.Errorf("buf[%d] = %v, want 0.5 (average of 0.4 and 0.6)", i, buf[i])
		}
	}
}

func TestReadAll_Deinterleaves(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 64, func(sample, channel int) float64 {
		if channel == 0 {
			return float64(sample)
		}
		return -float64(sample)
	})

	buf, err := ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", buf.NumChannels())
	}
	if buf.Samples() != 64 {
		t.Fatalf("Samples() = %d, want 64", buf.Samples())
	}

	for i := 0; i < 64; i++ {
		if buf.Channel(0)[i] != float64(i) {
			t.Fatalf("channel 0 sample %d = %v, want %d", i, buf.Channel(0)[i], i)
		}
		if buf.Channel(1)[i] != -float64(i) {
			t.Fatalf("channel 1 sample %d = %v, want %d", i, buf.Channel(1)[i], -i)
		}
	}
}

func TestReadAll_MaxSamples(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 10000, 0.25)
	buf, err := ReadAll(src, 128)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Samples() != 128 {
		t.Errorf("Samples() = %d, want 128", buf.Samples())
	}
}

func TestInterleave_RoundTrip(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 32, func(sample, channel int) float64 {
		return float64(sample*2 + channel)
	})

	buf, err := ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	flat := Interleave(buf)
	if len(flat) != 64 {
		t.Fatalf("Interleave() len = %d, want 64", len(flat))
	}
	for i, v := range flat {
		if v != float64(i) {
			t.Fatalf("flat[%d] = %v, want %d", i, v, i)
		}
	}
}
