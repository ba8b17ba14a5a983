// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// mockOggReader simulates the oggvorbis.Reader for testing
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	values := len(buf)
	if avail := len(m.samples) - m.offset; values > avail {
		values = avail
	}
	values = (values / m.channels) * m.channels
	copy(buf, m.samples[m.offset:m.offset+values])
	m.offset += values

	frames := values / m.channels
	if m.offset >= len(m.samples) {
		return frames, io.EOF
	}
	return frames, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("not an ogg stream")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0, 0.5, -0.5, 1},
	}
	src := &source{dec: mock, sampleRate: 48000, channels: 2, frameBuf: make([]float32, 16)}

	dst := make([]float64, 4)
	n, err := src.ReadSamples(dst)
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() err = %v", err)
	}

	want := []float64{0, 0.5, -0.5, 1}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-7 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
