// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

type stubDecoder struct{ name string }

func (d stubDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("stub: " + d.name)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{name: "wav"})
	reg.Register("mp3", stubDecoder{name: "mp3"})

	dec, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(wav) not found")
	}
	if dec.(stubDecoder).name != "wav" {
		t.Errorf("Get(wav) returned decoder %q", dec.(stubDecoder).name)
	}

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get(flac) found a decoder that was never registered")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{name: "first"})
	reg.Register("wav", stubDecoder{name: "second"})

	dec, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(wav) not found")
	}
	if dec.(stubDecoder).name != "second" {
		t.Errorf("Get(wav) = %q, want the most recent registration", dec.(stubDecoder).name)
	}
}

func TestMockSource_EOF(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 16, 1.0)
	buf := make([]float64, 16)

	n, err := src.ReadSamples(buf)
	if n != 16 {
		t.Fatalf("ReadSamples() n = %d, want 16", n)
	}
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() err = %v, want io.EOF at stream end", err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}
