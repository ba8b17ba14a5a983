// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"testing"

	"github.com/ik5/vadsp/internal/dsptest"
)

func TestBlockAdapter_MatchesPerSample(t *testing.T) {
	t.Parallel()

	direct := dsptest.NewDelay(3)
	wrapped := NewBlockAdapter(dsptest.NewDelay(3))

	input := dsptest.Sine(64, 50, 1000)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = direct.Process([]float64{x})[0]
	}

	out := make([]float64, len(input))
	wrapped.ProcessBlock([][]float64{input}, [][]float64{out})

	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("sample %d: block %v != per-sample %v", i, out[i], want[i])
		}
	}
}

func TestBlockAdapter_LatencyPassThrough(t *testing.T) {
	t.Parallel()

	a := NewBlockAdapter(dsptest.NewDelay(5))
	if a.Latency() != 5 {
		t.Errorf("Latency() = %d, want 5", a.Latency())
	}
}

func TestSampleAdapter_RoundTripDelaysByBufferSizeMinusOne(t *testing.T) {
	t.Parallel()

	const bufSize = 8
	inner := NewBlockAdapter(&dsptest.Gain{Amount: 1})
	a := NewSampleAdapterWithBufferSize(inner, bufSize)

	if a.Latency() != bufSize-1 {
		t.Fatalf("Latency() = %d, want %d", a.Latency(), bufSize-1)
	}

	input := dsptest.Sine(64, 50, 1000)
	out := make([]float64, len(input))
	for i, x := range input {
		out[i] = a.Process([]float64{x})[0]
	}

	// Output is the input delayed by bufSize-1 samples.
	for i := bufSize - 1; i < len(out); i++ {
		if out[i] != input[i-(bufSize-1)] {
			t.Fatalf("sample %d: got %v, want %v", i, out[i], input[i-(bufSize-1)])
		}
	}
	for i := 0; i < bufSize-1; i++ {
		if out[i] != 0 {
			t.Fatalf("sample %d before first block: got %v, want 0", i, out[i])
		}
	}
}

func TestSampleAdapter_ResetEmitsZerosUntilFirstBlock(t *testing.T) {
	t.Parallel()

	const bufSize = 4
	a := NewSampleAdapterWithBufferSize(NewBlockAdapter(&dsptest.Gain{Amount: 1}), bufSize)

	for i := 0; i < 10; i++ {
		a.Process([]float64{1})
	}
	a.Reset()

	for i := 0; i < bufSize-1; i++ {
		if y := a.Process([]float64{1})[0]; y != 0 {
			t.Fatalf("sample %d after Reset: got %v, want 0", i, y)
		}
	}
	// The bufSize-th call completes a block and the first staged
	// sample comes out.
	if y := a.Process([]float64{1})[0]; y != 1 {
		t.Fatalf("first post-block sample = %v, want 1", y)
	}
}

func TestLatencyHonesty_Delay(t *testing.T) {
	t.Parallel()

	d := dsptest.NewDelay(7)
	latency := d.Latency()

	input := dsptest.Impulse(32)
	var firstNonZero = -1
	for i, x := range input {
		y := d.Process([]float64{x})[0]
		if y != 0 && firstNonZero < 0 {
			firstNonZero = i
		}
	}
	if firstNonZero != latency {
		t.Errorf("first non-zero output at %d, reported latency %d", firstNonZero, latency)
	}
}
