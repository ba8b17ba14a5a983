// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"testing"

	"github.com/ik5/vadsp/internal/dsptest"
)

func TestSeries_ChainsAndSumsLatency(t *testing.T) {
	t.Parallel()

	s := NewSeries(dsptest.NewDelay(2), &dsptest.Gain{Amount: 3}, dsptest.NewDelay(1))

	if s.Latency() != 3 {
		t.Errorf("Latency() = %d, want 3", s.Latency())
	}

	// An impulse comes out scaled by 3, delayed by 3 samples.
	var out []float64
	for _, x := range dsptest.Impulse(8) {
		out = append(out, s.Process([]float64{x})[0])
	}
	for i, v := range out {
		want := 0.0
		if i == 3 {
			want = 3
		}
		if v != want {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestParallel_SumsOutputsAndTakesMaxLatency(t *testing.T) {
	t.Parallel()

	p := NewParallel(&dsptest.Gain{Amount: 2}, &dsptest.Gain{Amount: 5}, dsptest.NewDelay(4))

	if p.Latency() != 4 {
		t.Errorf("Latency() = %d, want 4", p.Latency())
	}

	y := p.Process([]float64{1})[0]
	if y != 7 {
		t.Errorf("Process(1) = %v, want 7 (2 + 5 + delayed 0)", y)
	}
}

func TestSeries_PanicsOnChannelMismatch(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewSeries did not panic on mismatched channel counts")
		}
	}()
	NewSeries(&twoOut{}, &dsptest.Gain{Amount: 1})
}

type twoOut struct{ out [2]float64 }

func (*twoOut) SetSampleRate(float64) {}
func (*twoOut) Latency() int          { return 0 }
func (*twoOut) Reset()                {}
func (*twoOut) NumInputs() int        { return 1 }
func (*twoOut) NumOutputs() int       { return 2 }

func (o *twoOut) Process(in []float64) []float64 {
	o.out[0], o.out[1] = in[0], in[0]
	return o.out[:]
}
