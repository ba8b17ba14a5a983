// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"math"
	"testing"

	"github.com/ik5/vadsp/dspmath"
	"github.com/ik5/vadsp/internal/dsptest"
	"github.com/ik5/vadsp/internal/golden"
	"github.com/ik5/vadsp/saturator"
)

func TestLadder_StepResponseOTATanh(t *testing.T) {
	t.Parallel()

	// A 10-unit step into a resonant OTA-tanh ladder: overshoot with
	// damped ringing, never NaN, settles near a non-zero steady state.
	const fs = 48000.0
	l := NewLadder(fs, 300, 3.95, NewOTALadder())

	n := 8192
	input := make([]float64, n)
	for i := 256; i < n; i++ {
		input[i] = 10
	}

	out := processAll(l, input)
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("not finite at sample %d", i)
		}
	}

	// Before the step: silence.
	if dspmath.RMS(out[:256]) != 0 {
		t.Error("output before the step is not silent")
	}

	// Settles to a non-zero value: the last stretch has low variance
	// around a non-zero mean.
	tail := out[n-512:]
	mean := 0.0
	for _, v := range tail {
		mean += v
	}
	mean /= float64(len(tail))
	if math.Abs(mean) < 0.1 {
		t.Errorf("steady state mean = %v, want non-zero", mean)
	}

	golden.Check(t, "testdata/ladder_step_ota_tanh.golden", out[:1024], 1e-3)
}

func TestLadder_IdealLinearityAtSmallSignals(t *testing.T) {
	t.Parallel()

	// Within the hard clipper's linear window the ideal topology is
	// linear.
	const fs = 48000.0
	x := dsptest.Sine(1024, 100, fs)
	y := dsptest.Sine(1024, 250, fs)
	for i := range x {
		x[i] *= 0.01
		y[i] *= 0.01
	}
	mix := make([]float64, len(x))
	for i := range mix {
		mix[i] = x[i] + y[i]
	}

	la := NewLadder(fs, 1000, 0.5, IdealLadder{})
	lb := NewLadder(fs, 1000, 0.5, IdealLadder{})
	lc := NewLadder(fs, 1000, 0.5, IdealLadder{})

	outX := processAll(la, x)
	outY := processAll(lb, y)
	outMix := processAll(lc, mix)

	for i := range outMix {
		want := outX[i] + outY[i]
		if math.Abs(outMix[i]-want) > 1e-9 {
			t.Fatalf("linearity violated at %d: %v vs %v", i, outMix[i], want)
		}
	}
}

func TestLadder_LowpassShape(t *testing.T) {
	t.Parallel()

	const fs = 48000.0
	l := NewLadder(fs, 500, 0, IdealLadder{})

	low := dsptest.Sine(8192, 50, fs)
	for i := range low {
		low[i] *= 0.1
	}
	outLow := processAll(l, low)

	l2 := NewLadder(fs, 500, 0, IdealLadder{})
	high := dsptest.Sine(8192, 8000, fs)
	for i := range high {
		high[i] *= 0.1
	}
	outHigh := processAll(l2, high)

	lowGain := dspmath.RMS(outLow[4096:]) / dspmath.RMS(low[4096:])
	highGain := dspmath.RMS(outHigh[4096:]) / dspmath.RMS(high[4096:])
	if lowGain < 0.8 {
		t.Errorf("passband gain = %v, want near 1", lowGain)
	}
	if highGain > 0.01 {
		t.Errorf("4-pole stopband gain at 16x cutoff = %v, want heavily attenuated", highGain)
	}
}

func TestLadder_TransistorDiodeTopologyStable(t *testing.T) {
	t.Parallel()

	const fs = 48000.0
	model := saturator.NewSiliconDiodeClipperModel(1, 1)
	topo := NewTransistorLadder([5]saturator.Saturator{model, model, model, model, model})
	l := NewLadder(fs, 1000, 2, topo)

	out := processAll(l, dsptest.Noise(8192, 21))
	for i, v := range out {
		if math.IsNaN(v) || math.Abs(v) > 1000 {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}

func TestLadder_CompensatedBoostsInput(t *testing.T) {
	t.Parallel()

	const fs = 48000.0
	plain := NewLadder(fs, 2000, 2, IdealLadder{})
	comp := NewLadder(fs, 2000, 2, IdealLadder{})
	comp.Compensated = true

	input := dsptest.Sine(4096, 100, fs)
	for i := range input {
		input[i] *= 0.001
	}
	outPlain := processAll(plain, input)
	outComp := processAll(comp, append([]float64(nil), input...))

	// In the linear regime the compensated output is (k+1)x the plain
	// one.
	ratio := dspmath.RMS(outComp[2048:]) / dspmath.RMS(outPlain[2048:])
	if math.Abs(ratio-3) > 0.05 {
		t.Errorf("compensation ratio = %v, want k+1 = 3", ratio)
	}
}
