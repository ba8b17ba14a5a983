// SPDX-License-Identifier: EPL-2.0

package param

import (
	"math"
	"testing"

	"github.com/ik5/vadsp/internal/dsptest"
)

func TestExponentialSmoothed_T60Convergence(t *testing.T) {
	t.Parallel()

	// After a step, the output reaches within 0.1% of the target in
	// t60 milliseconds (+- 1 sample).
	const samplerate = 48000.0
	const t60ms = 20.0
	s := ExponentialSmoothed(0, samplerate, t60ms)
	s.Param = 1

	samples := int(t60ms / 1000 * samplerate)
	var y float64
	for i := 0; i < samples+1; i++ {
		y = s.NextSample()
	}
	if math.Abs(y-1) > 0.001 {
		t.Errorf("after %d samples output = %v, want within 0.1%% of 1", samples, y)
	}
}

func TestExponentialSmoothed_NotConvergedEarly(t *testing.T) {
	t.Parallel()

	const samplerate = 48000.0
	s := ExponentialSmoothed(0, samplerate, 20)
	s.Param = 1

	// A quarter of the way in, the smoother is still visibly moving.
	for i := 0; i < 240; i++ {
		s.NextSample()
	}
	if !s.IsChanging() {
		t.Error("IsChanging() = false a quarter of the way through the sweep")
	}
}

func TestLinearSmoothedRate_SlewsExactly(t *testing.T) {
	t.Parallel()

	s := LinearSmoothedRate(0, 10, 10) // 1 unit per sample
	s.Param = 3
	if y := s.NextSample(); y != 1 {
		t.Errorf("first sample = %v, want 1", y)
	}
	if y := s.NextSample(); y != 2 {
		t.Errorf("second sample = %v, want 2", y)
	}
	if y := s.NextSample(); y != 3 {
		t.Errorf("third sample = %v, want 3", y)
	}
	if y := s.NextSample(); y != 3 {
		t.Errorf("settled sample = %v, want 3", y)
	}
}

func TestLinearSmoothed_DurationUnitsQuirk(t *testing.T) {
	t.Parallel()

	// durationMS = 100 yields a rate of 1/100 units per second: the
	// documented pitfall, preserved deliberately.
	s := LinearSmoothed(0, 1, 100) // one sample per second
	s.Param = 1
	if y := s.NextSample(); math.Abs(y-0.01) > 1e-12 {
		t.Errorf("first sample = %v, want 0.01", y)
	}
}

func TestSmoothedParam_ResetSnapsToTarget(t *testing.T) {
	t.Parallel()

	s := ExponentialSmoothed(0, 1000, 50)
	s.Param = 2
	s.NextSample()
	s.Reset()
	if s.CurrentValue() != 2 {
		t.Errorf("CurrentValue() after Reset = %v, want 2", s.CurrentValue())
	}
}

func TestFilteredParam_RunsValueThroughFilter(t *testing.T) {
	t.Parallel()

	f := &FilteredParam{Param: 2, Filter: &dsptest.Gain{Amount: 3}}
	if y := f.NextSample(); y != 6 {
		t.Errorf("NextSample() = %v, want 6", y)
	}
	f.Param = 1
	if y := f.NextSample(); y != 3 {
		t.Errorf("NextSample() = %v, want 3", y)
	}
}
