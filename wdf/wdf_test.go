// SPDX-License-Identifier: EPL-2.0

package wdf

import (
	"math"
	"testing"

	"github.com/ik5/vadsp/internal/golden"
	"github.com/ik5/vadsp/saturator"
)

func TestVoltageDivider(t *testing.T) {
	t.Parallel()

	// Ideal 12 V source across two equal resistors: 6 V over each.
	src := NewIdealVoltageSource(12)
	out := NewResistor(100)
	mod := NewModule(src, NewInverter(NewSeries(NewResistor(100), out)))

	mod.ProcessSample()
	if v := Voltage(out); math.Abs(v-6) > 1e-9 {
		t.Errorf("divider output = %v V, want 6 V", v)
	}
}

func TestParallelDivider_CurrentSplits(t *testing.T) {
	t.Parallel()

	// 10 V source over two parallel 100 ohm resistors: both see the
	// full source voltage.
	r1 := NewResistor(100)
	r2 := NewResistor(100)
	src := NewIdealVoltageSource(10)
	mod := NewModule(src, NewInverter(NewParallel(r1, r2)))

	mod.ProcessSample()
	if v := Voltage(r1); math.Abs(v+10) > 1e-9 && math.Abs(v-10) > 1e-9 {
		t.Errorf("parallel resistor voltage = %v, want +-10 V", v)
	}
}

func TestRCLowpass_BoundedBySource(t *testing.T) {
	t.Parallel()

	// Resistive source into a capacitor: every port voltage stays
	// within the source swing.
	const (
		c      = 33e-9
		cutoff = 256.0
		fs     = 4096.0
	)
	r := 1 / (2 * math.Pi * c * cutoff)
	rvs := NewResistiveVoltageSource(r, 0)
	cNode := NewCapacitor(fs, c)
	mod := NewModule(NewOpenCircuit(), NewParallel(rvs, cNode))

	for i := 0; i < 256; i++ {
		x := 2*math.Mod(50*float64(i)/fs, 1) - 1
		rvs.Vs = x
		mod.ProcessSample()
		v := Voltage(mod.Root)
		if math.Abs(v) > 1.0+1e-9 {
			t.Fatalf("sample %d: port voltage %v exceeds source bound", i, v)
		}
		if math.IsNaN(v) {
			t.Fatalf("sample %d: NaN", i)
		}
	}
}

func TestRCLowpass_TracksDC(t *testing.T) {
	t.Parallel()

	const fs = 4096.0
	rvs := NewResistiveVoltageSource(1000, 0.5)
	cNode := NewCapacitor(fs, 1e-6)
	mod := NewModule(NewOpenCircuit(), NewParallel(rvs, cNode))

	var v float64
	for i := 0; i < 8192; i++ {
		mod.ProcessSample()
		v = Voltage(mod.Root)
	}
	if math.Abs(v-0.5) > 1e-3 {
		t.Errorf("RC settled at %v, want the 0.5 V source level", v)
	}
}

func diodeClipperInput(n int, fs float64) []float64 {
	input := make([]float64, n)
	for i := range input {
		input[i] = 2*math.Mod(50*float64(i)/fs, 1) - 1
	}
	return input
}

func TestDiodeClipperNR_SoftClipsSawtooth(t *testing.T) {
	t.Parallel()

	const (
		c      = 33e-9
		cutoff = 256.0
		fs     = 4096.0
	)
	r := 1 / (2 * math.Pi * c * cutoff)
	rvs := NewResistiveVoltageSource(r, 0)
	cNode := NewCapacitor(fs, c)
	diode := NewDiodeNR(saturator.NewGermaniumDiodeClipper(1, 1))
	mod := NewModule(diode, NewParallel(rvs, cNode))

	input := diodeClipperInput(256, fs)
	out := make([]float64, len(input))
	for i, x := range input {
		rvs.Vs = x
		mod.ProcessSample()
		out[i] = Voltage(mod.Root)
	}

	var minV, maxV float64
	for i, v := range out {
		if math.IsNaN(v) {
			t.Fatalf("NaN at %d", i)
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	// Germanium pair: conduction knees inside +-0.7 V.
	if maxV > 0.7 || minV < -0.7 {
		t.Errorf("output range [%v, %v], want within +-0.7 V", minV, maxV)
	}
	// Symmetric configuration clips symmetrically.
	if math.Abs(maxV+minV) > 0.05 {
		t.Errorf("asymmetric clipping: max %v, min %v", maxV, minV)
	}

	golden.Check(t, "testdata/diode_clipper_nr_saw.golden", out, 1e-3)
}

func TestDiodeClipperLambert_AgreesWithNR(t *testing.T) {
	t.Parallel()

	const (
		c      = 33e-9
		cutoff = 256.0
		fs     = 4096.0
	)
	r := 1 / (2 * math.Pi * c * cutoff)

	build := func(root Node) (*ResistiveVoltageSource, *Module) {
		rvs := NewResistiveVoltageSource(r, 0)
		cNode := NewCapacitor(fs, c)
		return rvs, NewModule(root, NewParallel(rvs, cNode))
	}

	data := saturator.NewGermaniumDiodeClipper(1, 1)
	rvsNR, modNR := build(NewDiodeNR(data))
	rvsLW, modLW := build(NewDiodeLambert(data))

	input := diodeClipperInput(256, fs)
	for i, x := range input {
		rvsNR.Vs = x
		rvsLW.Vs = x
		modNR.ProcessSample()
		modLW.ProcessSample()
		nr := Voltage(modNR.Root)
		lw := Voltage(modLW.Root)
		if math.Abs(nr-lw) > 0.02 {
			t.Fatalf("sample %d: NR %v vs Lambert %v", i, nr, lw)
		}
	}
}

func TestDiodeModelRoot_Clips(t *testing.T) {
	t.Parallel()

	const (
		c      = 33e-9
		cutoff = 256.0
		fs     = 4096.0
	)
	r := 1 / (2 * math.Pi * c * cutoff)
	rvs := NewResistiveVoltageSource(r, 0)
	cNode := NewCapacitor(fs, c)
	mod := NewModule(NewDiodeModelRoot(saturator.NewGermaniumDiodeClipperModel(1, 1)), NewParallel(rvs, cNode))

	for i, x := range diodeClipperInput(256, fs) {
		rvs.Vs = 10 * x
		mod.ProcessSample()
		v := Voltage(mod.Root)
		if math.IsNaN(v) || math.Abs(v) > 10 {
			t.Fatalf("sample %d: %v", i, v)
		}
	}
}

func TestModule_ResetRestoresSilence(t *testing.T) {
	t.Parallel()

	rvs := NewResistiveVoltageSource(1000, 1)
	cNode := NewCapacitor(48000, 1e-6)
	mod := NewModule(NewOpenCircuit(), NewParallel(rvs, cNode))

	for i := 0; i < 100; i++ {
		mod.ProcessSample()
	}
	rvs.Vs = 0
	mod.Reset()
	mod.ProcessSample()
	if v := Voltage(mod.Root); v != 0 {
		t.Errorf("voltage after Reset with zero source = %v, want 0", v)
	}
}

func TestWave_KirchhoffConversions(t *testing.T) {
	t.Parallel()

	w := Wave{A: 3, B: 1}
	if w.Voltage() != 2 {
		t.Errorf("Voltage() = %v, want 2", w.Voltage())
	}
	if w.Current(100) != (3-1)/200.0 {
		t.Errorf("Current(100) = %v", w.Current(100))
	}
}
