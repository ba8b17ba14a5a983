// SPDX-License-Identifier: EPL-2.0

package saturator

import (
	"math"
	"testing"
)

func TestLinear_Identity(t *testing.T) {
	t.Parallel()

	s := Linear{}
	for _, x := range []float64{-10, -1, 0, 0.5, 3} {
		if s.Saturate(x) != x {
			t.Errorf("Linear.Saturate(%v) != %v", x, x)
		}
	}
	if s.SatDiff(2) != 1 {
		t.Error("Linear.SatDiff != 1")
	}
}

func TestTanh_BoundedAndDerivative(t *testing.T) {
	t.Parallel()

	s := Tanh{}
	for _, x := range []float64{-100, -2, 0, 2, 100} {
		y := s.Saturate(x)
		if y < -1 || y > 1 {
			t.Errorf("Tanh.Saturate(%v) = %v out of [-1,1]", x, y)
		}
	}
	// Analytic derivative close to the finite difference.
	for _, x := range []float64{-1.5, 0, 0.3} {
		fd := FiniteSatDiff(s, x)
		if math.Abs(s.SatDiff(x)-fd) > 1e-3 {
			t.Errorf("Tanh.SatDiff(%v) = %v, finite diff %v", x, s.SatDiff(x), fd)
		}
	}
}

func TestClipper_HardBounds(t *testing.T) {
	t.Parallel()

	c := NewClipper()
	if c.Saturate(2) != 1 || c.Saturate(-2) != -1 || c.Saturate(0.5) != 0.5 {
		t.Error("Clipper bounds wrong")
	}
	if c.SatDiff(0) != 1 || c.SatDiff(2) != 0 {
		t.Error("Clipper derivative wrong")
	}
}

func TestBlend_InterpolatesBetweenIdentityAndInner(t *testing.T) {
	t.Parallel()

	dry := Blend{Amount: 0, Inner: Tanh{}}
	wet := Blend{Amount: 1, Inner: Tanh{}}
	half := Blend{Amount: 0.5, Inner: Tanh{}}

	x := 2.0
	if dry.Saturate(x) != x {
		t.Error("Blend amount 0 is not the identity")
	}
	if wet.Saturate(x) != math.Tanh(x) {
		t.Error("Blend amount 1 is not the inner saturator")
	}
	want := (x + math.Tanh(x)) / 2
	if math.Abs(half.Saturate(x)-want) > 1e-12 {
		t.Errorf("Blend amount 0.5 = %v, want %v", half.Saturate(x), want)
	}
}

func TestDriven_ScalesAroundInner(t *testing.T) {
	t.Parallel()

	d := Driven{Drive: 4, Inner: Tanh{}}
	x := 0.5
	want := math.Tanh(x*4) / 4
	if math.Abs(d.Saturate(x)-want) > 1e-12 {
		t.Errorf("Driven.Saturate = %v, want %v", d.Saturate(x), want)
	}
}

func TestSlew_RateLimits(t *testing.T) {
	t.Parallel()

	s := NewSlew(10, 10) // 1 unit per sample at 10 Hz
	y := s.Process(5)
	if y != 1 {
		t.Errorf("first slewed sample = %v, want 1", y)
	}
	y = s.Process(5)
	if y != 2 {
		t.Errorf("second slewed sample = %v, want 2", y)
	}
	if !s.IsChanging(5) {
		t.Error("IsChanging(5) = false while still converging")
	}
	for i := 0; i < 10; i++ {
		y = s.Process(5)
	}
	if y != 5 {
		t.Errorf("slew settled at %v, want 5", y)
	}
	if s.IsChanging(5) {
		t.Error("IsChanging(5) = true after settling")
	}
}

func TestCommonCollector_ClampsToRails(t *testing.T) {
	t.Parallel()

	cc := NewCommonCollector()
	for x := -10.0; x <= 10.0; x += 0.25 {
		y := cc.Saturate(x)
		if y < cc.Vee+cc.YBias-0.2 || y > cc.Vcc+cc.YBias+0.2 {
			t.Fatalf("CommonCollector(%v) = %v escapes the rails", x, y)
		}
	}
	// Near zero the follower is close to unity.
	if math.Abs(cc.Saturate(0)) > 0.05 {
		t.Errorf("CommonCollector(0) = %v, want near 0", cc.Saturate(0))
	}
}

func TestDynamic_DispatchMatchesVariants(t *testing.T) {
	t.Parallel()

	x := 0.7
	cases := []struct {
		name string
		d    Dynamic
		want float64
	}{
		{"linear", Dynamic{Kind: DynamicLinear}, x},
		{"tanh", Dynamic{Kind: DynamicTanh}, math.Tanh(x)},
		{"asinh", Dynamic{Kind: DynamicAsinh}, math.Asinh(x)},
		{"hard", Dynamic{Kind: DynamicHardClipper}, x},
	}
	for _, c := range cases {
		if got := c.d.Saturate(x); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s: Saturate(%v) = %v, want %v", c.name, x, got, c.want)
		}
	}

	model := NewLEDDiodeClipperModel(2, 3)
	d := NewDynamicDiodeClipper(model)
	if got := d.Saturate(x); got != model.Saturate(x) {
		t.Errorf("diode variant = %v, want %v", got, model.Saturate(x))
	}
}

func TestEach_AppliesPerElement(t *testing.T) {
	t.Parallel()

	ms := Each{Tanh{}, Linear{}}
	x := []float64{3, 3}
	y := make([]float64, 2)
	ms.MultiSaturate(x, y)
	if y[0] != math.Tanh(3) || y[1] != 3 {
		t.Errorf("Each.MultiSaturate = %v", y)
	}

	jac := make([]float64, 2)
	ms.SatJacobian(x, jac)
	if jac[1] != 1 {
		t.Errorf("Each.SatJacobian[1] = %v, want 1", jac[1])
	}
}
