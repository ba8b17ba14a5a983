// SPDX-License-Identifier: EPL-2.0

package saturator

import (
	"math"

	"github.com/ik5/vadsp/dspmath"
)

// Saturator is a single-sample nonlinearity whose state update is
// separated from its evaluation. Saturate must be a pure map with
// frozen state; UpdateState commits the state transition afterwards,
// at most once per sample. The split allows iterative schemes and
// multistep methods to re-evaluate the same input without corrupting
// history.
type Saturator interface {
	// Saturate maps the input with frozen state.
	Saturate(x float64) float64
	// UpdateState commits the state transition, given an input and the
	// output Saturate produced for it.
	UpdateState(x, y float64)
	// SatDiff is the derivative of the saturator at x.
	SatDiff(x float64) float64
}

const finiteDiffEps = 1e-4

// FiniteSatDiff is the default derivative of a saturator: a forward
// finite difference of Saturate.
func FiniteSatDiff(s Saturator, x float64) float64 {
	return (s.Saturate(x+finiteDiffEps) - s.Saturate(x)) / finiteDiffEps
}

// Linear is the identity saturator. Use it where no saturation is
// wanted but a Saturator is required.
type Linear struct{}

func (Linear) Saturate(x float64) float64 { return x }
func (Linear) UpdateState(x, y float64)   {}
func (Linear) SatDiff(float64) float64    { return 1 }

// Tanh is the hyperbolic tangent saturator.
type Tanh struct{}

func (Tanh) Saturate(x float64) float64 { return math.Tanh(x) }
func (Tanh) UpdateState(x, y float64)   {}

func (Tanh) SatDiff(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

// Asinh is the inverse hyperbolic sine saturator.
type Asinh struct{}

func (Asinh) Saturate(x float64) float64 { return math.Asinh(x) }
func (Asinh) UpdateState(x, y float64)   {}

func (Asinh) SatDiff(x float64) float64 {
	return 1 / math.Sqrt(x*x+1)
}

// Clipper hard-clips its input to [Min, Max].
type Clipper struct {
	Min, Max float64
}

// NewClipper returns a hard clipper bounded to [-1, 1].
func NewClipper() Clipper { return Clipper{Min: -1, Max: 1} }

func (c Clipper) Saturate(x float64) float64 {
	return dspmath.Clamp(x, c.Min, c.Max)
}

func (Clipper) UpdateState(x, y float64) {}

func (c Clipper) SatDiff(x float64) float64 {
	if x < c.Min || x > c.Max {
		return 0
	}
	return 1
}

// Blend linearly interpolates between the identity and an inner
// saturator: y = x + Amount*(inner(x) - x).
type Blend struct {
	Amount float64
	Inner  Saturator
}

func (b Blend) Saturate(x float64) float64 {
	return x + b.Amount*(b.Inner.Saturate(x)-x)
}

func (b Blend) UpdateState(x, y float64) {
	b.Inner.UpdateState(x, y)
}

func (b Blend) SatDiff(x float64) float64 {
	return 1 + b.Amount*(b.Inner.SatDiff(x)-1)
}

// Driven boosts and biases the input of the inner saturator, then
// reduces its output by the drive amount.
type Driven struct {
	Drive float64
	Bias  float64
	Inner Saturator
}

func (d Driven) Saturate(x float64) float64 {
	return d.Inner.Saturate(x*d.Drive+d.Bias) / d.Drive
}

func (d Driven) UpdateState(x, y float64) {
	d.Inner.UpdateState(x*d.Drive+d.Bias, y*d.Drive)
}

func (d Driven) SatDiff(x float64) float64 {
	return d.Inner.SatDiff(x*d.Drive + d.Bias)
}
