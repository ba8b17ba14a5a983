// SPDX-License-Identifier: EPL-2.0

package saturator

import (
	"math"

	"github.com/ik5/vadsp/dspmath"
)

// DiodeClipper models nf forward / nb backward series-connected diodes
// across the signal path, solved sample-by-sample with Newton-Raphson
// on the steady-state circuit equation
//
//	Isat*(exp(vo/(nf*n*Vt)) - exp(-vo/(nb*n*Vt))) + 2*vo - vin = 0.
type DiodeClipper struct {
	// Isat is the reverse saturation current of the diode.
	Isat float64
	// N is the ideality coefficient of the diode.
	N float64
	// Vt is the thermal voltage.
	Vt float64
	// NumFwd and NumBwd are the diode counts in each direction.
	NumFwd, NumBwd float64
	// SimTol is the solver tolerance on the step magnitude.
	SimTol float64
	// MaxIter bounds the solver iteration count.
	MaxIter int

	vin      float64
	lastVout float64
}

// NewSiliconDiodeClipper returns a clipper with silicon diode
// characteristics and fwd/bwd diodes in each direction.
func NewSiliconDiodeClipper(fwd, bwd int) *DiodeClipper {
	return &DiodeClipper{
		Isat:    4.352e-9,
		N:       1.906,
		Vt:      23e-3,
		NumFwd:  float64(fwd),
		NumBwd:  float64(bwd),
		SimTol:  1e-3,
		MaxIter: dspmath.DefaultMaxIter,
	}
}

// NewGermaniumDiodeClipper returns a clipper with germanium diode
// characteristics and fwd/bwd diodes in each direction.
func NewGermaniumDiodeClipper(fwd, bwd int) *DiodeClipper {
	return &DiodeClipper{
		Isat:    200e-9,
		N:       2.109,
		Vt:      23e-3,
		NumFwd:  float64(fwd),
		NumBwd:  float64(bwd),
		SimTol:  1e-3,
		MaxIter: dspmath.DefaultMaxIter,
	}
}

// NewLEDDiodeClipper returns a clipper with LED characteristics and
// fwd/bwd diodes in each direction.
func NewLEDDiodeClipper(fwd, bwd int) *DiodeClipper {
	return &DiodeClipper{
		Isat:    2.96406e-12,
		N:       2.475312,
		Vt:      23e-3,
		NumFwd:  float64(fwd),
		NumBwd:  float64(bwd),
		SimTol:  1e-4,
		MaxIter: dspmath.DefaultMaxIter,
	}
}

// expClamp caps exponentials so driving the clipper far outside its
// operating range saturates instead of overflowing.
const expClamp = 1e35

func clampedExp(x float64) float64 {
	return math.Min(math.Exp(x), expClamp)
}

// Eval evaluates the circuit equation at the candidate output voltage.
func (d *DiodeClipper) Eval(vout float64) float64 {
	v := 1 / (d.N * d.Vt)
	expin := vout * v
	expn := clampedExp(expin / d.NumFwd)
	expm := clampedExp(-expin / d.NumBwd)
	return d.Isat*(expn-expm) + 2*vout - d.vin
}

// JInv evaluates the inverse Jacobian of the circuit equation, biased
// away from zero so the Newton step never divides by a vanishing
// derivative.
func (d *DiodeClipper) JInv(vout float64) float64 {
	v := 1 / (d.N * d.Vt)
	expin := vout * v
	expn := clampedExp(expin / d.NumFwd)
	expm := clampedExp(-expin / d.NumBwd)
	res := v*d.Isat*(expn/d.NumFwd+expm/d.NumBwd) + 2
	if math.Abs(res) < 1e-6 {
		res = 1e-6
	}
	return 1 / res
}

// solve runs the Newton-Raphson iteration for the given input voltage.
// The seed is the input clamped to the diode conduction bounds, which
// keeps the very first step finite even for large inputs.
func (d *DiodeClipper) solve(vin float64) float64 {
	d.vin = vin
	x0 := dspmath.Clamp(vin, -d.NumBwd, d.NumFwd)
	x, _ := dspmath.ToleranceSolve(d, x0, d.SimTol, d.MaxIter)
	return x
}

// Process consumes one input sample and returns the clipped output,
// committing the solver state.
func (d *DiodeClipper) Process(x float64) float64 {
	y := d.solve(x)
	d.lastVout = y
	return y
}

// Saturate solves the clipper without committing state.
func (d *DiodeClipper) Saturate(x float64) float64 {
	return d.solve(x)
}

// UpdateState commits the last output.
func (d *DiodeClipper) UpdateState(x, y float64) {
	d.lastVout = y
}

// SatDiff is the finite-difference derivative of the solved output.
func (d *DiodeClipper) SatDiff(x float64) float64 {
	return FiniteSatDiff(d, x)
}

// LastOutput returns the last committed output of the clipper.
func (d *DiodeClipper) LastOutput() float64 { return d.lastVout }

// Reset clears the solver memory.
func (d *DiodeClipper) Reset() {
	d.vin = 0
	d.lastVout = 0
}
