// SPDX-License-Identifier: EPL-2.0

package wdf

import (
	"math"

	"github.com/ik5/vadsp/dspmath"
	"github.com/ik5/vadsp/saturator"
)

// DiodeLambert is an unadapted diode clipper root solving the wave
// equation analytically with the Lambert W function.
type DiodeLambert struct {
	// Isat is the reverse saturation current.
	Isat float64
	// NVt is the ideality factor times the thermal voltage.
	NVt float64
	// Nf and Nb are the forward and backward diode counts.
	Nf, Nb float64

	r    float64
	a, b float64
}

// NewDiodeLambert builds the node from a diode clipper configuration.
func NewDiodeLambert(data *saturator.DiodeClipper) *DiodeLambert {
	return &DiodeLambert{
		Isat: data.Isat,
		NVt:  data.N * data.Vt,
		Nf:   data.NumFwd,
		Nb:   data.NumBwd,
	}
}

// SetConfiguration swaps in a new diode clipper configuration.
func (d *DiodeLambert) SetConfiguration(data *saturator.DiodeClipper) {
	d.Isat = data.Isat
	d.NVt = data.N * data.Vt
	d.Nf = data.NumFwd
	d.Nb = data.NumBwd
}

func (d *DiodeLambert) Wave() Wave { return Wave{A: d.a, B: d.b} }

func (d *DiodeLambert) Incident(a float64) { d.a = a }

func (d *DiodeLambert) Reflected() float64 {
	mu0, mu1 := d.Nf, d.Nb
	if d.a <= 0 {
		mu0, mu1 = d.Nb, d.Nf
	}
	risVt := d.r * d.Isat / d.NVt
	lam := 1.0
	if d.a < 0 {
		lam = -1.0
	}
	lamAVt := d.a * lam / d.NVt
	logRisVtMu0 := math.Log(risVt / mu0)
	logRisVtMu1 := math.Log(risVt / mu1)
	e0 := math.Exp(logRisVtMu0 + lamAVt/mu0)
	e1 := -math.Exp(logRisVtMu1 - lamAVt/mu1)
	inner := mu0*dspmath.LambertW(e0) + mu1*dspmath.LambertW(e1)
	d.b = d.a - 2*lam*d.NVt*inner
	return d.b
}

func (d *DiodeLambert) SetPortResistance(r float64) { d.r = r }
func (d *DiodeLambert) SetSampleRate(float64)       {}

func (d *DiodeLambert) Reset() {
	d.a, d.b, d.r = 0, 0, 0
}

// DiodeRootEq is the implicit wave equation of the diode clipper at
// the root port: given the incident wave and the port resistance, its
// root is the reflected wave.
type DiodeRootEq struct {
	// Isat is the reverse saturation current.
	Isat float64
	// N is the ideality factor.
	N float64
	// Vt is the thermal voltage.
	Vt float64
	// Nf and Nb are the forward and backward diode counts.
	Nf, Nb float64

	r float64
	a float64
}

// Eval evaluates the wave equation at the candidate reflected wave.
func (e *DiodeRootEq) Eval(b float64) float64 {
	r2 := 2 * e.r
	logR2Isat := math.Log(r2) + math.Log(e.Isat)
	expOp := (e.a + b) / (2 * e.N * e.Vt)
	x0 := math.Exp(logR2Isat+expOp/e.Nf) - math.Exp(logR2Isat-expOp/e.Nb)
	return (x0 - e.a + b) / r2
}

// JInv evaluates the inverse Jacobian of the wave equation.
func (e *DiodeRootEq) JInv(b float64) float64 {
	logRisat := math.Log(e.r) + math.Log(e.Isat)
	expOp := (e.a + b) / (2 * e.N * e.Vt)
	e0 := math.Log(e.Nf) + logRisat - expOp/e.Nf
	e1 := math.Log(e.Nb) + logRisat + expOp/e.Nb
	mnnvt := e.Nf * e.Nb * e.N * e.Vt
	return 2 * e.r * mnnvt / (mnnvt + math.Exp(e0) + math.Exp(e1))
}

// DiodeNR is an unadapted diode clipper root solving the implicit wave
// equation with Newton-Raphson.
type DiodeNR struct {
	// RootEq holds the diode configuration.
	RootEq DiodeRootEq
	// MaxTolerance is the solver tolerance on the step magnitude.
	MaxTolerance float64
	// MaxIter bounds the solver iteration count.
	MaxIter int

	b float64
}

// NewDiodeNR builds the node from a diode clipper configuration.
func NewDiodeNR(data *saturator.DiodeClipper) *DiodeNR {
	return &DiodeNR{
		RootEq: DiodeRootEq{
			Isat: data.Isat,
			N:    data.N,
			Vt:   data.Vt,
			Nf:   data.NumFwd,
			Nb:   data.NumBwd,
		},
		MaxTolerance: 1e-4,
		MaxIter:      dspmath.DefaultMaxIter,
	}
}

// SetConfiguration swaps in a new diode clipper configuration.
func (d *DiodeNR) SetConfiguration(data *saturator.DiodeClipper) {
	d.RootEq.Isat = data.Isat
	d.RootEq.N = data.N
	d.RootEq.Vt = data.Vt
	d.RootEq.Nf = data.NumFwd
	d.RootEq.Nb = data.NumBwd
}

func (d *DiodeNR) Wave() Wave { return Wave{A: d.RootEq.a, B: d.b} }

func (d *DiodeNR) Incident(a float64) { d.RootEq.a = a }

func (d *DiodeNR) Reflected() float64 {
	b, _ := dspmath.ToleranceSolve(&d.RootEq, -d.RootEq.a, d.MaxTolerance, d.MaxIter)
	d.b = b
	return d.b
}

func (d *DiodeNR) SetPortResistance(r float64) { d.RootEq.r = r }
func (d *DiodeNR) SetSampleRate(float64)       {}

func (d *DiodeNR) Reset() {
	d.RootEq.a, d.RootEq.r, d.b = 0, 0, 0
}

// NewDiodeModelRoot runs the analytical diode clipper model as a
// memoryless unadapted root.
func NewDiodeModelRoot(model saturator.DiodeClipperModel) *SaturatorRoot {
	return NewSaturatorRoot(model.Eval)
}
