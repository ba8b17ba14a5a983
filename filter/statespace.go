// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ik5/vadsp/saturator"
)

// StateSpace is a linear discrete state-space model (A, B, C, D) with
// direct access to the matrices. Per sample it computes y = Cx + Du,
// then x <- Ax + Bu, then passes the state through an optional
// multi-saturator. Dimensions are fixed at construction.
type StateSpace struct {
	// A is the state transition matrix (STATE x STATE).
	A *mat.Dense
	// B is the input-to-state matrix (STATE x IN).
	B *mat.Dense
	// C is the state-to-output matrix (OUT x STATE).
	C *mat.Dense
	// D is the input-to-output matrix (OUT x IN).
	D *mat.Dense

	nIn, nState, nOut int

	state, xNext *mat.VecDense
	u, y         *mat.VecDense
	tmpState     *mat.VecDense
	tmpOut       *mat.VecDense
	satOut       []float64
	sat          saturator.MultiSaturator

	out []float64
}

// NewStateSpace builds a state-space processor from the four matrices,
// validating their shapes against each other. The state saturator
// defaults to the identity.
func NewStateSpace(a, b, c, d *mat.Dense) (*StateSpace, error) {
	nState, nState2 := a.Dims()
	bState, nIn := b.Dims()
	nOut, cState := c.Dims()
	dOut, dIn := d.Dims()
	if nState != nState2 {
		return nil, fmt.Errorf("filter: state matrix A must be square, got %dx%d", nState, nState2)
	}
	if bState != nState || cState != nState || dOut != nOut || dIn != nIn {
		return nil, fmt.Errorf("filter: inconsistent state-space shapes A=%dx%d B=%dx%d C=%dx%d D=%dx%d",
			nState, nState2, bState, nIn, nOut, cState, dOut, dIn)
	}
	return &StateSpace{
		A: a, B: b, C: c, D: d,
		nIn: nIn, nState: nState, nOut: nOut,
		state:    mat.NewVecDense(nState, nil),
		xNext:    mat.NewVecDense(nState, nil),
		u:        mat.NewVecDense(nIn, nil),
		y:        mat.NewVecDense(nOut, nil),
		tmpState: mat.NewVecDense(nState, nil),
		tmpOut:   mat.NewVecDense(nOut, nil),
		satOut:   make([]float64, nState),
		sat:      saturator.MultiLinear{},
		out:      make([]float64, nOut),
	}, nil
}

// WithSaturators installs a multi-saturator over the state vector and
// returns the processor.
func (s *StateSpace) WithSaturators(sat saturator.MultiSaturator) *StateSpace {
	s.sat = sat
	return s
}

// UpdateMatrices copies the matrices (not the state) from another
// instance, so factory constructors double as full coefficient
// updates.
func (s *StateSpace) UpdateMatrices(other *StateSpace) {
	s.A.Copy(other.A)
	s.B.Copy(other.B)
	s.C.Copy(other.C)
	s.D.Copy(other.D)
}

func (s *StateSpace) SetSampleRate(hz float64) {}
func (s *StateSpace) Latency() int             { return 0 }
func (s *StateSpace) NumInputs() int           { return s.nIn }
func (s *StateSpace) NumOutputs() int          { return s.nOut }

func (s *StateSpace) Reset() {
	s.state.Zero()
}

func (s *StateSpace) Process(in []float64) []float64 {
	for i := 0; i < s.nIn; i++ {
		s.u.SetVec(i, in[i])
	}

	// y = C x + D u
	s.y.MulVec(s.C, s.state)
	s.tmpOut.MulVec(s.D, s.u)
	s.y.AddVec(s.y, s.tmpOut)

	// x <- A x + B u
	s.xNext.MulVec(s.A, s.state)
	s.tmpState.MulVec(s.B, s.u)
	s.xNext.AddVec(s.xNext, s.tmpState)

	raw := s.xNext.RawVector().Data
	s.sat.MultiSaturate(raw, s.satOut)
	s.sat.UpdateStateMulti(raw, s.satOut)
	for i, v := range s.satOut {
		s.state.SetVec(i, v)
	}

	for i := 0; i < s.nOut; i++ {
		s.out[i] = s.y.AtVec(i)
	}
	return s.out
}

// Response evaluates the transfer matrix H(z) = C (zI - A)^-1 B + D at
// the given z, returned as an OUT x IN matrix in row-major order. When
// zI - A is singular the result is filled with NaN. This is a
// diagnostic path; it allocates and must not be called from the audio
// thread.
func (s *StateSpace) Response(z complex128) []complex128 {
	n := s.nState
	// Solve (zI - A) X = B over the complex numbers through the real
	// embedding [Re -Im; Im Re], which keeps the whole computation in
	// gonum's real dense solver.
	m2 := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re := -s.A.At(i, j)
			if i == j {
				re += real(z)
			}
			var im float64
			if i == j {
				im = imag(z)
			}
			m2.Set(i, j, re)
			m2.Set(i, n+j, -im)
			m2.Set(n+i, j, im)
			m2.Set(n+i, n+j, re)
		}
	}
	rhs := mat.NewDense(2*n, s.nIn, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < s.nIn; j++ {
			rhs.Set(i, j, s.B.At(i, j))
		}
	}

	h := make([]complex128, s.nOut*s.nIn)
	var x mat.Dense
	if err := x.Solve(m2, rhs); err != nil {
		nan := math.NaN()
		for i := range h {
			h[i] = complex(nan, nan)
		}
		return h
	}

	for o := 0; o < s.nOut; o++ {
		for i := 0; i < s.nIn; i++ {
			var re, im float64
			for k := 0; k < n; k++ {
				re += s.C.At(o, k) * x.At(k, i)
				im += s.C.At(o, k) * x.At(n+k, i)
			}
			h[o*s.nIn+i] = complex(re+s.D.At(o, i), im)
		}
	}
	return h
}

// FreqResponse evaluates Response on the unit circle at frequency f
// (Hz) for the given sample rate.
func (s *StateSpace) FreqResponse(samplerate, freq float64) []complex128 {
	w := 2 * math.Pi * freq / samplerate
	return s.Response(complex(math.Cos(w), math.Sin(w)))
}
