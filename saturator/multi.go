// SPDX-License-Identifier: EPL-2.0

package saturator

// MultiSaturator generalizes Saturator to N inputs, N outputs and a
// diagonal Jacobian. All methods operate on equal-length slices and
// never allocate; callers own the output storage.
type MultiSaturator interface {
	// MultiSaturate writes the saturated inputs into y.
	MultiSaturate(x, y []float64)
	// UpdateStateMulti commits the state transitions, given the inputs
	// and the outputs MultiSaturate produced for them.
	UpdateStateMulti(x, y []float64)
	// SatJacobian writes the element-wise derivatives into jac.
	SatJacobian(x, jac []float64)
}

// MultiLinear is the identity MultiSaturator.
type MultiLinear struct{}

func (MultiLinear) MultiSaturate(x, y []float64)    { copy(y, x) }
func (MultiLinear) UpdateStateMulti(x, y []float64) {}

func (MultiLinear) SatJacobian(x, jac []float64) {
	for i := range jac {
		jac[i] = 1
	}
}

// MultiClipper hard-clips every element to [Min, Max].
type MultiClipper struct {
	Min, Max float64
}

// NewMultiClipper returns an element-wise hard clipper bounded to
// [-1, 1].
func NewMultiClipper() MultiClipper { return MultiClipper{Min: -1, Max: 1} }

func (c MultiClipper) MultiSaturate(x, y []float64) {
	inner := Clipper{Min: c.Min, Max: c.Max}
	for i, v := range x {
		y[i] = inner.Saturate(v)
	}
}

func (MultiClipper) UpdateStateMulti(x, y []float64) {}

func (c MultiClipper) SatJacobian(x, jac []float64) {
	inner := Clipper{Min: c.Min, Max: c.Max}
	for i, v := range x {
		jac[i] = inner.SatDiff(v)
	}
}

// Each lifts a list of scalar saturators into a MultiSaturator, element
// i passing through saturator i. It is the slice analog of applying a
// tuple of saturators to a state vector.
type Each []Saturator

func (e Each) MultiSaturate(x, y []float64) {
	for i, s := range e {
		y[i] = s.Saturate(x[i])
	}
}

func (e Each) UpdateStateMulti(x, y []float64) {
	for i, s := range e {
		s.UpdateState(x[i], y[i])
	}
}

func (e Each) SatJacobian(x, jac []float64) {
	for i, s := range e {
		jac[i] = s.SatDiff(x[i])
	}
}
