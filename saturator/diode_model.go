// SPDX-License-Identifier: EPL-2.0

package saturator

import "math"

// DiodeClipperModel is a closed-form approximation of the diode clipper
// with four fitted parameters per diode configuration:
//
//	y = So * { -ln(1 - x' - A) - A   if x' < -A
//	           x'                    if -A <= x' <= B
//	           ln(1 + x' - B) + B    if x' > B }
//
// with x' = Si*x. The fit tables in NewSiliconDiodeClipperModel and
// friends were produced against the circuit equation of DiodeClipper
// for 1..5 diodes in series each way; their values are part of the
// compatibility surface and must not be retuned.
type DiodeClipperModel struct {
	A, B   float64
	Si, So float64
}

// Eval applies the full fitted map, input voltage to output voltage.
func (m DiodeClipperModel) Eval(x float64) float64 {
	u := m.Si * x
	switch {
	case u < -m.A:
		return m.So * (-math.Log(1-u-m.A) - m.A)
	case u > m.B:
		return m.So * (math.Log(1+u-m.B) + m.B)
	default:
		return m.So * u
	}
}

// Process consumes one sample through the full fitted map.
func (m DiodeClipperModel) Process(x float64) float64 { return m.Eval(x) }

// Saturate applies the map normalized to unit slope around zero, which
// is the form composable with drive and blend wrappers.
func (m DiodeClipperModel) Saturate(x float64) float64 {
	return m.Eval(x) / (m.Si * m.So)
}

func (DiodeClipperModel) UpdateState(x, y float64) {}

func (m DiodeClipperModel) SatDiff(x float64) float64 {
	u := m.Si * x
	switch {
	case u < -m.A:
		return 1 / (1 - u - m.A)
	case u > m.B:
		return 1 / (1 + u - m.B)
	default:
		return 1
	}
}

// Evaluate is the normalized map, the function the antiderivatives
// below integrate.
func (m DiodeClipperModel) Evaluate(x float64) float64 {
	return m.Saturate(x)
}

// Antiderivative is the first antiderivative of Evaluate, continuous
// across the three branches.
func (m DiodeClipperModel) Antiderivative(x float64) float64 {
	u := m.Si * x
	si2 := m.Si * m.Si
	switch {
	case u < -m.A:
		v := 1 - u - m.A
		return (v*(math.Log(v)-1) - m.A*u + 1 - m.A*m.A/2) / si2
	case u > m.B:
		w := 1 + u - m.B
		return (w*(math.Log(w)-1) + m.B*u + 1 - m.B*m.B/2) / si2
	default:
		return x * x / 2
	}
}

// Antiderivative2 is the second antiderivative of Evaluate, continuous
// in value across the three branches.
func (m DiodeClipperModel) Antiderivative2(x float64) float64 {
	u := m.Si * x
	si3 := m.Si * m.Si * m.Si
	switch {
	case u < -m.A:
		v := 1 - u - m.A
		lv := math.Log(v)
		return (-v*v/2*lv + 0.75*v*v - m.A*u*u/2 +
			(1-m.A*m.A/2)*u - m.A*m.A*m.A/6 - 0.75 + m.A) / si3
	case u > m.B:
		w := 1 + u - m.B
		lw := math.Log(w)
		return (w*w/2*lw - 0.75*w*w + m.B*u*u/2 +
			(1-m.B*m.B/2)*u + m.B*m.B*m.B/6 + 0.75 - m.B) / si3
	default:
		return x * x * x / 6
	}
}

// MultiSaturate applies the model element-wise.
func (m DiodeClipperModel) MultiSaturate(x, y []float64) {
	for i, v := range x {
		y[i] = m.Saturate(v)
	}
}

func (DiodeClipperModel) UpdateStateMulti(x, y []float64) {}

// SatJacobian fills jac with the element-wise derivative.
func (m DiodeClipperModel) SatJacobian(x, jac []float64) {
	for i, v := range x {
		jac[i] = m.SatDiff(v)
	}
}

// NewSoftClipper is a partially-blended diode soft clip: the analytical
// model of the given material and diode counts mixed with the dry
// signal by amount.
func NewSoftClipper(m DiodeClipperModel, amount float64) Blend {
	return Blend{Amount: amount, Inner: m}
}
