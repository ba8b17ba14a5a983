// SPDX-License-Identifier: EPL-2.0

package wdf

// IdealVoltageSource is an unadapted ideal voltage source: b = 2*Vs -
// a pins the port voltage to Vs regardless of current. It can only sit
// at the root of a tree.
type IdealVoltageSource struct {
	// Vs is the source voltage; the driver sets it every sample.
	Vs float64

	a, b float64
}

// NewIdealVoltageSource builds the source with the given initial
// voltage.
func NewIdealVoltageSource(vs float64) *IdealVoltageSource {
	return &IdealVoltageSource{Vs: vs}
}

func (v *IdealVoltageSource) Wave() Wave { return Wave{A: v.a, B: v.b} }

func (v *IdealVoltageSource) Incident(a float64) { v.a = a }

func (v *IdealVoltageSource) Reflected() float64 {
	v.b = 2*v.Vs - v.a
	return v.b
}

func (v *IdealVoltageSource) SetPortResistance(float64) {}
func (v *IdealVoltageSource) SetSampleRate(float64)     {}
func (v *IdealVoltageSource) Reset()                    { v.a, v.b = 0, 0 }

// IdealCurrentSource is an unadapted ideal current source, the dual of
// IdealVoltageSource: it pins the port current to J through the port
// resistance made known by SetPortResistance.
type IdealCurrentSource struct {
	// J is the source current; the driver sets it every sample.
	J float64

	r    float64
	a, b float64
}

// NewIdealCurrentSource builds the source with the given initial
// current.
func NewIdealCurrentSource(j float64) *IdealCurrentSource {
	return &IdealCurrentSource{J: j}
}

func (c *IdealCurrentSource) Wave() Wave { return Wave{A: c.a, B: c.b} }

func (c *IdealCurrentSource) Incident(a float64) { c.a = a }

func (c *IdealCurrentSource) Reflected() float64 {
	c.b = c.a - 2*c.r*c.J
	return c.b
}

func (c *IdealCurrentSource) SetPortResistance(r float64) { c.r = r }
func (c *IdealCurrentSource) SetSampleRate(float64)       {}
func (c *IdealCurrentSource) Reset()                      { c.a, c.b = 0, 0 }

// ShortCircuit is an unadapted short: the port voltage is pinned to
// zero, b = -a.
type ShortCircuit struct {
	a float64
}

// NewShortCircuit builds a short.
func NewShortCircuit() *ShortCircuit { return &ShortCircuit{} }

func (s *ShortCircuit) Wave() Wave { return Wave{A: s.a, B: -s.a} }

func (s *ShortCircuit) Incident(a float64) { s.a = a }
func (s *ShortCircuit) Reflected() float64 { return -s.a }

func (s *ShortCircuit) SetPortResistance(float64) {}
func (s *ShortCircuit) SetSampleRate(float64)     {}
func (s *ShortCircuit) Reset()                    { s.a = 0 }

// OpenCircuit is an unadapted open: the port current is pinned to
// zero, b = a.
type OpenCircuit struct {
	a float64
}

// NewOpenCircuit builds an open.
func NewOpenCircuit() *OpenCircuit { return &OpenCircuit{} }

func (o *OpenCircuit) Wave() Wave { return Wave{A: o.a, B: o.a} }

func (o *OpenCircuit) Incident(a float64) { o.a = a }
func (o *OpenCircuit) Reflected() float64 { return o.a }

func (o *OpenCircuit) SetPortResistance(float64) {}
func (o *OpenCircuit) SetSampleRate(float64)     {}
func (o *OpenCircuit) Reset()                    { o.a = 0 }

// SaturatorFunc is the shape of a memoryless voltage map usable as an
// unadapted root.
type SaturatorFunc func(v float64) float64

// SaturatorRoot runs a memoryless nonlinearity as an unadapted root:
// the incident wave is mapped through the function and the reflected
// wave is chosen so the port voltage equals the mapped value.
type SaturatorRoot struct {
	// Fn is the voltage map.
	Fn SaturatorFunc

	a, b float64
}

// NewSaturatorRoot wraps the voltage map as a root node.
func NewSaturatorRoot(fn SaturatorFunc) *SaturatorRoot {
	return &SaturatorRoot{Fn: fn}
}

func (s *SaturatorRoot) Wave() Wave { return Wave{A: s.a, B: s.b} }

func (s *SaturatorRoot) Incident(a float64) { s.a = a }

func (s *SaturatorRoot) Reflected() float64 {
	s.b = 2*s.Fn(s.a) - s.a
	return s.b
}

func (s *SaturatorRoot) SetPortResistance(float64) {}
func (s *SaturatorRoot) SetSampleRate(float64)     {}
func (s *SaturatorRoot) Reset()                    { s.a, s.b = 0, 0 }
