// SPDX-License-Identifier: EPL-2.0

package wdf

// SeriesAdapter binds two adapted subtrees in series. Its impedance is
// the sum of the children's.
type SeriesAdapter struct {
	Left, Right Adapted

	a, b float64
}

// NewSeries builds a series adapter over the two subtrees.
func NewSeries(left, right Adapted) *SeriesAdapter {
	return &SeriesAdapter{Left: left, Right: right}
}

func (s *SeriesAdapter) Wave() Wave { return Wave{A: s.a, B: s.b} }

func (s *SeriesAdapter) Impedance() float64 {
	return s.Left.Impedance() + s.Right.Impedance()
}

func (s *SeriesAdapter) Admittance() float64 { return Conductance(s.Impedance()) }

func (s *SeriesAdapter) Reflected() float64 {
	s.b = -s.Left.Reflected() - s.Right.Reflected()
	return s.b
}

func (s *SeriesAdapter) Incident(x float64) {
	p := s.Left.Impedance() / s.Impedance()
	w1 := s.Left.Wave()
	w2 := s.Right.Wave()
	b1 := w1.B - p*(x+w1.B+w2.B)
	s.Left.Incident(b1)
	s.Right.Incident(-x - b1)
	s.a = x
}

func (s *SeriesAdapter) SetPortResistance(r float64) {}

func (s *SeriesAdapter) SetSampleRate(hz float64) {
	s.Left.SetSampleRate(hz)
	s.Right.SetSampleRate(hz)
}

func (s *SeriesAdapter) Reset() {
	s.Left.Reset()
	s.Right.Reset()
	s.a, s.b = 0, 0
}

// ParallelAdapter binds two adapted subtrees in parallel. Its
// admittance is the sum of the children's.
type ParallelAdapter struct {
	Left, Right Adapted

	a, b         float64
	bdiff, btemp float64
}

// NewParallel builds a parallel adapter over the two subtrees.
func NewParallel(left, right Adapted) *ParallelAdapter {
	return &ParallelAdapter{Left: left, Right: right}
}

func (p *ParallelAdapter) Wave() Wave { return Wave{A: p.a, B: p.b} }

func (p *ParallelAdapter) Admittance() float64 {
	return p.Left.Admittance() + p.Right.Admittance()
}

func (p *ParallelAdapter) Impedance() float64 { return Resistance(p.Admittance()) }

func (p *ParallelAdapter) Reflected() float64 {
	pz := p.Impedance() / p.Left.Impedance()
	b1 := p.Left.Reflected()
	b2 := p.Right.Reflected()
	p.bdiff = b2 - b1
	p.btemp = -pz * p.bdiff
	p.b = b2 + p.btemp
	return p.b
}

func (p *ParallelAdapter) Incident(x float64) {
	b2 := x + p.btemp
	p.Left.Incident(p.bdiff + b2)
	p.Right.Incident(b2)
	p.a = x
}

func (p *ParallelAdapter) SetPortResistance(r float64) {}

func (p *ParallelAdapter) SetSampleRate(hz float64) {
	p.Left.SetSampleRate(hz)
	p.Right.SetSampleRate(hz)
}

func (p *ParallelAdapter) Reset() {
	p.Left.Reset()
	p.Right.Reset()
	p.a, p.b = 0, 0
	p.bdiff, p.btemp = 0, 0
}

// Inverter flips the polarity of the waves travelling both ways while
// passing the inner impedance through unchanged.
type Inverter struct {
	Inner Adapted

	a, b float64
}

// NewInverter wraps the subtree in a polarity inverter.
func NewInverter(inner Adapted) *Inverter {
	return &Inverter{Inner: inner}
}

func (i *Inverter) Wave() Wave { return Wave{A: i.a, B: i.b} }

func (i *Inverter) Impedance() float64  { return i.Inner.Impedance() }
func (i *Inverter) Admittance() float64 { return i.Inner.Admittance() }

func (i *Inverter) Reflected() float64 {
	i.b = -i.Inner.Reflected()
	return i.b
}

func (i *Inverter) Incident(x float64) {
	i.Inner.Incident(-x)
	i.a = x
}

func (i *Inverter) SetPortResistance(r float64) {}

func (i *Inverter) SetSampleRate(hz float64) {
	i.Inner.SetSampleRate(hz)
}

func (i *Inverter) Reset() {
	i.Inner.Reset()
	i.a, i.b = 0, 0
}
