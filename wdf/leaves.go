// SPDX-License-Identifier: EPL-2.0

package wdf

// Resistor is an adapted resistive one-port; matched at its own
// resistance it never reflects.
type Resistor struct {
	// R is the resistance in ohms.
	R float64

	a float64
}

// NewResistor builds a resistor leaf with the given resistance (ohms).
func NewResistor(r float64) *Resistor {
	return &Resistor{R: r}
}

func (r *Resistor) Wave() Wave { return Wave{A: r.a, B: 0} }

func (r *Resistor) Impedance() float64  { return r.R }
func (r *Resistor) Admittance() float64 { return Conductance(r.R) }

func (r *Resistor) Incident(a float64) { r.a = a }
func (r *Resistor) Reflected() float64 { return 0 }

func (r *Resistor) SetPortResistance(float64) {}
func (r *Resistor) SetSampleRate(float64)     {}
func (r *Resistor) Reset()                    { r.a = 0 }

// Capacitor is an adapted capacitive one-port under the bilinear
// transform: impedance 1/(2*fs*C) and a one-sample memory reflecting
// the last incident wave.
type Capacitor struct {
	// C is the capacitance in farads.
	C float64

	fs   float64
	a, b float64
	// state holds the incident wave one sample back, reflected next
	// sample.
	state float64
}

// NewCapacitor builds a capacitor leaf for the given sample rate (Hz)
// and capacitance (farads).
func NewCapacitor(fs, c float64) *Capacitor {
	return &Capacitor{C: c, fs: fs}
}

func (c *Capacitor) Wave() Wave { return Wave{A: c.a, B: c.b} }

func (c *Capacitor) Impedance() float64  { return 1 / (2 * c.fs * c.C) }
func (c *Capacitor) Admittance() float64 { return 2 * c.fs * c.C }

func (c *Capacitor) Incident(a float64) {
	c.a = a
	c.state = a
}

func (c *Capacitor) Reflected() float64 {
	c.b = c.state
	return c.b
}

func (c *Capacitor) SetPortResistance(float64) {}

func (c *Capacitor) SetSampleRate(hz float64) { c.fs = hz }

func (c *Capacitor) Reset() {
	c.a, c.b = 0, 0
	c.state = 0
}

// ResistiveVoltageSource is an adapted voltage source with a series
// resistance; matched at that resistance it reflects the source
// voltage.
type ResistiveVoltageSource struct {
	// R is the series resistance in ohms.
	R float64
	// Vs is the source voltage; the driver sets it every sample.
	Vs float64

	a float64
}

// NewResistiveVoltageSource builds the source with the given series
// resistance and initial voltage.
func NewResistiveVoltageSource(r, vs float64) *ResistiveVoltageSource {
	return &ResistiveVoltageSource{R: r, Vs: vs}
}

func (v *ResistiveVoltageSource) Wave() Wave { return Wave{A: v.a, B: v.Vs} }

func (v *ResistiveVoltageSource) Impedance() float64  { return v.R }
func (v *ResistiveVoltageSource) Admittance() float64 { return Conductance(v.R) }

func (v *ResistiveVoltageSource) Incident(a float64) { v.a = a }
func (v *ResistiveVoltageSource) Reflected() float64 { return v.Vs }

func (v *ResistiveVoltageSource) SetPortResistance(float64) {}
func (v *ResistiveVoltageSource) SetSampleRate(float64)     {}
func (v *ResistiveVoltageSource) Reset()                    { v.a = 0 }

// ResistiveCurrentSource is an adapted current source with a parallel
// resistance; matched at that resistance it reflects R*j.
type ResistiveCurrentSource struct {
	// R is the parallel resistance in ohms.
	R float64
	// J is the source current; the driver sets it every sample.
	J float64

	a float64
}

// NewResistiveCurrentSource builds the source with the given parallel
// resistance and initial current.
func NewResistiveCurrentSource(r, j float64) *ResistiveCurrentSource {
	return &ResistiveCurrentSource{R: r, J: j}
}

func (c *ResistiveCurrentSource) Wave() Wave { return Wave{A: c.a, B: c.R * c.J} }

func (c *ResistiveCurrentSource) Impedance() float64  { return c.R }
func (c *ResistiveCurrentSource) Admittance() float64 { return Conductance(c.R) }

func (c *ResistiveCurrentSource) Incident(a float64) { c.a = a }
func (c *ResistiveCurrentSource) Reflected() float64 { return c.R * c.J }

func (c *ResistiveCurrentSource) SetPortResistance(float64) {}
func (c *ResistiveCurrentSource) SetSampleRate(float64)     {}
func (c *ResistiveCurrentSource) Reset()                    { c.a = 0 }
