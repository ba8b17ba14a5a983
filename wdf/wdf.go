// SPDX-License-Identifier: EPL-2.0

package wdf

// Wave holds the two wave variables at a node's upward facing port:
// the incident wave a and the reflected wave b. Waves here are voltage
// waves, defined from the Kirchhoff variables as
//
//	a = v + R*i
//	b = v - R*i
//
// so that v = (a+b)/2 and i = (a-b)/(2R).
type Wave struct {
	A, B float64
}

// Voltage computes the port voltage of the wave.
func (w Wave) Voltage() float64 {
	return (w.A + w.B) / 2
}

// Current computes the port current of the wave, given the port
// resistance.
func (w Wave) Current(resistance float64) float64 {
	return (w.A - w.B) / (2 * resistance)
}

// Node is the behavior every element of a WDF tree implements,
// adapted or not: it receives an incident wave and reflects one back
// through its upward facing port. Nodes are shared by pointer;
// adapters hold their children and the driver keeps its own handles
// on leaves to set source values and read port voltages.
type Node interface {
	// Wave observes the wave variables at the upward facing port.
	Wave() Wave
	// Incident accepts the wave arriving from the parent.
	Incident(a float64)
	// Reflected computes and emits the wave going to the parent.
	Reflected() float64
	// SetPortResistance informs the node of the port resistance of
	// whatever is plugged into its upward facing port. Most adapted
	// nodes ignore it; unadapted roots need it to solve their wave
	// equation.
	SetPortResistance(r float64)
	// SetSampleRate updates sample-rate-derived element values,
	// recursing into children.
	SetSampleRate(hz float64)
	// Reset clears wave memory, recursing into children.
	Reset()
}

// Adapted is a Node whose port impedance can be chosen to avoid an
// instantaneous dependency of b on a, making it composable under
// adapters. At least one of Impedance or Admittance must be a real
// implementation; Resistance and Conductance express each as the
// reciprocal of the other for implementers that only have one natural
// form.
type Adapted interface {
	Node
	// Impedance returns the upward facing port impedance.
	Impedance() float64
	// Admittance returns the upward facing port admittance.
	Admittance() float64
}

// Resistance is the impedance of an admittance-natural node.
func Resistance(admittance float64) float64 { return 1 / admittance }

// Conductance is the admittance of an impedance-natural node.
func Conductance(impedance float64) float64 { return 1 / impedance }
