// SPDX-License-Identifier: EPL-2.0

package wdf

// Module pairs exactly one unadapted root with an adapted subtree.
// Construction propagates the subtree impedance into the root, so the
// root's wave equation is solvable from the first sample.
type Module struct {
	// Root is the unadapted node.
	Root Node
	// Leaf is the adapted subtree plugged into the root.
	Leaf Adapted
}

// NewModule assembles the module and informs the root of the subtree's
// port impedance.
func NewModule(root Node, leaf Adapted) *Module {
	m := &Module{Root: root, Leaf: leaf}
	m.Root.SetPortResistance(m.Leaf.Impedance())
	return m
}

// ProcessSample performs one full scatter pass: the subtree reflects
// up into the root, the root computes its response, and the response
// propagates back down as incident waves.
func (m *Module) ProcessSample() {
	m.Root.Incident(m.Leaf.Reflected())
	m.Leaf.Incident(m.Root.Reflected())
}

// SetSampleRate recurses into both sides and re-propagates the
// subtree impedance, which may have changed with the rate.
func (m *Module) SetSampleRate(hz float64) {
	m.Root.SetSampleRate(hz)
	m.Leaf.SetSampleRate(hz)
	m.Root.SetPortResistance(m.Leaf.Impedance())
}

// Reset clears the wave memory of the whole tree.
func (m *Module) Reset() {
	m.Root.Reset()
	m.Leaf.Reset()
	m.Root.SetPortResistance(m.Leaf.Impedance())
}

// Voltage reads the port voltage at any node.
func Voltage(n Node) float64 {
	return n.Wave().Voltage()
}

// Current reads the port current at any adapted node.
func Current(n Adapted) float64 {
	return n.Wave().Current(n.Impedance())
}
