// SPDX-License-Identifier: EPL-2.0

// Package filter provides the analog-modeled filter cores: a TDF-II
// biquad with in-feedback saturation, a zero-delay-feedback
// state-variable filter, a 4-pole ladder with pluggable topology, a
// first-order topology-preserving filter and a linear state-space
// processor.
//
// All filters satisfy the dsp.PerSample contract and keep their
// parameters across Reset; only memory (integrator and delay states)
// is cleared.
//
// # Quick Start
//
//	lp := filter.NewBiquadLowpass(1000.0/48000.0, 0.707)
//	y := lp.Process([]float64{x})[0]
package filter
