// SPDX-License-Identifier: EPL-2.0

// Package wdf implements Wave Digital Filter trees: adapted one-port
// leaves and adapters combined under exactly one unadapted root,
// driven sample-by-sample with a scatter/reflect pass.
//
// Trees are built bottom-up from leaves (resistors, capacitors,
// sources) through adapters (series, parallel, polarity inverter);
// the driver keeps its own pointers to leaves to set source values
// and read port voltages between samples. Feedback lives in the
// root's wave equation, never in the tree shape, so the guaranteed
// tree structure needs no cycle handling.
//
// # Quick Start
//
//	rvs := wdf.NewResistiveVoltageSource(2200, 0)
//	c := wdf.NewCapacitor(48000, 33e-9)
//	clip := wdf.NewDiodeNR(saturator.NewSiliconDiodeClipper(1, 1))
//	mod := wdf.NewModule(clip, wdf.NewParallel(rvs, c))
//	for i := range input {
//		rvs.Vs = input[i]
//		mod.ProcessSample()
//		output[i] = wdf.Voltage(mod.Root)
//	}
package wdf
