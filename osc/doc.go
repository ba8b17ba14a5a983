// SPDX-License-Identifier: EPL-2.0

// Package osc provides band-limited oscillators (BLIT and PolyBLEP
// families), a bare phase accumulator, and a polyphonic voice
// manager.
//
// # Quick Start
//
//	saw := osc.NewPolyBLEPSaw(48000, 110)
//	for i := range out {
//		out[i] = saw.NextSample()
//	}
package osc
