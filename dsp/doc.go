// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the process abstraction shared by every signal
// processing unit in this module: a uniform per-sample / per-block
// contract, the adapters that bridge the two, and the Series/Parallel
// composition combinators.
//
// # Quick Start
//
//	lp := filter.NewBiquadLowpass(1000.0/48000.0, 0.707)
//	block := dsp.NewBlockAdapter(lp)
//	block.ProcessBlock(in, out)
package dsp
