// SPDX-License-Identifier: EPL-2.0

// Package vadsp is a toolkit for building real-time audio
// signal-processing graphs, with an emphasis on virtual-analog
// emulations of nonlinear circuits: saturators, diode clippers,
// state-variable and ladder filters, biquads, oversampled
// nonlinearities and Wave Digital Filter topologies.
//
// # Package Map
//
//   - dsp: the per-sample / per-block process contracts, adapters
//     between them, buffers and Series/Parallel composition
//   - param: lock-free parameter cells, remote control and smoothers
//   - saturator: the nonlinearity algebra, antiderivative
//     anti-aliasing, and the diode clipper solvers and fit tables
//   - filter: biquad, SVF, ladder and linear state-space cores
//   - oversample: a polyphase half-band oversampling cascade
//   - wdf: Wave Digital Filter trees with nonlinear roots
//   - osc: band-limited oscillators and a polyphonic voice manager
//   - dspmath: Newton-Raphson, interpolation, prewarping, RMS and
//     smooth-clamp building blocks
//   - audio, formats/...: host glue for decoding source material,
//     outside the real-time contract
//
// # Real-Time Contract
//
// Everything reachable from Process and ProcessBlock runs without
// allocation, blocking, I/O or unbounded iteration. Buffers, stages
// and voices are sized at construction; iterative solvers carry hard
// iteration caps and never propagate non-finite values.
//
// # Quick Start
//
//	lp := filter.NewBiquadLowpass(1000.0/48000.0, 0.707)
//	out := vadsp.ProcessSamples(dsp.NewBlockAdapter(lp), input)
package vadsp
