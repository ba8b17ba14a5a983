// SPDX-License-Identifier: EPL-2.0

// Package saturator provides memoryless and stateful nonlinearities
// for virtual-analog processing: the basic algebra (identity, tanh,
// asinh, hard clipping, blending, drive, slew limiting, a BJT emitter
// follower), an antiderivative anti-aliasing wrapper, and two diode
// clipper renditions (an iterative Newton-Raphson circuit solver and a
// closed-form fitted model).
//
// Saturators separate evaluation from state commitment: Saturate is a
// pure map, UpdateState commits history afterwards. Composite
// processors rely on this ordering to resolve instantaneous feedback.
//
// # Quick Start
//
//	sat := saturator.NewADAA1(saturator.Tanh{})
//	y := sat.NextSample(x)
package saturator
