// SPDX-License-Identifier: EPL-2.0

// Package oversample provides integer power-of-two oversampling as a
// cascade of polyphase half-band stages over a ping-pong buffer, plus
// a wrapper that makes any 1-in/1-out block processor run at the
// oversampled rate transparently.
//
// Everything is allocated for the maximum factor at construction;
// changing the factor at run time only selects how many stages are
// active.
//
// # Quick Start
//
//	os := oversample.NewOversample(4, 512)
//	proc := oversample.NewOversampled(os, inner, 48000)
//	proc.ProcessBlock(in, out)
package oversample
