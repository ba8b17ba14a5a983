// SPDX-License-Identifier: EPL-2.0

package dsp

// Meta is the capability every processing unit exposes regardless of
// whether it processes one sample or a whole block at a time: it knows
// its own latency, reacts to sample-rate changes, and can clear its
// memory without touching its coefficients.
type Meta interface {
	// SetSampleRate recomputes any sample-rate-derived coefficients.
	SetSampleRate(hz float64)
	// Latency reports, in samples, how long a contribution made to the
	// input takes to appear at the output.
	Latency() int
	// Reset clears memory (delay lines, integrator states, saturator
	// history) but never parameters or sample rate.
	Reset()
}

// PerSample consumes one frame of Inputs and produces one frame of
// Outputs. Implementations must be a pure function of state and input:
// no allocation, no I/O, no blocking.
type PerSample interface {
	Meta
	// NumInputs and NumOutputs report the fixed channel arity this
	// processor accepts/produces. They never change over the lifetime
	// of a value.
	NumInputs() int
	NumOutputs() int
	// Process consumes exactly NumInputs() samples and returns exactly
	// NumOutputs() samples.
	Process(in []float64) []float64
}

// PerBlock consumes a multi-channel input buffer and fills a
// multi-channel output buffer of identical sample count.
type PerBlock interface {
	Meta
	NumInputs() int
	NumOutputs() int
	// ProcessBlock fills out from in. len(in) == NumInputs(), len(out)
	// == NumOutputs(), and every channel slice across in and out shares
	// the same length.
	ProcessBlock(in, out [][]float64)
	// MaxBlockSize reports the largest sample count this processor
	// accepts in one call, or 0 for "unbounded".
	MaxBlockSize() int
}
