// SPDX-License-Identifier: EPL-2.0

package param

import (
	"math"
	"sync/atomic"
)

// Parameter is a shared-ownership cell holding one float32 target
// value, a changed flag and an optional display name. Writes from any
// thread are atomic; the changed flag is set on write and cleared when
// the audio thread pulls the update. Two quick writes may coalesce
// into one observed change.
type Parameter struct {
	bits    atomic.Uint32
	changed atomic.Bool
	name    string
}

// NewParameter allocates a parameter with the given display name and
// initial value.
func NewParameter(name string, initial float32) *Parameter {
	p := &Parameter{name: name}
	p.bits.Store(math.Float32bits(initial))
	return p
}

// Name returns the display name of the parameter.
func (p *Parameter) Name() string { return p.name }

// Set stores a new target value and raises the changed flag. Value is
// stored before the flag so a reader that observes the flag always
// observes at least this value.
func (p *Parameter) Set(value float32) {
	p.bits.Store(math.Float32bits(value))
	p.changed.Store(true)
}

// Value loads the current target without touching the changed flag.
func (p *Parameter) Value() float32 {
	return math.Float32frombits(p.bits.Load())
}

// TakeUpdate tests-and-clears the changed flag; if it was set, it
// returns the current value and true. This is the audio-thread pull
// path: lock-free, wait-free, no retry loop.
func (p *Parameter) TakeUpdate() (float32, bool) {
	if !p.changed.CompareAndSwap(true, false) {
		return 0, false
	}
	return p.Value(), true
}

// HasChanged reports whether an update is pending without consuming
// it.
func (p *Parameter) HasChanged() bool { return p.changed.Load() }
