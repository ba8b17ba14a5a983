// SPDX-License-Identifier: EPL-2.0

// Package param is the control plane of the toolkit: lock-free
// parameter cells written from GUI/OSC/MIDI threads, a remote-control
// map draining them into processors on the audio thread, and
// per-sample smoothers.
//
// The only multi-writer shared state in the whole module lives here.
// Each Parameter wraps an atomic value and an atomic changed flag;
// writers store value-then-flag, the audio thread tests-and-clears the
// flag and loads the value. There is no locking, no waiting and no
// retry loop anywhere on the audio side.
//
// A units pitfall preserved for compatibility: LinearSmoothed
// interprets its durationMS argument as the time to cross the full
// range, but the derived rate is 1/durationMS units per *second*. Use
// LinearSmoothedRate for an unambiguous parameterization.
package param
