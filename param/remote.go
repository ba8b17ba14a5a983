// SPDX-License-Identifier: EPL-2.0

package param

import (
	"github.com/ik5/vadsp/dsp"
)

// ID identifies one parameter of a processor. Processors declare their
// parameter names as consecutive constants starting at zero:
//
//	const (
//		Cutoff param.ID = iota
//		Resonance
//	)
//
// IDs round-trip to stable integers by construction; display names
// live in the RemoteControl that owns the cells.
type ID int

// HasParameters is implemented by processors whose coefficients can be
// set through plain float32 values. Receivers range-check the value
// semantics themselves.
type HasParameters interface {
	SetParameter(id ID, value float32)
}

// RemoteControl is the shared map from parameter IDs to Parameter
// cells. SetParameter is the only externally visible write path from
// non-audio threads; the audio side drains updates through a
// RemoteControlled wrapper.
type RemoteControl struct {
	params []*Parameter
}

// NewRemoteControl allocates one Parameter cell per display name, in
// ID order.
func NewRemoteControl(names ...string) *RemoteControl {
	rc := &RemoteControl{params: make([]*Parameter, len(names))}
	for i, name := range names {
		rc.params[i] = NewParameter(name, 0)
	}
	return rc
}

// SetParameter stores a new value for the given parameter. Safe to
// call from any thread.
func (rc *RemoteControl) SetParameter(id ID, value float32) {
	rc.params[id].Set(value)
}

// Count returns the number of parameters.
func (rc *RemoteControl) Count() int { return len(rc.params) }

// Name returns the display name of the given parameter.
func (rc *RemoteControl) Name(id ID) string { return rc.params[id].Name() }

// Parameter exposes the underlying cell, e.g. to share a single slot
// with several writers.
func (rc *RemoteControl) Parameter(id ID) *Parameter { return rc.params[id] }

// drain forwards every pending update into the target processor.
func (rc *RemoteControl) drain(target HasParameters) {
	for i, p := range rc.params {
		if v, ok := p.TakeUpdate(); ok {
			target.SetParameter(ID(i), v)
		}
	}
}

// ControlledSample is a per-sample processor with remote-controllable
// parameters.
type ControlledSample interface {
	dsp.PerSample
	HasParameters
}

// ControlledBlock is a per-block processor with remote-controllable
// parameters.
type ControlledBlock interface {
	dsp.PerBlock
	HasParameters
}

// RemoteControlled owns a per-sample processor and drains pending
// parameter updates into it on a fixed cadence: a phase accumulator
// advances by updateFreq/samplerate per sample and triggers a drain on
// wrap. Intra-block parameter transitions therefore quantize to that
// cadence.
type RemoteControlled struct {
	Inner   ControlledSample
	Control *RemoteControl

	phase, step float64
	updateFreq  float64
}

// NewRemoteControlled builds the wrapper around inner, pulling pending
// updates updateFreq times per second.
func NewRemoteControlled(inner ControlledSample, control *RemoteControl, samplerate, updateFreq float64) *RemoteControlled {
	return &RemoteControlled{
		Inner:      inner,
		Control:    control,
		step:       updateFreq / samplerate,
		updateFreq: updateFreq,
	}
}

func (r *RemoteControlled) SetSampleRate(hz float64) {
	r.step = r.updateFreq / hz
	r.Inner.SetSampleRate(hz)
}

func (r *RemoteControlled) Latency() int    { return r.Inner.Latency() }
func (r *RemoteControlled) NumInputs() int  { return r.Inner.NumInputs() }
func (r *RemoteControlled) NumOutputs() int { return r.Inner.NumOutputs() }

func (r *RemoteControlled) Reset() {
	r.phase = 0
	r.Inner.Reset()
}

// UpdateParameters drains all pending updates immediately.
func (r *RemoteControlled) UpdateParameters() {
	r.Control.drain(r.Inner)
}

func (r *RemoteControlled) Process(in []float64) []float64 {
	r.phase += r.step
	if r.phase > 1 {
		r.phase -= 1
		r.UpdateParameters()
	}
	return r.Inner.Process(in)
}

// RemoteControlledBlock is the per-block counterpart of
// RemoteControlled: pending updates are drained at most once per
// block, before processing.
type RemoteControlledBlock struct {
	Inner   ControlledBlock
	Control *RemoteControl

	phase, step float64
	updateFreq  float64
}

// NewRemoteControlledBlock builds the wrapper around inner, pulling
// pending updates at most once per block, paced at updateFreq.
func NewRemoteControlledBlock(inner ControlledBlock, control *RemoteControl, samplerate, updateFreq float64) *RemoteControlledBlock {
	return &RemoteControlledBlock{
		Inner:      inner,
		Control:    control,
		step:       updateFreq / samplerate,
		updateFreq: updateFreq,
	}
}

func (r *RemoteControlledBlock) SetSampleRate(hz float64) {
	r.step = r.updateFreq / hz
	r.Inner.SetSampleRate(hz)
}

func (r *RemoteControlledBlock) Latency() int      { return r.Inner.Latency() }
func (r *RemoteControlledBlock) NumInputs() int    { return r.Inner.NumInputs() }
func (r *RemoteControlledBlock) NumOutputs() int   { return r.Inner.NumOutputs() }
func (r *RemoteControlledBlock) MaxBlockSize() int { return r.Inner.MaxBlockSize() }

func (r *RemoteControlledBlock) Reset() {
	r.phase = 0
	r.Inner.Reset()
}

// UpdateParameters drains all pending updates immediately.
func (r *RemoteControlledBlock) UpdateParameters() {
	r.Control.drain(r.Inner)
}

func (r *RemoteControlledBlock) ProcessBlock(in, out [][]float64) {
	n := 0
	if len(in) > 0 {
		n = len(in[0])
	} else if len(out) > 0 {
		n = len(out[0])
	}
	r.phase += r.step * float64(n)
	if r.phase > 1 {
		r.phase -= float64(int(r.phase))
		r.UpdateParameters()
	}
	r.Inner.ProcessBlock(in, out)
}
