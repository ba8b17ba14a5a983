// SPDX-License-Identifier: EPL-2.0

package osc

// NoteData carries what a voice needs to start sounding.
type NoteData struct {
	// Channel and Note identify the key for keyed note-off.
	Channel, Note uint8
	// Frequency in Hz.
	Frequency float64
	// Velocity in [0, 1].
	Velocity float64
}

// Voice is one sounding note owned by a Polyphonic manager. A voice
// reports itself inactive once its envelope has decayed below its own
// threshold; the manager prunes inactive voices between blocks.
type Voice interface {
	// NextSample produces one output sample.
	NextSample() float64
	// Active reports whether the voice still contributes output.
	Active() bool
	// Release signals note-off with the given release velocity.
	Release(velocity float64)
	// Choke stops the voice immediately.
	Choke()
	// SetSampleRate updates rate-derived state.
	SetSampleRate(hz float64)
}

type voiceSlot struct {
	voice   Voice
	used    bool
	age     uint64
	channel uint8
	note    uint8
}

// Polyphonic schedules up to a fixed number of voices, keyed by the
// integer id returned from NoteOn or by (channel, note). When every
// slot is sounding, the longest-held voice is stolen.
type Polyphonic struct {
	samplerate  float64
	createVoice func(samplerate float64, note NoteData) Voice
	slots       []voiceSlot
	nextAge     uint64
}

// NewPolyphonic builds a manager with the given voice capacity. The
// factory is called on note-on; it should be allocation-light, since
// note-ons may land on the audio thread.
func NewPolyphonic(samplerate float64, capacity int, createVoice func(samplerate float64, note NoteData) Voice) *Polyphonic {
	return &Polyphonic{
		samplerate:  samplerate,
		createVoice: createVoice,
		slots:       make([]voiceSlot, capacity),
	}
}

// Capacity returns the voice count limit.
func (p *Polyphonic) Capacity() int { return len(p.slots) }

// Voice returns the voice with the given id, or nil when the slot is
// silent.
func (p *Polyphonic) Voice(id int) Voice {
	if id < 0 || id >= len(p.slots) || !p.slots[id].used {
		return nil
	}
	return p.slots[id].voice
}

// NoteOn starts a voice for the note and returns its id. A free slot
// is preferred; otherwise the longest-held voice is stolen.
func (p *Polyphonic) NoteOn(note NoteData) int {
	id := -1
	for i := range p.slots {
		if !p.slots[i].used {
			id = i
			break
		}
	}
	if id < 0 {
		oldest := p.slots[0].age
		id = 0
		for i := range p.slots {
			if p.slots[i].age < oldest {
				oldest = p.slots[i].age
				id = i
			}
		}
		p.slots[id].voice.Choke()
	}

	p.nextAge++
	p.slots[id] = voiceSlot{
		voice:   p.createVoice(p.samplerate, note),
		used:    true,
		age:     p.nextAge,
		channel: note.Channel,
		note:    note.Note,
	}
	return id
}

// NoteOff releases the voice with the given id.
func (p *Polyphonic) NoteOff(id int, releaseVelocity float64) {
	if v := p.Voice(id); v != nil {
		v.Release(releaseVelocity)
	}
}

// NoteOffKey releases every sounding voice keyed by (channel, note).
func (p *Polyphonic) NoteOffKey(channel, note uint8, releaseVelocity float64) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.used && s.channel == channel && s.note == note {
			s.voice.Release(releaseVelocity)
		}
	}
}

// Choke stops the voice with the given id immediately.
func (p *Polyphonic) Choke(id int) {
	if v := p.Voice(id); v != nil {
		v.Choke()
	}
}

// Panic chokes every voice.
func (p *Polyphonic) Panic() {
	for i := range p.slots {
		if p.slots[i].used {
			p.slots[i].voice.Choke()
		}
	}
}

// NextSample sums one sample from every sounding voice.
func (p *Polyphonic) NextSample() float64 {
	sum := 0.0
	for i := range p.slots {
		if p.slots[i].used {
			sum += p.slots[i].voice.NextSample()
		}
	}
	return sum
}

// CleanInactiveVoices frees the slots of voices that have decayed to
// silence. Call it between blocks, off the critical path.
func (p *Polyphonic) CleanInactiveVoices() {
	for i := range p.slots {
		s := &p.slots[i]
		if s.used && !s.voice.Active() {
			*s = voiceSlot{}
		}
	}
}

// SetSampleRate updates every sounding voice.
func (p *Polyphonic) SetSampleRate(hz float64) {
	p.samplerate = hz
	for i := range p.slots {
		if p.slots[i].used {
			p.slots[i].voice.SetSampleRate(hz)
		}
	}
}
