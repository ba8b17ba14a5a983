// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multichannel Source down to mono by averaging the
// channels of each frame, so a mono processing chain can run on any
// source material.
type MonoMixer struct {
	src Source
	tmp []float64
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float64, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	ch := m.src.Channels()
	if ch == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * ch
	if cap(m.tmp) < need {
		m.tmp = make([]float64, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / ch
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < ch; c++ {
			sum += m.tmp[i*ch+c]
		}
		dst[i] = sum / float64(ch)
	}

	if err != nil {
		return frames, err
	}
	return frames, nil
}
