// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePCM16 writes mono float64 samples in [-1, 1] as a 16-bit PCM
// WAV at sampleRate. Samples outside the unit range are clamped before
// quantization.
func WritePCM16(w io.WriteSeeker, sampleRate int, samples []float64) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		buf.Data[i] = int(math.Round(s * 32767.0))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
