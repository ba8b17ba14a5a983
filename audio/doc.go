// SPDX-License-Identifier: EPL-2.0

// Package audio is the host-glue layer between decoded PCM streams and
// the real-time processing graph. It is explicitly outside the audio
// path's no-allocation contract: sources read from files, buffers
// grow, and everything here runs at setup time or on a host thread.
//
// # Source Interface
//
// The Source interface is how decoded material enters the module:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface; sources can be chained
// (e.g. through MonoMixer) before the material is handed to a
// processing chain.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float64, 4096)
//	n, err := mono.ReadSamples(buf)
//
// A mono downmix is the usual way to feed 1-in/1-out virtual-analog
// chains from arbitrary source material.
//
// # Bridging to the Processing Graph
//
// ReadAll drains a Source into a per-channel dsp.Buffer, which is the
// layout every block processor consumes:
//
//	buf, err := audio.ReadAll(audio.NewMonoMixer(src), 0)
//	proc.ProcessBlock(buf.Channels(), out.Channels())
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are float64 in the range [-1.0, 1.0], matching the scalar
// type of the processing packages, so decoded material flows into
// filters and saturators without conversion.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
