// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source float64 samples.
//
// This package uses github.com/hajimehoshi/go-mp3 for the actual
// decoding; output is stereo interleaved and normalized to [-1, 1].
package mp3
