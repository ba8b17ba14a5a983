// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Source float64
// samples.
//
// This package uses github.com/jfreymuth/oggvorbis for the actual
// decoding; the decoder's float32 output is widened to the module's
// float64 domain.
package vorbis
