// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes 16-bit PCM WAV files as
// audio.Source streams and float64 sample slices.
//
// It uses the github.com/go-audio library for container handling; the
// decode side normalizes integer PCM into the module's [-1, 1]
// float64 domain, and WritePCM16 quantizes processed output back to
// 16-bit PCM.
package wav
