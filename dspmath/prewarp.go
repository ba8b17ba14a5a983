// SPDX-License-Identifier: EPL-2.0

package dspmath

import "math"

// BilinearPrewarm maps the analog angular frequency wc onto the warped
// frequency of the bilinear transform at the given sample rate, so that
// a digital filter designed from an analog prototype lands its cutoff
// on the analog target.
func BilinearPrewarm(samplerate, wc float64) float64 {
	return 2 * samplerate * math.Tan(wc/(2*samplerate))
}

// BilinearPrewarmBounded prewarps wc like BilinearPrewarm up to fs*pi/2
// and keeps the result proportional to wc above that bound, so that
// sweeping the cutoff towards the prewarping singularity at fs*pi stays
// monotonic instead of blowing up.
func BilinearPrewarmBounded(samplerate, wc float64) float64 {
	wmax := samplerate * math.Pi / 2
	if wc < wmax {
		return BilinearPrewarm(samplerate, wc)
	}
	return wc * BilinearPrewarm(samplerate, wmax) / wmax
}
