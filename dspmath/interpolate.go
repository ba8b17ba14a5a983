// SPDX-License-Identifier: EPL-2.0

package dspmath

import "math"

// LinearInterpolate interpolates between a and b.
// t is the fractional position (0 <= t <= 1).
func LinearInterpolate(a, b, t float64) float64 {
	return a + t*(b-a)
}

// CubicInterpolate performs cubic interpolation.
// t is the fractional position between y1 and y2 (0 <= t <= 1);
// y0, y1, y2, y3 are four consecutive samples.
func CubicInterpolate(y0, y1, y2, y3, t float64) float64 {
	// Catmull-Rom spline interpolation
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*t*t*t + a1*t*t + a2*t + a3
}

// HermiteInterpolate performs 4-point, 3rd-order Hermite interpolation.
// Same tap layout as CubicInterpolate; its coefficients give the same
// Catmull-Rom polynomial, evaluated in Horner form.
func HermiteInterpolate(y0, y1, y2, y3, t float64) float64 {
	c0 := y1
	c1 := 0.5 * (y2 - y0)
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c3 := 0.5*(y3-y0) + 1.5*(y1-y2)

	return ((c3*t+c2)*t+c1)*t + c0
}

// InterpolateSlice resamples input into output, reading fractional
// positions with linear interpolation. Both slices must be non-empty.
func InterpolateSlice(output, input []float64) {
	rate := float64(len(input)) / float64(len(output))
	last := len(input) - 1
	for i := range output {
		pos := float64(i) * rate
		j := int(pos)
		if j >= last {
			output[i] = input[last]
			continue
		}
		output[i] = LinearInterpolate(input[j], input[j+1], pos-math.Floor(pos))
	}
}
