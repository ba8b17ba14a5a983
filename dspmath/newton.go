// SPDX-License-Identifier: EPL-2.0

package dspmath

import "math"

// DefaultMaxIter is the default iteration cap used throughout this
// module's Newton-Raphson solvers.
const DefaultMaxIter = 50

// RootEq is a scalar root equation solvable by Newton-Raphson: Eval
// returns F(x), JInv returns 1/F'(x) (or an approximation of it) at x.
// Both may legitimately be numerically degenerate (not-finite); callers
// treat that as "no further step possible" rather than panicking.
type RootEq interface {
	Eval(x float64) float64
	JInv(x float64) float64
}

// Step performs a single Newton-Raphson step: x - JInv(x)*Eval(x). It
// returns the new x and whether the step was finite (and therefore
// applied). If the step is not finite, x is returned unchanged and ok
// is false: a step that cannot make progress returns the input
// unchanged rather than propagating NaN into the audio path.
func Step(eq RootEq, x float64) (next float64, ok bool) {
	step := eq.JInv(x) * eq.Eval(x)
	if !isFinite(step) {
		return x, false
	}
	return x - step, true
}

// FixedSteps runs exactly n Newton-Raphson steps from x0 and returns the
// final x together with the RMS magnitude of the last applied step
// (0 if the last step could not be applied).
func FixedSteps(eq RootEq, x0 float64, n int) (x, lastStepRMS float64) {
	x = x0
	lastStepRMS = 0
	for i := 0; i < n; i++ {
		next, ok := Step(eq, x)
		if !ok {
			return x, 0
		}
		lastStepRMS = math.Abs(next - x)
		x = next
	}
	return x, lastStepRMS
}

// ToleranceSolve iterates Newton-Raphson until the step magnitude drops
// below tol or maxIter is reached, whichever comes first. It returns the
// solution and the iteration count actually used.
func ToleranceSolve(eq RootEq, x0, tol float64, maxIter int) (x float64, iters int) {
	x = x0
	for iters = 0; iters < maxIter; iters++ {
		next, ok := Step(eq, x)
		if !ok {
			return x, iters
		}
		d := math.Abs(next - x)
		x = next
		if d < tol {
			return x, iters + 1
		}
	}
	return x, iters
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
