// SPDX-License-Identifier: EPL-2.0

package saturator

import "math"

// Antiderivative is a saturator that additionally exposes its raw
// function and its first antiderivative, making it usable with
// first-order antiderivative anti-aliasing.
type Antiderivative interface {
	Saturator
	// Evaluate is the raw function the antiderivative integrates. For
	// memoryless saturators this equals Saturate.
	Evaluate(x float64) float64
	// Antiderivative is the first antiderivative of Evaluate, with the
	// integration constant chosen for continuity across branches.
	Antiderivative(x float64) float64
}

// Antiderivative2 additionally exposes the second antiderivative, for
// second-order anti-aliasing.
type Antiderivative2 interface {
	Antiderivative
	Antiderivative2(x float64) float64
}

// logCosh computes ln(cosh(x)) without overflowing for large |x|.
func logCosh(x float64) float64 {
	ax := math.Abs(x)
	return ax + math.Log1p(math.Exp(-2*ax)) - math.Ln2
}

func (Tanh) Evaluate(x float64) float64       { return math.Tanh(x) }
func (Tanh) Antiderivative(x float64) float64 { return logCosh(x) }

func (Asinh) Evaluate(x float64) float64 { return math.Asinh(x) }

func (Asinh) Antiderivative(x float64) float64 {
	return x*math.Asinh(x) - math.Sqrt(x*x+1)
}

func (Asinh) Antiderivative2(x float64) float64 {
	x0 := math.Sqrt(x*x + 1)
	return (2*x*x-1)*math.Asinh(x)/4 - 3*x*x0/4
}

func (c Clipper) Evaluate(x float64) float64 { return c.Saturate(x) }

func (c Clipper) Antiderivative(x float64) float64 {
	switch {
	case x < c.Min:
		return c.Min*x - c.Min*c.Min/2
	case x > c.Max:
		return c.Max*x - c.Max*c.Max/2
	default:
		return x * x / 2
	}
}

func (c Clipper) Antiderivative2(x float64) float64 {
	switch {
	case x < c.Min:
		return c.Min*x*x/2 - c.Min*c.Min*x/2 + c.Min*c.Min*c.Min/6
	case x > c.Max:
		return c.Max*x*x/2 - c.Max*c.Max*x/2 + c.Max*c.Max*c.Max/6
	default:
		return x * x * x / 6
	}
}

// BlendAD is a Blend whose inner saturator has an antiderivative,
// extending the blend to the antiderivative itself.
type BlendAD struct {
	Amount float64
	Inner  Antiderivative
}

func (b BlendAD) Saturate(x float64) float64 {
	return x + b.Amount*(b.Inner.Saturate(x)-x)
}

func (b BlendAD) UpdateState(x, y float64) { b.Inner.UpdateState(x, y) }

func (b BlendAD) SatDiff(x float64) float64 {
	return 1 + b.Amount*(b.Inner.SatDiff(x)-1)
}

func (b BlendAD) Evaluate(x float64) float64 {
	return x + b.Amount*(b.Inner.Evaluate(x)-x)
}

func (b BlendAD) Antiderivative(x float64) float64 {
	return b.Amount*b.Inner.Antiderivative(x) + (1-b.Amount)*x*x/2
}

// Antiderivative2 requires the inner saturator to be an
// Antiderivative2; it panics otherwise. The constraint is structural,
// not dynamic: construct the blend from a second-order inner type when
// second-order anti-aliasing is wanted.
func (b BlendAD) Antiderivative2(x float64) float64 {
	inner := b.Inner.(Antiderivative2)
	return b.Amount*inner.Antiderivative2(x) + (1-b.Amount)*x*x*x/6
}

// DefaultADAAEpsilon is the minimum input difference below which the
// divided difference falls back to direct evaluation at the midpoint.
const DefaultADAAEpsilon = 1e-3

// ADAA1 wraps a saturator with first-order antiderivative
// anti-aliasing: the nonlinearity is replaced with the divided
// difference of its antiderivative over the current and previous
// input, suppressing the aliasing the raw map would fold back.
type ADAA1 struct {
	// Epsilon is the minimum input difference to use the divided
	// difference instead of evaluating the saturator directly.
	Epsilon float64
	// Inner saturator.
	Inner Antiderivative

	memory float64
}

// NewADAA1 wraps inner with the default epsilon.
func NewADAA1(inner Antiderivative) *ADAA1 {
	return &ADAA1{Epsilon: DefaultADAAEpsilon, Inner: inner}
}

// NextSampleImmutable computes the next output without committing the
// input to memory.
func (a *ADAA1) NextSampleImmutable(x float64) float64 {
	den := x - a.memory
	if math.Abs(den) < a.Epsilon {
		return a.Inner.Evaluate((x + a.memory) / 2)
	}
	return (a.Inner.Antiderivative(x) - a.Inner.Antiderivative(a.memory)) / den
}

// CommitSample stores the input as the one-sample memory.
func (a *ADAA1) CommitSample(x float64) { a.memory = x }

// NextSample computes the next output and commits the input.
func (a *ADAA1) NextSample(x float64) float64 {
	y := a.NextSampleImmutable(x)
	a.memory = x
	return y
}

func (a *ADAA1) Saturate(x float64) float64 { return a.NextSampleImmutable(x) }

func (a *ADAA1) UpdateState(x, y float64) {
	a.memory = x
	a.Inner.UpdateState(x, y)
}

func (a *ADAA1) SatDiff(x float64) float64 { return a.Inner.SatDiff(x) }

// Reset clears the one-sample memory.
func (a *ADAA1) Reset() { a.memory = 0 }

// ADAA2 wraps a saturator with second-order antiderivative
// anti-aliasing, using divided differences of the second
// antiderivative over three consecutive samples. It adds one sample of
// latency.
type ADAA2 struct {
	// Epsilon is the minimum input difference to use the divided
	// differences instead of evaluating the saturator directly.
	Epsilon float64
	// Inner saturator.
	Inner Antiderivative2

	memory [2]float64
}

// NewADAA2 wraps inner with the default epsilon.
func NewADAA2(inner Antiderivative2) *ADAA2 {
	return &ADAA2{Epsilon: DefaultADAAEpsilon, Inner: inner}
}

// NextSampleImmutable computes the next output without committing the
// input to memory.
func (a *ADAA2) NextSampleImmutable(x float64) float64 {
	x1, x2 := a.memory[0], a.memory[1]
	den1 := x - x1
	den2 := x1 - x2
	den3 := x - x2
	if math.Abs(den1) < a.Epsilon || math.Abs(den2) < a.Epsilon || math.Abs(den3) < a.Epsilon {
		return a.Inner.Evaluate((x + x1) / 2)
	}
	num1 := a.Inner.Antiderivative2(x) - a.Inner.Antiderivative2(x1)
	num2 := a.Inner.Antiderivative2(x1) - a.Inner.Antiderivative2(x2)
	return 2 * (num1/den1 - num2/den2) / den3
}

// CommitSample shifts the input into the two-sample memory.
func (a *ADAA2) CommitSample(x float64) {
	a.memory[1] = a.memory[0]
	a.memory[0] = x
}

// NextSample computes the next output and commits the input.
func (a *ADAA2) NextSample(x float64) float64 {
	y := a.NextSampleImmutable(x)
	a.CommitSample(x)
	return y
}

func (a *ADAA2) Saturate(x float64) float64 { return a.NextSampleImmutable(x) }

func (a *ADAA2) UpdateState(x, y float64) {
	a.CommitSample(x)
	a.Inner.UpdateState(x, y)
}

func (a *ADAA2) SatDiff(x float64) float64 { return a.Inner.SatDiff(x) }

// Latency of the second-order wrapper.
func (a *ADAA2) Latency() int { return 1 }

// Reset clears the two-sample memory.
func (a *ADAA2) Reset() { a.memory = [2]float64{} }
