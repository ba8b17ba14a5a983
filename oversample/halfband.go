// SPDX-License-Identifier: EPL-2.0

package oversample

// allpassSection is a second-order allpass y[n] = x[n-2] + a*(x[n] -
// y[n-2]), the polyphase building block of the half-band filter.
type allpassSection struct {
	a      float64
	x1, x2 float64
	y1, y2 float64
}

func (s *allpassSection) process(x float64) float64 {
	y := s.x2 + s.a*(x-s.y2)
	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y
	return y
}

func (s *allpassSection) reset() {
	s.x1, s.x2, s.y1, s.y2 = 0, 0, 0, 0
}

// HalfbandFilter is a polyphase IIR half-band lowpass built from two
// cascades of allpass sections, one of them delayed by one sample. Fed
// at the doubled rate it attenuates everything above a quarter of that
// rate, which is what the up- and downsampling stages need.
type HalfbandFilter struct {
	chainA [6]allpassSection
	chainB [6]allpassSection
	oldOut float64
}

// NewSteepHalfband returns the order-12 "steep" half-band filter: a
// narrow transition band paid for with more phase rotation. The
// section coefficients are the classic polyphase half-band tables.
func NewSteepHalfband() *HalfbandFilter {
	a := [6]float64{
		0.036681502163648017,
		0.2746317593794541,
		0.56109896978791948,
		0.76974183386322703,
		0.89226081800387902,
		0.96209454837808417,
	}
	b := [6]float64{
		0.13654762463195794,
		0.42313861743656711,
		0.67754004997416184,
		0.83988962484963803,
		0.93188636779777398,
		0.98078444709904417,
	}
	f := &HalfbandFilter{}
	for i := range f.chainA {
		f.chainA[i].a = a[i]
		f.chainB[i].a = b[i]
	}
	return f
}

// Process filters one sample.
func (f *HalfbandFilter) Process(x float64) float64 {
	ax := x
	for i := range f.chainA {
		ax = f.chainA[i].process(ax)
	}
	out := (ax + f.oldOut) * 0.5

	bx := x
	for i := range f.chainB {
		bx = f.chainB[i].process(bx)
	}
	f.oldOut = bx

	return out
}

// Latency reports the approximate group delay in samples.
func (f *HalfbandFilter) Latency() int { return len(f.chainA) }

// Reset clears all section states.
func (f *HalfbandFilter) Reset() {
	for i := range f.chainA {
		f.chainA[i].reset()
		f.chainB[i].reset()
	}
	f.oldOut = 0
}
