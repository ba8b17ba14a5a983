// SPDX-License-Identifier: EPL-2.0

package saturator

import "github.com/ik5/vadsp/dspmath"

// CommonCollector is the memoryless nonlinearity of a BJT NPN
// transistor in common-collector (emitter follower) configuration.
// XBias and YBias are empirical values that recenter the signal before
// and after the smooth clamp against the supply rails.
type CommonCollector struct {
	Vcc   float64
	Vee   float64
	XBias float64
	YBias float64
}

// NewCommonCollector returns an emitter follower biased for a 9 V
// split supply.
func NewCommonCollector() CommonCollector {
	return CommonCollector{
		Vcc:   4.5,
		Vee:   -4.5,
		XBias: 0.77,
		YBias: -0.77,
	}
}

func (c CommonCollector) Saturate(x float64) float64 {
	return dspmath.SmoothClamp(0.1, x+c.XBias, c.Vee, c.Vcc) + c.YBias
}

func (CommonCollector) UpdateState(x, y float64) {}

func (c CommonCollector) SatDiff(x float64) float64 {
	return FiniteSatDiff(c, x)
}
