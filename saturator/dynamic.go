// SPDX-License-Identifier: EPL-2.0

package saturator

// DynamicKind selects the active variant of a Dynamic saturator.
type DynamicKind uint8

const (
	// DynamicLinear passes the signal through unchanged.
	DynamicLinear DynamicKind = iota
	// DynamicTanh applies the tanh function.
	DynamicTanh
	// DynamicAsinh applies the asinh function.
	DynamicAsinh
	// DynamicHardClipper hard-clips between -1 and 1.
	DynamicHardClipper
	// DynamicDiodeClipper applies the analytical diode clipper model.
	DynamicDiodeClipper
	// DynamicSoftClipper blends the analytical diode clipper model
	// with the dry signal.
	DynamicSoftClipper
)

// Dynamic is a run-time-switchable saturator over a closed set of
// variants. Dispatch is a plain switch so the hot path stays free of
// interface indirection and allocation.
type Dynamic struct {
	Kind DynamicKind
	// Model is the diode model used by the DiodeClipper and
	// SoftClipper variants.
	Model DiodeClipperModel
	// Amount is the wet amount of the SoftClipper variant.
	Amount float64
}

// NewDynamicDiodeClipper selects the analytical diode clipper variant
// with the given model.
func NewDynamicDiodeClipper(m DiodeClipperModel) Dynamic {
	return Dynamic{Kind: DynamicDiodeClipper, Model: m}
}

// NewDynamicSoftClipper selects the blended diode soft clip variant.
func NewDynamicSoftClipper(m DiodeClipperModel, amount float64) Dynamic {
	return Dynamic{Kind: DynamicSoftClipper, Model: m, Amount: amount}
}

func (d Dynamic) Saturate(x float64) float64 {
	switch d.Kind {
	case DynamicTanh:
		return Tanh{}.Saturate(x)
	case DynamicAsinh:
		return Asinh{}.Saturate(x)
	case DynamicHardClipper:
		return NewClipper().Saturate(x)
	case DynamicDiodeClipper:
		return d.Model.Saturate(x)
	case DynamicSoftClipper:
		return Blend{Amount: d.Amount, Inner: d.Model}.Saturate(x)
	default:
		return x
	}
}

func (Dynamic) UpdateState(x, y float64) {}

func (d Dynamic) SatDiff(x float64) float64 {
	switch d.Kind {
	case DynamicTanh:
		return Tanh{}.SatDiff(x)
	case DynamicAsinh:
		return Asinh{}.SatDiff(x)
	case DynamicHardClipper:
		return NewClipper().SatDiff(x)
	case DynamicDiodeClipper:
		return d.Model.SatDiff(x)
	case DynamicSoftClipper:
		return Blend{Amount: d.Amount, Inner: d.Model}.SatDiff(x)
	default:
		return 1
	}
}
