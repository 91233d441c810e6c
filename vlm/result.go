package vlm

// Station is the spanwise state of one strip. Forces are in newtons for the
// strip itself (one half of a mirrored pair).
type Station struct {
	Y               float64 // control point
	Width           float64
	Chord           float64
	Twist           float64
	Gamma           float64 // non-dimensional circulation
	InducedVelocity float64 // v = (AᵀΓ)_i / 4π
	Velocity        float64 // local, including slipstream
	DynamicPressure float64
	Lift            float64
	Drag            float64
	SectionCl       float64
}

// Result is the outcome of one solve. Lift and Drag are full-surface totals
// (both halves). LiftModeled is false only for the zero result produced for
// vertical surfaces under WithVerticalZeroLift.
type Result struct {
	CL, CD      float64
	Lift, Drag  float64
	LiftModeled bool
	Panels      []Station
}

// SpanwiseLift returns the per-strip lift in panel order.
func (r *Result) SpanwiseLift() []float64 {
	out := make([]float64, len(r.Panels))
	for i := range r.Panels {
		out[i] = r.Panels[i].Lift
	}

	return out
}

// SpanwiseDrag returns the per-strip drag in panel order.
func (r *Result) SpanwiseDrag() []float64 {
	out := make([]float64, len(r.Panels))
	for i := range r.Panels {
		out[i] = r.Panels[i].Drag
	}

	return out
}
