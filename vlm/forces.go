package vlm

import (
	"math"

	"github.com/katalvlaran/aerovlm/matrix"
	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/wing"
)

// integrate turns circulation into strip and total forces.
//
// Implementation:
//   - Stage 1: induced velocity v = Aᵀ·Γ / 4π.
//   - Stage 2: per strip
//     Lfi = −Γ(sin α − v), Lfk = Γ cos α,
//     Lft = −Lfi sin α + Lfk cos α, Dg = Lfi cos α + Lfk sin α,
//     L = 2q∞·(V/V∞)·W·Lft, D = 2q∞·(V/V∞)·W·Dg.
//   - Stage 3: CL = 2ΣL/(q∞S), CD = 2ΣD/(q∞S); totals are 2ΣL, 2ΣD.
//
// Complexity:
//   - Time O(n²), Space O(n).
func integrate(ps *wing.PanelSet, a *matrix.Dense, gamma []float64, f *slipstream.Field, fs FlowState, refArea float64) (*Result, error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	v, err := matrix.MatVec(at, gamma)
	if err != nil {
		return nil, err
	}

	n := ps.N()
	sinA, cosA := math.Sincos(fs.AngleOfAttack)
	qInf := fs.DynamicPressure
	res := &Result{LiftModeled: true, Panels: make([]Station, n)}

	const inv4Pi = 0.25 / math.Pi
	var (
		lfi, lfk, lft, dg, scale float64
		sumL, sumD               float64
	)
	for i := 0; i < n; i++ {
		v[i] *= inv4Pi
		lfi = -gamma[i] * (sinA - v[i])
		lfk = gamma[i] * cosA
		lft = -lfi*sinA + lfk*cosA
		dg = lfi*cosA + lfk*sinA

		scale = 2 * qInf * f.Velocity[i] / fs.Velocity * ps.Width[i]
		st := Station{
			Y:               ps.YC[i],
			Width:           ps.Width[i],
			Chord:           ps.Chord[i],
			Twist:           ps.Twist[i],
			Gamma:           gamma[i],
			InducedVelocity: v[i],
			Velocity:        f.Velocity[i],
			DynamicPressure: f.DynamicPressure[i],
			Lift:            scale * lft,
			Drag:            scale * dg,
		}
		if ps.Chord[i] > 0 {
			st.SectionCl = st.Lift / (f.DynamicPressure[i] * ps.Chord[i] * ps.Width[i])
		}
		res.Panels[i] = st
		sumL += st.Lift
		sumD += st.Drag
	}

	res.Lift = 2 * sumL
	res.Drag = 2 * sumD
	res.CL = res.Lift / (qInf * refArea)
	res.CD = res.Drag / (qInf * refArea)

	return res, nil
}
