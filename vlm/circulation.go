package vlm

import (
	"math"

	"github.com/katalvlaran/aerovlm/matrix"
	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/wing"
)

// rightHandSide returns b_i = (V_i/V∞)·sin(twist_i + α).
func rightHandSide(ps *wing.PanelSet, f *slipstream.Field, vInf, alpha float64) []float64 {
	b := make([]float64, ps.N())
	for i := range b {
		b[i] = f.Velocity[i] / vInf * math.Sin(ps.Twist[i]+alpha)
	}

	return b
}

// circulation factorizes a and solves a·Γ = b. The pivot ratio of the
// factorization is returned for diagnostics.
func circulation(a *matrix.Dense, b []float64, conditionLimit float64) ([]float64, float64, error) {
	lu, err := matrix.LU(a, matrix.WithConditionLimit(conditionLimit))
	if err != nil {
		return nil, 0, err
	}
	gamma, err := lu.Solve(b)
	if err != nil {
		return nil, 0, err
	}

	return gamma, lu.PivotRatio(), nil
}
