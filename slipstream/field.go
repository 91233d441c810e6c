package slipstream

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aerovlm/wing"
)

// Field is the per-panel local flow seen by the circulation solve.
type Field struct {
	Velocity        []float64
	DynamicPressure []float64
}

// Compute builds the local velocity field over ps for a freestream of
// velocity vInf and density rho, perturbed by props.
//
// Implementation:
//   - Stage 1: validate the freestream and build one Jet per propeller.
//   - Stage 2: for every panel, x = XA − X (quarter-chord behind the disk)
//     and r = |YC − Y|; symmetric surfaces also see the mirrored propeller
//     at −Y when Y > 0. Increments add.
//   - Stage 3: V_i = vInf + ΣΔV, q_i = ½ρV_i².
//
// With no propellers every V_i is exactly vInf.
//
// Errors:
//   - ErrNilPanels, ErrBadFreestream, ErrBadPropeller (index-tagged).
//
// Complexity:
//   - Time O(n·p), Space O(n).
func Compute(ps *wing.PanelSet, vInf, rho float64, props []Propeller) (*Field, error) {
	if ps == nil {
		return nil, ErrNilPanels
	}
	if !(vInf > 0) || !(rho > 0) || math.IsInf(vInf, 0) || math.IsInf(rho, 0) {
		return nil, ErrBadFreestream
	}

	jets := make([]Jet, len(props))
	var err error
	for k, p := range props {
		if jets[k], err = NewJet(p, vInf, rho); err != nil {
			return nil, fmt.Errorf("propeller %d: %w", k, err)
		}
	}

	n := ps.N()
	f := &Field{
		Velocity:        make([]float64, n),
		DynamicPressure: make([]float64, n),
	}
	var x, inc float64
	for i := 0; i < n; i++ {
		inc = 0
		for k, p := range props {
			x = ps.XA[i] - p.X
			inc += jets[k].Increment(x, ps.YC[i]-p.Y)
			if ps.Symmetric && p.Y > 0 {
				inc += jets[k].Increment(x, ps.YC[i]+p.Y)
			}
		}
		f.Velocity[i] = vInf + inc
		f.DynamicPressure[i] = 0.5 * rho * f.Velocity[i] * f.Velocity[i]
	}

	return f, nil
}
