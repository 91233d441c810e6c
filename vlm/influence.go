package vlm

import (
	"math"

	"github.com/katalvlaran/aerovlm/matrix"
	"github.com/katalvlaran/aerovlm/wing"
)

// Tolerances of the x-alignment test in whav (absolute + relative to x2).
const (
	alignAbsTol = 1e-8
	alignRelTol = 1e-5
)

// whav is the downwash factor at (x1, y1) of a semi-infinite trailing leg
// starting at (x2, y2), including its share of the bound segment:
//
//	1/(y1−y2) · (1 + √((x1−x2)²+(y1−y2)²)/(x1−x2))
//
// When the control point is aligned with the leg in x the bound term
// vanishes and the limit 1/(y1−y2) is used.
func whav(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	if math.Abs(dx) <= alignAbsTol+alignRelTol*math.Abs(x2) {
		return 1 / dy
	}

	return 1 / dy * (1 + math.Hypot(dx, dy)/dx)
}

// Influence assembles the n×n influence matrix of ps.
//
// Implementation:
//   - Row i is control point (XC_i, YC_i); column j is horseshoe j with legs
//     at (XA_j, YA_j), (XA_j, YB_j) and their images at −YA_j, −YB_j:
//     A[i][j] = (whav(·,YA) − whav(·,YB) − whav(·,−YA) + whav(·,−YB)) / 4π.
//   - Rows are independent; values go through Dense.Set so a degenerate strip
//     (zero width) surfaces as matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Influence(ps *wing.PanelSet) (*matrix.Dense, error) {
	if ps == nil {
		return nil, ErrNilPanels
	}
	n := ps.N()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	const inv4Pi = 0.25 / math.Pi
	var (
		i, j   int
		xc, yc float64
		v      float64
	)
	for i = 0; i < n; i++ {
		xc, yc = ps.XC[i], ps.YC[i]
		for j = 0; j < n; j++ {
			v = (whav(xc, yc, ps.XA[j], ps.YA[j]) -
				whav(xc, yc, ps.XA[j], ps.YB[j]) -
				whav(xc, yc, ps.XA[j], -ps.YA[j]) +
				whav(xc, yc, ps.XA[j], -ps.YB[j])) * inv4Pi
			if err = a.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}
