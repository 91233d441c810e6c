package wing

import (
	"fmt"
	"math"
	"sort"
)

// Fractions of the local chord at which the bound vortex and the control
// point sit (classical Weissinger ¼-¾ rule).
const (
	quarterChord      = 0.25
	threeQuarterChord = 0.75
)

// Discretize converts a surface into n horseshoe-vortex strip panels over
// its discretized extent (Geometry.HalfSpan).
//
// Implementation:
//   - Stage 1: validate n, normalize g (NewGeometry), validate segs.
//   - Stage 2: place n+1 uniform edges y_k = k·half/n.
//   - Stage 3a (no segments): chord and twist interpolated root→tip at each
//     panel midpoint y_m; quarter-chord offset y_m·tan(Sweep).
//   - Stage 3b (segments): see discretizeSegments.
//   - Stage 4: XA = offset + ¼c, XC = offset + ¾c, YC = y_m, Width = YB−YA.
//
// Errors:
//   - ErrPanelCount, every NewGeometry / ValidateSegments sentinel,
//     ErrSegmentUnresolved.
//
// Complexity:
//   - Time O(n + m·log m) for m segments, Space O(n).
func Discretize(g Geometry, segs []Segment, n int) (*PanelSet, error) {
	if n <= 0 {
		return nil, ErrPanelCount
	}
	g, err := NewGeometry(g)
	if err != nil {
		return nil, err
	}
	if err = ValidateSegments(segs); err != nil {
		return nil, err
	}

	half := g.HalfSpan()
	edges := uniformEdges(half, n)
	ps := newPanelSet(n, half, g.Symmetric)

	if len(segs) == 0 {
		discretizeUniform(g, edges, ps)

		return ps, nil
	}
	if err = discretizeSegments(g, segs, edges, ps); err != nil {
		return nil, err
	}

	return ps, nil
}

// uniformEdges returns n+1 evenly spaced stations on [0, half]; the last one
// is exactly half.
func uniformEdges(half float64, n int) []float64 {
	edges := make([]float64, n+1)
	dy := half / float64(n)
	for k := 0; k < n; k++ {
		edges[k] = float64(k) * dy
	}
	edges[n] = half

	return edges
}

// discretizeUniform fills ps for a straight-tapered, linearly twisted surface.
func discretizeUniform(g Geometry, edges []float64, ps *PanelSet) {
	var (
		ym, eta, chord, twist float64
		tanSweep              = math.Tan(g.Sweep)
	)
	for i := 0; i < ps.N(); i++ {
		ym = 0.5 * (edges[i] + edges[i+1])
		eta = ym / ps.HalfSpan
		chord = g.RootChord - (g.RootChord-g.TipChord)*eta
		twist = g.RootTwist + (g.TipTwist-g.RootTwist)*eta
		setPanel(ps, i, edges[i], edges[i+1], ym*tanSweep, chord, twist)
	}
}

// discretizeSegments fills ps for a segmented surface in two passes.
//
// Pass 1: boundary stations b_k = SpanFraction_k·half and the running
// quarter-chord offset X_{k+1} = X_k + (b_{k+1}−b_k)·tan(Sweep_k). Each
// interior b_k replaces its nearest uniform edge. Root and tip edges are
// fixed and every edge takes at most one boundary; otherwise the panel
// count cannot resolve the layout.
//
// Pass 2: each panel midpoint is binary-searched into its segment k
// (b_k <= y_m < b_{k+1}); chord and twist interpolate linearly between
// stations k and k+1 and the offset continues from X_k with Sweep_k.
func discretizeSegments(g Geometry, segs []Segment, edges []float64, ps *PanelSet) error {
	var (
		m     = len(segs)
		n     = ps.N()
		half  = ps.HalfSpan
		dy    = half / float64(n)
		b     = make([]float64, m)
		xOff  = make([]float64, m)
		taken = make([]bool, n+1)
		k     int
	)

	// Pass 1.
	for k = 0; k < m; k++ {
		b[k] = segs[k].SpanFraction * half
	}
	b[m-1] = half
	for k = 0; k < m-1; k++ {
		xOff[k+1] = xOff[k] + (b[k+1]-b[k])*math.Tan(segs[k].Sweep)
	}
	taken[0], taken[n] = true, true
	var idx int
	for k = 1; k < m-1; k++ {
		idx = int(math.Round(b[k] / dy))
		if idx <= 0 || idx >= n || taken[idx] {
			return fmt.Errorf("segment %d at y=%g with %d panels: %w", k, b[k], n, ErrSegmentUnresolved)
		}
		taken[idx] = true
		edges[idx] = b[k]
	}

	// Pass 2.
	var ym, t, chordFrac, twist float64
	for i := 0; i < n; i++ {
		ym = 0.5 * (edges[i] + edges[i+1])
		k = owningSegment(b, ym)
		t = (ym - b[k]) / (b[k+1] - b[k])
		chordFrac = segs[k].ChordFraction + (segs[k+1].ChordFraction-segs[k].ChordFraction)*t
		twist = segs[k].Twist + (segs[k+1].Twist-segs[k].Twist)*t
		setPanel(ps, i, edges[i], edges[i+1],
			xOff[k]+(ym-b[k])*math.Tan(segs[k].Sweep),
			g.RootChord*chordFrac, twist)
	}

	return nil
}

// owningSegment returns k with b[k] <= y < b[k+1], clamped to [0, len(b)-2].
func owningSegment(b []float64, y float64) int {
	k := sort.SearchFloat64s(b, y) - 1
	if k < 0 {
		return 0
	}
	if k > len(b)-2 {
		return len(b) - 2
	}

	return k
}

// setPanel writes one strip; xOff is the quarter-chord x at the midpoint.
func setPanel(ps *PanelSet, i int, ya, yb, xOff, chord, twist float64) {
	ps.YA[i] = ya
	ps.YB[i] = yb
	ps.YC[i] = 0.5 * (ya + yb)
	ps.Width[i] = yb - ya
	ps.XA[i] = xOff + quarterChord*chord
	ps.XC[i] = xOff + threeQuarterChord*chord
	ps.Chord[i] = chord
	ps.Twist[i] = twist
}
