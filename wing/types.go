package wing

// Geometry is the macro description of one lifting surface.
// Angles are in radians, lengths in metres, areas in m².
//
// Span is the full tip-to-tip span of a symmetric surface. For a
// non-symmetric surface it is the extent that gets discretized.
type Geometry struct {
	Span          float64
	RootChord     float64
	TipChord      float64
	Sweep         float64 // quarter-chord sweep
	Taper         float64 // TipChord / RootChord
	RootTwist     float64
	TipTwist      float64
	Symmetric     bool
	Vertical      bool
	ReferenceArea float64
}

// SupportsLift reports whether the strip model covers this surface.
// Vertical fins are not modeled.
func (g Geometry) SupportsLift() bool { return !g.Vertical }

// HalfSpan returns the discretized extent: Span/2 for symmetric surfaces,
// Span otherwise.
func (g Geometry) HalfSpan() float64 {
	if g.Symmetric {
		return g.Span / 2
	}

	return g.Span
}

// AspectRatio returns Span² / ReferenceArea.
func (g Geometry) AspectRatio() float64 {
	return g.Span * g.Span / g.ReferenceArea
}

// Segment is one spanwise station of a segmented surface. The surface
// between station k and k+1 takes its chord and twist by linear
// interpolation and its quarter-chord sweep from station k.
type Segment struct {
	SpanFraction  float64 // of the half-span, 0 at root, 1 at tip
	ChordFraction float64 // of the root chord
	Twist         float64
	Sweep         float64 // quarter-chord sweep outboard of this station
}

// PanelSet holds the per-panel arrays produced by Discretize. Index i is the
// i-th strip from the root outwards; every slice has length N().
type PanelSet struct {
	YA    []float64 // inboard edge of the bound vortex
	YB    []float64 // outboard edge of the bound vortex
	XA    []float64 // quarter-chord x (bound vortex line)
	XC    []float64 // three-quarter-chord x (control point)
	YC    []float64 // control point y (panel midpoint)
	Chord []float64
	Twist []float64
	Width []float64 // YB - YA

	HalfSpan  float64
	Symmetric bool
}

// N returns the panel count.
func (p *PanelSet) N() int { return len(p.YC) }

// Mirror returns the reflection y → −y of the panel set. Bound-vortex
// endpoints swap so every panel keeps YA < YB; panel order is unchanged.
func (p *PanelSet) Mirror() *PanelSet {
	n := p.N()
	out := newPanelSet(n, p.HalfSpan, p.Symmetric)
	for i := 0; i < n; i++ {
		out.YA[i] = -p.YB[i]
		out.YB[i] = -p.YA[i]
		out.YC[i] = -p.YC[i]
		out.XA[i] = p.XA[i]
		out.XC[i] = p.XC[i]
		out.Chord[i] = p.Chord[i]
		out.Twist[i] = p.Twist[i]
		out.Width[i] = p.Width[i]
	}

	return out
}

// newPanelSet allocates every per-panel slice with length n.
func newPanelSet(n int, half float64, symmetric bool) *PanelSet {
	return &PanelSet{
		YA:        make([]float64, n),
		YB:        make([]float64, n),
		XA:        make([]float64, n),
		XC:        make([]float64, n),
		YC:        make([]float64, n),
		Chord:     make([]float64, n),
		Twist:     make([]float64, n),
		Width:     make([]float64, n),
		HalfSpan:  half,
		Symmetric: symmetric,
	}
}
