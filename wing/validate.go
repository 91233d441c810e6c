// Package wing - validation utilities shared by NewGeometry and Discretize.
//
// Side-effect free helpers; no logging, no panics on user input, only the
// sentinel errors from errors.go.
package wing

import (
	"fmt"
	"math"
)

// NewGeometry validates g and returns its normalized copy.
//
// Normalization:
//   - TipChord == 0 and Taper > 0 ⇒ TipChord = Taper·RootChord.
//   - Otherwise Taper is recomputed as TipChord/RootChord (the chord wins
//     when both are given).
//
// Errors: ErrNonFinite, ErrNonPositiveSpan, ErrNonPositiveChord,
// ErrNonPositiveArea, ErrSweepRange.
func NewGeometry(g Geometry) (Geometry, error) {
	for _, v := range []float64{g.Span, g.RootChord, g.TipChord, g.Sweep, g.Taper, g.RootTwist, g.TipTwist, g.ReferenceArea} {
		if isNonFinite(v) {
			return Geometry{}, ErrNonFinite
		}
	}
	if g.Span <= 0 {
		return Geometry{}, ErrNonPositiveSpan
	}
	if g.RootChord <= 0 || g.TipChord < 0 || g.Taper < 0 {
		return Geometry{}, ErrNonPositiveChord
	}
	if g.ReferenceArea <= 0 {
		return Geometry{}, ErrNonPositiveArea
	}
	if math.Abs(g.Sweep) >= math.Pi/2 {
		return Geometry{}, ErrSweepRange
	}

	if g.TipChord == 0 && g.Taper > 0 {
		g.TipChord = g.Taper * g.RootChord
	} else {
		g.Taper = g.TipChord / g.RootChord
	}

	return g, nil
}

// ValidateSegments checks an ordered segment list. An empty list is valid
// (uniform taper/twist). Any non-empty list needs at least two stations,
// the first at 0, strictly increasing fractions, and the last at 1.
//
// Complexity: O(len(segs)).
func ValidateSegments(segs []Segment) error {
	if len(segs) == 0 {
		return nil
	}
	if len(segs) < 2 {
		return fmt.Errorf("need root and tip stations, got %d: %w", len(segs), ErrSegmentOrder)
	}
	for k, s := range segs {
		if isNonFinite(s.SpanFraction) || isNonFinite(s.ChordFraction) ||
			isNonFinite(s.Twist) || isNonFinite(s.Sweep) {
			return fmt.Errorf("segment %d: %w", k, ErrNonFinite)
		}
		if s.ChordFraction < 0 {
			return fmt.Errorf("segment %d: %w", k, ErrSegmentChord)
		}
		if math.Abs(s.Sweep) >= math.Pi/2 {
			return fmt.Errorf("segment %d: %w", k, ErrSweepRange)
		}
		if k > 0 && s.SpanFraction <= segs[k-1].SpanFraction {
			return fmt.Errorf("segment %d: fraction %g after %g: %w", k, s.SpanFraction, segs[k-1].SpanFraction, ErrSegmentOrder)
		}
	}
	if segs[0].SpanFraction != 0 {
		return fmt.Errorf("first fraction %g: %w", segs[0].SpanFraction, ErrSegmentOrder)
	}
	if last := segs[len(segs)-1].SpanFraction; last != 1 {
		return fmt.Errorf("last fraction %g: %w", last, ErrSegmentOrder)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
