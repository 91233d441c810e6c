// Package wing describes a single lifting surface and discretizes it into
// horseshoe-vortex strip panels.
//
// 🚀 What is here?
//
//   - Geometry: span, chords, quarter-chord sweep, taper, root/tip twist,
//     symmetry and orientation flags, reference area. NewGeometry validates and
//     normalizes it once; the result is a plain value that is safe to share.
//   - Segment: an optional ordered list of spanwise stations (fraction of the
//     half-span) carrying chord fraction, twist and local sweep.
//   - Discretize: turns Geometry (+ segments) and a panel count into a PanelSet
//     (span-station bounds, quarter-chord x, control point, chord, twist, width).
//
// ✨ Discretization rules
//
//   - Symmetric surfaces are discretized over half the span; the solver adds the
//     mirror image at −y. Non-symmetric surfaces use the full Span as the
//     discretized extent with the same mirror convention.
//   - Without segments, chord and twist vary linearly from root to tip and are
//     sampled at each panel midpoint.
//   - With segments, the discretizer runs two passes:
//     1. absolute boundary stations and the running quarter-chord offset are
//     computed, and every interior boundary is snapped onto its nearest
//     uniform panel edge (edges near a break become non-uniform);
//     2. every panel midpoint is binary-searched into its owning segment and
//     chord, twist and offset are interpolated inside that segment.
//
// ⚠️ Errors
//
// Every sentinel wraps aerovlm.ErrConfiguration, so callers can test either
// the precise cause (ErrNonPositiveSpan, ErrSegmentOrder, …) or the kind.
package wing
