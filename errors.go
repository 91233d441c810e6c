package aerovlm

import "errors"

// Error kinds shared by every subpackage. Package-level sentinels wrap exactly
// one of these, so callers can match either the precise cause or its kind:
//
//	errors.Is(err, wing.ErrNonPositiveSpan)   // precise
//	errors.Is(err, aerovlm.ErrConfiguration)  // kind
var (
	// ErrConfiguration marks malformed wing/segment geometry or solver setup
	// (non-positive span or chord, bad segment ordering, panel count <= 0).
	// Raised before any numeric work starts.
	ErrConfiguration = errors.New("aerovlm: configuration error")

	// ErrNumerical marks a singular or ill-conditioned influence matrix, or a
	// non-finite value coming out of the linear solve.
	ErrNumerical = errors.New("aerovlm: numerical error")

	// ErrInputDomain marks flow or propeller parameters outside their physical
	// range (e.g. negative Mach, non-positive density).
	ErrInputDomain = errors.New("aerovlm: input outside physical domain")

	// ErrLiftNotModeled is returned for surfaces the strip model does not
	// cover (vertical fins). It is deliberately distinct from a zero-lift result.
	ErrLiftNotModeled = errors.New("aerovlm: lift not modeled for this surface")
)
