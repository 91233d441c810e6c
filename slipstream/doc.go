// Package slipstream models the axial velocity increment a propeller jet adds
// to the wing strips behind it.
//
// Each propeller is treated as an actuator disk. Momentum theory gives the
// far-wake increment ΔV and the contracted jet radius; a turbulent mixing
// length ℓ (shear-layer spreading rate κ = 0.18) splits the jet into three
// regions measured downstream of the disk:
//
//	x <= ℓ        near field: potential core + cosine mixing layer
//	ℓ < x <= 2ℓ   transition: cosine profile, centreline ∝ (ℓ/x)^½
//	x > 2ℓ        far field: (1-(r/b)^1.5)² profile, centreline ∝ ℓ/x
//
// Increments from several propellers add. Compute returns the resulting
// per-panel velocity and dynamic pressure; with no propellers the field is
// the uniform freestream.
package slipstream
