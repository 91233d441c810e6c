package slipstream

import (
	"fmt"
	"math"
)

// MixingRate is the shear-layer spreading rate κ used for the mixing length.
const MixingRate = 0.18

// Propeller describes one slipstream source. X is the axial station of the
// disk, Y its spanwise origin. Velocity is the inflow at the disk; 0 means
// "use the freestream".
type Propeller struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Thrust   float64 `json:"thrust"`
	Velocity float64 `json:"velocity"`
}

// Validate checks the propeller's physical range.
func (p Propeller) Validate() error {
	for _, v := range []float64{p.X, p.Y, p.Radius, p.Thrust, p.Velocity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite parameter: %w", ErrBadPropeller)
		}
	}
	switch {
	case p.Radius <= 0:
		return fmt.Errorf("radius %g: %w", p.Radius, ErrBadPropeller)
	case p.Thrust < 0:
		return fmt.Errorf("thrust %g: %w", p.Thrust, ErrBadPropeller)
	case p.Velocity < 0:
		return fmt.Errorf("velocity %g: %w", p.Velocity, ErrBadPropeller)
	}

	return nil
}

// Jet holds the closed-form constants of one propeller's slipstream.
type Jet struct {
	v      float64 // inflow velocity
	radius float64
	dv     float64 // far-wake increment ΔV
	mixLen float64 // ℓ
	dvMix  float64 // ΔV(ℓ)
	rMix   float64 // R_j(ℓ)
}

// NewJet derives the jet constants for p in a freestream of velocity vInf and
// density rho.
//
//	ΔV = −V + √(V² + 2T/(ρπR²))
//	R0 = R·√((V+ΔV/2)/(V+ΔV))
//	ℓ  = R0·(2V+ΔV)/(κ·ΔV)
//
// A zero-thrust propeller yields a jet with no increment anywhere.
func NewJet(p Propeller, vInf, rho float64) (Jet, error) {
	if err := p.Validate(); err != nil {
		return Jet{}, err
	}
	if !(vInf > 0) || !(rho > 0) || math.IsInf(vInf, 0) || math.IsInf(rho, 0) {
		return Jet{}, ErrBadFreestream
	}

	v := p.Velocity
	if v == 0 {
		v = vInf
	}
	j := Jet{v: v, radius: p.Radius}
	j.dv = -v + math.Sqrt(v*v+2*p.Thrust/(rho*math.Pi*p.Radius*p.Radius))
	if j.dv <= 0 {
		j.dv = 0

		return j, nil
	}

	r0 := p.Radius * math.Sqrt((v+j.dv/2)/(v+j.dv))
	j.mixLen = r0 * (2*v + j.dv) / (MixingRate * j.dv)
	j.dvMix = j.axialIncrement(j.mixLen)
	j.rMix = j.jetRadius(j.dvMix)

	return j, nil
}

// FarWakeIncrement returns ΔV.
func (j Jet) FarWakeIncrement() float64 { return j.dv }

// MixingLength returns ℓ (0 for a zero-thrust jet).
func (j Jet) MixingLength() float64 { return j.mixLen }

// axialIncrement is the centreline development ΔV(x) = ½ΔV(1 + x/√(x²+R²)).
func (j Jet) axialIncrement(x float64) float64 {
	return 0.5 * j.dv * (1 + x/math.Hypot(x, j.radius))
}

// jetRadius is the stream-tube radius carrying the local increment dvx.
func (j Jet) jetRadius(dvx float64) float64 {
	return j.radius * math.Sqrt((j.v+j.dv/2)/(j.v+dvx))
}

// Increment returns the axial velocity increment at distance x downstream of
// the disk and radial distance r from its axis. Points ahead of the disk
// (x < 0) get nothing.
func (j Jet) Increment(x, r float64) float64 {
	if j.dv == 0 || x < 0 {
		return 0
	}
	r = math.Abs(r)

	switch {
	case x <= j.mixLen:
		dvx := j.axialIncrement(x)
		rj := j.jetRadius(dvx)
		w := 2 * rj * x / j.mixLen
		rCore, rOut := rj-w/2, rj+w/2
		switch {
		case r <= rCore:
			return dvx
		case r < rOut:
			return dvx * 0.5 * (1 + math.Cos(math.Pi*(r-rCore)/(rOut-rCore)))
		default:
			return 0
		}

	case x <= 2*j.mixLen:
		b := 2 * j.rMix * x / j.mixLen
		if r >= b {
			return 0
		}
		return j.dvMix * math.Sqrt(j.mixLen/x) * 0.5 * (1 + math.Cos(math.Pi*r/b))

	default:
		b := 2 * j.rMix * x / j.mixLen
		if r >= b {
			return 0
		}
		s := 1 - math.Pow(r/b, 1.5)
		return j.dvMix * math.Sqrt2 * j.mixLen / x * s * s
	}
}
