package vlm

import (
	"fmt"
	"math"
)

// dynamicPressureTol is the relative tolerance between a supplied dynamic
// pressure and ½ρV².
const dynamicPressureTol = 1e-6

// FlowState is one freestream condition. AngleOfAttack is in radians.
// DynamicPressure 0 means ½ρV². Mach is carried for bookkeeping; the strip
// model is incompressible.
type FlowState struct {
	AngleOfAttack   float64
	Density         float64
	Velocity        float64
	DynamicPressure float64
	Mach            float64
}

// FromMach builds a FlowState at Mach·speedOfSound.
func FromMach(alpha, mach, density, speedOfSound float64) FlowState {
	return FlowState{
		AngleOfAttack: alpha,
		Density:       density,
		Velocity:      mach * speedOfSound,
		Mach:          mach,
	}
}

// Normalize validates fs and fills in the dynamic pressure.
//
// Errors: ErrAngleOfAttack, ErrDensity, ErrVelocity, ErrMach, ErrDynamicPressure.
func (fs FlowState) Normalize() (FlowState, error) {
	switch {
	case isNonFinite(fs.AngleOfAttack) || math.Abs(fs.AngleOfAttack) >= math.Pi/2:
		return FlowState{}, ErrAngleOfAttack
	case isNonFinite(fs.Density) || fs.Density <= 0:
		return FlowState{}, ErrDensity
	case isNonFinite(fs.Velocity) || fs.Velocity <= 0:
		return FlowState{}, ErrVelocity
	case isNonFinite(fs.Mach) || fs.Mach < 0:
		return FlowState{}, ErrMach
	}

	q := 0.5 * fs.Density * fs.Velocity * fs.Velocity
	if fs.DynamicPressure == 0 {
		fs.DynamicPressure = q
	} else if isNonFinite(fs.DynamicPressure) || math.Abs(fs.DynamicPressure-q) > dynamicPressureTol*q {
		return FlowState{}, fmt.Errorf("q=%g, ½ρV²=%g: %w", fs.DynamicPressure, q, ErrDynamicPressure)
	}

	return fs, nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
