package vlm

import (
	"fmt"

	"github.com/katalvlaran/aerovlm"
)

var (
	// ErrAngleOfAttack indicates |α| >= 90° or a non-finite angle.
	ErrAngleOfAttack = fmt.Errorf("vlm: angle of attack must be within (-90°, 90°): %w", aerovlm.ErrInputDomain)

	// ErrDensity indicates a non-positive or non-finite density.
	ErrDensity = fmt.Errorf("vlm: density must be > 0: %w", aerovlm.ErrInputDomain)

	// ErrVelocity indicates a non-positive or non-finite freestream velocity.
	ErrVelocity = fmt.Errorf("vlm: velocity must be > 0: %w", aerovlm.ErrInputDomain)

	// ErrMach indicates a negative or non-finite Mach number.
	ErrMach = fmt.Errorf("vlm: Mach must be >= 0: %w", aerovlm.ErrInputDomain)

	// ErrDynamicPressure indicates a dynamic pressure that disagrees with ½ρV².
	ErrDynamicPressure = fmt.Errorf("vlm: dynamic pressure inconsistent with density and velocity: %w", aerovlm.ErrInputDomain)

	// ErrNilPanels indicates a nil PanelSet passed to SolvePanels.
	ErrNilPanels = fmt.Errorf("vlm: nil panel set: %w", aerovlm.ErrConfiguration)
)

// numericalErrorf tags a matrix failure with the numerical error kind while
// keeping the matrix sentinel reachable through errors.Is.
func numericalErrorf(op string, err error) error {
	return fmt.Errorf("vlm: %s: %w: %w", op, aerovlm.ErrNumerical, err)
}
