package sweep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aerovlm"
)

var (
	// ErrEmptyGrid indicates a grid without angles or Mach numbers.
	ErrEmptyGrid = fmt.Errorf("sweep: grid needs at least one angle and one Mach number: %w", aerovlm.ErrConfiguration)

	// ErrBadAtmosphere indicates a non-positive density or speed of sound.
	ErrBadAtmosphere = fmt.Errorf("sweep: density and speed of sound must be > 0: %w", aerovlm.ErrInputDomain)

	// ErrMalformedTable indicates a table row that does not hold four numbers.
	ErrMalformedTable = errors.New("sweep: malformed table")
)
