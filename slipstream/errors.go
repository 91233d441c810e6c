package slipstream

import (
	"fmt"

	"github.com/katalvlaran/aerovlm"
)

var (
	// ErrBadPropeller indicates Radius <= 0, Thrust < 0, Velocity < 0 or a
	// non-finite propeller parameter.
	ErrBadPropeller = fmt.Errorf("slipstream: invalid propeller: %w", aerovlm.ErrInputDomain)

	// ErrBadFreestream indicates a non-positive or non-finite freestream
	// velocity or density.
	ErrBadFreestream = fmt.Errorf("slipstream: freestream velocity and density must be > 0: %w", aerovlm.ErrInputDomain)

	// ErrNilPanels indicates a nil PanelSet.
	ErrNilPanels = fmt.Errorf("slipstream: nil panel set: %w", aerovlm.ErrConfiguration)
)
