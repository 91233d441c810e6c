package wing

import (
	"fmt"

	"github.com/katalvlaran/aerovlm"
)

// Sentinel errors. All of them are configuration errors.
var (
	// ErrNonPositiveSpan indicates Span <= 0.
	ErrNonPositiveSpan = fmt.Errorf("wing: span must be > 0: %w", aerovlm.ErrConfiguration)

	// ErrNonPositiveChord indicates RootChord <= 0 or a negative TipChord.
	ErrNonPositiveChord = fmt.Errorf("wing: root chord must be > 0 and tip chord >= 0: %w", aerovlm.ErrConfiguration)

	// ErrNonPositiveArea indicates ReferenceArea <= 0.
	ErrNonPositiveArea = fmt.Errorf("wing: reference area must be > 0: %w", aerovlm.ErrConfiguration)

	// ErrSweepRange indicates |Sweep| >= 90°.
	ErrSweepRange = fmt.Errorf("wing: sweep must be within (-90°, 90°): %w", aerovlm.ErrConfiguration)

	// ErrNonFinite indicates a NaN or ±Inf geometric parameter.
	ErrNonFinite = fmt.Errorf("wing: parameters must be finite: %w", aerovlm.ErrConfiguration)

	// ErrPanelCount indicates a panel count <= 0.
	ErrPanelCount = fmt.Errorf("wing: panel count must be > 0: %w", aerovlm.ErrConfiguration)

	// ErrSegmentOrder indicates span fractions that do not start at 0, do not
	// increase strictly, or do not end at 1.
	ErrSegmentOrder = fmt.Errorf("wing: segment span fractions must run strictly from 0 to 1: %w", aerovlm.ErrConfiguration)

	// ErrSegmentChord indicates a negative segment chord fraction.
	ErrSegmentChord = fmt.Errorf("wing: segment chord fraction must be >= 0: %w", aerovlm.ErrConfiguration)

	// ErrSegmentUnresolved indicates that a segment break cannot be placed on
	// its own interior panel edge: the panel count is too coarse for the
	// segment layout.
	ErrSegmentUnresolved = fmt.Errorf("wing: panel count too coarse for segment layout: %w", aerovlm.ErrConfiguration)
)
