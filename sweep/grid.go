package sweep

import (
	"math"

	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/vlm"
	"github.com/katalvlaran/aerovlm/wing"
)

// Standard sea-level atmosphere used by DefaultGrid.
const (
	SeaLevelDensity      = 1.225  // kg/m³
	SeaLevelSpeedOfSound = 340.29 // m/s
)

// Grid is the sampled flight envelope. Angles are in radians.
type Grid struct {
	Angles       []float64
	Machs        []float64
	Density      float64
	SpeedOfSound float64
}

// DefaultGrid returns α ∈ {−2°, 3°, 8°} × Mach ∈ {0.3, 0.7, 0.85} at sea level.
func DefaultGrid() Grid {
	const deg = math.Pi / 180
	return Grid{
		Angles:       []float64{-2 * deg, 3 * deg, 8 * deg},
		Machs:        []float64{0.3, 0.7, 0.85},
		Density:      SeaLevelDensity,
		SpeedOfSound: SeaLevelSpeedOfSound,
	}
}

// Size returns the number of samples.
func (g Grid) Size() int { return len(g.Angles) * len(g.Machs) }

// Validate checks that the grid is non-empty and the atmosphere physical.
// Individual flow states are validated by the solver.
func (g Grid) Validate() error {
	if len(g.Angles) == 0 || len(g.Machs) == 0 {
		return ErrEmptyGrid
	}
	if !(g.Density > 0) || !(g.SpeedOfSound > 0) {
		return ErrBadAtmosphere
	}

	return nil
}

// flow returns the flow state of sample k (angle-major order).
func (g Grid) flow(k int) vlm.FlowState {
	alpha := g.Angles[k/len(g.Machs)]
	mach := g.Machs[k%len(g.Machs)]

	return vlm.FromMach(alpha, mach, g.Density, g.SpeedOfSound)
}

// Case is the surface being swept.
type Case struct {
	Geometry   wing.Geometry
	Segments   []wing.Segment
	Panels     int
	Propellers []slipstream.Propeller
}
