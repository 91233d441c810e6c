package server

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aerovlm"
	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/sweep"
	"github.com/katalvlaran/aerovlm/vlm"
	"github.com/katalvlaran/aerovlm/wing"
)

const (
	deg   = math.Pi / 180
	toDeg = 180 / math.Pi
)

// Request limits. The influence matrix is panels² doubles and every grid
// point is one solve.
const (
	MaxPanels   = 1000
	MaxGridSize = 400
)

var (
	// ErrTooManyPanels rejects a panel count above MaxPanels.
	ErrTooManyPanels = fmt.Errorf("server: panel count above %d: %w", MaxPanels, aerovlm.ErrConfiguration)

	// ErrGridTooLarge rejects a sweep grid with more than MaxGridSize points.
	ErrGridTooLarge = fmt.Errorf("server: sweep grid above %d points: %w", MaxGridSize, aerovlm.ErrConfiguration)
)

// WingRequest is the JSON wing geometry; angles in degrees.
type WingRequest struct {
	Span          float64 `json:"span"`
	RootChord     float64 `json:"root_chord"`
	TipChord      float64 `json:"tip_chord"`
	Taper         float64 `json:"taper"`
	SweepDeg      float64 `json:"sweep_deg"`
	RootTwistDeg  float64 `json:"root_twist_deg"`
	TipTwistDeg   float64 `json:"tip_twist_deg"`
	Symmetric     *bool   `json:"symmetric,omitempty"` // default true
	Vertical      bool    `json:"vertical"`
	ReferenceArea float64 `json:"reference_area"`
}

// SegmentRequest is one spanwise station.
type SegmentRequest struct {
	SpanFraction  float64 `json:"span_fraction"`
	ChordFraction float64 `json:"root_chord_fraction"`
	TwistDeg      float64 `json:"twist_deg"`
	SweepDeg      float64 `json:"sweep_deg"`
}

// FlowRequest is the freestream. Velocity 0 with Mach > 0 means Mach·a.
type FlowRequest struct {
	AngleOfAttackDeg float64 `json:"angle_of_attack_deg"`
	Density          float64 `json:"density"`
	Velocity         float64 `json:"velocity"`
	DynamicPressure  float64 `json:"dynamic_pressure"`
	Mach             float64 `json:"mach"`
	SpeedOfSound     float64 `json:"speed_of_sound"`
}

// CaseRequest is the body of /api/solve and /api/report/pdf.
type CaseRequest struct {
	Name       string                 `json:"name"`
	Wing       WingRequest            `json:"wing"`
	Segments   []SegmentRequest       `json:"segments"`
	Propellers []slipstream.Propeller `json:"propellers"`
	Flow       FlowRequest            `json:"flow"`
	Panels     int                    `json:"panels"`
}

// SweepRequest is the body of /api/sweep and the first /ws/sweep message.
type SweepRequest struct {
	CaseRequest
	AnglesDeg    []float64 `json:"angles_deg"`
	Machs        []float64 `json:"machs"`
	Density      float64   `json:"density"`
	SpeedOfSound float64   `json:"speed_of_sound"`
	Workers      int       `json:"workers"`
	Save         bool      `json:"save"`
}

// StationResponse is one spanwise strip; twist in degrees.
type StationResponse struct {
	Y               float64 `json:"y"`
	Width           float64 `json:"width"`
	Chord           float64 `json:"chord"`
	TwistDeg        float64 `json:"twist_deg"`
	Gamma           float64 `json:"gamma"`
	InducedVelocity float64 `json:"induced_velocity"`
	Velocity        float64 `json:"velocity"`
	DynamicPressure float64 `json:"dynamic_pressure"`
	Lift            float64 `json:"lift"`
	Drag            float64 `json:"drag"`
	SectionCl       float64 `json:"section_cl"`
}

// SolveResponse is the body returned by /api/solve.
type SolveResponse struct {
	CL          float64           `json:"cl"`
	CD          float64           `json:"cd"`
	Lift        float64           `json:"lift"`
	Drag        float64           `json:"drag"`
	LiftModeled bool              `json:"lift_modeled"`
	Stations    []StationResponse `json:"stations"`
}

// SweepResponse is the body returned by /api/sweep. ID is set when stored.
type SweepResponse struct {
	ID    int64        `json:"id,omitempty"`
	Table *sweep.Table `json:"table"`
}

// toCase converts the request into a solver case.
func (r CaseRequest) toCase() (*config.Case, error) {
	if r.Panels > MaxPanels {
		return nil, fmt.Errorf("panels=%d: %w", r.Panels, ErrTooManyPanels)
	}
	symmetric := true
	if r.Wing.Symmetric != nil {
		symmetric = *r.Wing.Symmetric
	}
	c := &config.Case{
		Name: r.Name,
		Geometry: wing.Geometry{
			Span:          r.Wing.Span,
			RootChord:     r.Wing.RootChord,
			TipChord:      r.Wing.TipChord,
			Taper:         r.Wing.Taper,
			Sweep:         r.Wing.SweepDeg * deg,
			RootTwist:     r.Wing.RootTwistDeg * deg,
			TipTwist:      r.Wing.TipTwistDeg * deg,
			Symmetric:     symmetric,
			Vertical:      r.Wing.Vertical,
			ReferenceArea: r.Wing.ReferenceArea,
		},
		Propellers: r.Propellers,
		Panels:     r.Panels,
	}
	if c.Geometry.TipChord == 0 && c.Geometry.Taper == 0 {
		c.Geometry.TipChord = c.Geometry.RootChord
	}
	if c.Panels == 0 {
		c.Panels = vlm.DefaultPanels
	}
	for _, s := range r.Segments {
		c.Segments = append(c.Segments, wing.Segment{
			SpanFraction:  s.SpanFraction,
			ChordFraction: s.ChordFraction,
			Twist:         s.TwistDeg * deg,
			Sweep:         s.SweepDeg * deg,
		})
	}

	f := r.Flow
	a := f.SpeedOfSound
	if a == 0 {
		a = sweep.SeaLevelSpeedOfSound
	}
	c.Flow = vlm.FlowState{
		AngleOfAttack:   f.AngleOfAttackDeg * deg,
		Density:         f.Density,
		Velocity:        f.Velocity,
		DynamicPressure: f.DynamicPressure,
		Mach:            f.Mach,
	}
	if c.Flow.Density == 0 {
		c.Flow.Density = sweep.SeaLevelDensity
	}
	if c.Flow.Velocity == 0 && f.Mach > 0 {
		c.Flow.Velocity = f.Mach * a
	}

	return c, nil
}

// grid builds the sweep grid; empty lists fall back to sweep.DefaultGrid.
func (r SweepRequest) grid() (sweep.Grid, error) {
	g := sweep.DefaultGrid()
	if len(r.AnglesDeg) > 0 {
		g.Angles = make([]float64, len(r.AnglesDeg))
		for i, a := range r.AnglesDeg {
			g.Angles[i] = a * deg
		}
	}
	if len(r.Machs) > 0 {
		g.Machs = append([]float64(nil), r.Machs...)
	}
	if r.Density != 0 {
		g.Density = r.Density
	}
	if r.SpeedOfSound != 0 {
		g.SpeedOfSound = r.SpeedOfSound
	}
	if g.Size() > MaxGridSize {
		return g, fmt.Errorf("%d×%d: %w", len(g.Angles), len(g.Machs), ErrGridTooLarge)
	}

	return g, nil
}

func newSolveResponse(res *vlm.Result) SolveResponse {
	out := SolveResponse{
		CL:          res.CL,
		CD:          res.CD,
		Lift:        res.Lift,
		Drag:        res.Drag,
		LiftModeled: res.LiftModeled,
		Stations:    make([]StationResponse, len(res.Panels)),
	}
	for i, p := range res.Panels {
		out.Stations[i] = StationResponse{
			Y:               p.Y,
			Width:           p.Width,
			Chord:           p.Chord,
			TwistDeg:        p.Twist * toDeg,
			Gamma:           p.Gamma,
			InducedVelocity: p.InducedVelocity,
			Velocity:        p.Velocity,
			DynamicPressure: p.DynamicPressure,
			Lift:            p.Lift,
			Drag:            p.Drag,
			SectionCl:       p.SectionCl,
		}
	}

	return out
}
