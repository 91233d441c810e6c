package config

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/sweep"
	"github.com/katalvlaran/aerovlm/vlm"
	"github.com/katalvlaran/aerovlm/wing"
)

const (
	deg = math.Pi / 180

	sectionWing      = "wing"
	sectionFlow      = "flow"
	sectionSolver    = "solver"
	sectionSweep     = "sweep"
	prefixSegment    = "segment."
	prefixPropeller  = "propeller."
	defaultWorkers   = 0 // 0 ⇒ runtime.NumCPU()
	keyAngleDeg      = "angle_of_attack_deg"
	keySpeedOfSound  = "speed_of_sound"
	keyReferenceArea = "reference_area"
)

// Case is everything needed to run one solve or sweep.
type Case struct {
	Name       string
	Geometry   wing.Geometry
	Segments   []wing.Segment
	Propellers []slipstream.Propeller
	Flow       vlm.FlowState
	Panels     int
	Grid       sweep.Grid
	Workers    int
}

// SweepCase returns the sweep.Case view of c.
func (c *Case) SweepCase() sweep.Case {
	return sweep.Case{
		Geometry:   c.Geometry,
		Segments:   c.Segments,
		Panels:     c.Panels,
		Propellers: c.Propellers,
	}
}

// LoadCase reads a case file from disk.
func LoadCase(path string) (*Case, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	c, err := parseCase(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = path
	}

	return c, nil
}

// ParseCase reads a case from INI text.
func ParseCase(data []byte) (*Case, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return parseCase(file)
}

func parseCase(file *ini.File) (*Case, error) {
	c := &Case{}
	var err error

	w := file.Section(sectionWing)
	c.Name = w.Key("name").String()
	if c.Geometry, err = parseGeometry(w); err != nil {
		return nil, err
	}

	for _, sec := range file.Sections() {
		switch name := sec.Name(); {
		case strings.HasPrefix(name, prefixSegment):
			s, err := parseSegment(sec)
			if err != nil {
				return nil, err
			}
			c.Segments = append(c.Segments, s)
		case strings.HasPrefix(name, prefixPropeller):
			p, err := parsePropeller(sec)
			if err != nil {
				return nil, err
			}
			c.Propellers = append(c.Propellers, p)
		}
	}

	f := keys{sec: file.Section(sectionFlow)}
	speedOfSound := f.float(keySpeedOfSound, sweep.SeaLevelSpeedOfSound)
	c.Flow = vlm.FlowState{
		AngleOfAttack:   f.float(keyAngleDeg, 0) * deg,
		Density:         f.float("density", sweep.SeaLevelDensity),
		Velocity:        f.float("velocity", 0),
		DynamicPressure: f.float("dynamic_pressure", 0),
		Mach:            f.float("mach", 0),
	}
	if f.err != nil {
		return nil, f.err
	}
	if c.Flow.Velocity == 0 && c.Flow.Mach > 0 {
		c.Flow.Velocity = c.Flow.Mach * speedOfSound
	}

	solver := keys{sec: file.Section(sectionSolver)}
	if c.Panels = solver.integer("panels", vlm.DefaultPanels); solver.err != nil {
		return nil, solver.err
	}

	if c.Grid, c.Workers, err = parseSweep(file.Section(sectionSweep), c.Flow.Density, speedOfSound); err != nil {
		return nil, err
	}

	return c, nil
}

func parseGeometry(sec *ini.Section) (wing.Geometry, error) {
	var g wing.Geometry
	var err error
	for _, req := range []struct {
		key string
		dst *float64
	}{
		{"span", &g.Span},
		{"root_chord", &g.RootChord},
		{keyReferenceArea, &g.ReferenceArea},
	} {
		if *req.dst, err = requiredFloat(sec, req.key); err != nil {
			return g, err
		}
	}

	k := keys{sec: sec}
	g.TipChord = k.float("tip_chord", 0)
	g.Taper = k.float("taper", 0)
	g.Sweep = k.float("sweep_deg", 0) * deg
	g.RootTwist = k.float("root_twist_deg", 0) * deg
	g.TipTwist = k.float("tip_twist_deg", 0) * deg
	g.Symmetric = k.boolean("symmetric", true)
	g.Vertical = k.boolean("vertical", false)
	if k.err != nil {
		return g, k.err
	}
	if g.TipChord == 0 && g.Taper == 0 {
		g.TipChord = g.RootChord
	}

	return g, nil
}

func parseSegment(sec *ini.Section) (wing.Segment, error) {
	frac, err := requiredFloat(sec, "span_fraction")
	if err != nil {
		return wing.Segment{}, err
	}
	chord, err := requiredFloat(sec, "root_chord_fraction")
	if err != nil {
		return wing.Segment{}, err
	}

	k := keys{sec: sec}
	s := wing.Segment{
		SpanFraction:  frac,
		ChordFraction: chord,
		Twist:         k.float("twist_deg", 0) * deg,
		Sweep:         k.float("sweep_deg", 0) * deg,
	}

	return s, k.err
}

func parsePropeller(sec *ini.Section) (slipstream.Propeller, error) {
	var p slipstream.Propeller
	var err error
	for _, req := range []struct {
		key string
		dst *float64
	}{
		{"x", &p.X},
		{"y", &p.Y},
		{"radius", &p.Radius},
		{"thrust", &p.Thrust},
	} {
		if *req.dst, err = requiredFloat(sec, req.key); err != nil {
			return p, err
		}
	}
	k := keys{sec: sec}
	p.Velocity = k.float("velocity", 0)

	return p, k.err
}

func parseSweep(sec *ini.Section, density, speedOfSound float64) (sweep.Grid, int, error) {
	g := sweep.DefaultGrid()
	g.Density = density

	k := keys{sec: sec}
	g.SpeedOfSound = k.float(keySpeedOfSound, speedOfSound)
	if angles := k.floats("angles_deg"); angles != nil {
		for i := range angles {
			angles[i] *= deg
		}
		g.Angles = angles
	}
	if machs := k.floats("machs"); machs != nil {
		g.Machs = machs
	}
	workers := k.integer("workers", defaultWorkers)

	return g, workers, k.err
}

// keys reads optional keys of one section. Absent keys yield the default;
// present keys must parse. The first failure sticks in err and later reads
// return their defaults.
type keys struct {
	sec *ini.Section
	err error
}

func (k *keys) fail(key string, err error) {
	if k.err == nil {
		k.err = fmt.Errorf("[%s] %s: %w: %w", k.sec.Name(), key, ErrBadValue, err)
	}
}

func (k *keys) float(key string, def float64) float64 {
	if k.err != nil || !k.sec.HasKey(key) {
		return def
	}
	v, err := k.sec.Key(key).Float64()
	if err != nil {
		k.fail(key, err)
		return def
	}

	return v
}

func (k *keys) integer(key string, def int) int {
	if k.err != nil || !k.sec.HasKey(key) {
		return def
	}
	v, err := k.sec.Key(key).Int()
	if err != nil {
		k.fail(key, err)
		return def
	}

	return v
}

func (k *keys) boolean(key string, def bool) bool {
	if k.err != nil || !k.sec.HasKey(key) {
		return def
	}
	v, err := k.sec.Key(key).Bool()
	if err != nil {
		k.fail(key, err)
		return def
	}

	return v
}

// floats reads a comma list; nil means absent or failed.
func (k *keys) floats(key string) []float64 {
	if k.err != nil || !k.sec.HasKey(key) {
		return nil
	}
	v, err := k.sec.Key(key).StrictFloat64s(",")
	if err == nil && len(v) == 0 {
		err = errEmptyList
	}
	if err != nil {
		k.fail(key, err)
		return nil
	}

	return v
}

// requiredFloat reads a mandatory float key.
func requiredFloat(sec *ini.Section, key string) (float64, error) {
	if !sec.HasKey(key) {
		return 0, fmt.Errorf("[%s] %s: %w", sec.Name(), key, ErrMissingKey)
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		return 0, fmt.Errorf("[%s] %s: %w: %w", sec.Name(), key, ErrBadValue, err)
	}

	return v, nil
}
