package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerovlm"
	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/vlm"
)

const deg = math.Pi / 180

const sampleCase = `
[wing]
name           = reference
span           = 10
root_chord     = 2
tip_chord      = 1
sweep_deg      = 5
tip_twist_deg  = -2
reference_area = 15

[segment.root]
span_fraction       = 0
root_chord_fraction = 1

[segment.kink]
span_fraction       = 0.4
root_chord_fraction = 0.8
sweep_deg           = 10

[segment.tip]
span_fraction       = 1
root_chord_fraction = 0.5

[propeller.left]
x      = -1.5
y      = 2
radius = 0.8
thrust = 2000

[flow]
angle_of_attack_deg = 5
mach                = 0.2

[solver]
panels = 60

[sweep]
angles_deg = -2, 0, 4, 8
machs      = 0.2, 0.4
workers    = 3
`

func TestParseCase(t *testing.T) {
	t.Parallel()

	c, err := config.ParseCase([]byte(sampleCase))
	require.NoError(t, err)

	require.Equal(t, "reference", c.Name)
	require.Equal(t, 10.0, c.Geometry.Span)
	require.Equal(t, 1.0, c.Geometry.TipChord)
	require.InDelta(t, 5*deg, c.Geometry.Sweep, 1e-15)
	require.InDelta(t, -2*deg, c.Geometry.TipTwist, 1e-15)
	require.True(t, c.Geometry.Symmetric)
	require.False(t, c.Geometry.Vertical)

	require.Len(t, c.Segments, 3)
	require.Equal(t, []float64{0, 0.4, 1}, []float64{
		c.Segments[0].SpanFraction, c.Segments[1].SpanFraction, c.Segments[2].SpanFraction,
	})
	require.InDelta(t, 10*deg, c.Segments[1].Sweep, 1e-15)

	require.Len(t, c.Propellers, 1)
	require.Equal(t, 2000.0, c.Propellers[0].Thrust)

	require.InDelta(t, 5*deg, c.Flow.AngleOfAttack, 1e-15)
	require.Equal(t, 1.225, c.Flow.Density)
	require.InDelta(t, 0.2*340.29, c.Flow.Velocity, 1e-12)
	require.Equal(t, 60, c.Panels)

	require.Len(t, c.Grid.Angles, 4)
	require.InDelta(t, 4*deg, c.Grid.Angles[2], 1e-15)
	require.Equal(t, []float64{0.2, 0.4}, c.Grid.Machs)
	require.Equal(t, 3, c.Workers)

	sc := c.SweepCase()
	require.Equal(t, c.Panels, sc.Panels)
	require.Len(t, sc.Segments, 3)

	// The parsed case is directly solvable.
	res, err := vlm.Solve(c.Geometry, c.Segments, c.Panels, c.Flow, vlm.WithPropellers(c.Propellers...))
	require.NoError(t, err)
	require.Greater(t, res.CL, 0.0)
}

func TestParseCase_Defaults(t *testing.T) {
	t.Parallel()

	c, err := config.ParseCase([]byte("[wing]\nspan=8\nroot_chord=1\nreference_area=8\n[flow]\nvelocity=30\n"))
	require.NoError(t, err)
	require.Equal(t, 1.0, c.Geometry.TipChord, "rectangular when neither tip chord nor taper is set")
	require.Empty(t, c.Segments)
	require.Empty(t, c.Propellers)
	require.Equal(t, vlm.DefaultPanels, c.Panels)
	require.Equal(t, 9, c.Grid.Size())
	require.Equal(t, 30.0, c.Flow.Velocity)
}

func TestParseCase_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.ParseCase([]byte("[wing]\nspan=8\nreference_area=8\n"))
	require.ErrorIs(t, err, config.ErrMissingKey)
	require.ErrorIs(t, err, aerovlm.ErrConfiguration)

	_, err = config.ParseCase([]byte("[wing]\nspan=eight\nroot_chord=1\nreference_area=8\n"))
	require.ErrorIs(t, err, config.ErrBadValue)

	_, err = config.ParseCase([]byte("[wing]\nspan=8\nroot_chord=1\nreference_area=8\n[propeller.a]\nx=0\ny=1\nradius=1\n"))
	require.ErrorIs(t, err, config.ErrMissingKey)
	require.Contains(t, err.Error(), "thrust")
}

func TestParseCase_MalformedOptionalValues(t *testing.T) {
	t.Parallel()

	const base = "[wing]\nspan=8\nroot_chord=2\nreference_area=8\n"
	tests := []struct {
		name, ini, key string
	}{
		{"tip chord", base + "tip_chord=1.O\n", "tip_chord"},
		{"sweep", base + "sweep_deg=2S\n", "sweep_deg"},
		{"symmetric", base + "symmetric=maybe\n", "symmetric"},
		{"angle of attack", base + "[flow]\nangle_of_attack_deg=five\n", "angle_of_attack_deg"},
		{"panels", base + "[solver]\npanels=many\n", "panels"},
		{"segment twist", base + "[segment.a]\nspan_fraction=0\nroot_chord_fraction=1\ntwist_deg=x\n", "twist_deg"},
		{"propeller velocity", base + "[propeller.a]\nx=0\ny=1\nradius=1\nthrust=1\nvelocity=fast\n", "velocity"},
		{"angle list", base + "[sweep]\nangles_deg=2, abc, 8\n", "angles_deg"},
		{"empty mach list", base + "[sweep]\nmachs=\n", "machs"},
		{"workers", base + "[sweep]\nworkers=1.5\n", "workers"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.ParseCase([]byte(tc.ini))
			require.ErrorIs(t, err, config.ErrBadValue)
			require.ErrorIs(t, err, aerovlm.ErrConfiguration)
			require.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestLoadCase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wing.ini")
	require.NoError(t, os.WriteFile(path, []byte("[wing]\nspan=8\nroot_chord=1\nreference_area=8\n"), 0o600))

	c, err := config.LoadCase(path)
	require.NoError(t, err)
	require.Equal(t, path, c.Name)

	_, err = config.LoadCase(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}

func TestLoadService(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte(
		"TOKEN_KEY=secret\nAPI_CLIENT_ID=cli\nAPI_SECRET_HASH='$2a$10$abc'\nRATE_BURST=3\n"), 0o600))
	for _, k := range []string{config.EnvTokenKey, config.EnvClientID, config.EnvSecretHash, config.EnvRateBurst, config.EnvRateLimit, config.EnvAddr, config.EnvDatabaseURL} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	s, err := config.LoadService(env)
	require.NoError(t, err)
	require.Equal(t, config.DefaultAddr, s.Addr)
	require.Equal(t, "secret", s.TokenKey)
	require.Equal(t, "cli", s.ClientID)
	require.Equal(t, 3, s.RateBurst)
	require.Equal(t, config.DefaultRateLimit, s.RateLimit)
	require.Empty(t, s.DatabaseURL)

	t.Setenv(config.EnvRateLimit, "-1")
	_, err = config.LoadService(env)
	require.ErrorIs(t, err, config.ErrBadValue)
}

func TestLoadService_MissingSecrets(t *testing.T) {
	for _, k := range []string{config.EnvTokenKey, config.EnvClientID, config.EnvSecretHash} {
		t.Setenv(k, "")
	}
	_, err := config.LoadService(filepath.Join(t.TempDir(), "absent.env"))
	require.ErrorIs(t, err, config.ErrMissingKey)
}
