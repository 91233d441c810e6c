package slipstream_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerovlm"
	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/wing"
)

const (
	rho  = 1.225
	vInf = 50.0
)

func prop() slipstream.Propeller {
	return slipstream.Propeller{X: -1, Y: 2, Radius: 1, Thrust: 1000}
}

func panels(t *testing.T, n int) *wing.PanelSet {
	t.Helper()
	ps, err := wing.Discretize(wing.Geometry{
		Span: 10, RootChord: 2, TipChord: 1, Symmetric: true, ReferenceArea: 15,
	}, nil, n)
	require.NoError(t, err)

	return ps
}

func TestNewJet_MomentumTheory(t *testing.T) {
	t.Parallel()

	j, err := slipstream.NewJet(prop(), vInf, rho)
	require.NoError(t, err)

	want := -vInf + math.Sqrt(vInf*vInf+2*1000/(rho*math.Pi))
	require.InDelta(t, want, j.FarWakeIncrement(), 1e-12)

	r0 := math.Sqrt((vInf + want/2) / (vInf + want))
	require.InDelta(t, r0*(2*vInf+want)/(slipstream.MixingRate*want), j.MixingLength(), 1e-9)

	// At the disk the centreline carries half the far-wake increment.
	require.InDelta(t, want/2, j.Increment(0, 0), 1e-12)
	require.InDelta(t, want/2, j.Increment(0, 0.99), 1e-12)
	require.Zero(t, j.Increment(0, 1.01))
	require.Zero(t, j.Increment(-0.1, 0))
}

func TestNewJet_PropellerVelocityOverridesFreestream(t *testing.T) {
	t.Parallel()

	p := prop()
	p.Velocity = 30
	j, err := slipstream.NewJet(p, vInf, rho)
	require.NoError(t, err)
	require.InDelta(t, -30+math.Sqrt(900+2*1000/(rho*math.Pi)), j.FarWakeIncrement(), 1e-12)
}

func TestJet_ZeroThrust(t *testing.T) {
	t.Parallel()

	p := prop()
	p.Thrust = 0
	j, err := slipstream.NewJet(p, vInf, rho)
	require.NoError(t, err)
	require.Zero(t, j.FarWakeIncrement())
	require.Zero(t, j.MixingLength())
	for _, x := range []float64{0, 1, 100} {
		require.Zero(t, j.Increment(x, 0))
	}
}

func TestJet_CentrelineContinuousAcrossRegions(t *testing.T) {
	t.Parallel()

	j, err := slipstream.NewJet(prop(), vInf, rho)
	require.NoError(t, err)
	l := j.MixingLength()
	const eps = 1e-9

	for _, x := range []float64{l, 2 * l} {
		before := j.Increment(x*(1-eps), 0)
		after := j.Increment(x*(1+eps), 0)
		require.InDelta(t, before, after, 1e-6*j.FarWakeIncrement(), "x=%g", x)
	}
}

func TestJet_DecaysDownstreamAndOutward(t *testing.T) {
	t.Parallel()

	j, err := slipstream.NewJet(prop(), vInf, rho)
	require.NoError(t, err)
	l := j.MixingLength()

	far := []float64{2.5 * l, 4 * l, 8 * l}
	for k := 1; k < len(far); k++ {
		require.Less(t, j.Increment(far[k], 0), j.Increment(far[k-1], 0))
	}
	x := 1.5 * l
	require.Greater(t, j.Increment(x, 0), j.Increment(x, 0.5))
	require.GreaterOrEqual(t, j.Increment(x, 0.5), 0.0)
}

func TestPropeller_Validate(t *testing.T) {
	t.Parallel()

	mod := func(f func(*slipstream.Propeller)) slipstream.Propeller {
		p := prop()
		f(&p)
		return p
	}
	for name, p := range map[string]slipstream.Propeller{
		"zero radius":       mod(func(p *slipstream.Propeller) { p.Radius = 0 }),
		"negative thrust":   mod(func(p *slipstream.Propeller) { p.Thrust = -1 }),
		"negative velocity": mod(func(p *slipstream.Propeller) { p.Velocity = -1 }),
		"nan x":             mod(func(p *slipstream.Propeller) { p.X = math.NaN() }),
	} {
		err := p.Validate()
		require.ErrorIs(t, err, slipstream.ErrBadPropeller, name)
		require.ErrorIs(t, err, aerovlm.ErrInputDomain, name)
	}
	require.NoError(t, prop().Validate())
}

func TestCompute_NoPropellersIsFreestream(t *testing.T) {
	t.Parallel()

	// Typed operands, same evaluation order as Compute: constant folding
	// would round differently.
	v, density := float64(vInf), float64(rho)
	q := 0.5 * density * v * v

	f, err := slipstream.Compute(panels(t, 20), vInf, rho, nil)
	require.NoError(t, err)
	for i := range f.Velocity {
		require.Equal(t, v, f.Velocity[i])
		require.Equal(t, q, f.DynamicPressure[i])
	}
}

func TestCompute_IncrementsAdd(t *testing.T) {
	t.Parallel()

	ps := panels(t, 40)
	one, err := slipstream.Compute(ps, vInf, rho, []slipstream.Propeller{prop()})
	require.NoError(t, err)
	two, err := slipstream.Compute(ps, vInf, rho, []slipstream.Propeller{prop(), prop()})
	require.NoError(t, err)

	var touched int
	for i := range one.Velocity {
		require.InDelta(t, 2*(one.Velocity[i]-vInf), two.Velocity[i]-vInf, 1e-12)
		require.InDelta(t, 0.5*rho*one.Velocity[i]*one.Velocity[i], one.DynamicPressure[i], 1e-9)
		if one.Velocity[i] > vInf {
			touched++
			require.Less(t, math.Abs(ps.YC[i]-2), 1.5, "only strips behind the disk are perturbed")
		}
	}
	require.Positive(t, touched)
}

func TestCompute_SymmetricAddsMirrorPropeller(t *testing.T) {
	t.Parallel()

	p := prop()
	p.Y = 0.5
	sym := panels(t, 40)
	half := *sym
	half.Symmetric = false

	fs, err := slipstream.Compute(sym, vInf, rho, []slipstream.Propeller{p})
	require.NoError(t, err)
	fh, err := slipstream.Compute(&half, vInf, rho, []slipstream.Propeller{p})
	require.NoError(t, err)

	// Innermost strip (y ≈ 0.06) lies inside both the propeller and its image.
	require.Greater(t, fs.Velocity[0], fh.Velocity[0])
	for i := range fs.Velocity {
		require.GreaterOrEqual(t, fs.Velocity[i], fh.Velocity[i])
	}
}

func TestCompute_Errors(t *testing.T) {
	t.Parallel()

	ps := panels(t, 4)
	_, err := slipstream.Compute(nil, vInf, rho, nil)
	require.ErrorIs(t, err, slipstream.ErrNilPanels)
	_, err = slipstream.Compute(ps, 0, rho, nil)
	require.ErrorIs(t, err, slipstream.ErrBadFreestream)
	_, err = slipstream.Compute(ps, vInf, math.NaN(), nil)
	require.ErrorIs(t, err, aerovlm.ErrInputDomain)

	bad := prop()
	bad.Radius = -1
	_, err = slipstream.Compute(ps, vInf, rho, []slipstream.Propeller{prop(), bad})
	require.ErrorIs(t, err, slipstream.ErrBadPropeller)
	require.Contains(t, err.Error(), "propeller 1")
}
