package sweep_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerovlm"
	"github.com/katalvlaran/aerovlm/sweep"
	"github.com/katalvlaran/aerovlm/wing"
)

func referenceCase() sweep.Case {
	return sweep.Case{
		Geometry: wing.Geometry{
			Span: 10, RootChord: 2, TipChord: 1, Symmetric: true, ReferenceArea: 15,
		},
		Panels: 30,
	}
}

func TestDefaultGrid(t *testing.T) {
	t.Parallel()

	g := sweep.DefaultGrid()
	require.Equal(t, 9, g.Size())
	require.NoError(t, g.Validate())
	require.InDelta(t, -2*math.Pi/180, g.Angles[0], 1e-15)
	require.Equal(t, []float64{0.3, 0.7, 0.85}, g.Machs)
}

func TestGrid_Validate(t *testing.T) {
	t.Parallel()

	g := sweep.DefaultGrid()
	g.Machs = nil
	require.ErrorIs(t, g.Validate(), sweep.ErrEmptyGrid)
	require.ErrorIs(t, g.Validate(), aerovlm.ErrConfiguration)

	g = sweep.DefaultGrid()
	g.SpeedOfSound = 0
	require.ErrorIs(t, g.Validate(), sweep.ErrBadAtmosphere)
}

func TestRun_GridOrderAndProgress(t *testing.T) {
	t.Parallel()

	grid := sweep.DefaultGrid()
	var seen []sweep.Progress
	table, err := sweep.Run(context.Background(), referenceCase(), grid,
		sweep.WithWorkers(4),
		sweep.WithProgress(func(p sweep.Progress) { seen = append(seen, p) }),
	)
	require.NoError(t, err)
	require.Len(t, table.Rows, 9)

	for i, alpha := range grid.Angles {
		for j, mach := range grid.Machs {
			row := table.Rows[i*3+j]
			require.Equal(t, alpha, row.AngleOfAttack)
			require.Equal(t, mach, row.Mach)
			// Incompressible strip model: CL does not depend on Mach.
			require.InDelta(t, table.Rows[i*3].CL, row.CL, 1e-12)
		}
	}
	require.Less(t, table.Rows[0].CL, 0.0)
	require.Less(t, table.Rows[0].CL, table.Rows[3].CL)
	require.Less(t, table.Rows[3].CL, table.Rows[6].CL)

	require.Len(t, seen, 9)
	for k, p := range seen {
		require.Equal(t, k+1, p.Done)
		require.Equal(t, 9, p.Total)
		require.Equal(t, table.Rows[p.Index], p.Sample)
	}
}

func TestRun_WorkerCountDoesNotChangeResults(t *testing.T) {
	t.Parallel()

	one, err := sweep.Run(context.Background(), referenceCase(), sweep.DefaultGrid(), sweep.WithWorkers(1))
	require.NoError(t, err)
	many, err := sweep.Run(context.Background(), referenceCase(), sweep.DefaultGrid(), sweep.WithWorkers(16))
	require.NoError(t, err)
	require.Equal(t, one, many)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep.Run(ctx, referenceCase(), sweep.DefaultGrid(), sweep.WithWorkers(2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_SolverErrorStopsSweep(t *testing.T) {
	t.Parallel()

	c := referenceCase()
	c.Panels = 0
	_, err := sweep.Run(context.Background(), c, sweep.DefaultGrid())
	require.ErrorIs(t, err, aerovlm.ErrConfiguration)
	require.Contains(t, err.Error(), "sweep: sample")

	_, err = sweep.Run(context.Background(), referenceCase(), sweep.Grid{})
	require.ErrorIs(t, err, sweep.ErrEmptyGrid)
}

func TestRun_VerticalSurface(t *testing.T) {
	t.Parallel()

	c := referenceCase()
	c.Geometry.Vertical = true
	_, err := sweep.Run(context.Background(), c, sweep.DefaultGrid())
	require.ErrorIs(t, err, aerovlm.ErrLiftNotModeled)

	table, err := sweep.Run(context.Background(), c, sweep.DefaultGrid(), sweep.WithVerticalZeroLift())
	require.NoError(t, err)
	for _, r := range table.Rows {
		require.Zero(t, r.CL)
		require.Zero(t, r.CD)
	}
}

func TestWithWorkers_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { sweep.WithWorkers(0) })
}

func TestTable_RoundTrip(t *testing.T) {
	t.Parallel()

	in := &sweep.Table{Rows: []sweep.Sample{
		{AngleOfAttack: -0.03490659, Mach: 0.3, CL: -0.1234567891, CD: 0.000123},
		{AngleOfAttack: 0.13962634, Mach: 0.85, CL: 0.6, CD: 0.0101},
	}}
	var buf bytes.Buffer
	n, err := in.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "# AoA Mach CL CD", lines[0])
	require.Equal(t, "-0.03490659 0.30000000 -0.12345679 0.00012300", lines[1])

	out, err := sweep.ReadTable(&buf)
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	for i := range in.Rows {
		require.InDelta(t, in.Rows[i].AngleOfAttack, out.Rows[i].AngleOfAttack, 1e-8)
		require.InDelta(t, in.Rows[i].CL, out.Rows[i].CL, 1e-8)
		require.InDelta(t, in.Rows[i].CD, out.Rows[i].CD, 1e-8)
	}
}

func TestReadTable_Malformed(t *testing.T) {
	t.Parallel()

	_, err := sweep.ReadTable(strings.NewReader("# AoA Mach CL CD\n0.1 0.3 0.5\n"))
	require.ErrorIs(t, err, sweep.ErrMalformedTable)
	_, err = sweep.ReadTable(strings.NewReader("0.1 0.3 x 0.1\n"))
	require.ErrorIs(t, err, sweep.ErrMalformedTable)

	tbl, err := sweep.ReadTable(strings.NewReader("\n# comment\n"))
	require.NoError(t, err)
	require.Empty(t, tbl.Rows)
}
