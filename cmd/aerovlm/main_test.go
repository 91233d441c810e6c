package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerovlm/report"
	"github.com/katalvlaran/aerovlm/sweep"
)

const caseINI = `
[wing]
name           = cli
span           = 10
root_chord     = 2
tip_chord      = 1
reference_area = 15

[flow]
angle_of_attack_deg = 5
density             = 1.225
velocity            = 60

[solver]
panels = 20

[sweep]
angles_deg = 0, 4
machs      = 0.2
workers    = 2
`

func writeCase(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "case.ini")
	require.NoError(t, os.WriteFile(path, []byte(caseINI), 0o600))

	return dir, path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	dir, path := writeCase(t)
	png := filepath.Join(dir, "lift.png")
	pdf := filepath.Join(dir, "report.pdf")

	out, err := execute(t, "solve", "--case", path, "--plot", png, "--pdf", pdf, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "case  cli")
	require.Contains(t, out, "CL ")
	require.Equal(t, 20, strings.Count(out, "\n")-7)

	for _, p := range []string{png, pdf} {
		st, err := os.Stat(p)
		require.NoError(t, err)
		require.Greater(t, st.Size(), int64(0))
	}
}

func TestSweepCommand(t *testing.T) {
	dir, path := writeCase(t)
	txt := filepath.Join(dir, "table.txt")
	xlsx := filepath.Join(dir, "table.xlsx")

	_, err := execute(t, "sweep", "--case", path, "--out", txt, "--xlsx", xlsx, "--workers", "1", "--log-json")
	require.NoError(t, err)

	f, err := os.Open(txt)
	require.NoError(t, err)
	defer f.Close()
	table, err := sweep.ReadTable(f)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	require.InDelta(t, 0, table.Rows[0].CL, 1e-8)

	x, err := os.Open(xlsx)
	require.NoError(t, err)
	defer x.Close()
	fromXLSX, err := report.ReadSweepXLSX(x)
	require.NoError(t, err)
	require.Len(t, fromXLSX.Rows, 2)
}

func TestCommands_Errors(t *testing.T) {
	_, err := execute(t, "solve", "--case", filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)

	_, err = execute(t, "solve", "--case", "x.ini", "--log-level", "loud")
	require.ErrorContains(t, err, "--log-level")

	_, err = execute(t, "hash-secret")
	require.Error(t, err)
}

func TestHashSecretCommand(t *testing.T) {
	out, err := execute(t, "hash-secret", "pw", "--log-level", "info")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "$2a$"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok")
		return err
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ok", string(b))

	boom := errors.New("boom")
	require.ErrorIs(t, writeFile(path, func(io.Writer) error { return boom }), boom)

	require.Error(t, writeFile(filepath.Join(dir, "missing", "out.txt"), func(io.Writer) error { return nil }))

	_, casePath := writeCase(t)
	_, err = execute(t, "sweep", "--case", casePath, "--out", filepath.Join(dir, "missing", "t.txt"))
	require.Error(t, err)
}
