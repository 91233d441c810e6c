package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/aerovlm/sweep"
)

// SweepSheet is the worksheet name used for sweep tables.
const SweepSheet = "Sweep"

// ErrEmptySheet indicates a workbook without data rows.
var ErrEmptySheet = errors.New("report: empty sweep sheet")

var sweepHeader = []interface{}{"AoA [rad]", "AoA [deg]", "Mach", "CL", "CD"}

// WriteSweepXLSX writes t as a single-sheet workbook, one row per sample.
func WriteSweepXLSX(w io.Writer, t *sweep.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SweepSheet); err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}
	if err := f.SetSheetRow(SweepSheet, "A1", &sweepHeader); err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}
	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: xlsx: %w", err)
		}
		row := []interface{}{r.AngleOfAttack, r.AngleOfAttack * 180 / math.Pi, r.Mach, r.CL, r.CD}
		if err = f.SetSheetRow(SweepSheet, cell, &row); err != nil {
			return fmt.Errorf("report: xlsx: %w", err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}

	return nil
}

// ReadSweepXLSX reads a workbook written by WriteSweepXLSX (first sheet,
// header row skipped). Rows with fewer than five cells are ignored.
func ReadSweepXLSX(r io.Reader) (*sweep.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("report: xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("report: xlsx: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	t := &sweep.Table{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < len(sweepHeader) {
			continue
		}
		var v [5]float64
		for j := range v {
			if v[j], err = strconv.ParseFloat(row[j], 64); err != nil {
				return nil, fmt.Errorf("report: xlsx row %d: %w", i+1, err)
			}
		}
		t.Rows = append(t.Rows, sweep.Sample{AngleOfAttack: v[0], Mach: v[2], CL: v[3], CD: v[4]})
	}

	return t, nil
}
