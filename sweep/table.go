package sweep

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// tableHeader is the first line written by WriteTo.
const tableHeader = "# AoA Mach CL CD"

// Sample is one table row.
type Sample struct {
	AngleOfAttack float64 `json:"aoa"`
	Mach          float64 `json:"mach"`
	CL            float64 `json:"cl"`
	CD            float64 `json:"cd"`
}

// Table is an ordered list of samples.
type Table struct {
	Rows []Sample `json:"rows"`
}

// WriteTo writes the header and one "%10.8f" row per sample.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintln(bw, tableHeader)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, r := range t.Rows {
		n, err = fmt.Fprintf(bw, "%10.8f %10.8f %10.8f %10.8f\n", r.AngleOfAttack, r.Mach, r.CL, r.CD)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// ReadTable parses the WriteTo format. Lines starting with '#' and blank
// lines are skipped; any other line must hold exactly four numbers.
func ReadTable(r io.Reader) (*Table, error) {
	t := &Table{}
	sc := bufio.NewScanner(r)
	var line int
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: %d fields: %w", line, len(fields), ErrMalformedTable)
		}
		var v [4]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", line, ErrMalformedTable, err)
			}
			v[i] = x
		}
		t.Rows = append(t.Rows, Sample{AngleOfAttack: v[0], Mach: v[1], CL: v[2], CD: v[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return t, nil
}
