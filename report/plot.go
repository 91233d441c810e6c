package report

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/aerovlm/vlm"
)

// Plot size of the spanwise loading chart.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// ErrNoStations indicates a result without spanwise data.
var ErrNoStations = errors.New("report: result has no spanwise stations")

// spanwisePlot builds the section-Cl and normalized-load chart.
func spanwisePlot(res *vlm.Result) (*plot.Plot, error) {
	if res == nil || len(res.Panels) == 0 {
		return nil, ErrNoStations
	}

	lift := res.SpanwiseLift()
	cl := make(plotter.XYs, len(res.Panels))
	load := make(plotter.XYs, len(res.Panels))
	var peak float64
	for i, s := range res.Panels {
		lift[i] /= s.Width
		if lift[i] > peak {
			peak = lift[i]
		}
	}
	for i, s := range res.Panels {
		cl[i].X, cl[i].Y = s.Y, s.SectionCl
		load[i].X = s.Y
		if peak > 0 {
			load[i].Y = lift[i] / peak
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Spanwise loading (CL = %.4f)", res.CL)
	p.X.Label.Text = "y [m]"
	p.Y.Label.Text = "Cl, L'/L'max"
	if err := plotutil.AddLinePoints(p,
		"Section Cl", cl,
		"Normalized load", load,
	); err != nil {
		return nil, fmt.Errorf("report: plot: %w", err)
	}

	return p, nil
}

// PlotSpanwise saves the spanwise loading chart to path; the extension picks
// the format (png, svg, pdf, …).
func PlotSpanwise(res *vlm.Result, path string) error {
	p, err := spanwisePlot(res)
	if err != nil {
		return err
	}
	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: plot: %w", err)
	}

	return nil
}

// WriteSpanwisePNG streams the spanwise loading chart as PNG.
func WriteSpanwisePNG(w io.Writer, res *vlm.Result) error {
	p, err := spanwisePlot(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return fmt.Errorf("report: plot: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: plot: %w", err)
	}

	return nil
}
