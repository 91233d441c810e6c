package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/katalvlaran/aerovlm/vlm"
	"github.com/katalvlaran/aerovlm/wing"
)

// maxPDFStations caps the spanwise table; longer results are sampled evenly.
const maxPDFStations = 40

// SolveSummary is the content of a solve report.
type SolveSummary struct {
	Title    string
	Geometry wing.Geometry
	Flow     vlm.FlowState
	Panels   int
	Result   *vlm.Result
	Date     time.Time
}

// WriteSolvePDF renders s as a one-page A4 report.
func WriteSolvePDF(w io.Writer, s SolveSummary) error {
	if s.Title == "" {
		s.Title = "Vortex-Lattice Solve"
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	const toDeg = 180 / math.Pi

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	g := s.Geometry
	for _, line := range []string{
		fmt.Sprintf("Date: %s", s.Date.Format("2006-01-02")),
		fmt.Sprintf("Span: %.3f m   Root chord: %.3f m   Tip chord: %.3f m", g.Span, g.RootChord, g.TipChord),
		fmt.Sprintf("Sweep: %.2f deg   Twist: %.2f / %.2f deg   Reference area: %.3f m2",
			g.Sweep*toDeg, g.RootTwist*toDeg, g.TipTwist*toDeg, g.ReferenceArea),
		fmt.Sprintf("Angle of attack: %.2f deg   Velocity: %.2f m/s   Density: %.4f kg/m3   Panels: %d",
			s.Flow.AngleOfAttack*toDeg, s.Flow.Velocity, s.Flow.Density, s.Panels),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	res := s.Result
	pdf.SetFont("Helvetica", "B", 12)
	if res == nil || !res.LiftModeled {
		pdf.Cell(0, 8, "Lift not modeled for this surface")
		pdf.Ln(8)
	} else {
		pdf.Cell(0, 8, fmt.Sprintf("CL = %.5f   CD = %.6f   L = %.1f N   D = %.2f N", res.CL, res.CD, res.Lift, res.Drag))
		pdf.Ln(10)
		writeStationTable(pdf, res.Panels)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: pdf: %w", err)
	}

	return nil
}

func writeStationTable(pdf *gofpdf.Fpdf, st []vlm.Station) {
	header := []string{"y [m]", "chord [m]", "Gamma", "V [m/s]", "L' [N]", "Cl"}
	const colW, rowH = 30.0, 6.0

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range header {
		pdf.CellFormat(colW, rowH, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(rowH)

	pdf.SetFont("Helvetica", "", 9)
	step := 1
	if len(st) > maxPDFStations {
		step = (len(st) + maxPDFStations - 1) / maxPDFStations
	}
	for i := 0; i < len(st); i += step {
		s := st[i]
		for _, v := range []string{
			fmt.Sprintf("%.3f", s.Y),
			fmt.Sprintf("%.3f", s.Chord),
			fmt.Sprintf("%.5f", s.Gamma),
			fmt.Sprintf("%.2f", s.Velocity),
			fmt.Sprintf("%.2f", s.Lift),
			fmt.Sprintf("%.4f", s.SectionCl),
		} {
			pdf.CellFormat(colW, rowH, v, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(rowH)
	}
}
