package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/report"
	"github.com/katalvlaran/aerovlm/vlm"
)

var solveFlags struct {
	casePath     string
	plotPath     string
	pdfPath      string
	verticalZero bool
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one case and print CL, CD and the spanwise loading",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadCase(solveFlags.casePath)
		if err != nil {
			return err
		}
		opts := []vlm.Option{vlm.WithPropellers(c.Propellers...), vlm.WithLogger(log)}
		if solveFlags.verticalZero {
			opts = append(opts, vlm.WithVerticalZeroLift())
		}
		res, err := vlm.Solve(c.Geometry, c.Segments, c.Panels, c.Flow, opts...)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"case": c.Name, "cl": res.CL, "cd": res.CD}).Info("solve: done")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "case  %s\nCL    %10.6f\nCD    %10.6f\nlift  %12.3f N\ndrag  %12.3f N\n",
			c.Name, res.CL, res.CD, res.Lift, res.Drag)
		if len(res.Panels) > 0 {
			fmt.Fprintf(out, "\n%10s %10s %12s %10s\n", "y[m]", "chord[m]", "lift[N]", "cl")
			for _, p := range res.Panels {
				fmt.Fprintf(out, "%10.4f %10.4f %12.4f %10.6f\n", p.Y, p.Chord, p.Lift, p.SectionCl)
			}
		}

		if solveFlags.plotPath != "" {
			if err = report.PlotSpanwise(res, solveFlags.plotPath); err != nil {
				return err
			}
		}
		if solveFlags.pdfPath != "" {
			return writeFile(solveFlags.pdfPath, func(w io.Writer) error {
				return report.WriteSolvePDF(w, report.SolveSummary{
					Title:    c.Name,
					Geometry: c.Geometry,
					Flow:     c.Flow,
					Panels:   c.Panels,
					Result:   res,
				})
			})
		}

		return nil
	},
}

// writeFile creates path, runs write on it and reports the first of the
// write and close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}

func init() {
	solveCmd.Flags().StringVar(&solveFlags.casePath, "case", "", "case file (INI)")
	solveCmd.Flags().StringVar(&solveFlags.plotPath, "plot", "", "write the spanwise lift plot to this PNG")
	solveCmd.Flags().StringVar(&solveFlags.pdfPath, "pdf", "", "write a PDF report to this file")
	solveCmd.Flags().BoolVar(&solveFlags.verticalZero, "vertical-zero", false, "report zero forces for vertical surfaces instead of failing")
	_ = solveCmd.MarkFlagRequired("case")
	rootCmd.AddCommand(solveCmd)
}
