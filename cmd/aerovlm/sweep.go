package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/report"
	"github.com/katalvlaran/aerovlm/sweep"
)

var sweepFlags struct {
	casePath string
	outPath  string
	xlsxPath string
	workers  int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run an (angle of attack, Mach) sweep and write the training table",
	Long: `Run the case over the [sweep] grid (default α ∈ {-2°, 3°, 8°},
Mach ∈ {0.3, 0.7, 0.85}) and write "# AoA Mach CL CD" rows, angles in
radians.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadCase(sweepFlags.casePath)
		if err != nil {
			return err
		}
		workers := c.Workers
		if sweepFlags.workers > 0 {
			workers = sweepFlags.workers
		}
		opts := []sweep.Option{
			sweep.WithLogger(log),
			sweep.WithProgress(func(p sweep.Progress) {
				log.WithFields(logrus.Fields{"done": p.Done, "total": p.Total}).Debug("sweep: progress")
			}),
		}
		if workers > 0 {
			opts = append(opts, sweep.WithWorkers(workers))
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		table, err := sweep.Run(ctx, c.SweepCase(), c.Grid, opts...)
		if err != nil {
			return err
		}

		writeTable := func(w io.Writer) error {
			_, err := table.WriteTo(w)
			return err
		}
		if sweepFlags.outPath != "" {
			err = writeFile(sweepFlags.outPath, writeTable)
		} else {
			err = writeTable(cmd.OutOrStdout())
		}
		if err != nil {
			return err
		}

		if sweepFlags.xlsxPath != "" {
			return writeFile(sweepFlags.xlsxPath, func(w io.Writer) error {
				return report.WriteSweepXLSX(w, table)
			})
		}

		return nil
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepFlags.casePath, "case", "", "case file (INI)")
	sweepCmd.Flags().StringVar(&sweepFlags.outPath, "out", "", "table file (default stdout)")
	sweepCmd.Flags().StringVar(&sweepFlags.xlsxPath, "xlsx", "", "also write the table as a workbook")
	sweepCmd.Flags().IntVar(&sweepFlags.workers, "workers", 0, "worker goroutines (default: case file, then CPU count)")
	_ = sweepCmd.MarkFlagRequired("case")
	rootCmd.AddCommand(sweepCmd)
}
