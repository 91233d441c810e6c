package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aerovlm/vlm"
)

type job struct {
	index int
}

type outcome struct {
	index  int
	sample Sample
	err    error
}

// Run solves c at every grid point and returns the table in grid order.
//
// Implementation:
//   - Stage 1: validate the grid; size the pool to min(workers, samples).
//   - Stage 2: a feeder pushes grid indices until done or cancelled; each
//     worker solves its sample and sends the outcome back.
//   - Stage 3: the collector writes rows by index, reports progress and
//     cancels the remaining work on the first error.
//
// Errors:
//   - ErrEmptyGrid, ErrBadAtmosphere, the first solver error (tagged with the
//     sample), or ctx.Err() when cancelled from outside.
func Run(ctx context.Context, c Case, grid Grid, opts ...Option) (*Table, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	total := grid.Size()
	workers := o.workers
	if workers > total {
		workers = total
	}

	solveOpts := []vlm.Option{vlm.WithLogger(o.logger), vlm.WithPropellers(c.Propellers...)}
	if o.verticalOK {
		solveOpts = append(solveOpts, vlm.WithVerticalZeroLift())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	results := make(chan outcome, workers)

	go func() {
		defer close(jobs)
		for k := 0; k < total; k++ {
			select {
			case jobs <- job{index: k}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					return
				}
				results <- solveSample(c, grid, j.index, solveOpts)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	log := o.logger.WithFields(logrus.Fields{"samples": total, "workers": workers})
	log.Info("sweep: started")

	table := &Table{Rows: make([]Sample, total)}
	var (
		done     int
		firstErr error
	)
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
				cancel()
			}
			continue
		}
		table.Rows[r.index] = r.sample
		done++
		if o.progress != nil && firstErr == nil {
			o.progress(Progress{Done: done, Total: total, Index: r.index, Sample: r.sample})
		}
	}

	if firstErr != nil {
		log.WithError(firstErr).Error("sweep: failed")

		return nil, firstErr
	}
	if done < total {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		log.WithField("done", done).Warn("sweep: cancelled")

		return nil, err
	}
	log.Info("sweep: finished")

	return table, nil
}

func solveSample(c Case, grid Grid, k int, opts []vlm.Option) outcome {
	fs := grid.flow(k)
	res, err := vlm.Solve(c.Geometry, c.Segments, c.Panels, fs, opts...)
	if err != nil {
		return outcome{index: k, err: fmt.Errorf("sweep: sample %d (α=%g, M=%g): %w", k, fs.AngleOfAttack, fs.Mach, err)}
	}

	return outcome{
		index:  k,
		sample: Sample{AngleOfAttack: fs.AngleOfAttack, Mach: fs.Mach, CL: res.CL, CD: res.CD},
	}
}
