// Package sweep samples a surface over an (angle of attack, Mach) grid and
// stores the results as a training table.
//
// Run fans the grid out to a fixed pool of workers, each calling vlm.Solve on
// its own sample. Rows come back in grid order (angle-major, Mach-minor)
// whatever order the workers finish in. Cancellation is checked between
// samples; a failing sample cancels the rest and its error is returned.
//
// The table text format is one header line and one row per sample:
//
//	# AoA Mach CL CD
//	-0.03490659 0.30000000 -0.05263158 0.00012345
//
// with angles in radians and every value printed with %10.8f.
package sweep
