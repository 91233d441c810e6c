// Package aerovlm estimates lift and induced drag of a single lifting surface
// with a Weissinger horseshoe-vortex (vortex-lattice) strip model, optionally
// perturbed by propeller slipstreams.
//
// 🚀 What is aerovlm?
//
//	A small toolkit that turns wing macro-geometry into
//	aerodynamic coefficients:
//		• Geometry: span, chords, sweep, twist and ordered spanwise segments
//		• Slipstream: per-panel jet velocity increments from propeller descriptors
//		• Solver: horseshoe influence matrix + dense LU circulation solve
//		• Forces: sectional and total lift/drag, CL and CD
//		• Sweeps: parallel (angle-of-attack, Mach) training tables
//
// ✨ Why choose aerovlm?
//
//   - Stateless core – every solve owns its panels and circulation; safe for concurrent use
//   - Explicit failures – configuration, numerical and input-domain errors are distinct
//   - Pure Go numerics – no cgo, no BLAS
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — dense storage, LU with partial pivoting, linear solve
//	wing/       — geometry value types and the panel discretizer
//	slipstream/ — propeller jet velocity-increment model
//	vlm/        — influence matrix, circulation solve, force integration
//	sweep/      — (α, Mach) sweeps and the training-table text format
//	config/     — INI case files and environment configuration
//	report/     — XLSX, PDF and PNG outputs
//	store/      — sweep-table persistence
//	server/     — HTTP + websocket API
//	cmd/aerovlm — command-line front end
//
// Quick sketch of one spanwise strip:
//
//	  ya        yb
//	   ┌────────┐   ← bound vortex at ¼ chord
//	   │   ×    │   ← control point at ¾ chord
//	   │        │
//	   ↓        ↓   trailing legs to +∞
//
//	go get github.com/katalvlaran/aerovlm
package aerovlm
