// Package vlm is the Weissinger horseshoe-vortex strip solver.
//
// 🚀 Pipeline
//
//	wing.Discretize     → PanelSet (strips over the half-span)
//	slipstream.Compute  → local velocity / dynamic pressure per strip
//	Influence           → A[i][j], induced downwash at control point i per unit Γ_j
//	circulation solve   → A·Γ = b, b_i = (V_i/V∞)·sin(twist_i + α)
//	integrate           → strip lift/drag, CL, CD
//
// Every horseshoe is paired with its mirror image at −y, so a symmetric wing
// is solved on one half and its forces are doubled.
//
// ✨ Usage
//
//	res, err := vlm.Solve(geom, nil, 50, vlm.FlowState{
//		AngleOfAttack: 5 * math.Pi / 180, Density: 1.225, Velocity: 60,
//	})
//
// Options add propellers (WithPropellers), logging (WithLogger), the
// vertical-surface policy (WithVerticalZeroLift) and the conditioning guard
// (WithConditionLimit).
//
// ⚙️ Concurrency
//
// Solve keeps no package state; every call owns its PanelSet, matrix and
// circulation, so concurrent calls are safe.
//
// ⚠️ Errors
//
// Input checks wrap aerovlm.ErrInputDomain, geometry checks wrap
// aerovlm.ErrConfiguration, a singular, ill-conditioned or non-finite system
// wraps aerovlm.ErrNumerical together with the matrix sentinel, and vertical
// surfaces return aerovlm.ErrLiftNotModeled unless WithVerticalZeroLift is set.
package vlm
