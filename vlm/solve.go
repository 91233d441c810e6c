package vlm

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aerovlm"
	"github.com/katalvlaran/aerovlm/slipstream"
	"github.com/katalvlaran/aerovlm/wing"
)

// Solve discretizes g into n strips and returns lift and induced drag at fs.
//
// Implementation:
//   - Stage 1: normalize fs (input domain), discretize g/segs (configuration).
//   - Stage 2: vertical surfaces stop here: ErrLiftNotModeled, or a zero
//     Result under WithVerticalZeroLift.
//   - Stage 3: SolvePanels on the strips with the normalized reference area.
//
// Errors:
//   - aerovlm.ErrInputDomain, aerovlm.ErrConfiguration, aerovlm.ErrNumerical
//     and aerovlm.ErrLiftNotModeled kinds, each wrapping a precise sentinel.
func Solve(g wing.Geometry, segs []wing.Segment, n int, fs FlowState, opts ...Option) (*Result, error) {
	fs, err := fs.Normalize()
	if err != nil {
		return nil, err
	}
	ps, err := wing.Discretize(g, segs, n)
	if err != nil {
		return nil, err
	}
	if !g.SupportsLift() {
		o := gatherOptions(opts...)
		if !o.verticalZeroLift {
			return nil, fmt.Errorf("vlm: vertical surface: %w", aerovlm.ErrLiftNotModeled)
		}
		o.logger.WithField("panels", n).Debug("vlm: vertical surface, zero result")

		return &Result{}, nil
	}

	return solvePanels(ps, g.ReferenceArea, fs, gatherOptions(opts...))
}

// Coefficients is Solve reduced to the (CL, CD) pair.
func Coefficients(g wing.Geometry, segs []wing.Segment, n int, fs FlowState, opts ...Option) (cl, cd float64, err error) {
	res, err := Solve(g, segs, n, fs, opts...)
	if err != nil {
		return 0, 0, err
	}

	return res.CL, res.CD, nil
}

// SolvePanels runs the circulation solve and force integration on an already
// discretized strip set. refArea normalizes the coefficients.
func SolvePanels(ps *wing.PanelSet, refArea float64, fs FlowState, opts ...Option) (*Result, error) {
	if ps == nil {
		return nil, ErrNilPanels
	}
	if !(refArea > 0) || isNonFinite(refArea) {
		return nil, wing.ErrNonPositiveArea
	}
	fs, err := fs.Normalize()
	if err != nil {
		return nil, err
	}

	return solvePanels(ps, refArea, fs, gatherOptions(opts...))
}

func solvePanels(ps *wing.PanelSet, refArea float64, fs FlowState, o Options) (*Result, error) {
	log := o.logger.WithFields(logrus.Fields{
		"panels":     ps.N(),
		"propellers": len(o.propellers),
		"alpha":      fs.AngleOfAttack,
		"velocity":   fs.Velocity,
	})

	field, err := slipstream.Compute(ps, fs.Velocity, fs.Density, o.propellers)
	if err != nil {
		return nil, err
	}

	a, err := Influence(ps)
	if err != nil {
		return nil, numericalErrorf("influence", err)
	}
	gamma, pivotRatio, err := circulation(a, rightHandSide(ps, field, fs.Velocity, fs.AngleOfAttack), o.conditionLimit)
	if err != nil {
		log.WithError(err).Debug("vlm: circulation solve failed")

		return nil, numericalErrorf("circulation", err)
	}

	res, err := integrate(ps, a, gamma, field, fs, refArea)
	if err != nil {
		return nil, numericalErrorf("integrate", err)
	}
	log.WithFields(logrus.Fields{
		"pivot_ratio": pivotRatio,
		"cl":          res.CL,
		"cd":          res.CD,
	}).Debug("vlm: solved")

	return res, nil
}
