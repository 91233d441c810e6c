package vlm

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aerovlm/matrix"
	"github.com/katalvlaran/aerovlm/slipstream"
)

// DefaultPanels is the panel count used by callers that do not pick one.
const DefaultPanels = 50

const panicNilLogger = "vlm: WithLogger: logger must not be nil"

// Option configures a single solve.
type Option func(*Options)

// Options is the resolved configuration of a solve.
type Options struct {
	propellers       []slipstream.Propeller
	logger           logrus.FieldLogger
	verticalZeroLift bool
	conditionLimit   float64
}

// WithPropellers perturbs the solve with the given slipstream sources.
// The slice is copied.
func WithPropellers(props ...slipstream.Propeller) Option {
	cp := append([]slipstream.Propeller(nil), props...)

	return func(o *Options) { o.propellers = cp }
}

// WithLogger routes solve diagnostics (Debug level) to l.
// Panics on a nil logger.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithVerticalZeroLift makes Solve return a zero Result with
// LiftModeled == false for vertical surfaces instead of ErrLiftNotModeled.
func WithVerticalZeroLift() Option {
	return func(o *Options) { o.verticalZeroLift = true }
}

// WithConditionLimit overrides the pivot-ratio threshold of the circulation
// solve. Same contract as matrix.WithConditionLimit.
func WithConditionLimit(limit float64) Option {
	_ = matrix.WithConditionLimit(limit) // validates, panics on nonsense

	return func(o *Options) { o.conditionLimit = limit }
}

// discardLogger is a fresh logger writing nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func gatherOptions(opts ...Option) Options {
	o := Options{conditionLimit: matrix.DefaultConditionLimit}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}
