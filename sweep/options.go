package sweep

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

const panicWorkers = "sweep: WithWorkers: workers must be > 0"

// Progress is reported after every finished sample. Done counts finished
// samples; Index is the grid position of Sample.
type Progress struct {
	Done   int    `json:"done"`
	Total  int    `json:"total"`
	Index  int    `json:"index"`
	Sample Sample `json:"sample"`
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers    int
	progress   func(Progress)
	logger     logrus.FieldLogger
	verticalOK bool
}

// WithWorkers sets the pool size (default runtime.NumCPU()).
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkers)
	}

	return func(o *options) { o.workers = n }
}

// WithProgress registers a callback invoked from a single goroutine after
// each sample.
func WithProgress(fn func(Progress)) Option {
	return func(o *options) { o.progress = fn }
}

// WithLogger routes sweep and solver diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithVerticalZeroLift lets vertical surfaces produce zero rows.
func WithVerticalZeroLift() Option {
	return func(o *options) { o.verticalOK = true }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.logger = l
	}

	return o
}
