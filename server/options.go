package server

import (
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults.
const (
	DefaultTokenTTL        = time.Hour
	DefaultShutdownTimeout = 5 * time.Second
)

const (
	panicTokenTTL   = "server: WithTokenTTL: ttl must be > 0"
	panicMaxWorkers = "server: WithMaxWorkers: workers must be > 0"
	panicLogger     = "server: WithLogger: logger must not be nil"
)

// Option configures New.
type Option func(*options)

type options struct {
	logger          logrus.FieldLogger
	tokenTTL        time.Duration
	maxWorkers      int
	shutdownTimeout time.Duration
}

// WithLogger sets the access and error logger (default: discard).
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic(panicTokenTTL)
	}

	return func(o *options) { o.tokenTTL = ttl }
}

// WithMaxWorkers caps the per-request sweep pool (default runtime.NumCPU()).
func WithMaxWorkers(n int) Option {
	if n <= 0 {
		panic(panicMaxWorkers)
	}

	return func(o *options) { o.maxWorkers = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		tokenTTL:        DefaultTokenTTL,
		maxWorkers:      runtime.NumCPU(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
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
