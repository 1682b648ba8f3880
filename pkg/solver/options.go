package solver

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultFailsafe = 50000

// Option configures a Problem at construction time. Mirrors the teacher's
// Option func(s *solver) error / defaults []Option pattern in solve.go.
type Option func(p *Problem) error

// WithSeed fixes the local search's random source, for reproducible tests.
// spec.md §4.4: "No seed is exposed in the core contract; implementations
// MAY expose a deterministic seed for testing."
func WithSeed(seed int64) Option {
	return func(p *Problem) error {
		p.rng = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithFailsafe overrides the default 50,000-iteration search cap.
func WithFailsafe(iterations int) Option {
	return func(p *Problem) error {
		p.failsafe = iterations
		return nil
	}
}

// WithLogger supplies a structured logger. Unset, Problem logs to a
// discarded logrus.New() instance.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Problem) error {
		p.log = log
		return nil
	}
}

// WithTracer installs a SearchTracer invoked once per search iteration.
func WithTracer(t SearchTracer) Option {
	return func(p *Problem) error {
		p.tracer = t
		return nil
	}
}

// WithMetrics attaches a Metrics collector set, previously registered by
// NewMetrics, to this Problem's solves.
func WithMetrics(m *Metrics) Option {
	return func(p *Problem) error {
		p.metrics = m
		return nil
	}
}

var defaults = []Option{
	func(p *Problem) error {
		if p.rng == nil {
			p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return nil
	},
	func(p *Problem) error {
		if p.failsafe == 0 {
			p.failsafe = defaultFailsafe
		}
		return nil
	},
	func(p *Problem) error {
		if p.log == nil {
			l := logrus.New()
			l.SetOutput(io.Discard)
			p.log = l
		}
		return nil
	},
	func(p *Problem) error {
		if p.tracer == nil {
			p.tracer = DefaultTracer{}
		}
		return nil
	},
}
