package solver

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional diagnostic hook, registered on a caller-supplied
// *prometheus.Registry by NewMetrics and attached to a Problem via
// WithMetrics. Mirrors the teacher's
// metrics.RegisterOLM()/promhttp.Handler() wiring in cmd/olm/main.go: the
// library never exports an HTTP handler itself, it only registers
// collectors for the caller to serve however it likes (spec.md §5: "No I/O
// except optional diagnostic printing").
type Metrics struct {
	solveIterations prometheus.Counter
	solveDuration   prometheus.Histogram
	solveTimeouts   prometheus.Counter
	noiseResets     prometheus.Counter
}

// NewMetrics constructs and registers the satgen collector set on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		solveIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "satgen_solve_iterations_total",
			Help: "Total number of local-search flip iterations performed across all solves.",
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "satgen_solve_duration_seconds",
			Help:    "Wall-clock duration of Problem.Solve calls.",
			Buckets: prometheus.DefBuckets,
		}),
		solveTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "satgen_solve_timeouts_total",
			Help: "Total number of solves that reached the failsafe iteration cap without finding a model.",
		}),
		noiseResets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "satgen_noise_resets_total",
			Help: "Total number of times the search's noise parameter was raised due to stagnation.",
		}),
	}
	reg.MustRegister(m.solveIterations, m.solveDuration, m.solveTimeouts, m.noiseResets)
	return m
}

func (m *Metrics) observeIterations(n int) {
	if m == nil {
		return
	}
	m.solveIterations.Add(float64(n))
}

func (m *Metrics) observeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.solveDuration.Observe(seconds)
}

func (m *Metrics) observeTimeout() {
	if m == nil {
		return
	}
	m.solveTimeouts.Inc()
}

func (m *Metrics) observeNoiseReset() {
	if m == nil {
		return
	}
	m.noiseResets.Inc()
}
