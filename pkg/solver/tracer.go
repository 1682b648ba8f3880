package solver

import (
	"fmt"
	"io"
)

// SearchStep reports the state of the local search after one scoring pass,
// for diagnostic tracing (spec.md §4.4). It is deliberately read-only:
// tracers observe the search, they never steer it.
type SearchStep interface {
	Iteration() int
	Satisfied() int
	Total() int
	Noise() float64
	Flipped() Atom
	Random() bool
}

// SearchTracer receives a callback after every iteration of Solve's local
// search. Grounded on the teacher's Tracer/DefaultTracer/LoggingTracer trio
// (tracer.go), retargeted from SAT-assumption backtracking to flip-search
// progress.
type SearchTracer interface {
	Trace(step SearchStep)
}

// DefaultTracer discards every step. It is the zero-cost default so Problem
// never needs a nil check before calling Trace.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchStep) {}

// LoggingTracer writes one line per iteration to Writer. Intended for
// interactive debugging of stalled searches, not for production use — it
// defeats the point of the reusable score vector by formatting on every
// flip.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(step SearchStep) {
	kind := "greedy"
	if step.Random() {
		kind = "random"
	}
	fmt.Fprintf(t.Writer, "iter=%d satisfied=%d/%d noise=%.3f flip=%d (%s)\n",
		step.Iteration(), step.Satisfied(), step.Total(), step.Noise(), step.Flipped(), kind)
}

type searchStep struct {
	iteration int
	satisfied int
	total     int
	noise     float64
	flipped   Atom
	random    bool
}

func (s searchStep) Iteration() int { return s.iteration }
func (s searchStep) Satisfied() int { return s.satisfied }
func (s searchStep) Total() int     { return s.total }
func (s searchStep) Noise() float64 { return s.noise }
func (s searchStep) Flipped() Atom  { return s.flipped }
func (s searchStep) Random() bool   { return s.random }
