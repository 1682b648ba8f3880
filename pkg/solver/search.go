package solver

import (
	"context"
	"math"
	"math/rand"
)

// search is the stochastic local search of spec.md §4.4: a GSAT/WalkSAT-
// family flip-search with adaptive noise and sliding-window stagnation
// detection. It owns no clause data beyond a reference to the frozen
// snapshot solve() hands it, and reuses its score vector across iterations
// (spec.md §9, "scoring perf").
type search struct {
	clauses  []*clause
	numAtoms int // one past the highest valid Atom
	failsafe int
	rng      *rand.Rand
	tracer   SearchTracer
	metrics  *Metrics
}

func newSearch(clauses []*clause, numAtoms, failsafe int, rng *rand.Rand, tracer SearchTracer, metrics *Metrics) *search {
	if tracer == nil {
		tracer = DefaultTracer{}
	}
	return &search{clauses: clauses, numAtoms: numAtoms, failsafe: failsafe, rng: rng, tracer: tracer, metrics: metrics}
}

// windowSize computes w = max(3, ceil(C/6)) for a clause count C.
func windowSize(clauseCount int) int {
	w := int(math.Ceil(float64(clauseCount) / 6))
	if w < 3 {
		w = 3
	}
	return w
}

// score performs one scoring pass (spec.md §4.4, "Scoring"): it returns the
// number of currently satisfied clauses and, via the reusable out slice, the
// net suggestion score of flipping each atom. out must have length
// s.numAtoms and is zeroed and overwritten in place.
func (s *search) score(a assignment, out []int) int {
	for i := range out {
		out[i] = 0
	}
	satisfied := 0
	for _, c := range s.clauses {
		n := c.satisfiedCount(a)
		switch {
		case n < c.lo:
			if n == c.lo-1 {
				for _, l := range c.literals {
					if !l.value(a) {
						out[l.Atom()]++
					}
				}
			}
		case n > c.hi:
			if n == c.hi+1 {
				for _, l := range c.literals {
					if l.value(a) {
						out[l.Atom()]++
					}
				}
			}
		default:
			satisfied++
			if n == c.lo {
				for _, l := range c.literals {
					if l.value(a) {
						out[l.Atom()]--
					}
				}
			}
			if n == c.hi {
				for _, l := range c.literals {
					if !l.value(a) {
						out[l.Atom()]--
					}
				}
			}
		}
	}
	return satisfied
}

// bestCandidates scans score (indices 1..numAtoms-1) and returns the atoms
// at the maximum score, where the baseline max is never allowed to drop
// below 0 — spec.md §9's documented quirk: an untouched atom carries the
// initialized score of 0, and is a valid suggestion whenever no atom scores
// higher. Preserved deliberately, not a bug.
func bestCandidates(score []int, buf []Atom) []Atom {
	buf = buf[:0]
	best := 0
	for a := 1; a < len(score); a++ {
		switch {
		case score[a] > best:
			best = score[a]
			buf = append(buf[:0], Atom(a))
		case score[a] == best:
			buf = append(buf, Atom(a))
		}
	}
	return buf
}

// run executes the flip-search loop until a satisfying assignment is found,
// the failsafe iteration count is reached, or ctx is cancelled.
func (s *search) run(ctx context.Context) (assignment, error) {
	n := s.numAtoms - 1
	a := make(assignment, s.numAtoms)
	a[TrueAtom] = true
	for i := 1; i <= n; i++ {
		a[i] = s.rng.Intn(2) == 1
	}

	total := len(s.clauses)
	score := make([]int, s.numAtoms)
	var candBuf []Atom
	satisfied := s.score(a, score)
	candidates := bestCandidates(score, candBuf)

	w := windowSize(total)
	window := make([]int, w)
	noise := 0.0

	for iter := 0; iter < s.failsafe; iter++ {
		if satisfied == total {
			s.metrics.observeIterations(iter)
			return a, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, &CancelledError{Cause: err}
		}

		random := s.rng.Float64() < noise
		var flip Atom
		if random || len(candidates) == 0 {
			flip = Atom(1 + s.rng.Intn(n))
		} else {
			flip = candidates[s.rng.Intn(len(candidates))]
		}
		a[flip] = !a[flip]

		stalled := true
		for _, v := range window {
			if v < satisfied {
				stalled = false
				break
			}
		}
		if stalled {
			noise = noise + 0.2*(1-noise)
			s.metrics.observeNoiseReset()
		} else {
			noise = noise * 0.95
		}
		window[iter%w] = satisfied

		satisfied = s.score(a, score)
		candBuf = bestCandidates(score, candBuf)
		candidates = candBuf

		s.tracer.Trace(searchStep{
			iteration: iter,
			satisfied: satisfied,
			total:     total,
			noise:     noise,
			flipped:   flip,
			random:    random,
		})
	}
	s.metrics.observeIterations(s.failsafe)
	s.metrics.observeTimeout()
	return nil, &TimeoutError{Iterations: s.failsafe}
}
