package solver

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Problem is the public entry point: an identifier registry, a constraint
// store, and the encoder that compiles high-level constructors into
// cardinality clauses, bundled the way the teacher's solver struct bundles
// a gini instance with its litMapping (solve.go).
type Problem struct {
	id    string
	reg   *registry
	store *store
	enc   *encoder

	rng      *rand.Rand
	failsafe int
	log      logrus.FieldLogger
	tracer   SearchTracer
	metrics  *Metrics
}

// New constructs an empty Problem, applying options over the built-in
// defaults exactly as the teacher's New(options ...Option) does in
// solve.go.
func New(options ...Option) (*Problem, error) {
	p := &Problem{
		id:    uuid.New().String(),
		reg:   newRegistry(),
		store: newStore(),
	}
	p.enc = &encoder{reg: p.reg, store: p.store}
	for _, option := range append(options, defaults...) {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	p.log = p.log.WithField("problem_id", p.id)
	return p, nil
}

// Attribute declares a named attribute, optionally parameterized by one
// finite domain per argument position (arity 0-3). See spec.md §4.1, §6.
func (p *Problem) Attribute(name string, domains ...[]string) error {
	if err := p.reg.intern(name, domains); err != nil {
		return err
	}
	p.log.WithField("attribute", name).Debug("declared attribute")
	return nil
}

// Quantify emits (max(0,ceil(lo)), min(|props|,floor(hi)), props) after
// validating the band is neither vacuous nor infeasible. spec.md §4.3.
func (p *Problem) Quantify(lo, hi float64, props []string) error {
	return p.enc.quantify(lo, hi, props)
}

// Exactly requires exactly n of props to hold. n must be an integer.
func (p *Problem) Exactly(n float64, props []string) error {
	return p.enc.exactly(n, props)
}

// AtLeast requires at least n of props to hold. n must be an integer.
func (p *Problem) AtLeast(n float64, props []string) error {
	return p.enc.atLeast(n, props)
}

// AtMost requires at most n of props to hold. n must be an integer.
func (p *Problem) AtMost(n float64, props []string) error {
	return p.enc.atMost(n, props)
}

// All requires every proposition in props to hold.
func (p *Problem) All(props []string) error {
	return p.enc.all(props)
}

// Unique requires exactly one proposition in props to hold.
func (p *Problem) Unique(props []string) error {
	return p.enc.unique(props)
}

// Inconsistent forbids a and b from both holding.
func (p *Problem) Inconsistent(a, b string) error {
	return p.enc.inconsistent(a, b)
}

// Assert requires prop to hold.
func (p *Problem) Assert(prop string) error {
	return p.enc.assert(prop)
}

// Implies requires conclusion to hold whenever every premise holds.
func (p *Problem) Implies(premises []string, conclusion string) error {
	return p.enc.implies(premises, conclusion)
}

// Equal requires the conjunction of a to hold iff the conjunction of b
// holds.
func (p *Problem) Equal(a, b []string) error {
	return p.enc.equal(a, b)
}

// Rule declares a stable-model-style definitional rule: conclusion holds
// when justified by this (among possibly other) rule bodies, completed at
// solve time. spec.md §4.3.
func (p *Problem) Rule(conclusion string, premises []string) error {
	return p.enc.rule(conclusion, premises)
}

// Solve runs the stochastic local search to a satisfying assignment,
// applying solve-time rule completion first. Returns a TimeoutError if the
// failsafe is reached, or a CancelledError if ctx is done first.
func (p *Problem) Solve(ctx context.Context) (*Solution, error) {
	p.store.truncateToCheckpoint()
	p.store.checkpoint()
	p.enc.completeRules()

	se := newSearch(p.store.clauses, p.reg.size(), p.failsafe, p.rng, p.tracer, p.metrics)

	start := time.Now()
	a, err := se.run(ctx)
	p.metrics.observeDuration(time.Since(start).Seconds())
	if err != nil {
		p.log.WithError(err).Info("solve did not converge")
		return nil, err
	}
	p.log.Info("solve converged")
	return newSolution(a, p.reg), nil
}

// ShowConstraints renders every stored clause in terms of the high-level
// constructor that produced it, for diagnostics; clauses with no originating
// constructor (rule-completion clauses) are printed raw as
// clause(lo,hi,literals). One line per rule head lists its justifications.
// spec.md §6; format grounded on the teacher's AppliedConstraint.String()/
// LoggingTracer idiom.
func (p *Problem) ShowConstraints() string {
	var b strings.Builder
	for _, c := range p.store.clauses {
		if c.origin != nil {
			fmt.Fprintf(&b, "%s\n", c.origin)
			continue
		}
		fmt.Fprintf(&b, "clause(%d,%d,%v)\n", c.lo, c.hi, c.literals)
	}
	heads := make([]Atom, 0, len(p.store.ruleOrder))
	heads = append(heads, p.store.ruleOrder...)
	sort.Slice(heads, func(i, j int) bool { return heads[i] < heads[j] })
	for _, h := range heads {
		name := p.reg.nameOf(h)
		if name == "" {
			name = fmt.Sprintf("#%d", h)
		}
		fmt.Fprintf(&b, "rule head %s justified by %v\n", name, p.store.rules[h])
	}
	return b.String()
}
