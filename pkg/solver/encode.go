package solver

import (
	"fmt"
	"math"
	"strings"
)

// encoder compiles the high-level constructors of spec.md §4.3 into
// cardinality clauses against a registry and store. It holds no state of
// its own beyond references to its collaborators, mirroring the teacher's
// litMapping-as-pure-translator discipline.
type encoder struct {
	reg   *registry
	store *store
}

// resolveAll resolves a slice of proposition texts to literals, stopping at
// the first error.
func (e *encoder) resolveAll(props []string) ([]Literal, error) {
	lits := make([]Literal, len(props))
	for i, p := range props {
		l, err := e.reg.resolve(p)
		if err != nil {
			return nil, err
		}
		lits[i] = l
	}
	return lits, nil
}

// quantifyOrigin renders the originating call for showConstraints.
type quantifyOrigin struct {
	name     string
	lo, hi   float64
	props    []string
}

func (o quantifyOrigin) String() string {
	return fmt.Sprintf("%s(%v, %v, [%s])", o.name, o.lo, o.hi, strings.Join(o.props, ", "))
}

// quantify is the base constructor: spec.md §4.3.
func (e *encoder) quantify(lo, hi float64, props []string) error {
	return e.quantifyNamed("quantify", lo, hi, props)
}

func (e *encoder) quantifyNamed(name string, lo, hi float64, props []string) error {
	n := len(props)

	if hi < 0 {
		return &InfeasibilityError{Constructor: name, Detail: "hi must be non-negative"}
	}
	loCeil := math.Ceil(lo)
	hiFloor := math.Floor(hi)
	if loCeil > hiFloor {
		return &InfeasibilityError{Constructor: name, Detail: "lo exceeds hi"}
	}
	if lo > float64(n) {
		return &InfeasibilityError{Constructor: name, Detail: "lo exceeds the number of propositions"}
	}
	if lo <= 0 && hi >= float64(n) {
		return &VacuityError{Constructor: name, Detail: "bounds admit every possible count"}
	}

	lits, err := e.resolveAll(props)
	if err != nil {
		return err
	}

	clampedLo := int(math.Max(0, loCeil))
	clampedHi := int(math.Min(float64(n), hiFloor))
	e.store.add(&clause{
		lo:       clampedLo,
		hi:       clampedHi,
		literals: lits,
		origin:   quantifyOrigin{name: name, lo: lo, hi: hi, props: props},
	})
	return nil
}

func requireInteger(name string, n float64) error {
	if n != math.Trunc(n) {
		return &InfeasibilityError{Constructor: name, Detail: fmt.Sprintf("%v is not an integer", n)}
	}
	return nil
}

// exactly(n, P) ≡ quantify(n, n, P), with n required to be an integer.
func (e *encoder) exactly(n float64, props []string) error {
	if err := requireInteger("exactly", n); err != nil {
		return err
	}
	return e.quantifyNamed("exactly", n, n, props)
}

// atLeast(n, P) ≡ quantify(n, |P|, P), with n required to be an integer.
func (e *encoder) atLeast(n float64, props []string) error {
	if err := requireInteger("atLeast", n); err != nil {
		return err
	}
	return e.quantifyNamed("atLeast", n, float64(len(props)), props)
}

// atMost(n, P) ≡ quantify(0, n, P), with n required to be an integer.
func (e *encoder) atMost(n float64, props []string) error {
	if err := requireInteger("atMost", n); err != nil {
		return err
	}
	return e.quantifyNamed("atMost", 0, n, props)
}

// all(P) ≡ quantify(|P|, |P|, P).
func (e *encoder) all(props []string) error {
	n := float64(len(props))
	return e.quantifyNamed("all", n, n, props)
}

// unique(P) ≡ quantify(1, 1, P), except unique([]) is a ShapeError rather
// than the InfeasibilityError quantify(1,1,[]) would otherwise produce
// (spec.md §7).
func (e *encoder) unique(props []string) error {
	if len(props) == 0 {
		return &ShapeError{Constructor: "unique", Reason: "requires at least one proposition"}
	}
	return e.quantifyNamed("unique", 1, 1, props)
}

// inconsistent(a, b) ≡ atMost(1, [a, b]): at most one of a, b holds.
func (e *encoder) inconsistent(a, b string) error {
	return e.quantifyNamed("inconsistent", 0, 1, []string{a, b})
}

// assert(p) ≡ all([p]).
func (e *encoder) assert(p string) error {
	return e.all([]string{p})
}

type impliesOrigin struct {
	premises   []string
	conclusion string
}

func (o impliesOrigin) String() string {
	return fmt.Sprintf("implies([%s], %s)", strings.Join(o.premises, ", "), o.conclusion)
}

// implies(premises, conclusion) emits a single CNF clause
// (1, k+1, [-p1,...,-pk, c]).
func (e *encoder) implies(premises []string, conclusion string) error {
	pLits, err := e.resolveAll(premises)
	if err != nil {
		return err
	}
	cLit, err := e.reg.resolve(conclusion)
	if err != nil {
		return err
	}
	lits := make([]Literal, 0, len(pLits)+1)
	for _, p := range pLits {
		lits = append(lits, p.Negate())
	}
	lits = append(lits, cLit)
	e.store.add(&clause{
		lo:       1,
		hi:       len(lits),
		literals: lits,
		origin:   impliesOrigin{premises: premises, conclusion: conclusion},
	})
	return nil
}

type iffOrigin struct {
	premises   []string
	conclusion Atom
}

func (o iffOrigin) String() string {
	return fmt.Sprintf("iff([%s], #%d)", strings.Join(o.premises, ", "), o.conclusion)
}

// iff emits, for each premise p_i, the binary clause (1,2,[p_i,-c]) (c
// implies p_i), plus one clause (1,k+1,[-p1,...,-pk,c]) (the premises imply
// c). conclusion carries its own sign, so a negated singleton proposition
// (e.g. "!hasShield") is honored rather than collapsed to its positive atom.
// Private helper used by equal and rule (spec.md §4.3).
func (e *encoder) iff(premiseTexts []string, conclusion Literal) error {
	premiseLits, err := e.resolveAll(premiseTexts)
	if err != nil {
		return err
	}
	return e.iffLits(premiseTexts, premiseLits, conclusion)
}

func (e *encoder) iffLits(premiseTexts []string, premiseLits []Literal, conclusion Literal) error {
	for _, p := range premiseLits {
		e.store.add(&clause{
			lo:       1,
			hi:       2,
			literals: []Literal{p, conclusion.Negate()},
			origin:   iffOrigin{premises: premiseTexts, conclusion: conclusion.Atom()},
		})
	}
	lits := make([]Literal, 0, len(premiseLits)+1)
	for _, p := range premiseLits {
		lits = append(lits, p.Negate())
	}
	lits = append(lits, conclusion)
	e.store.add(&clause{
		lo:       1,
		hi:       len(lits),
		literals: lits,
		origin:   iffOrigin{premises: premiseTexts, conclusion: conclusion.Atom()},
	})
	return nil
}

// equal compiles A <-> B for conjunctive proposition lists A, B (spec.md
// §4.3).
func (e *encoder) equal(a, b []string) error {
	switch {
	case len(a) == 0 && len(b) == 0:
		return &ShapeError{Constructor: "equal", Reason: "both sides empty"}
	case len(a) == 0:
		return e.all(b)
	case len(b) == 0:
		return e.all(a)
	case len(a) == 1 && len(b) == 1:
		al, err := e.reg.resolve(a[0])
		if err != nil {
			return err
		}
		bl, err := e.reg.resolve(b[0])
		if err != nil {
			return err
		}
		o := iffOrigin{premises: []string{a[0], b[0]}}
		e.store.add(&clause{lo: 1, hi: 2, literals: []Literal{al.Negate(), bl}, origin: o})
		e.store.add(&clause{lo: 1, hi: 2, literals: []Literal{bl.Negate(), al}, origin: o})
		return nil
	case len(a) == 1:
		al, err := e.reg.resolve(a[0])
		if err != nil {
			return err
		}
		return e.iff(b, al)
	case len(b) == 1:
		bl, err := e.reg.resolve(b[0])
		if err != nil {
			return err
		}
		return e.iff(a, bl)
	default:
		h := e.reg.mintAnonymous()
		if err := e.iff(a, LitOf(h)); err != nil {
			return err
		}
		return e.iff(b, LitOf(h))
	}
}

// rule(conclusion, premises) emits the implication premises -> conclusion
// and records a justification for conclusion keyed by its head atom (spec.md
// §4.3).
func (e *encoder) rule(conclusion string, premises []string) error {
	if strings.HasPrefix(conclusion, "!") {
		return &ShapeError{Constructor: "rule", Reason: "conclusion must not be negated"}
	}
	cLit, err := e.reg.resolve(conclusion)
	if err != nil {
		return err
	}
	premiseLits, err := e.resolveAll(premises)
	if err != nil {
		return err
	}

	lits := make([]Literal, 0, len(premiseLits)+1)
	for _, p := range premiseLits {
		lits = append(lits, p.Negate())
	}
	lits = append(lits, cLit)
	e.store.add(&clause{
		lo:       1,
		hi:       len(lits),
		literals: lits,
		origin:   impliesOrigin{premises: premises, conclusion: conclusion},
	})

	head := cLit.Atom()
	switch len(premiseLits) {
	case 0:
		e.store.addJustification(head, 0)
	case 1:
		e.store.addJustification(head, premiseLits[0])
	default:
		h := e.reg.mintAnonymous()
		if err := e.iffLits(premises, premiseLits, LitOf(h)); err != nil {
			return err
		}
		e.store.addJustification(head, LitOf(h))
	}
	return nil
}

// completeRules appends, for every rule head h with justifications
// j1,...,jk, the clause (1, k+1, [-h, j1, ..., jk]) — classical iff-
// completion of the rule set (spec.md §4.3, "Rule completion").
func (e *encoder) completeRules() {
	for _, h := range e.store.ruleOrder {
		js := e.store.rules[h]
		lits := make([]Literal, 0, len(js)+1)
		lits = append(lits, NegLitOf(h))
		lits = append(lits, js...)
		e.store.clauses = append(e.store.clauses, &clause{
			lo:       1,
			hi:       len(lits),
			literals: lits,
		})
	}
}
