package solver

import "fmt"

// Atom is a positive integer identifying a boolean variable of the problem.
// Atom 0 is reserved for the constant TRUE literal.
type Atom int

// TrueAtom is the reserved atom that is always assigned true.
const TrueAtom Atom = 0

// Literal is a signed, non-zero reference to an Atom. A positive Literal
// asserts its Atom true; a negative Literal asserts it false. The literal 0
// denotes unconditional truth and only ever appears inside rule-body
// encodings (see encoder.rule).
type Literal int

// LitOf returns the positive Literal for the given Atom.
func LitOf(a Atom) Literal {
	return Literal(a)
}

// NegLitOf returns the negative Literal for the given Atom.
func NegLitOf(a Atom) Literal {
	return -Literal(a)
}

// Atom returns the Atom referenced by the receiver, discarding sign.
func (l Literal) Atom() Atom {
	if l < 0 {
		return Atom(-l)
	}
	return Atom(l)
}

// Negative reports whether the receiver asserts its Atom false.
func (l Literal) Negative() bool {
	return l < 0
}

// Negate returns the Literal referencing the same Atom with the opposite
// sign.
func (l Literal) Negate() Literal {
	return -l
}

// value reports the truth value of the receiver under the given assignment.
func (l Literal) value(a assignment) bool {
	if l == 0 {
		return true
	}
	v := a[l.Atom()]
	if l.Negative() {
		return !v
	}
	return v
}

// clause is a generalized-cardinality clause (lo, hi, literals): satisfied by
// an assignment iff the count of literals assigned true lies in [lo, hi].
// Ordinary CNF clauses are the case lo=1, hi=len(literals).
type clause struct {
	lo, hi   int
	literals []Literal

	// origin renders a human-readable description of the high-level
	// constructor that produced this clause, for showConstraints. Nil for
	// clauses synthesized purely for rule completion.
	origin fmt.Stringer
}

// satisfiedCount returns the number of literals in the clause that are true
// under a.
func (c *clause) satisfiedCount(a assignment) int {
	n := 0
	for _, l := range c.literals {
		if l.value(a) {
			n++
		}
	}
	return n
}

// satisfied reports whether the clause's satisfied-literal count lies in
// [lo, hi] under a.
func (c *clause) satisfied(a assignment) bool {
	n := c.satisfiedCount(a)
	return n >= c.lo && n <= c.hi
}

// assignment is a total function over atoms 0..N. assignment[0] is always
// true.
type assignment []bool
