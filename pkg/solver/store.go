package solver

// store is the constraint store (spec.md §4.2): an append-only sequence of
// cardinality clauses plus the rule-justification map. nonRuleCheckpoint
// records the clause count immediately before rule-completion clauses were
// appended by the last solve, so that a subsequent mutation can truncate
// them before appending new user constraints.
type store struct {
	clauses []*clause
	// rules maps a rule head Atom to its ordered justification literals.
	rules map[Atom][]Literal
	// ruleOrder preserves the order in which heads were first used, so
	// rule completion and showConstraints are deterministic.
	ruleOrder []Atom

	nonRuleCheckpoint *int
}

func newStore() *store {
	return &store{
		rules: make(map[Atom][]Literal),
	}
}

// truncateToCheckpoint drops any rule-completion clauses appended since the
// last solve, per spec.md §4.2's "preserves the invariant" rule. Called
// before every mutating operation.
func (s *store) truncateToCheckpoint() {
	if s.nonRuleCheckpoint == nil {
		return
	}
	s.clauses = s.clauses[:*s.nonRuleCheckpoint]
	s.nonRuleCheckpoint = nil
}

// add appends a clause produced by a high-level constructor.
func (s *store) add(c *clause) {
	s.truncateToCheckpoint()
	s.clauses = append(s.clauses, c)
}

// addJustification records a rule justification for the given head,
// truncating any pending rule-completion clauses first.
func (s *store) addJustification(head Atom, j Literal) {
	s.truncateToCheckpoint()
	if _, ok := s.rules[head]; !ok {
		s.ruleOrder = append(s.ruleOrder, head)
	}
	s.rules[head] = append(s.rules[head], j)
}

// checkpoint marks the current clause count as the boundary before rule
// completion is applied, and returns it so the caller can append
// completion clauses after it.
func (s *store) checkpoint() int {
	n := len(s.clauses)
	s.nonRuleCheckpoint = &n
	return n
}
