package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreCheckpointTruncation(t *testing.T) {
	s := newStore()
	s.add(&clause{lo: 1, hi: 1, literals: []Literal{LitOf(1)}})
	assert.Len(t, s.clauses, 1)

	ck := s.checkpoint()
	assert.Equal(t, 1, ck)
	s.clauses = append(s.clauses, &clause{lo: 1, hi: 1, literals: []Literal{LitOf(2)}})
	assert.Len(t, s.clauses, 2)

	// A subsequent mutation truncates the completion clause appended after
	// the checkpoint before adding the new one.
	s.add(&clause{lo: 1, hi: 1, literals: []Literal{LitOf(3)}})
	assert.Len(t, s.clauses, 2)
	assert.Equal(t, Literal(3), s.clauses[1].literals[0])
}

func TestStoreAddJustificationOrder(t *testing.T) {
	s := newStore()
	s.addJustification(Atom(5), LitOf(1))
	s.addJustification(Atom(3), LitOf(2))
	s.addJustification(Atom(5), LitOf(4))

	assert.Equal(t, []Atom{5, 3}, s.ruleOrder)
	assert.Equal(t, []Literal{LitOf(1), LitOf(4)}, s.rules[5])
	assert.Equal(t, []Literal{LitOf(2)}, s.rules[3])
}
