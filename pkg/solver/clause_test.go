package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralValue(t *testing.T) {
	a := assignment{true, true, false}

	tests := []struct {
		Name string
		Lit  Literal
		Want bool
	}{
		{"true atom", LitOf(1), true},
		{"false atom", LitOf(2), false},
		{"negated true atom", NegLitOf(1), false},
		{"negated false atom", NegLitOf(2), true},
		{"unconditional truth", Literal(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, tt.Lit.value(a))
		})
	}
}

func TestLiteralAtomAndNegate(t *testing.T) {
	l := NegLitOf(7)
	assert.Equal(t, Atom(7), l.Atom())
	assert.True(t, l.Negative())
	assert.Equal(t, LitOf(7), l.Negate())
}

func TestClauseSatisfied(t *testing.T) {
	a := assignment{true, true, true, true}
	c := &clause{lo: 1, hi: 2, literals: []Literal{LitOf(1), LitOf(2), LitOf(3)}}
	assert.Equal(t, 3, c.satisfiedCount(a))
	assert.False(t, c.satisfied(a))

	c2 := &clause{lo: 1, hi: 3, literals: []Literal{LitOf(1), NegLitOf(3)}}
	assert.Equal(t, 1, c2.satisfiedCount(a))
	assert.True(t, c2.satisfied(a))
}
