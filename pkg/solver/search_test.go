package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		Clauses int
		Want    int
	}{
		{0, 3},
		{6, 3},
		{7, 3},
		{12, 3},
		{13, 3},
		{18, 3},
		{19, 4},
		{36, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.Want, windowSize(tt.Clauses))
	}
}

// TestBestCandidatesIncludesZeroBaseline locks in spec.md §9's documented
// quirk: when no atom scores above 0, every untouched (score==0) atom is a
// valid suggestion candidate.
func TestBestCandidatesIncludesZeroBaseline(t *testing.T) {
	score := []int{0, -3, 0, -1, 0}
	got := bestCandidates(score, nil)
	assert.ElementsMatch(t, []Atom{2, 4}, got)
}

func TestBestCandidatesPositiveScore(t *testing.T) {
	score := []int{0, 1, 3, 3, 0}
	got := bestCandidates(score, nil)
	assert.ElementsMatch(t, []Atom{2, 3}, got)
}

// TestSearchSolvesSmallInstance exercises the search loop directly against
// a hand-built clause set: exactly one of {1,2} must hold.
func TestSearchSolvesSmallInstance(t *testing.T) {
	clauses := []*clause{
		{lo: 1, hi: 1, literals: []Literal{LitOf(1), LitOf(2)}},
	}
	se := newSearch(clauses, 3, defaultFailsafe, rand.New(rand.NewSource(42)), nil, nil)
	a, err := se.run(context.Background())
	assert.NoError(t, err)
	assert.True(t, a[1] != a[2])
}

func TestSearchRespectsCancellation(t *testing.T) {
	clauses := []*clause{
		{lo: 2, hi: 2, literals: []Literal{LitOf(1), LitOf(2)}},
		{lo: 0, hi: 0, literals: []Literal{LitOf(1), LitOf(2)}},
	}
	se := newSearch(clauses, 3, defaultFailsafe, rand.New(rand.NewSource(1)), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := se.run(ctx)
	var cancelErr *CancelledError
	assert.ErrorAs(t, err, &cancelErr)
}
