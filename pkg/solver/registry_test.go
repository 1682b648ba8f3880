package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryInternArity0(t *testing.T) {
	r := newRegistry()
	assert.NoError(t, r.intern("hasSword", nil))
	lit, err := r.resolve("hasSword")
	assert.NoError(t, err)
	assert.False(t, lit.Negative())
	assert.Equal(t, "hasSword", r.nameOf(lit.Atom()))
}

func TestRegistryInternParameterized(t *testing.T) {
	r := newRegistry()
	err := r.intern("likes", [][]string{{"alice", "bob"}, {"alice", "bob"}})
	assert.NoError(t, err)

	lit, err := r.resolve("likes alice bob")
	assert.NoError(t, err)
	assert.Equal(t, "likes alice bob", r.nameOf(lit.Atom()))

	_, err = r.resolve("likes alice carol")
	assert.Error(t, err)
	var refErr *ReferenceError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "domain", refErr.Reason)
}

func TestRegistryResolveNegation(t *testing.T) {
	r := newRegistry()
	assert.NoError(t, r.intern("hasSword", nil))
	lit, err := r.resolve("!hasSword")
	assert.NoError(t, err)
	assert.True(t, lit.Negative())
}

func TestRegistryIdMonotonicity(t *testing.T) {
	r := newRegistry()
	assert.NoError(t, r.intern("a", nil))
	aLit, _ := r.resolve("a")
	h1 := r.mintAnonymous()
	h2 := r.mintAnonymous()
	assert.Less(t, aLit.Atom(), h1)
	assert.Less(t, h1, h2)
}

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		Name    string
		Prepare func(r *registry)
		Check   func(t *testing.T, r *registry)
	}{
		{
			Name: "malformed attribute name",
			Check: func(t *testing.T, r *registry) {
				err := r.intern("A", nil)
				var gErr *GrammarError
				assert.ErrorAs(t, err, &gErr)
			},
		},
		{
			Name: "malformed attribute name with space",
			Check: func(t *testing.T, r *registry) {
				err := r.intern("b c", nil)
				var gErr *GrammarError
				assert.ErrorAs(t, err, &gErr)
			},
		},
		{
			Name: "attribute name starting with digit",
			Check: func(t *testing.T, r *registry) {
				err := r.intern("1b", nil)
				var gErr *GrammarError
				assert.ErrorAs(t, err, &gErr)
			},
		},
		{
			Name: "arity too high",
			Check: func(t *testing.T, r *registry) {
				err := r.intern("x", [][]string{{"a"}, {"a"}, {"a"}, {"a"}})
				var dErr *DeclarationError
				assert.ErrorAs(t, err, &dErr)
				assert.Equal(t, "arity", dErr.Reason)
			},
		},
		{
			Name: "redeclaration",
			Prepare: func(r *registry) {
				_ = r.intern("p", nil)
			},
			Check: func(t *testing.T, r *registry) {
				err := r.intern("p", nil)
				var dErr *DeclarationError
				assert.ErrorAs(t, err, &dErr)
				assert.Equal(t, "redeclared", dErr.Reason)
			},
		},
		{
			Name: "undeclared predicate",
			Check: func(t *testing.T, r *registry) {
				_, err := r.resolve("ghost")
				var rErr *ReferenceError
				assert.ErrorAs(t, err, &rErr)
				assert.Equal(t, "undeclared", rErr.Reason)
			},
		},
		{
			Name: "capitalised argument",
			Prepare: func(r *registry) {
				_ = r.intern("a", [][]string{{"x", "y"}})
			},
			Check: func(t *testing.T, r *registry) {
				_, err := r.resolve("a Z")
				var gErr *GrammarError
				assert.ErrorAs(t, err, &gErr)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			r := newRegistry()
			if tt.Prepare != nil {
				tt.Prepare(r)
			}
			tt.Check(t, r)
		})
	}
}
