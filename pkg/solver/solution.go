package solver

import "sort"

// Solution is an immutable snapshot of a satisfying assignment plus a
// reference to the registry that named its atoms, per spec.md §5: "A
// completed solution object holds an immutable snapshot of the assignment
// and a reference to the identifier registry."
type Solution struct {
	assignment assignment
	reg        *registry
	// size freezes the registry's atom count at solve time, so lookups for
	// attributes minted afterwards are rejected rather than silently
	// answered against a registry that has since grown.
	size int
}

func newSolution(a assignment, reg *registry) *Solution {
	return &Solution{assignment: a, reg: reg, size: reg.size()}
}

// TrueAttributes returns the lexicographically sorted list of named
// attributes assigned true, excluding anonymous solver-internal atoms.
func (s *Solution) TrueAttributes() []string {
	var names []string
	for a := Atom(1); int(a) < s.size; a++ {
		if !s.assignment[a] {
			continue
		}
		name := s.reg.nameOf(a)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the truth value of the named proposition, or a
// StaleLookupError if it did not exist when this Solution was produced.
func (s *Solution) Lookup(proposition string) (bool, error) {
	lit, err := s.reg.resolve(proposition)
	if err != nil {
		return false, err
	}
	if int(lit.Atom()) >= s.size {
		return false, &StaleLookupError{Name: proposition}
	}
	return lit.value(s.assignment), nil
}
