// Package dsl is the textual front-end spec.md §1 calls an external
// collaborator: it maps a YAML problem definition to calls against the
// public solver.Problem API and never reaches into pkg/solver internals.
package dsl

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wyrmforge/satgen/pkg/solver"
)

// Definition is the on-disk shape of a problem file.
type Definition struct {
	Attributes  []Attribute  `yaml:"attributes"`
	Constraints []Constraint `yaml:"constraints"`
}

type Attribute struct {
	Name    string     `yaml:"name"`
	Domains [][]string `yaml:"domains"`
}

// Constraint is a tagged union: exactly one field should be set per entry.
// yaml.v3 decodes whichever keys are present; applyConstraint dispatches on
// the first non-nil pointer.
type Constraint struct {
	Quantify     *QuantifyArgs `yaml:"quantify"`
	Exactly      *CountArgs    `yaml:"exactly"`
	AtLeast      *CountArgs    `yaml:"atLeast"`
	AtMost       *CountArgs    `yaml:"atMost"`
	All          *PropsArgs    `yaml:"all"`
	Unique       *PropsArgs    `yaml:"unique"`
	Inconsistent *PairArgs     `yaml:"inconsistent"`
	Assert       *string       `yaml:"assert"`
	Implies      *ImpliesArgs  `yaml:"implies"`
	Equal        *EqualArgs    `yaml:"equal"`
	Rule         *RuleArgs     `yaml:"rule"`
}

type QuantifyArgs struct {
	Lo    float64  `yaml:"lo"`
	Hi    float64  `yaml:"hi"`
	Props []string `yaml:"props"`
}

type CountArgs struct {
	N     float64  `yaml:"n"`
	Props []string `yaml:"props"`
}

type PropsArgs struct {
	Props []string `yaml:"props"`
}

type PairArgs struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

type ImpliesArgs struct {
	Premises   []string `yaml:"premises"`
	Conclusion string   `yaml:"conclusion"`
}

type EqualArgs struct {
	A []string `yaml:"a"`
	B []string `yaml:"b"`
}

type RuleArgs struct {
	Head     string   `yaml:"head"`
	Premises []string `yaml:"premises"`
}

// Load reads and parses a problem definition from path.
func Load(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading problem definition %q", path)
	}
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, errors.Wrapf(err, "parsing problem definition %q", path)
	}
	return &def, nil
}

// Build constructs a solver.Problem from a Definition, applying its
// attribute declarations and constraints in file order.
func Build(def *Definition, options ...solver.Option) (*solver.Problem, error) {
	p, err := solver.New(options...)
	if err != nil {
		return nil, errors.Wrap(err, "constructing problem")
	}
	for _, a := range def.Attributes {
		if err := p.Attribute(a.Name, a.Domains...); err != nil {
			return nil, errors.Wrapf(err, "attribute %q", a.Name)
		}
	}
	for i, c := range def.Constraints {
		if err := applyConstraint(p, c); err != nil {
			return nil, errors.Wrapf(err, "constraint #%d", i)
		}
	}
	return p, nil
}

func applyConstraint(p *solver.Problem, c Constraint) error {
	switch {
	case c.Quantify != nil:
		return p.Quantify(c.Quantify.Lo, c.Quantify.Hi, c.Quantify.Props)
	case c.Exactly != nil:
		return p.Exactly(c.Exactly.N, c.Exactly.Props)
	case c.AtLeast != nil:
		return p.AtLeast(c.AtLeast.N, c.AtLeast.Props)
	case c.AtMost != nil:
		return p.AtMost(c.AtMost.N, c.AtMost.Props)
	case c.All != nil:
		return p.All(c.All.Props)
	case c.Unique != nil:
		return p.Unique(c.Unique.Props)
	case c.Inconsistent != nil:
		return p.Inconsistent(c.Inconsistent.A, c.Inconsistent.B)
	case c.Assert != nil:
		return p.Assert(*c.Assert)
	case c.Implies != nil:
		return p.Implies(c.Implies.Premises, c.Implies.Conclusion)
	case c.Equal != nil:
		return p.Equal(c.Equal.A, c.Equal.B)
	case c.Rule != nil:
		return p.Rule(c.Rule.Head, c.Rule.Premises)
	default:
		return errors.New("constraint entry has no recognized form")
	}
}
