// Package opt builds declarative optimization models. A Builder
// only accumulates variable and constraint specs; the immutable
// model.Problem is materialized on Build, so formulations can be
// inspected and tested without touching any solver.
package opt

import (
	"fmt"
	"math"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/logging"
)

var log = logging.Get()

// Var is a handle to a variable registered on a Builder.
type Var int

type Builder struct {
	name  string
	sense model.Sense

	vars     []model.Variable
	cons     []model.Constraint
	obj      []model.Term
	varNames map[string]bool
}

func NewBuilder(name string, sense model.Sense) *Builder {
	return &Builder{
		name:     name,
		sense:    sense,
		varNames: make(map[string]bool),
	}
}

// Continuous registers a variable with domain lower <= x <= upper.
// Use math.Inf(1) for an unbounded upper end.
func (b *Builder) Continuous(name string, lower, upper float64) Var {
	b.vars = append(b.vars, model.Variable{
		Name:  name,
		Type:  model.CONTINUOUS,
		Lower: lower,
		Upper: upper,
	})

	return Var(len(b.vars) - 1)
}

// Binary registers a {0,1} decision variable.
func (b *Builder) Binary(name string) Var {
	b.vars = append(b.vars, model.Variable{
		Name:  name,
		Type:  model.BINARY,
		Lower: 0,
		Upper: 1,
	})

	return Var(len(b.vars) - 1)
}

// T builds one linear term for Constraint and Objective calls.
func T(v Var, coef float64) model.Term {
	return model.Term{Var: int(v), Coef: coef}
}

func (b *Builder) Constraint(name string, lower, upper float64, terms ...model.Term) {
	b.cons = append(b.cons, model.Constraint{
		Name:  name,
		Lower: lower,
		Upper: upper,
		Terms: terms,
	})
}

func (b *Builder) Objective(terms ...model.Term) {
	b.obj = append(b.obj, terms...)
}

// Build validates the accumulated specs and materializes them.
// The builder stays usable afterwards, but mutating it does not
// affect already built problems.
func (b *Builder) Build() (*model.Problem, error) {
	for i, v := range b.vars {
		if v.Name == "" {
			return nil, fmt.Errorf("variable %d has no name", i)
		}
		if b.varNames[v.Name] {
			return nil, fmt.Errorf("duplicate variable name %s", v.Name)
		}
		b.varNames[v.Name] = true

		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || v.Lower > v.Upper {
			return nil, fmt.Errorf("variable %s has invalid bounds [%f, %f]", v.Name, v.Lower, v.Upper)
		}
	}
	// reset so Build can be called again
	for name := range b.varNames {
		delete(b.varNames, name)
	}

	for _, con := range b.cons {
		if math.IsNaN(con.Lower) || math.IsNaN(con.Upper) || con.Lower > con.Upper {
			return nil, fmt.Errorf("constraint %s has invalid bounds [%f, %f]", con.Name, con.Lower, con.Upper)
		}
		if math.IsInf(con.Lower, -1) && math.IsInf(con.Upper, 1) {
			log.Warn().Msgf("constraint %s is unbounded on both sides and has no effect", con.Name)
		}
		for _, term := range con.Terms {
			if term.Var < 0 || term.Var >= len(b.vars) {
				return nil, fmt.Errorf("constraint %s references unknown variable %d", con.Name, term.Var)
			}
		}
	}

	for _, term := range b.obj {
		if term.Var < 0 || term.Var >= len(b.vars) {
			return nil, fmt.Errorf("objective references unknown variable %d", term.Var)
		}
	}

	prob := &model.Problem{
		Name:      b.name,
		Sense:     b.sense,
		Vars:      append([]model.Variable(nil), b.vars...),
		Cons:      append([]model.Constraint(nil), b.cons...),
		Objective: append([]model.Term(nil), b.obj...),
	}

	return prob, nil
}
