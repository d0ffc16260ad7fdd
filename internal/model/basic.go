package model

import "math"

type VarType int

const (
	CONTINUOUS VarType = iota
	BINARY
)

type Sense int

const (
	MINIMIZE Sense = iota
	MAXIMIZE
)

type Variable struct {
	Name  string
	Type  VarType
	Lower float64
	Upper float64
}

// Term is one linear coefficient attached to the variable
// with the given index inside a Problem.
type Term struct {
	Var  int
	Coef float64
}

// Constraint is a ranged linear row: Lower <= sum(Coef*x) <= Upper.
// Use -Inf/+Inf for one-sided rows and Lower == Upper for equalities.
type Constraint struct {
	Name  string
	Lower float64
	Upper float64
	Terms []Term
}

// Problem is a fully declarative optimization model. It holds no
// solver state: backends read it and build their own sessions.
type Problem struct {
	Name      string
	Sense     Sense
	Vars      []Variable
	Cons      []Constraint
	Objective []Term
}

func (p *Problem) NumVars() int {
	return len(p.Vars)
}

func (p *Problem) NumCons() int {
	return len(p.Cons)
}

func (p *Problem) HasIntegerVars() bool {
	for _, v := range p.Vars {
		if v.Type == BINARY {
			return true
		}
	}

	return false
}

// ObjectiveCoefs expands the sparse objective into one dense
// coefficient per variable.
func (p *Problem) ObjectiveCoefs() []float64 {
	coefs := make([]float64, len(p.Vars))
	for _, term := range p.Objective {
		coefs[term.Var] += term.Coef
	}

	return coefs
}

func (c *Constraint) IsEquality() bool {
	return !math.IsInf(c.Lower, 0) && c.Lower == c.Upper
}
