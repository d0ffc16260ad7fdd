package solver

import (
	"fmt"
	"math"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"gonum.org/v1/gonum/mat"
)

// standardForm is a problem lowered to the shape gonum's simplex
// expects: minimize c'x subject to Ax = b, x >= 0. The original
// variables occupy the first numVars columns, slacks the rest.
type standardForm struct {
	c       []float64
	a       *mat.Dense
	b       []float64
	numVars int
	negated bool
}

type standardRow struct {
	coefs map[int]float64
	rhs   float64
}

// lowerToStandard rewrites ranged constraints and finite upper
// bounds into equality rows with slack columns. Variables must be
// continuous with a zero lower bound; the caller screens for that.
func lowerToStandard(prob *model.Problem) (*standardForm, error) {
	n := prob.NumVars()

	for _, v := range prob.Vars {
		if v.Type != model.CONTINUOUS {
			return nil, fmt.Errorf("variable %s: only continuous variables can be lowered", v.Name)
		}
		if v.Lower != 0 {
			return nil, fmt.Errorf("variable %s: lower bound must be zero, got %f", v.Name, v.Lower)
		}
	}

	var rows []standardRow
	nextSlack := n

	addRow := func(terms []model.Term, slackSign float64, rhs float64) {
		coefs := make(map[int]float64)
		for _, term := range terms {
			coefs[term.Var] += term.Coef
		}
		if slackSign != 0 {
			coefs[nextSlack] = slackSign
			nextSlack++
		}
		rows = append(rows, standardRow{coefs: coefs, rhs: rhs})
	}

	for i, v := range prob.Vars {
		if !math.IsInf(v.Upper, 1) {
			addRow([]model.Term{{Var: i, Coef: 1}}, 1, v.Upper)
		}
	}

	for _, con := range prob.Cons {
		lowerFinite := !math.IsInf(con.Lower, -1)
		upperFinite := !math.IsInf(con.Upper, 1)

		switch {
		case !lowerFinite && !upperFinite:
			// free row, nothing to enforce
		case con.IsEquality():
			addRow(con.Terms, 0, con.Upper)
		case upperFinite && !lowerFinite:
			addRow(con.Terms, 1, con.Upper)
		case lowerFinite && !upperFinite:
			addRow(con.Terms, -1, con.Lower)
		default:
			addRow(con.Terms, 1, con.Upper)
			addRow(con.Terms, -1, con.Lower)
		}
	}

	cols := nextSlack

	// gonum's mat package rejects zero-row matrices, so a problem
	// without any enforced row skips the matrix entirely and is
	// resolved trivially by the caller.
	var a *mat.Dense
	b := make([]float64, len(rows))
	if len(rows) > 0 {
		a = mat.NewDense(len(rows), cols, nil)
		for r, row := range rows {
			sign := 1.0
			// simplex phase one wants a non-negative rhs
			if row.rhs < 0 {
				sign = -1
			}
			for col, coef := range row.coefs {
				a.Set(r, col, sign*coef)
			}
			b[r] = sign * row.rhs
		}
	}

	c := make([]float64, cols)
	copy(c, prob.ObjectiveCoefs())

	negated := prob.Sense == model.MAXIMIZE
	if negated {
		for i := range c {
			c[i] = -c[i]
		}
	}

	return &standardForm{
		c:       c,
		a:       a,
		b:       b,
		numVars: n,
		negated: negated,
	}, nil
}
