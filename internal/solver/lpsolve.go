package solver

import (
	"context"
	"fmt"
	"math"
	"strings"

	golpa "github.com/costela/golpa"
	"github.com/jixinwang95/mban-orientation/internal/model"
)

// LPSolveBackend hands problems to the external lp_solve library
// through golpa. Unlike the simplex backend it accepts binary
// variables; lp_solve runs its own branch-and-bound over them.
type LPSolveBackend struct{}

func NewLPSolveBackend() *LPSolveBackend {
	return &LPSolveBackend{}
}

func (b *LPSolveBackend) Name() string {
	return "lpsolve"
}

func (b *LPSolveBackend) Solve(ctx context.Context, prob *model.Problem, opts model.SolveOptions) (*model.SolveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.RelativeGap > 0 || opts.Focus != model.FOCUS_BALANCE {
		// golpa does not surface lp_solve's gap and focus parameters
		log.Warn().Msgf("lpsolve backend ignores gap and focus options for %s", prob.Name)
	}

	direction := golpa.Minimize
	if prob.Sense == model.MAXIMIZE {
		direction = golpa.Maximize
	}

	gm := golpa.NewModel(prob.Name, direction)
	objCoefs := prob.ObjectiveCoefs()

	gvars := make([]*golpa.Variable, prob.NumVars())
	for i, v := range prob.Vars {
		varType := golpa.ContinuousVariable
		if v.Type == model.BINARY {
			varType = golpa.BinaryVariable
		}

		gv, err := gm.AddDefinedVariable(v.Name, varType, objCoefs[i], v.Lower, v.Upper)
		if err != nil {
			return nil, fmt.Errorf("could not add variable %s: %w", v.Name, err)
		}
		gvars[i] = gv
	}

	for _, con := range prob.Cons {
		if math.IsInf(con.Lower, -1) && math.IsInf(con.Upper, 1) {
			continue
		}

		rowVars := make([]*golpa.Variable, len(con.Terms))
		rowCoefs := make([]float64, len(con.Terms))
		for k, term := range con.Terms {
			rowVars[k] = gvars[term.Var]
			rowCoefs[k] = term.Coef
		}

		if err := gm.AddConstraint(con.Lower, con.Upper, rowVars, rowCoefs); err != nil {
			return nil, fmt.Errorf("could not add constraint %s: %w", con.Name, err)
		}
	}

	res, timedOut, err := awaitSolve(ctx, opts, gm.Solve)
	if timedOut {
		return &model.SolveResult{Status: model.TIME_LIMIT}, nil
	}
	if err != nil {
		if status, ok := classifySolveError(err); ok {
			return &model.SolveResult{Status: status}, nil
		}

		return nil, fmt.Errorf("lp_solve failed on %s: %w", prob.Name, err)
	}

	status := model.UNKNOWN
	if res.GetStatus() == golpa.SolutionOptimal {
		status = model.OPTIMAL
	}

	values := make([]float64, len(gvars))
	for i, gv := range gvars {
		values[i] = res.GetValue(gv)
	}

	return &model.SolveResult{
		Status:    status,
		Objective: res.GetObjectiveValue(),
		Values:    values,
	}, nil
}

// classifySolveError maps lp_solve's terminal outcomes, which golpa
// reports as errors, back to plain statuses.
func classifySolveError(err error) (model.Status, bool) {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "infeasible"):
		return model.INFEASIBLE, true
	case strings.Contains(msg, "unbounded"):
		return model.UNBOUNDED, true
	case strings.Contains(msg, "timeout"):
		return model.TIME_LIMIT, true
	default:
		return model.UNKNOWN, false
	}
}
