package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SimplexBackend solves continuous LPs in process with gonum's
// simplex. It has no integer support; the time limit is enforced
// around the call, gap and focus knobs are ignored with a notice.
type SimplexBackend struct {
	tol float64
}

func NewSimplexBackend() *SimplexBackend {
	return &SimplexBackend{}
}

func (s *SimplexBackend) Name() string {
	return "simplex"
}

func (s *SimplexBackend) Solve(ctx context.Context, prob *model.Problem, opts model.SolveOptions) (*model.SolveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if prob.HasIntegerVars() {
		return nil, fmt.Errorf("%s has binary variables: %w", prob.Name, ErrUnsupported)
	}

	if opts.RelativeGap > 0 || opts.Focus != model.FOCUS_BALANCE {
		log.Debug().Msgf("simplex backend ignores gap and focus options for %s", prob.Name)
	}

	std, err := lowerToStandard(prob)
	if err != nil {
		return nil, fmt.Errorf("could not lower %s: %w", prob.Name, err)
	}

	if len(std.b) == 0 {
		return solveTrivial(std), nil
	}

	out, timedOut, err := awaitSolve(ctx, opts, func() (simplexOutcome, error) {
		opt, x, err := lp.Simplex(std.c, std.a, std.b, s.tol, nil)
		return simplexOutcome{opt: opt, x: x}, err
	})
	if timedOut {
		return &model.SolveResult{Status: model.TIME_LIMIT}, nil
	}

	switch {
	case err == nil:
		objective := out.opt
		if std.negated {
			objective = -objective
		}

		values := make([]float64, std.numVars)
		copy(values, out.x[:std.numVars])

		return &model.SolveResult{
			Status:    model.OPTIMAL,
			Objective: objective,
			Values:    values,
		}, nil

	case errors.Is(err, lp.ErrInfeasible):
		return &model.SolveResult{Status: model.INFEASIBLE}, nil

	case errors.Is(err, lp.ErrUnbounded):
		return &model.SolveResult{Status: model.UNBOUNDED}, nil

	default:
		return nil, fmt.Errorf("simplex failed on %s: %w", prob.Name, err)
	}
}

type simplexOutcome struct {
	opt float64
	x   []float64
}

// solveTrivial resolves a problem that lowered to no rows at all:
// every variable sits at its zero lower bound with nothing above
// it, so any improving objective direction runs off to infinity.
func solveTrivial(std *standardForm) *model.SolveResult {
	for _, coef := range std.c {
		if coef < 0 {
			return &model.SolveResult{Status: model.UNBOUNDED}
		}
	}

	return &model.SolveResult{
		Status: model.OPTIMAL,
		Values: make([]float64, std.numVars),
	}
}
