// Package solver holds the backends that actually solve built
// problems. Everything algorithmic (simplex, branch-and-bound)
// belongs to the external libraries behind the Backend interface;
// this package only translates models and statuses.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/logging"
)

var log = logging.Get()

// ErrUnsupported marks problems a backend cannot express, like
// binary variables on a pure LP backend. Callers should pick
// another backend instead of retrying.
var ErrUnsupported = errors.New("problem not supported by this backend")

type Backend interface {
	Name() string

	// Solve runs one blocking solve call. Terminal solver outcomes
	// (infeasible, unbounded, time limit) are reported as statuses
	// on the result, not as errors.
	Solve(ctx context.Context, prob *model.Problem, opts model.SolveOptions) (*model.SolveResult, error)
}

// awaitSolve runs one blocking library call and waits for its
// result, the configured wall-clock limit, or the caller's context,
// whichever ends first. A timed-out call keeps running inside the
// library; its late result is dropped.
func awaitSolve[T any](ctx context.Context, opts model.SolveOptions, solve func() (T, error)) (res T, timedOut bool, err error) {
	solveCtx := ctx
	if opts.TimeLimitSeconds > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx,
			time.Duration(opts.TimeLimitSeconds*float64(time.Second)))
		defer cancel()
	}

	type outcome struct {
		res T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		r, e := solve()
		done <- outcome{res: r, err: e}
	}()

	select {
	case out := <-done:
		return out.res, false, out.err
	case <-solveCtx.Done():
		if err := ctx.Err(); err != nil {
			return res, false, err
		}

		return res, true, nil
	}
}
