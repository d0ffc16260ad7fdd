package solver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/internal/model/testing_tool"
	"github.com/jixinwang95/mban-orientation/opt"
)

func TestSimplexTransportation(t *testing.T) {
	inst := testing_tool.Transport(&testing_tool.TransportDesc{
		Supplies: []float64{1000, 4000},
		Demands:  []float64{500, 900, 1800, 200, 700},
		Costs: [][]float64{
			{2, 4, 5, 2, 1},
			{3, 1, 3, 2, 3},
		},
	})

	prob, err := opt.Transportation(inst)
	if err != nil {
		t.Fatalf("formulation failed: %v", err)
	}

	res, err := NewSimplexBackend().Solve(context.Background(), prob, model.SolveOptions{})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	testing_tool.Expect(res, testing_tool.ResultDesc{
		Status:    model.OPTIMAL,
		Objective: 8600,
		Tol:       1e-6,
	})

	if err := opt.VerifyTransportPlan(inst, res.Values, 1e-6); err != nil {
		t.Fatalf("optimal plan is not feasible: %v", err)
	}
	if got := opt.PlanCost(inst, res.Values); !testing_tool.Close(got, 8600, 1e-6) {
		t.Fatalf("plan cost %f does not match reported objective", got)
	}
}

func TestSimplexInfeasibleWhenDemandExceedsSupply(t *testing.T) {
	inst := testing_tool.Transport(&testing_tool.TransportDesc{
		Supplies: []float64{10, 10},
		Demands:  []float64{15, 15},
		Costs:    [][]float64{{1, 2}, {3, 4}},
	})

	prob, err := opt.Transportation(inst)
	if err != nil {
		t.Fatalf("formulation failed: %v", err)
	}

	res, err := NewSimplexBackend().Solve(context.Background(), prob, model.SolveOptions{})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if res.Status != model.INFEASIBLE {
		t.Fatalf("got status %v, wanted infeasible", res.Status)
	}
}

func TestSimplexSmallPrograms(t *testing.T) {
	backend := NewSimplexBackend()
	ctx := context.Background()

	t.Run("MaximizeWithUpperBound", func(t *testing.T) {
		builder := opt.NewBuilder("bounded", model.MAXIMIZE)
		x := builder.Continuous("x", 0, 40)
		builder.Objective(opt.T(x, 1))

		prob, err := builder.Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}

		res, err := backend.Solve(ctx, prob, model.SolveOptions{})
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		testing_tool.Expect(res, testing_tool.ResultDesc{Status: model.OPTIMAL, Objective: 40})
	})

	t.Run("LowerBoundedRow", func(t *testing.T) {
		builder := opt.NewBuilder("surplus", model.MINIMIZE)
		x := builder.Continuous("x", 0, math.Inf(1))
		y := builder.Continuous("y", 0, math.Inf(1))
		builder.Constraint("row", 1, math.Inf(1), opt.T(x, 1), opt.T(y, 1))
		builder.Objective(opt.T(x, 1), opt.T(y, 2))

		prob, err := builder.Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}

		res, err := backend.Solve(ctx, prob, model.SolveOptions{})
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		testing_tool.Expect(res, testing_tool.ResultDesc{Status: model.OPTIMAL, Objective: 1})
	})

	t.Run("RangedRow", func(t *testing.T) {
		builder := opt.NewBuilder("ranged", model.MINIMIZE)
		x := builder.Continuous("x", 0, math.Inf(1))
		builder.Constraint("row", 2, 5, opt.T(x, 1))
		builder.Objective(opt.T(x, 1))

		prob, err := builder.Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}

		res, err := backend.Solve(ctx, prob, model.SolveOptions{})
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		testing_tool.Expect(res, testing_tool.ResultDesc{Status: model.OPTIMAL, Objective: 2})
	})

	t.Run("NoRowsOptimalAtLowerBounds", func(t *testing.T) {
		// no constraints and no upper bounds lower to zero rows
		builder := opt.NewBuilder("free", model.MINIMIZE)
		x := builder.Continuous("x", 0, math.Inf(1))
		y := builder.Continuous("y", 0, math.Inf(1))
		builder.Objective(opt.T(x, 3), opt.T(y, 1))

		prob, err := builder.Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}

		res, err := backend.Solve(ctx, prob, model.SolveOptions{})
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		testing_tool.Expect(res, testing_tool.ResultDesc{Status: model.OPTIMAL, Objective: 0})
		for i, v := range res.Values {
			if v != 0 {
				t.Fatalf("variable %d is %f, want 0", i, v)
			}
		}
	})

	t.Run("Unbounded", func(t *testing.T) {
		builder := opt.NewBuilder("unbounded", model.MAXIMIZE)
		x := builder.Continuous("x", 0, math.Inf(1))
		builder.Objective(opt.T(x, 1))

		prob, err := builder.Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}

		res, err := backend.Solve(ctx, prob, model.SolveOptions{})
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		if res.Status != model.UNBOUNDED {
			t.Fatalf("got status %v, wanted unbounded", res.Status)
		}
	})
}

func TestSimplexRejectsBinaryVariables(t *testing.T) {
	inst := testing_tool.Knapsack(&testing_tool.KnapsackDesc{
		Prices:   []float64{1, 1},
		Weights:  []float64{1, 2},
		Capacity: 1.5,
	})

	prob, err := opt.Knapsack(inst)
	if err != nil {
		t.Fatalf("formulation failed: %v", err)
	}

	_, err = NewSimplexBackend().Solve(context.Background(), prob, model.SolveOptions{})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("got %v, wanted ErrUnsupported", err)
	}
}
