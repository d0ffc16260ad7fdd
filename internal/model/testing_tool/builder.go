// Because it is a testing package, no errors are returned,
// all problems cause a panic.

package testing_tool

import (
	"fmt"

	"github.com/jixinwang95/mban-orientation/internal/model"
)

type TransportDesc struct {
	Supplies []float64
	Demands  []float64
	Costs    [][]float64
}

type KnapsackDesc struct {
	Prices   []float64
	Weights  []float64
	Capacity float64
}

type ResultDesc struct {
	Status    model.Status
	Objective float64
	Tol       float64
}

func Transport(desc *TransportDesc) *model.TransportInstance {
	if len(desc.Costs) != len(desc.Supplies) {
		panic(fmt.Sprintf("cost matrix has %d rows, want %d", len(desc.Costs), len(desc.Supplies)))
	}
	for i, row := range desc.Costs {
		if len(row) != len(desc.Demands) {
			panic(fmt.Sprintf("cost row %d has %d entries, want %d", i, len(row), len(desc.Demands)))
		}
	}

	return &model.TransportInstance{
		Supplies: desc.Supplies,
		Demands:  desc.Demands,
		Costs:    desc.Costs,
	}
}

func Knapsack(desc *KnapsackDesc) *model.KnapsackInstance {
	if len(desc.Weights) != len(desc.Prices) {
		panic(fmt.Sprintf("got %d weights for %d prices", len(desc.Weights), len(desc.Prices)))
	}

	return &model.KnapsackInstance{
		Prices:     desc.Prices,
		Weights:    [][]float64{desc.Weights},
		Capacities: []float64{desc.Capacity},
	}
}

func Expect(got *model.SolveResult, want ResultDesc) {
	if got == nil {
		panic("expected a solve result, got nil")
	}

	if got.Status != want.Status {
		panic(fmt.Sprintf("got status %v, wanted %v", got.Status, want.Status))
	}

	if want.Status != model.OPTIMAL {
		return
	}

	tol := want.Tol
	if tol == 0 {
		tol = 1e-6
	}

	if !Close(got.Objective, want.Objective, tol) {
		panic(fmt.Sprintf("got objective %f, wanted %f", got.Objective, want.Objective))
	}
}
