package opt

import (
	"fmt"
	"math"

	"github.com/jixinwang95/mban-orientation/internal/model"
)

// Transportation formulates the classic shipment model: one x_i_j
// per supplier/consumer pair, supplier rows bounded by supply,
// consumer columns fixed to demand, total cost minimized.
func Transportation(inst *model.TransportInstance) (*model.Problem, error) {
	nSup := len(inst.Supplies)
	nCon := len(inst.Demands)
	if len(inst.Costs) != nSup {
		return nil, fmt.Errorf("cost matrix has %d rows for %d suppliers", len(inst.Costs), nSup)
	}

	builder := NewBuilder("transportation", model.MINIMIZE)

	vars := make([][]Var, nSup)
	for i := 0; i < nSup; i++ {
		if len(inst.Costs[i]) != nCon {
			return nil, fmt.Errorf("cost row %d has %d entries for %d consumers", i, len(inst.Costs[i]), nCon)
		}

		vars[i] = make([]Var, nCon)
		for j := 0; j < nCon; j++ {
			if inst.Costs[i][j] < 0 {
				return nil, fmt.Errorf("negative cost at (%d, %d)", i, j)
			}
			vars[i][j] = builder.Continuous(fmt.Sprintf("x_%d_%d", i, j), 0, math.Inf(1))
			builder.Objective(T(vars[i][j], inst.Costs[i][j]))
		}
	}

	for i := 0; i < nSup; i++ {
		terms := make([]model.Term, nCon)
		for j := 0; j < nCon; j++ {
			terms[j] = T(vars[i][j], 1)
		}
		builder.Constraint(fmt.Sprintf("supply_%d", i), math.Inf(-1), inst.Supplies[i], terms...)
	}

	for j := 0; j < nCon; j++ {
		terms := make([]model.Term, nSup)
		for i := 0; i < nSup; i++ {
			terms[i] = T(vars[i][j], 1)
		}
		builder.Constraint(fmt.Sprintf("demand_%d", j), inst.Demands[j], inst.Demands[j], terms...)
	}

	return builder.Build()
}

// Knapsack formulates a binary knapsack: maximize total price
// subject to every capacity row.
func Knapsack(inst *model.KnapsackInstance) (*model.Problem, error) {
	n := len(inst.Prices)
	if len(inst.Weights) != len(inst.Capacities) {
		return nil, fmt.Errorf("got %d weight rows for %d capacities", len(inst.Weights), len(inst.Capacities))
	}

	builder := NewBuilder("knapsack", model.MAXIMIZE)

	vars := make([]Var, n)
	for i := 0; i < n; i++ {
		vars[i] = builder.Binary(fmt.Sprintf("x_%d", i))
		builder.Objective(T(vars[i], inst.Prices[i]))
	}

	for k, row := range inst.Weights {
		if len(row) != n {
			return nil, fmt.Errorf("weight row %d has %d entries for %d items", k, len(row), n)
		}

		terms := make([]model.Term, n)
		for i := 0; i < n; i++ {
			terms[i] = T(vars[i], row[i])
		}
		builder.Constraint(fmt.Sprintf("capacity_%d", k), math.Inf(-1), inst.Capacities[k], terms...)
	}

	return builder.Build()
}
