package opt

import (
	"fmt"

	"github.com/jixinwang95/mban-orientation/internal/model"
	"github.com/jixinwang95/mban-orientation/internal/utils"
	"gonum.org/v1/gonum/mat"
)

// VerifyTransportPlan checks a transportation solution against the
// instance it was solved for: entries non-negative, row sums within
// supply, column sums equal to demand. Values must be laid out the
// way Transportation orders its variables (row major).
func VerifyTransportPlan(inst *model.TransportInstance, values []float64, tol float64) error {
	nSup := len(inst.Supplies)
	nCon := len(inst.Demands)
	if len(values) != nSup*nCon {
		return fmt.Errorf("plan has %d values, want %d", len(values), nSup*nCon)
	}

	plan := mat.NewDense(nSup, nCon, values)

	if !utils.NonNegative(mat.NewVecDense(len(values), values), tol) {
		return fmt.Errorf("plan ships a negative amount")
	}

	shipped := utils.RowSums(plan)
	supply := mat.NewVecDense(nSup, inst.Supplies)
	if !utils.LEThan(shipped, supply, tol) {
		return fmt.Errorf("a supplier ships more than its supply")
	}

	received := utils.ColSums(plan)
	demand := mat.NewVecDense(nCon, inst.Demands)
	if !utils.AllClose(received, demand, tol) {
		return fmt.Errorf("a consumer demand is not met exactly")
	}

	return nil
}

// PlanCost recomputes the objective of a transportation plan.
func PlanCost(inst *model.TransportInstance, values []float64) float64 {
	nCon := len(inst.Demands)

	var cost float64
	for i := range inst.Supplies {
		for j := 0; j < nCon; j++ {
			cost += inst.Costs[i][j] * values[i*nCon+j]
		}
	}

	return cost
}
