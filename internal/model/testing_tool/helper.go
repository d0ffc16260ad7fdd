package testing_tool

import (
	"fmt"
	"math"

	"github.com/jixinwang95/mban-orientation/internal/model"
)

func Close(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ExpectBinary panics unless every value in the result is 0 or 1
// within tol. Used on MIP results where the solver owns rounding.
func ExpectBinary(got *model.SolveResult, tol float64) {
	for i, v := range got.Values {
		if !Close(v, 0, tol) && !Close(v, 1, tol) {
			panic(fmt.Sprintf("value %d is %f, wanted 0 or 1", i, v))
		}
	}
}
