package utils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRowAndColSums(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	rows := RowSums(m)
	if rows.AtVec(0) != 6 || rows.AtVec(1) != 15 {
		t.Fatalf("unexpected row sums: %v", mat.Formatted(rows))
	}

	cols := ColSums(m)
	if cols.AtVec(0) != 5 || cols.AtVec(1) != 7 || cols.AtVec(2) != 9 {
		t.Fatalf("unexpected column sums: %v", mat.Formatted(cols))
	}
}

func TestNonNegative(t *testing.T) {
	if !NonNegative(mat.NewVecDense(3, []float64{0, 1e-9, 2}), 1e-6) {
		t.Fatal("tiny negative noise should pass")
	}
	if NonNegative(mat.NewVecDense(2, []float64{1, -0.5}), 1e-6) {
		t.Fatal("a clearly negative entry should fail")
	}
}

func TestLEThan(t *testing.T) {
	a := mat.NewVecDense(2, []float64{1, 2})
	b := mat.NewVecDense(2, []float64{1, 3})

	if !LEThan(a, b, 1e-6) {
		t.Fatal("a <= b should hold")
	}
	if LEThan(b, a, 1e-6) {
		t.Fatal("b <= a should not hold")
	}
}

func TestAllClose(t *testing.T) {
	a := mat.NewVecDense(2, []float64{1, 2})
	b := mat.NewVecDense(2, []float64{1 + 1e-9, 2 - 1e-9})

	if !AllClose(a, b, 1e-6) {
		t.Fatal("vectors within tolerance should be close")
	}
	if AllClose(a, mat.NewVecDense(2, []float64{1, 3}), 1e-6) {
		t.Fatal("vectors a unit apart should not be close")
	}
}
