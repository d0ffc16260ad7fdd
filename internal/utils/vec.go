package utils

import "gonum.org/v1/gonum/mat"

func RowSums(m *mat.Dense) *mat.VecDense {
	rows, cols := m.Dims()
	ret := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			sum += m.At(i, j)
		}
		ret.SetVec(i, sum)
	}

	return ret
}

func ColSums(m *mat.Dense) *mat.VecDense {
	rows, cols := m.Dims()
	ret := mat.NewVecDense(cols, nil)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += m.At(i, j)
		}
		ret.SetVec(j, sum)
	}

	return ret
}

func NonNegative(v *mat.VecDense, tol float64) bool {
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) < -tol {
			return false
		}
	}

	return true
}

func LEThan(a, b *mat.VecDense, tol float64) bool {
	if a.Len() != b.Len() {
		panic("Two vectors should have the same length.")
	}

	for i := 0; i < a.Len(); i += 1 {
		if a.AtVec(i) > b.AtVec(i)+tol {
			return false
		}
	}

	return true
}

func AllClose(a, b *mat.VecDense, tol float64) bool {
	return LEThan(a, b, tol) && LEThan(b, a, tol)
}
