package gonumExtensions

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Arange returns a vector of length n filled with
// 0, step, 2 step, ..., (n-1) step
func Arange(n int, step float64) *mat.VecDense {
	data := make([]float64, n)
	for index := range data {
		data[index] = float64(index) * step
	}
	return mat.NewVecDense(n, data)
}

// NANORINF checks if there are any NAN or INF in matrix
func NANORINF(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}

// CNANORINF checks if any real or imaginary part of data is NAN or INF
func CNANORINF(data []complex128) bool {
	for _, value := range data {
		if cmplx.IsNaN(value) || cmplx.IsInf(value) {
			return true
		}
	}
	return false
}

// Abs returns the modulus of every entry in data as a vector
func Abs(data []complex128) *mat.VecDense {
	res := make([]float64, len(data))
	for index, value := range data {
		res[index] = cmplx.Abs(value)
	}
	return mat.NewVecDense(len(res), res)
}
