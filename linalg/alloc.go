// Package linalg provides the dense linear-algebra kernels the integrator
// core needs: rectangular array allocation, weighted norms, and the LU
// factorization/solve used by the chord corrector's iteration matrix.
package linalg

// MakeSquare allocates an n x n matrix backed by a single contiguous slice.
func MakeSquare(n int) [][]float64 {
	return MakeRectangular(n, n)
}

// MakeRectangular allocates a rows x cols matrix backed by a single
// contiguous slice, so the whole matrix can be cleared or copied in one
// operation while rect[i] still addresses row i directly.
func MakeRectangular(rows, cols int) (rect [][]float64) {
	arr := make([]float64, rows*cols)
	rect = make([][]float64, rows)
	for i := range rect {
		rect[i] = arr[:cols:cols]
		arr = arr[cols:]
	}
	return
}
