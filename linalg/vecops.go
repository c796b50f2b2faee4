package linalg

import "gonum.org/v1/gonum/blas/blas64"

// AxpyTo computes y += alpha*x in place, the BLAS-1 primitive behind the
// predictor's Pascal-matrix row updates, their undo, and the post-step
// el[j]*acor update of the Nordsieck array.
func AxpyTo(alpha float64, x, y []float64) {
	blas64.Axpy(alpha, blas64.Vector{N: len(x), Inc: 1, Data: x}, blas64.Vector{N: len(y), Inc: 1, Data: y})
}

// ScaleInPlace computes x *= alpha in place, the BLAS-1 primitive behind
// the driver's first-step seeding of the Nordsieck row yh[2] = h*f.
func ScaleInPlace(alpha float64, x []float64) {
	blas64.Scal(alpha, blas64.Vector{N: len(x), Inc: 1, Data: x})
}
