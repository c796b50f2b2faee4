package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Jacobian holds the dense iteration matrix P = I - h*el1*J used by the
// chord corrector, and its LU factors once Factorize has been called. The
// backing store is a single contiguous slice addressed row-major, matching
// the layout LAPACK's Getrf/Getrs expect.
type Jacobian struct {
	n    int
	a    blas64.General
	ipiv []int
}

// NewJacobian allocates an n x n iteration matrix.
func NewJacobian(n int) *Jacobian {
	return &Jacobian{
		n:    n,
		a:    blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)},
		ipiv: make([]int, n),
	}
}

// Reset zeroes the matrix so a fresh finite-difference fill can begin.
func (j *Jacobian) Reset() {
	for i := range j.a.Data {
		j.a.Data[i] = 0
	}
}

// Set stores a[i][k] (0-based).
func (j *Jacobian) Set(i, k int, v float64) {
	j.a.Data[i*j.n+k] = v
}

// At returns a[i][k] (0-based).
func (j *Jacobian) At(i, k int) float64 {
	return j.a.Data[i*j.n+k]
}

// AddToDiagonal adds v to every diagonal entry, turning -h*el1*J into
// P = I - h*el1*J once J has been scaled and stored.
func (j *Jacobian) AddToDiagonal(v float64) {
	for i := 0; i < j.n; i++ {
		j.a.Data[i*j.n+i] += v
	}
}

// Factorize computes the LU decomposition of the matrix in place with
// partial pivoting, reporting ok=false on a singular pivot. This replaces
// the source's hand-rolled dgefa (whose idamax helper mixed an integer
// accumulator with a floating-point comparison); LAPACK's Dgetrf has no
// such bug to inherit.
func (j *Jacobian) Factorize() (ok bool) {
	return lapack64.Getrf(j.a, j.ipiv)
}

// Solve overwrites b with the solution of (LU) x = b using the factors
// computed by Factorize, mirroring dgesl's job=0 path (solsy never needs
// the transposed solve).
func (j *Jacobian) Solve(b []float64) {
	rhs := blas64.General{Rows: j.n, Cols: 1, Stride: 1, Data: b}
	lapack64.Getrs(blas.NoTrans, j.a, rhs, j.ipiv)
}
