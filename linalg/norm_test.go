package linalg

import "testing"

func TestWeightedMaxNorm(t *testing.T) {
	v := []float64{-2, 3, 1}
	w := []float64{0.5, 1, 10}
	got := WeightedMaxNorm(v, w)
	if want := 3.0; got != want {
		t.Errorf("WeightedMaxNorm = %v, want %v", got, want)
	}
}

func TestWeightedMatrixNorm(t *testing.T) {
	a := [][]float64{
		{4, 0},
		{0, 2},
	}
	w := []float64{1, 1}
	if got, want := WeightedMatrixNorm(a, w), 4.0; got != want {
		t.Errorf("WeightedMatrixNorm = %v, want %v", got, want)
	}
}
