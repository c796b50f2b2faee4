package linalg

import "testing"

func TestJacobianSolveIdentity(t *testing.T) {
	j := NewJacobian(3)
	j.Reset()
	j.AddToDiagonal(1)
	if !j.Factorize() {
		t.Fatal("factorize of identity should succeed")
	}
	b := []float64{1, 2, 3}
	j.Solve(b)
	for i, v := range b {
		if want := float64(i + 1); v != want {
			t.Errorf("b[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestJacobianSetAt(t *testing.T) {
	j := NewJacobian(2)
	j.Reset()
	j.Set(0, 1, 4.5)
	if got := j.At(0, 1); got != 4.5 {
		t.Errorf("At(0,1) = %v, want 4.5", got)
	}
	if got := j.At(1, 0); got != 0 {
		t.Errorf("At(1,0) = %v, want 0", got)
	}
}
