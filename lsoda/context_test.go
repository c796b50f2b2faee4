package lsoda

import "testing"

func TestNewContextRejectsBadSize(t *testing.T) {
	if _, err := NewContext(0, Option{RelTol: []float64{1e-6}, AbsTol: []float64{1e-6}}); err != ErrInvalidSize {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestNewContextRejectsMismatchedToleranceShape(t *testing.T) {
	_, err := NewContext(3, Option{RelTol: []float64{1e-6, 1e-6}, AbsTol: []float64{1e-6}})
	if err != ErrInvalidTolerance {
		t.Errorf("err = %v, want ErrInvalidTolerance", err)
	}
}

func TestNewContextRejectsUnsupportedJacobian(t *testing.T) {
	_, err := NewContext(2, Option{
		RelTol:   []float64{1e-6},
		AbsTol:   []float64{1e-6},
		Jacobian: JacobianFullUser,
	})
	if err != ErrUnsupportedJacobian {
		t.Errorf("err = %v, want ErrUnsupportedJacobian", err)
	}
}

func TestEwsetAllFourToleranceShapeCombinations(t *testing.T) {
	cases := []struct {
		name       string
		rtol, atol []float64
	}{
		{"scalar/scalar", []float64{1e-4}, []float64{1e-6}},
		{"scalar/vector", []float64{1e-4}, []float64{1e-6, 1e-7}},
		{"vector/scalar", []float64{1e-4, 1e-5}, []float64{1e-6}},
		{"vector/vector", []float64{1e-4, 1e-5}, []float64{1e-6, 1e-7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, err := NewContext(2, Option{RelTol: tc.rtol, AbsTol: tc.atol})
			if err != nil {
				t.Fatalf("NewContext: %v", err)
			}
			y := []float64{1, 2}
			ctx.yh[1][1], ctx.yh[1][2] = y[0], y[1]
			if !ctx.refreshWeights() {
				t.Fatal("expected positive weights")
			}
			for i := 1; i <= 2; i++ {
				if ctx.ewt[i] <= 0 {
					t.Errorf("ewt[%d] = %v, want > 0", i, ctx.ewt[i])
				}
			}
		})
	}
}
