package lsodatest

import (
	"math"
	"testing"

	"github.com/lsoda-go/lsoda/lsoda"
	"github.com/lsoda-go/lsoda/ode"
)

// EpsEqual reports whether a and b agree to within eps, the same
// tolerance-comparison helper the rest of this module's tests lean on
// instead of exact float equality.
func EpsEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// RunToExact integrates p from T0 to tout with opt and checks the result
// against p.Exact, failing the test if they disagree by more than eps.
// It returns the final Context so callers can inspect Stats() too.
func RunToExact(t *testing.T, p Problem, tout, eps float64, opt ode.Option) *lsoda.Context {
	t.Helper()
	if p.Exact == nil {
		t.Fatalf("%s: RunToExact needs a problem with a known solution", p.Name)
	}
	ctx, err := lsoda.NewContext(p.N, opt)
	if err != nil {
		t.Fatalf("%s: NewContext: %v", p.Name, err)
	}
	y := make([]float64, p.N)
	copy(y, p.Y0)
	tn := p.T0
	status, err := ctx.Step(p.Fcn, y, &tn, tout, lsoda.ITaskNormal, nil)
	if err != nil {
		t.Fatalf("%s: Step: %v", p.Name, err)
	}
	if status != lsoda.StatusSuccess {
		t.Fatalf("%s: Step returned %s", p.Name, status)
	}
	want := p.Exact(tout)
	for i := range y {
		if !EpsEqual(y[i], want[i], eps) {
			t.Errorf("%s: y[%d] = %g, want %g (eps %g)", p.Name, i, y[i], want[i], eps)
		}
	}
	return ctx
}
