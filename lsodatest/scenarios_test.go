package lsodatest

import (
	"testing"

	"github.com/lsoda-go/lsoda/lsoda"
	"github.com/lsoda-go/lsoda/ode"
)

func defaultTol() ode.Option {
	return ode.Option{
		RelTol: []float64{1e-8},
		AbsTol: []float64{1e-10},
	}
}

func TestExponentialDecayToKnownValue(t *testing.T) {
	RunToExact(t, ExponentialDecay, 1.0, 1e-5, defaultTol())
}

func TestHarmonicOscillatorRoundTrip(t *testing.T) {
	ctx := RunToExact(t, HarmonicOscillator, 2*pi(), 1e-4, defaultTol())
	if ctx.Stats().Steps == 0 {
		t.Error("expected at least one internal step")
	}
}

func pi() float64 { return 3.14159265358979323846 }

func TestRobertsonStiffSwitch(t *testing.T) {
	p := Robertson
	ctx, err := lsoda.NewContext(p.N, defaultTol())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	y := append([]float64(nil), p.Y0...)
	tn := p.T0
	status, err := ctx.Step(p.Fcn, y, &tn, 40.0, lsoda.ITaskNormal, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if status != lsoda.StatusSuccess {
		t.Fatalf("Step returned %s", status)
	}
	sum := y[0] + y[1] + y[2]
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("species conservation violated: sum = %v", sum)
	}
	if m := ctx.Stats().LastMethod; m != ode.MethodBDF {
		t.Errorf("last method = %v, want a switch to %v", m, ode.MethodBDF)
	}
}

func TestVanDerPolStiffSwitch(t *testing.T) {
	p := VanDerPol(1000)
	ctx, err := lsoda.NewContext(p.N, ode.Option{
		RelTol:      []float64{1e-6},
		AbsTol:      []float64{1e-6},
		MaxOrderStiff: 5,
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	y := append([]float64(nil), p.Y0...)
	tn := p.T0
	status, err := ctx.Step(p.Fcn, y, &tn, 3000.0, lsoda.ITaskNormal, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if status != lsoda.StatusSuccess {
		t.Fatalf("Step returned %s", status)
	}
	if ctx.Stats().JacobianEvals == 0 {
		t.Error("expected a switch to the stiff method (no Jacobian was ever formed)")
	}
}

func TestCriticalTimeExactLanding(t *testing.T) {
	tcrit := 0.5
	opt := defaultTol()
	opt.CriticalTime = &tcrit
	ctx, err := lsoda.NewContext(1, opt)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	y := []float64{1}
	tn := 0.0
	status, err := ctx.Step(ExponentialDecay.Fcn, y, &tn, tcrit, lsoda.ITaskNormalCrit, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if status != lsoda.StatusSuccess {
		t.Fatalf("Step returned %s", status)
	}
	if tn != tcrit {
		t.Errorf("t = %v, want exactly %v", tn, tcrit)
	}
}

func TestZeroSizeProblemRejected(t *testing.T) {
	_, err := lsoda.NewContext(0, defaultTol())
	if err != lsoda.ErrInvalidSize {
		t.Errorf("NewContext(0, ...) error = %v, want ErrInvalidSize", err)
	}
}
