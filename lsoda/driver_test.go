package lsoda

import (
	"testing"
)

func decay(t float64, y, dy []float64, _ any) { dy[0] = -y[0] }

func TestStepRejectsZeroLengthToutOnFirstCall(t *testing.T) {
	ctx, err := NewContext(1, Option{RelTol: []float64{1e-6}, AbsTol: []float64{1e-6}})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	y := []float64{1}
	tn := 0.0
	_, err = ctx.Step(decay, y, &tn, 0.0, ITaskNormal, nil)
	if err != ErrNonPositiveStep {
		t.Errorf("err = %v, want ErrNonPositiveStep", err)
	}
}

func TestStepIntegratesToRequestedTime(t *testing.T) {
	ctx, err := NewContext(1, Option{RelTol: []float64{1e-8}, AbsTol: []float64{1e-10}})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	y := []float64{1}
	tn := 0.0
	status, err := ctx.Step(decay, y, &tn, 1.0, ITaskNormal, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if status != StatusSuccess {
		t.Fatalf("status = %v", status)
	}
	if tn != 1.0 {
		t.Errorf("tn = %v, want 1.0", tn)
	}
	const want = 0.36787944117144233
	if diff := y[0] - want; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("y[0] = %v, want ~%v", y[0], want)
	}
}

func TestStepReportsStatsAfterSuccess(t *testing.T) {
	ctx, _ := NewContext(1, Option{RelTol: []float64{1e-8}, AbsTol: []float64{1e-10}})
	y := []float64{1}
	tn := 0.0
	if _, err := ctx.Step(decay, y, &tn, 1.0, ITaskNormal, nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	stats := ctx.Stats()
	if stats.Steps == 0 {
		t.Error("expected Steps > 0")
	}
	if stats.Evaluations == 0 {
		t.Error("expected Evaluations > 0")
	}
}
