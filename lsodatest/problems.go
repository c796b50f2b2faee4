// Package lsodatest collects canned initial value problems used to
// exercise the lsoda package across its non-stiff and stiff regimes,
// plus a small table-driven runner in the style of the ode testing
// helpers this module grew out of.
package lsodatest

import (
	"math"

	"github.com/lsoda-go/lsoda/ode"
)

// Problem bundles an IVP with enough metadata for a table-driven test:
// its vector field, initial state, and (when known) a closed-form or
// reference solution to compare against.
type Problem struct {
	Name    string
	N       int
	T0      float64
	Y0      []float64
	Fcn     ode.Function
	Exact   func(t float64) []float64 // nil if no closed form is known
	Stiff   bool
}

// ExponentialDecay is dy/dt = -y, y(0) = 1, with exact solution e^-t. A
// canonical non-stiff smoke test.
var ExponentialDecay = Problem{
	Name: "exponential-decay",
	N:    1,
	T0:   0,
	Y0:   []float64{1},
	Fcn: func(t float64, y, dy []float64, _ any) {
		dy[0] = -y[0]
	},
	Exact: func(t float64) []float64 { return []float64{math.Exp(-t)} },
}

// HarmonicOscillator is y0' = y1, y1' = -y0, a non-stiff round-trip
// problem whose solution returns to its initial state at t = 2*pi.
var HarmonicOscillator = Problem{
	Name: "harmonic-oscillator",
	N:    2,
	T0:   0,
	Y0:   []float64{1, 0},
	Fcn: func(t float64, y, dy []float64, _ any) {
		dy[0] = y[1]
		dy[1] = -y[0]
	},
	Exact: func(t float64) []float64 { return []float64{math.Cos(t), -math.Sin(t)} },
}

// Robertson is the classic three-species stiff chemical kinetics problem
// (Robertson 1966), integrated here to a moderate horizon; it has no
// simple closed form but is the standard stiffness-switch benchmark for
// LSODA-family solvers.
var Robertson = Problem{
	Name: "robertson",
	N:    3,
	T0:   0,
	Y0:   []float64{1, 0, 0},
	Fcn: func(t float64, y, dy []float64, _ any) {
		dy[0] = -0.04*y[0] + 1e4*y[1]*y[2]
		dy[2] = 3e7 * y[1] * y[1]
		dy[1] = -dy[0] - dy[2]
	},
	Stiff: true,
}

// VanDerPol is the Van der Pol oscillator with a large damping parameter
// mu, which makes it stiff; the classic mu=1000 case used to demonstrate
// method switching in stiff/non-stiff solvers.
func VanDerPol(mu float64) Problem {
	return Problem{
		Name: "van-der-pol",
		N:    2,
		T0:   0,
		Y0:   []float64{2, 0},
		Fcn: func(t float64, y, dy []float64, _ any) {
			dy[0] = y[1]
			dy[1] = mu*(1-y[0]*y[0])*y[1] - y[0]
		},
		Stiff: mu >= 100,
	}
}
