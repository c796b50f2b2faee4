// Package ode defines the shared vocabulary the LSODA core and its callers
// use to describe an initial value problem: the vector-field callback, the
// option block controlling step sizing/order/tolerances, and the
// integration result.
package ode

import "github.com/go-logr/logr"

// Function evaluates dy/dt = f(t, y) into dy. y and dy are n-length,
// 0-indexed at this boundary; the core re-bases them to its own 1-indexed
// internal arrays. payload is an opaque handle the caller may use to pass
// problem data through; f must treat it as read-only with respect to any
// state the integrator itself owns, since a single Context is not
// thread-safe and f is the only reentry point into caller code.
type Function func(t float64, y, dy []float64, payload any)

// ITask selects how the driver should advance and what it should report,
// mirroring the five task modes of the LSODA driver contract.
type ITask int

const (
	// ITaskNormal integrates to Tout, returning t == tout (interpolated if
	// the internal clock has already passed tout).
	ITaskNormal ITask = 1
	// ITaskOneStep takes a single internal step and returns immediately,
	// with t == the new internal clock.
	ITaskOneStep ITask = 2
	// ITaskOneStepPastTout integrates past Tout and returns the internal
	// clock without interpolating; it fails if Tout lies before the
	// interpolable window.
	ITaskOneStepPastTout ITask = 3
	// ITaskNormalCrit is ITaskNormal but will not step past CriticalTime.
	ITaskNormalCrit ITask = 4
	// ITaskOneStepCrit is ITaskOneStep but will not step past
	// CriticalTime, landing on it exactly when within reach.
	ITaskOneStepCrit ITask = 5
)

// JacobianType selects how the corrector's iteration matrix is obtained.
// Only JacobianFullFD is implemented; the others are accepted at the
// option-validation boundary of the legacy interface but rejected with
// ErrUnsupportedJacobian, per spec Open Question 3.
type JacobianType int

const (
	JacobianFullUser JacobianType = 1 // analytic full Jacobian: unsupported
	JacobianFullFD    JacobianType = 2 // full, finite-difference Jacobian
	JacobianBandedUser JacobianType = 4 // analytic banded Jacobian: unsupported
	JacobianBandedFD  JacobianType = 5 // banded, finite-difference Jacobian: unsupported
)

// Method names the integration family currently in use.
type Method int

const (
	MethodAdams Method = 1 // Adams-Moulton, non-stiff
	MethodBDF   Method = 2 // Backward Differentiation Formula, stiff
)

func (m Method) String() string {
	if m == MethodBDF {
		return "bdf"
	}
	return "adams"
}

// Status reports the outcome of a Step call, compatible with the legacy
// istate output codes documented in the external interface.
type Status int

const (
	StatusSuccess              Status = 2
	StatusExcessWork           Status = -1
	StatusExcessAccuracy       Status = -2
	StatusIllegalInput         Status = -3
	StatusErrorTestFailure     Status = -4
	StatusConvergenceFailure   Status = -5
	StatusNonPositiveWeight    Status = -6
)

// Code returns the legacy integer istate encoding, for callers that need
// bitwise compatibility with the original interface.
func (s Status) Code() int { return int(s) }

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusExcessWork:
		return "excess work"
	case StatusExcessAccuracy:
		return "excess accuracy requested"
	case StatusIllegalInput:
		return "illegal input"
	case StatusErrorTestFailure:
		return "repeated error-test failure"
	case StatusConvergenceFailure:
		return "repeated convergence failure"
	case StatusNonPositiveWeight:
		return "non-positive error weight"
	default:
		return "unknown"
	}
}

// Stats reports the bookkeeping counters accumulated over the life of a
// Context: steps taken, function/Jacobian evaluations, and the step
// size/order/method of the most recently accepted step.
type Stats struct {
	Steps         int
	RejectedSteps int
	Evaluations   int
	JacobianEvals int
	LastOrder     int
	LastStep      float64
	LastMethod    Method
	CurrentTime   float64
}

// Option controls the step-size, order, tolerance, and diagnostic behavior
// of a Context, mirroring the LSODA driver's option block.
type Option struct {
	// RelTol and AbsTol hold the relative/absolute tolerance scales used
	// to build the per-component error weight ewt[i] = 1/(rtol*|y[i]| +
	// atol). Each may be length 1 (applied to every component) or length
	// n (one value per component); the four combinations reproduce the
	// legacy itol modes 1..4 without an explicit mode selector.
	RelTol []float64
	AbsTol []float64

	// InitialStep, if > 0, is used as the first step size. Otherwise the
	// driver estimates one from the tolerances and the initial f value.
	InitialStep float64

	// MaxStep bounds |h| from above; 0 means unbounded.
	MaxStep float64
	// MinStep bounds |h| from below; the integrator aborts rather than go
	// smaller.
	MinStep float64

	// MaxOrderNonstiff and MaxOrderStiff cap the Adams and BDF order
	// respectively. Zero selects the defaults (12 and 5).
	MaxOrderNonstiff int
	MaxOrderStiff    int

	// MaxSteps caps internal steps per Step call before StatusExcessWork
	// is returned. Zero selects the default of 5000.
	MaxSteps int
	// MaxHnil caps how many times the "t+h == t" warning is emitted
	// before it is silenced for the life of the Context. Zero selects the
	// default of 10. The warning is only emitted when Verbose is set.
	MaxHnil int

	// CriticalTime, when non-nil, is the time ITaskNormalCrit/
	// ITaskOneStepCrit will not step past.
	CriticalTime *float64

	// Jacobian selects the corrector's iteration matrix source. Only
	// JacobianFullFD is implemented.
	Jacobian JacobianType

	// Verbose requests a diagnostic message on every method switch,
	// mirroring the legacy ixpr option, and enables the "t+h == t"
	// warning capped by MaxHnil.
	Verbose bool

	// Logger receives diagnostic text in place of the original's direct
	// writes to a console channel. The zero value is logr.Discard.
	Logger logr.Logger
}
