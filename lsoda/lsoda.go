// Package lsoda implements the ODE core: the Nordsieck predictor, the
// functional/modified-Newton corrector, the step/order/method adaptation
// logic, and the driver loop that ties them together behind the
// ode.Integrator interface.
package lsoda

import "github.com/lsoda-go/lsoda/ode"

// Re-exported so callers of this package don't need a second import of
// ode just to build an Option or read a sentinel error.
type (
	Option       = ode.Option
	ITask        = ode.ITask
	Status       = ode.Status
	JacobianType = ode.JacobianType
)

const (
	JacobianFullUser   = ode.JacobianFullUser
	JacobianFullFD     = ode.JacobianFullFD
	JacobianBandedUser = ode.JacobianBandedUser
	JacobianBandedFD   = ode.JacobianBandedFD

	ITaskNormal          = ode.ITaskNormal
	ITaskOneStep         = ode.ITaskOneStep
	ITaskOneStepPastTout = ode.ITaskOneStepPastTout
	ITaskNormalCrit      = ode.ITaskNormalCrit
	ITaskOneStepCrit     = ode.ITaskOneStepCrit

	StatusSuccess            = ode.StatusSuccess
	StatusExcessWork         = ode.StatusExcessWork
	StatusExcessAccuracy     = ode.StatusExcessAccuracy
	StatusIllegalInput       = ode.StatusIllegalInput
	StatusErrorTestFailure   = ode.StatusErrorTestFailure
	StatusConvergenceFailure = ode.StatusConvergenceFailure
	StatusNonPositiveWeight  = ode.StatusNonPositiveWeight
)

var (
	ErrInvalidSize         = ode.ErrInvalidSize
	ErrSizeGrew            = ode.ErrSizeGrew
	ErrInvalidTolerance    = ode.ErrInvalidTolerance
	ErrUnsupportedJacobian = ode.ErrUnsupportedJacobian
	ErrInvalidCriticalTime = ode.ErrInvalidCriticalTime
	ErrNonPositiveStep     = ode.ErrNonPositiveStep
	ErrTooCloseToStart     = ode.ErrTooCloseToStart
)

var _ ode.Integrator = (*Context)(nil)
