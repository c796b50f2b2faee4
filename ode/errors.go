package ode

import "errors"

// Sentinel errors returned by Option validation, Context construction, and
// the input checks at the start of a Step call. These are the
// illegal-input tier of the error taxonomy (spec §7a): they are reported
// as soon as the bad input is seen rather than being retried or rolled
// back like the numerical failures surfaced through Status.
var (
	ErrInvalidSize          = errors.New("lsoda: neq must be >= 1")
	ErrSizeGrew             = errors.New("lsoda: neq increased on a reinitialization call")
	ErrInvalidTolerance     = errors.New("lsoda: rtol/atol must be non-negative and shaped 1 or n long")
	ErrUnsupportedJacobian  = errors.New("lsoda: only the full finite-difference Jacobian (JacobianFullFD) is implemented")
	ErrInvalidCriticalTime  = errors.New("lsoda: CriticalTime lies behind tout for this task")
	ErrNonPositiveStep      = errors.New("lsoda: tout is not past t")
	ErrTooCloseToStart      = errors.New("lsoda: tout too close to t to start integration")
)
