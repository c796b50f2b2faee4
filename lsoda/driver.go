package lsoda

import (
	"math"

	"github.com/lsoda-go/lsoda/linalg"
	"github.com/lsoda-go/lsoda/ode"
)

// Step advances y from *t towards tout under the given task semantics
// (spec §6), running internal steps of the underlying Nordsieck
// integrator until the task's stopping condition is met, a diagnostic
// limit is hit, or a numerical failure forces early return. It implements
// the ode.Integrator contract.
func (c *Context) Step(f ode.Function, y []float64, t *float64, tout float64, task ITask, payload any) (Status, error) {
	if len(y) != c.n {
		return StatusIllegalInput, ErrInvalidSize
	}
	needsCrit := task == ITaskNormalCrit || task == ITaskOneStepCrit
	var tcrit float64
	if needsCrit {
		if c.opt.CriticalTime == nil {
			return StatusIllegalInput, ErrInvalidCriticalTime
		}
		tcrit = *c.opt.CriticalTime
	}

	if !c.started {
		if err := c.initFirstStep(f, y, *t, tout, payload); err != nil {
			return StatusIllegalInput, err
		}
	} else if c.pendingReinit {
		for i := 1; i <= c.n; i++ {
			c.yh[1][i] = y[i-1]
		}
		if !c.refreshWeights() {
			return StatusNonPositiveWeight, nil
		}
		c.pendingReinit = false
	}

	tdir := sign(1, c.h)
	if task == ITaskOneStepPastTout && (c.tn-c.hu*(1+100*eta)-tout)*tdir > 0 {
		return StatusIllegalInput, ErrNonPositiveStep
	}
	if needsCrit {
		if (tcrit-tout)*tdir < 0 {
			return StatusIllegalInput, ErrInvalidCriticalTime
		}
		if c.started && (c.tn-tcrit)*tdir > 0 {
			return StatusIllegalInput, ErrInvalidCriticalTime
		}
	}

	if task == ITaskOneStep || task == ITaskOneStepCrit {
		status, err := c.advanceOneStep(f, payload, needsCrit, tcrit, tdir)
		if err != nil || status != StatusSuccess {
			return status, err
		}
		*t = c.tn
		for i := 1; i <= c.n; i++ {
			y[i-1] = c.yh[1][i]
		}
		return StatusSuccess, nil
	}

	// Normal / NormalCrit / OneStepPastTout: run until the stop condition.
	stepsThisCall := 0
	for {
		if task == ITaskNormal || task == ITaskNormalCrit {
			if (c.tn-tout)*tdir >= 0 {
				if !c.interpolate(tout, 0, c.y) {
					return StatusIllegalInput, ErrNonPositiveStep
				}
				*t = tout
				for i := 1; i <= c.n; i++ {
					y[i-1] = c.y[i]
				}
				return StatusSuccess, nil
			}
		} else { // ITaskOneStepPastTout
			if (c.tn-tout)*tdir > 0 {
				*t = c.tn
				for i := 1; i <= c.n; i++ {
					y[i-1] = c.yh[1][i]
				}
				return StatusSuccess, nil
			}
		}

		status, err := c.advanceOneStep(f, payload, needsCrit, tcrit, tdir)
		if err != nil || status != StatusSuccess {
			return status, err
		}
		stepsThisCall++
		if stepsThisCall >= c.mxstep {
			return StatusExcessWork, nil
		}
	}
}

// advanceOneStep runs exactly one internal step, handling the hnil
// throttle and the critical-time clamp that prevents h from overshooting
// tcrit (spec §6 tasks 4/5).
func (c *Context) advanceOneStep(f ode.Function, payload any, needsCrit bool, tcrit, tdir float64) (Status, error) {
	if needsCrit {
		if (c.tn+c.h-tcrit)*tdir > 0 {
			c.rescaleStep((tcrit - c.tn) / c.h)
			c.h = tcrit - c.tn
		}
	}
	if c.h == 0 {
		return StatusIllegalInput, ErrNonPositiveStep
	}
	if (math.Abs(c.h) < c.hmin) && c.hmin > 0 {
		return StatusExcessWork, nil
	}
	tnext := c.tn + (1+4*eta)*c.h
	if (tnext-c.tn)*c.h <= 0 || tnext == c.tn {
		c.nhnil++
		if c.nhnil <= c.mxhnil && c.verbose {
			c.logger.Info("step size too small for roundoff", "t", c.tn, "h", c.h)
		}
	}

	status := c.step(f, payload)
	if status != ode.StatusSuccess {
		return status, nil
	}
	return StatusSuccess, nil
}

// initFirstStep performs the one-time setup of the first Step call:
// seeding the Nordsieck array from y, computing the initial weights and
// step size, and choosing the starting method/order (spec §4.1).
func (c *Context) initFirstStep(f ode.Function, y []float64, t, tout float64, payload any) error {
	if t == tout {
		return ErrNonPositiveStep
	}
	for i := 1; i <= c.n; i++ {
		c.yh[1][i] = y[i-1]
	}
	c.tn = t
	c.meth = methodAdams
	c.miter = 0
	c.nq = 1
	c.l = 2
	c.lmax = c.mxordn
	c.ialth = 2
	c.rmax = 1e4
	c.rc = 0
	c.crate = 0.7
	c.pdnorm = 0
	c.pdlast = 0
	c.icount = 20
	c.nhnil = 0
	c.nslast = 0

	if !c.refreshWeights() {
		return ErrInvalidTolerance
	}
	c.callF(f, payload, c.tn, c.yh[1], c.savf)

	h0 := c.opt.InitialStep
	if h0 <= 0 {
		h0 = c.estimateInitialStep(t, tout)
	}
	tdir := sign(1, tout-t)
	if math.Abs(tout-t) < 100*eta*math.Max(math.Abs(t), math.Abs(tout)) {
		return ErrTooCloseToStart
	}
	c.h = sign(h0, tdir)
	c.h /= math.Max(1, math.Abs(c.h)*c.hmxi)
	copy(c.yh[2], c.savf)
	linalg.ScaleInPlace(c.h, c.yh[2][1:c.n+1])
	c.resetCoefficients()
	c.started = true
	return nil
}

// estimateInitialStep picks the automatic first step as
// sqrt(max(|y|,1) / max(|f(t,y)|,1e-10)), both norms weighted by ewt,
// capped at |tout-t| and signed towards tout. The tolerances enter only
// through ewt, which scales both norms alike, so the estimate does not
// shrink as the tolerances are tightened.
func (c *Context) estimateInitialStep(t, tout float64) float64 {
	tdir := sign(1, tout-t)
	ywt := math.Max(c.vmnorm(c.yh[1][1:], c.ewt[1:]), 1)
	fnorm := c.vmnorm(c.savf[1:], c.ewt[1:])
	h0 := math.Sqrt(ywt / math.Max(fnorm, 1e-10))
	if h0 > math.Abs(tout-t) {
		h0 = math.Abs(tout - t)
	}
	return sign(h0, tdir)
}
