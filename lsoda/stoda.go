package lsoda

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lsoda-go/lsoda/linalg"
	"github.com/lsoda-go/lsoda/ode"
)

// resetCoefficients loads el[] from the coefficient table for the current
// method/order and derives el0/conit, mirroring stoda's "initialize
// coefficients" block. It must run whenever meth, nq, or the step after a
// method switch changes.
func (c *Context) resetCoefficients() {
	row := &c.coef.elco[int(c.meth)-1][c.nq]
	for i := 1; i <= c.nq+1; i++ {
		c.el[i] = row[i]
	}
	c.el0 = c.el[1]
	c.conit = 0.5 / float64(c.nq+2)
}

// rescaleStep applies a step-size ratio rh (clamped by rmax) to h and to
// the Nordsieck history, whose row i carries an implicit h^(i-1) scaling.
func (c *Context) rescaleStep(rh float64) {
	if rh > c.rmax {
		rh = c.rmax
	}
	rh = rh / math.Max(1, math.Abs(c.h)*c.hmxi*rh)
	r := 1.0
	for j := 2; j <= c.l; j++ {
		r *= rh
		floats.Scale(r, c.yh[j][1:c.n+1])
	}
	c.h *= rh
	c.rc *= rh
	c.ialth = c.l + 1
}

// step performs one accepted internal step: predict, correct, error-test,
// and order/method adapt, retrying internally on corrector or error-test
// failure until either a step is accepted or the problem gives up
// (returning a failure Status).
func (c *Context) step(f ode.Function, payload any) ode.Status {
	if !c.refreshWeights() {
		return ode.StatusNonPositiveWeight
	}
	for {
		// rc drifting from 1 means h*el0 has moved enough since the last
		// Jacobian that P is stale; msbp caps how long a Jacobian can be
		// reused regardless of rc.
		if math.Abs(c.rc-1) > ccmax {
			c.ipup = c.miter
		}
		if c.nst >= c.nslp+msbp {
			c.ipup = c.miter
		}

		told := c.tn
		c.tn += c.h
		c.predict()
		copy(c.y, c.yh[1])
		pnorm := c.vmnorm(c.yh[1][1:], c.ewt[1:])
		c.callF(f, payload, c.tn, c.y, c.savf)

		if c.ipup > 0 {
			ok := c.prja(f, payload, c.y)
			c.ipup = 0
			c.rc = 1
			c.crate = 0.7
			c.nslp = c.nst
			if !ok {
				c.rejected++
				if retry := c.corfailure(told); retry {
					continue
				}
				return ode.StatusConvergenceFailure
			}
		}

		flag, _ := c.correction(f, payload, c.y)
		if flag == corrFailed {
			c.rejected++
			if retry := c.corfailure(told); retry {
				continue
			}
			return ode.StatusConvergenceFailure
		}
		c.ncf = 0

		dsm := c.vmnorm(c.acor[1:], c.ewt[1:]) / c.tesco(c.nq, 2)
		if dsm > 1 {
			c.rejected++
			c.kflag--
			c.tn = told
			c.unpredict()
			if tn1 := told + c.h; tn1 == told {
				// h has underflowed relative to tn: the requested
				// tolerance can no longer be resolved at this magnitude,
				// not merely a transient rejected step.
				return ode.StatusExcessAccuracy
			}
			if math.Abs(c.h) <= c.hmin*1.00001 || c.kflag <= -7 {
				return ode.StatusErrorTestFailure
			}
			rh := 1 / (math.Pow(dsm, 1/float64(c.l)) * 1.3 + 1.e-6)
			rh = math.Max(rh, c.hmin/math.Abs(c.h))
			if c.kflag <= -2 {
				rh = math.Min(rh, 0.1)
			}
			c.rescaleStep(rh)
			c.ipup = c.miter
			continue
		}

		// Step accepted.
		c.kflag = 0
		c.nst++
		c.hu = c.h
		c.nqu = c.nq
		c.mused = c.meth
		for j := 1; j <= c.l; j++ {
			linalg.AxpyTo(c.el[j], c.acor[1:c.n+1], c.yh[j][1:c.n+1])
		}
		c.orderAndMethodSelect(dsm, pnorm)
		return ode.StatusSuccess
	}
}
