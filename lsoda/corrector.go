package lsoda

import (
	"math"

	"github.com/lsoda-go/lsoda/ode"
)

// prja builds the iteration matrix P = I - h*el0*J by one-sided finite
// differences of f, then factorizes it. This is the only Jacobian mode
// implemented (spec Open Question 3): analytic and banded Jacobians are
// rejected at Option-validation time.
func (c *Context) prja(f ode.Function, payload any, y []float64) bool {
	c.nje++

	fac := c.vmnorm(c.savf[1:], c.ewt[1:])
	r0 := 1000 * math.Abs(c.h) * eta * float64(c.n) * fac
	if r0 == 0 {
		r0 = 1
	}

	ysave := make([]float64, c.n+1)
	copy(ysave, y)
	ftem := make([]float64, c.n+1)

	c.jac.Reset()
	for j := 1; j <= c.n; j++ {
		yj := ysave[j]
		r := math.Max(math.Sqrt(eta)*math.Abs(yj), r0/c.ewt[j])
		y[j] = ysave[j] + r
		rfac := 1 / r
		c.callF(f, payload, c.tn, y, ftem)
		for i := 1; i <= c.n; i++ {
			c.jac.Set(i-1, j-1, (ftem[i]-c.savf[i])*rfac)
		}
		y[j] = yj
	}
	copy(y, ysave)

	hl0 := c.h * c.el0
	for i := 1; i <= c.n; i++ {
		for j := 1; j <= c.n; j++ {
			c.jac.Set(i-1, j-1, -c.jac.At(i-1, j-1)*hl0)
		}
	}
	c.pdnorm = c.fnorm() / math.Abs(hl0)
	c.jac.AddToDiagonal(1)
	return c.jac.Factorize()
}

// fnorm reports the weighted norm of the stored matrix. prja calls it
// while the matrix holds -h*el0*J (before the identity is added back in)
// and divides by |h*el0| to get pdnorm, which the method switcher uses.
func (c *Context) fnorm() float64 {
	var norm float64
	for i := 1; i <= c.n; i++ {
		var sum float64
		for j := 1; j <= c.n; j++ {
			sum += math.Abs(c.jac.At(i-1, j-1)) / c.ewt[j]
		}
		if v := sum * c.ewt[i]; v > norm {
			norm = v
		}
	}
	return norm
}

func (c *Context) callF(f ode.Function, payload any, t float64, y, dy []float64) {
	c.nfe++
	f(t, y[1:c.n+1], dy[1:c.n+1], payload)
}

// solsy solves P*x = b in place for the iteration matrix built by prja.
func (c *Context) solsy(b []float64) {
	c.jac.Solve(b[1 : c.n+1])
}

// corrFlag mirrors the legacy corrector's outcome codes.
type corrFlag int

const (
	corrConverged corrFlag = iota
	corrFailed
)

// correction runs the functional-iteration or modified-Newton corrector
// to convergence, or gives up after maxcor passes or on divergence. y
// must hold the predicted values (yh[1]) on entry; savf must hold
// f(tn, predicted). On convergence, y holds the corrected values, acor
// the accumulated correction (yh itself is left as predicted), and del is
// the last weighted correction norm.
func (c *Context) correction(f ode.Function, payload any, y []float64) (flag corrFlag, del float64) {
	m := 0
	var delp float64
	pnorm := c.vmnorm(c.yh[1][1:], c.ewt[1:])
	for i := 1; i <= c.n; i++ {
		c.acor[i] = 0
	}

	for {
		ftem := make([]float64, c.n+1)
		if m == 0 {
			// First pass reuses the f already evaluated at the prediction.
			copy(ftem, c.savf)
		} else {
			c.callF(f, payload, c.tn, y, ftem)
		}

		for i := 1; i <= c.n; i++ {
			ftem[i] = c.h*ftem[i] - (c.yh[2][i] + c.acor[i])
		}
		if c.miter != 0 {
			c.solsy(ftem)
		}

		del = c.vmnorm(ftem[1:], c.ewt[1:])
		for i := 1; i <= c.n; i++ {
			c.acor[i] += ftem[i]
			y[i] = c.yh[1][i] + c.el[1]*c.acor[i]
		}

		if del <= 100*pnorm*eta {
			return corrConverged, del
		}
		if m != 0 {
			c.crate = math.Max(0.2*c.crate, del/delp)
		}
		dcon := del * math.Min(1, 1.5*c.crate) / (c.tesco(c.nq, 2) * c.conit)
		if dcon <= 1 {
			return corrConverged, del
		}
		m++
		if m == maxcor {
			return corrFailed, del
		}
		if m >= 2 && del > 2*delp {
			return corrFailed, del
		}
		delp = del
	}
}

func (c *Context) tesco(nq, k int) float64 {
	return c.coef.tesco[int(c.meth)-1][nq][k]
}

// corfailure restores the pre-step state after a non-convergent corrector
// and decides whether to shrink the step and retry or give up.
func (c *Context) corfailure(told float64) (retry bool) {
	c.ncf++
	c.rmax = 2
	c.tn = told
	c.unpredict()
	if math.Abs(c.h) <= c.hmin*1.00001 || c.ncf == mxncf {
		return false
	}
	c.rescaleStep(0.25)
	c.ipup = c.miter
	return true
}
