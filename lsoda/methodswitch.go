package lsoda

import "math"

// switchRatio is the step-size advantage an Adams->BDF switch must show
// to be worth making (spec §4.6). The return trip compares
// rh1*switchRatio against 5*rh2, so BDF->Adams only needs Adams's step to
// be no smaller than BDF's.
const switchRatio = 5.0

// orderAndMethodSelect runs after a successful step: it picks the next
// step size and order (the rhup/rhdn/rhsm comparison of spec §4.6), then
// every icount-governed interval considers whether to switch between
// Adams and BDF (spec §4.7) based on the rh1/rh2 step-size comparison.
func (c *Context) orderAndMethodSelect(dsm, pnorm float64) {
	if c.ialth == 0 {
		c.ialth = 1
		return
	}
	if c.ialth > 1 {
		if c.ialth == 2 && c.nq < c.lmax {
			// One step away from being eligible to raise order: stash the
			// top Nordsieck row so rhup below can use it.
			row := c.yh[c.lmax+1]
			for i := 1; i <= c.n; i++ {
				row[i] = c.acor[i]
			}
		}
		c.ialth--
		c.maybeSwitchMethod(dsm, pnorm)
		return
	}

	// ialth == 1: reconsider order and step size.
	rhup := 0.0
	if c.nq < c.lmax {
		savf2 := c.yh[c.lmax+1]
		var dup float64
		for i := 1; i <= c.n; i++ {
			d := c.acor[i] - savf2[i]
			if a := math.Abs(d * c.ewt[i]); a > dup {
				dup = a
			}
		}
		dup /= c.tesco(c.nq, 3)
		rhup = 1 / (math.Pow(dup, 1/float64(c.l+1)) * 1.4 + 1.e-6)
	}
	rhsm := 1 / (math.Pow(dsm, 1/float64(c.l)) * 1.2 + 1.e-6)
	rhdn := 0.0
	if c.nq != 1 {
		ddn := c.vmnorm(c.yh[c.l][1:], c.ewt[1:]) / c.tesco(c.nq, 1)
		rhdn = 1 / (math.Pow(ddn, 1/float64(c.nq)) * 1.3 + 1.e-6)
	}

	newnq := c.nq
	rh := rhsm
	if rhup > rhsm && rhup > rhdn {
		newnq = c.nq + 1
		rh = rhup
	} else if rhdn > rhsm {
		newnq = c.nq - 1
		rh = rhdn
	}
	if rh < 1.1 || (newnq == c.nq && rh < 1.3) {
		c.ialth = 3
		c.maybeSwitchMethod(dsm, pnorm)
		return
	}
	rh = math.Min(rh, c.rmax)
	if newnq != c.nq {
		c.changeOrder(newnq)
	}
	c.rescaleStep(rh)
	c.ialth = c.l + 1
	c.maybeSwitchMethod(dsm, pnorm)
}

// changeOrder raises or lowers the active order by one. When raising, the
// new top Nordsieck row is seeded with acor*el[l]/l, taken from the order
// that has just been accepted.
func (c *Context) changeOrder(newnq int) {
	if newnq > c.nq {
		r := c.el[c.l] / float64(c.l)
		row := c.yh[newnq+1]
		for i := 1; i <= c.n; i++ {
			row[i] = c.acor[i] * r
		}
	}
	c.nq = newnq
	c.l = c.nq + 1
	c.resetCoefficients()
}

// maybeSwitchMethod considers an Adams<->BDF switch once icount (reset to
// 20 after every switch) counts down past zero, comparing the step size
// each method could ideally sustain (spec §4.6/§4.7): Adams->BDF needs
// rh2 >= switchRatio*rh1, BDF->Adams needs rh1*switchRatio >= 5*rh2 plus
// a roundoff-pollution guard on the step the new method would take.
func (c *Context) maybeSwitchMethod(dsm, pnorm float64) {
	c.icount--
	if c.icount >= 0 {
		return
	}
	if c.meth == methodAdams {
		c.trySwitchToBDF(dsm, pnorm)
	} else {
		c.trySwitchToAdams(dsm, pnorm)
	}
}

// trySwitchToBDF implements the Adams->BDF half of methodswitch: skip
// outright above order 5 or once the local error/Jacobian estimate is too
// roundoff-polluted to trust (pdest==0), otherwise derive rh1 (the step
// Adams could sustain, intersected with its stability bound) and rh2 (the
// step BDF could sustain at the candidate order nqm2) and switch only if
// BDF's step is at least switchRatio times larger.
func (c *Context) trySwitchToBDF(dsm, pnorm float64) {
	if c.nq > 5 {
		return
	}
	c.pdest = c.pdnorm * c.coef.cm1[c.nq]
	if dsm <= 100*pnorm*eta || c.pdest == 0 {
		return
	}

	exsm := 1 / float64(c.l)
	rh1 := 1 / (math.Pow(dsm, exsm) * 1.2 + 1.2e-6)
	rh1it := 2 * rh1
	pdh := c.pdlast * math.Abs(c.h)
	if pdh*rh1 > 1e-5 {
		rh1it = sm1[c.nq] / pdh
	}
	rh1 = math.Min(rh1, rh1it)

	var rh2 float64
	var nqm2 int
	if c.nq > c.mxords {
		nqm2 = c.mxords
		lm2 := c.mxords + 1
		exm2 := 1 / float64(lm2)
		dm2 := c.vmnorm(c.yh[lm2+1][1:], c.ewt[1:]) / c.coef.cm2[c.mxords]
		rh2 = 1 / (math.Pow(dm2, exm2) * 1.2 + 1.2e-6)
	} else {
		dm2 := dsm * (c.coef.cm1[c.nq] / c.coef.cm2[c.nq])
		rh2 = 1 / (math.Pow(dm2, exsm) * 1.2 + 1.2e-6)
		nqm2 = c.nq
	}
	if rh2 < switchRatio*rh1 {
		return
	}
	c.switchMethod(methodBDF, nqm2, rh2)
}

// trySwitchToAdams implements the BDF->Adams half of methodswitch:
// derive rh1 (the step Adams could sustain at the candidate order nqm1,
// intersected with its stability bound) and rh2 (the step BDF could
// sustain), requiring rh1*switchRatio >= 5*rh2, then apply the
// roundoff guard that keeps a switch from being made into a step so
// small it would be dominated by roundoff.
func (c *Context) trySwitchToAdams(dsm, pnorm float64) {
	exsm := 1 / float64(c.l)

	var rh1, dm1, exm1 float64
	var nqm1 int
	if c.mxordn < c.nq {
		nqm1 = c.mxordn
		lm1 := c.mxordn + 1
		exm1 = 1 / float64(lm1)
		dm1 = c.vmnorm(c.yh[lm1+1][1:], c.ewt[1:]) / c.coef.cm1[c.mxordn]
		rh1 = 1 / (math.Pow(dm1, exm1) * 1.2 + 1.2e-6)
	} else {
		dm1 = dsm * (c.coef.cm2[c.nq] / c.coef.cm1[c.nq])
		rh1 = 1 / (math.Pow(dm1, exsm) * 1.2 + 1.2e-6)
		nqm1 = c.nq
		exm1 = exsm
	}

	rh1it := 2 * rh1
	pdh := c.pdnorm * math.Abs(c.h)
	if pdh*rh1 > 1e-5 {
		rh1it = sm1[nqm1] / pdh
	}
	rh1 = math.Min(rh1, rh1it)
	rh2 := 1 / (math.Pow(dsm, exsm) * 1.2 + 1.2e-6)
	if rh1*switchRatio < 5*rh2 {
		return
	}

	alpha := math.Max(0.001, rh1)
	dm1 *= math.Pow(alpha, exm1)
	if dm1 <= 1000*eta*pnorm {
		return
	}
	c.switchMethod(methodAdams, nqm1, rh1)
}

// switchMethod commits a confirmed Adams<->BDF switch: it installs the
// new method/order's coefficients, forces a Jacobian refresh on the
// method's first chord step (ipup), resets the switch-interval counter,
// and treats the switch as a forced step-size change by rescaling h with
// the rh the switch decision computed (spec §4.6).
func (c *Context) switchMethod(m Method, newnq int, rh float64) {
	c.meth = m
	c.miter = c.miterForMethod(m)
	c.nq = newnq
	c.l = c.nq + 1
	c.lmax = c.maxOrderFor(m)
	c.resetCoefficients()
	c.rc = 0
	c.crate = 0.7
	c.nslp = c.nst
	c.ipup = c.miter
	c.icount = 20
	c.pdlast = 0
	c.tsw = c.tn

	rh = math.Max(rh, c.hmin/math.Abs(c.h))
	c.rescaleStep(rh)
	c.rmax = 10

	if c.verbose {
		c.logger.Info("method switch", "time", c.tn, "to", m.String())
	}
}

func (c *Context) miterForMethod(m Method) int {
	if m == methodBDF {
		return 2
	}
	return 0
}

func (c *Context) maxOrderFor(m Method) int {
	if m == methodBDF {
		return c.mxords
	}
	return c.mxordn
}
