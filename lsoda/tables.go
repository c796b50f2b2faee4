package lsoda

// mord holds the maximum order supported by each method: Adams (index 0,
// meth=1) caps at 12, BDF (index 1, meth=2) caps at 5.
var mord = [2]int{12, 5}

// sm1 is the Adams stability-region bound indexed by order nq (1-based,
// sm1[0] unused). It is a literal table, not a derived quantity, carried
// verbatim from the reference implementation.
var sm1 = [13]float64{
	0, 0.5, 0.575, 0.55, 0.45, 0.35, 0.25, 0.2, 0.15, 0.1, 0.075, 0.05, 0.025,
}

// coefficients holds the Adams and BDF predictor-corrector coefficients
// and error-test constants for every supported order, plus the cached
// cm1/cm2 products used by the method switcher. elco and tesco are kept
// as one table per method (index 0 = Adams, 1 = BDF) since the two
// methods' order-nq rows are unrelated despite sharing nq ranges; both
// tables are 1-indexed on the order and coefficient axes, padding index
// 0 unused to match the order-nq formulas in spec §4.8.
type coefficients struct {
	elco  [2][13][14]float64 // elco[meth-1][nq][1..nq+1]
	tesco [2][13][4]float64  // tesco[meth-1][nq][1..3]
	cm1   [13]float64        // cm1[nq] = tesco[Adams][nq][2]*elco[Adams][nq][nq+1], orders 1..12
	cm2   [6]float64         // cm2[nq] = tesco[BDF][nq][2]*elco[BDF][nq][nq+1], orders 1..5
}

// newCoefficients builds both methods' tables and the cm1/cm2 cache the
// method switcher needs, mirroring stoda's jstart==0 initialization block.
func newCoefficients() *coefficients {
	c := &coefficients{}
	c.cfode(2)
	for i := 1; i <= 5; i++ {
		c.cm2[i] = c.tesco[1][i][2] * c.elco[1][i][i+1]
	}
	c.cfode(1)
	for i := 1; i <= 12; i++ {
		c.cm1[i] = c.tesco[0][i][2] * c.elco[0][i][i+1]
	}
	return c
}

// elcoFor and tescoFor return the elco/tesco table for the given method
// (1 = Adams, 2 = BDF).
func (c *coefficients) elcoFor(meth int) *[13][14]float64 { return &c.elco[meth-1] }
func (c *coefficients) tescoFor(meth int) *[13][4]float64 { return &c.tesco[meth-1] }

// cfode fills elco/tesco for one method (1 = Adams, 2 = BDF) across all of
// that method's supported orders, from the Adams/BDF generating
// polynomials described in spec §4.8.
func (c *coefficients) cfode(meth int) {
	elco := c.elcoFor(meth)
	tesco := c.tescoFor(meth)
	var pc [14]float64

	if meth == 1 {
		elco[1][1] = 1
		elco[1][2] = 1
		tesco[1][1] = 0
		tesco[1][2] = 2
		tesco[2][1] = 1
		tesco[12][3] = 0
		pc[1] = 1
		rqfac := 1.0
		for nq := 2; nq <= 12; nq++ {
			rq1fac := rqfac
			rqfac /= float64(nq)
			nqm1 := nq - 1
			fnqm1 := float64(nqm1)
			nqp1 := nq + 1

			// Form coefficients of p(x)*(x+nq-1).
			pc[nq] = 0
			for i := nq; i >= 2; i-- {
				pc[i] = pc[i-1] + fnqm1*pc[i]
			}
			pc[1] = fnqm1 * pc[1]

			// Integrate p(x) and x*p(x) over [-1,0].
			pint := pc[1]
			xpin := pc[1] / 2
			tsign := 1.0
			for i := 2; i <= nq; i++ {
				tsign = -tsign
				pint += tsign * pc[i] / float64(i)
				xpin += tsign * pc[i] / float64(i+1)
			}

			elco[nq][1] = pint * rq1fac
			elco[nq][2] = 1
			for i := 2; i <= nq; i++ {
				elco[nq][i+1] = rq1fac * pc[i] / float64(i)
			}
			agamq := rqfac * xpin
			ragq := 1 / agamq
			tesco[nq][2] = ragq
			if nq < 12 {
				tesco[nqp1][1] = ragq * rqfac / float64(nqp1)
			}
			tesco[nqm1][3] = ragq
		}
		return
	}

	// meth == 2: BDF.
	pc[1] = 1
	rq1fac := 1.0
	for nq := 1; nq <= 5; nq++ {
		fnq := float64(nq)
		nqp1 := nq + 1

		// Form coefficients of p(x)*(x+nq).
		pc[nqp1] = 0
		for i := nq + 1; i >= 2; i-- {
			pc[i] = pc[i-1] + fnq*pc[i]
		}
		pc[1] *= fnq

		for i := 1; i <= nqp1; i++ {
			elco[nq][i] = pc[i] / pc[2]
		}
		elco[nq][2] = 1
		tesco[nq][1] = rq1fac
		tesco[nq][2] = float64(nqp1) / elco[nq][1]
		tesco[nq][3] = float64(nq+2) / elco[nq][1]
		rq1fac /= fnq
	}
}
