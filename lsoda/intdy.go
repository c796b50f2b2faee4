package lsoda

import "math"

// interpolate evaluates the k-th derivative of the interpolating
// polynomial at t into dky, by a falling-factorial Horner evaluation over
// the Nordsieck history (spec §4: intdy). k must be between 0 and the
// current order nq. It returns false if t lies outside the window the
// current history can interpolate, or k is out of range.
func (c *Context) interpolate(t float64, k int, dky []float64) bool {
	if k < 0 || k > c.nq {
		return false
	}
	tfuzz := 100 * eta * sign(math.Abs(c.tn)+math.Abs(c.hu), c.hu)
	tp := c.tn - c.hu - tfuzz
	tn1 := c.tn + tfuzz
	if (t-tp)*(t-tn1) > 0 {
		return false
	}

	s := (t - c.tn) / c.h
	ic := 1
	for jj := c.l - k; jj <= c.nq; jj++ {
		ic *= jj
	}
	cval := float64(ic)
	row := c.yh[c.l]
	for i := 1; i <= c.n; i++ {
		dky[i] = cval * row[i]
	}
	for j := c.nq - 1; j >= k; j-- {
		jp1 := j + 1
		ic = 1
		for jj := jp1 - k; jj <= j; jj++ {
			ic *= jj
		}
		cval = float64(ic)
		row = c.yh[jp1]
		for i := 1; i <= c.n; i++ {
			dky[i] = cval*row[i] + s*dky[i]
		}
	}
	if k == 0 {
		return true
	}
	r := math.Pow(c.h, float64(-k))
	for i := 1; i <= c.n; i++ {
		dky[i] *= r
	}
	return true
}
