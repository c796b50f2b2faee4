package lsoda

import "github.com/lsoda-go/lsoda/linalg"

// refreshWeights recomputes ewt from the current y (spec §3) and inverts
// it in place so callers can use vmnorm's multiply form directly. A
// non-positive tolerance scale means some component's combination of
// rtol/atol/y has gone degenerate, so the step is aborted with
// StatusNonPositiveWeight rather than inverting a zero.
func (c *Context) refreshWeights() bool {
	c.ewset(c.yh[1])
	for i := 1; i <= c.n; i++ {
		if c.ewt[i] <= 0 {
			return false
		}
		c.ewt[i] = 1 / c.ewt[i]
	}
	return true
}

// vmnorm is the weighted max norm used throughout the corrector and error
// test: max_i |v[i]| * w[i]. Callers pass the padding-free tail of a
// 1-indexed array (e.g. acor[1:]), so this is exactly linalg.WeightedMaxNorm;
// kept as a thin wrapper so call sites read as a Context method alongside
// refreshWeights.
func (c *Context) vmnorm(v, w []float64) float64 {
	return linalg.WeightedMaxNorm(v, w)
}
