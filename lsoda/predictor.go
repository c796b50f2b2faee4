package lsoda

import "github.com/lsoda-go/lsoda/linalg"

// predict advances the Nordsieck array yh by one step of size h via the
// Pascal-triangle update yh[i] += yh[i+1], applied from the top order
// down. This is the explicit Taylor-series forward step that stands in
// for a predictor in a predictor-corrector scheme; the corrector then
// refines it in place.
func (c *Context) predict() {
	for j1 := c.nq; j1 >= 1; j1-- {
		for i := j1; i <= c.nq; i++ {
			linalg.AxpyTo(1, c.yh[i+1][1:c.n+1], c.yh[i][1:c.n+1])
		}
	}
}

// unpredict undoes predict exactly, row by row in the mirror order, so a
// rejected step (error-test or corrector failure) can restore yh to its
// pre-prediction state without having kept a separate copy.
func (c *Context) unpredict() {
	for j1 := c.nq; j1 >= 1; j1-- {
		for i := j1; i <= c.nq; i++ {
			linalg.AxpyTo(-1, c.yh[i+1][1:c.n+1], c.yh[i][1:c.n+1])
		}
	}
}
