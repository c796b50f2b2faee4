package lsoda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictUnpredictRoundTrip(t *testing.T) {
	ctx, err := NewContext(2, Option{RelTol: []float64{1e-6}, AbsTol: []float64{1e-6}})
	assert.NoError(t, err)
	ctx.nq = 3
	ctx.l = 4
	for i := 1; i <= 5; i++ {
		for k := 1; k <= 2; k++ {
			ctx.yh[i][k] = float64(i*10 + k)
		}
	}
	before := cloneRows(ctx.yh, 5)

	ctx.predict()
	ctx.unpredict()

	after := cloneRows(ctx.yh, 5)
	for i := range before {
		for k := range before[i] {
			assert.InDelta(t, before[i][k], after[i][k], 1e-9)
		}
	}
}

func cloneRows(yh [][]float64, rows int) [][]float64 {
	out := make([][]float64, rows+1)
	for i := 0; i <= rows; i++ {
		out[i] = append([]float64(nil), yh[i]...)
	}
	return out
}
