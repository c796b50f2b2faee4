package lsoda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCfodeAdamsOrderOneIdentity(t *testing.T) {
	c := newCoefficients()
	assert.Equal(t, 1.0, c.elco[0][1][1])
	assert.Equal(t, 1.0, c.elco[0][1][2])
}

func TestCfodeBDFSecondCoefficientNormalized(t *testing.T) {
	c := newCoefficients()
	// BDF's elco[nq][2] is always normalized to 1 by construction.
	for nq := 1; nq <= 5; nq++ {
		assert.Equal(t, 1.0, c.elco[1][nq][2], "nq=%d", nq)
	}
}

func TestCm1Cm2Cache(t *testing.T) {
	c := newCoefficients()
	for nq := 1; nq <= 12; nq++ {
		assert.InDelta(t, c.tesco[0][nq][2]*c.elco[0][nq][nq+1], c.cm1[nq], 1e-12)
	}
	for nq := 1; nq <= 5; nq++ {
		assert.InDelta(t, c.tesco[1][nq][2]*c.elco[1][nq][nq+1], c.cm2[nq], 1e-12)
	}
}
