package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annualProfile(t *testing.T) Profile {
	t.Helper()
	p, ok := NewEngine().Profile(ProfileRIL25)
	require.True(t, ok)
	return p
}

func fiveYearProfile(t *testing.T) Profile {
	t.Helper()
	p, ok := NewEngine().Profile(ProfileRIL100)
	require.True(t, ok)
	return p
}

func TestRecoverEquilibriumIsFixedPoint(t *testing.T) {
	p := annualProfile(t)

	for _, elapsed := range []int{0, 1, 5, 25, 100} {
		assert.Equal(t, 300.0, p.Recover(300, elapsed), "elapsed %d", elapsed)
	}
}

func TestRecoverStrictlyIncreasingAndBounded(t *testing.T) {
	p := annualProfile(t)

	prev := p.Recover(225, 0)
	assert.Equal(t, 225.0, prev)

	for elapsed := 1; elapsed <= 60; elapsed++ {
		next := p.Recover(225, elapsed)
		assert.Greater(t, next, prev, "elapsed %d", elapsed)
		assert.Less(t, next, 300.0, "elapsed %d", elapsed)
		prev = next
	}
}

func TestRecoverSingleStepFormula(t *testing.T) {
	p := annualProfile(t)

	// One annual step closes k of the gap: 225 + 0.0825*(300-225).
	assert.InDelta(t, 231.1875, p.Recover(225, 1), 1e-9)
}

func TestRecoverDropsPartialSteps(t *testing.T) {
	p := fiveYearProfile(t)

	one := p.Recover(225, 5)
	assert.InDelta(t, 234.0, one, 1e-9) // 225 + 0.12*75

	// 9 elapsed years contain a single whole 5-year step; the remainder
	// is dropped, not interpolated.
	assert.Equal(t, one, p.Recover(225, 9))
	assert.Equal(t, 225.0, p.Recover(225, 4))
}

func TestRecoverNegativeElapsedIsNoop(t *testing.T) {
	p := annualProfile(t)
	assert.Equal(t, 225.0, p.Recover(225, -3))
}
