package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		seconds float64
		want    int
	}{
		{0, 100000},
		{9, 49865},
		{60, 35002},
		{-3, 100000}, // clock skew never goes below zero
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.seconds), "Score(%v)", tt.seconds)
	}
}

func TestScoreGoesNegative(t *testing.T) {
	assert.Positive(t, Score(1500))
	assert.Negative(t, Score(1700))

	lo, hi := 1500.0, 1700.0
	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		if Score(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	assert.InDelta(t, 1587, lo, 1)
}

func TestScoreMonotonic(t *testing.T) {
	prev := Score(0)
	for s := 1.0; s < 3000; s += 7 {
		cur := Score(s)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0.00s", FormatElapsed(0))
	assert.Equal(t, "9.99s", FormatElapsed(9996*time.Millisecond))
	assert.Equal(t, "61.05s", FormatElapsed(61050*time.Millisecond))
	assert.Equal(t, "0.00s", FormatElapsed(-time.Second))
}
