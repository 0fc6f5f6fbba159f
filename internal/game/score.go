package game

import (
	"fmt"
	"math"
	"time"
)

// Score rewards fast clears logarithmically and charges a flat 15 points per
// second, so a slow enough clear goes negative. Negative input counts as 0.
func Score(elapsedSeconds float64) int {
	t := math.Max(elapsedSeconds, 0)
	return roundHalfUp(ScoreBase/(1+math.Log10(t+1)) - t*ScorePerSecondUp)
}

// FormatElapsed renders a duration as seconds with two digits of hundredths,
// truncated rather than rounded: 9.996s reads "9.99s".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d.%02ds", ms/1000, (ms%1000)/10)
}
