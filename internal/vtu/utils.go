package vtu

import (
	"math/rand/v2"
	"time"
)

const latencySpread = 0.15

// jitterDuration разбрасывает d в пределах ±spread (0.15 = 15%). Отрицательный spread заменяется на
// latencySpread, нулевая длительность остается нулевой.
func jitterDuration(d time.Duration, spread float64) time.Duration {
	if d <= 0 {
		return 0
	}
	if spread < 0 {
		spread = latencySpread
	}
	factor := 1 - spread + rand.Float64()*2*spread //nolint:gosec,mnd
	return time.Duration(float64(d) * factor)
}
