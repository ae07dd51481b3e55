package model

import "math"

// Round2 rounds a monetary amount to two decimal places, half away
// from zero. Every mutation of a money field goes through this so
// float drift never accumulates across days.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
