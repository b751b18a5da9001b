// Package util holds small numeric helpers shared by the layout and
// demo code.
package util

import "golang.org/x/exp/constraints"

// Clamp bounds v to the inclusive range [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Percent returns percent% of total, truncated toward zero.
func Percent(total, percent int) int {
	return total * percent / 100
}
