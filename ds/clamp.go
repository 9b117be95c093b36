package ds

import (
	"golang.org/x/exp/constraints"
)

func Clamp[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
