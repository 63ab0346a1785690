package math

import "golang.org/x/exp/constraints"

// FloorMod returns x mod m folded into [0, m). m must be positive.
func FloorMod[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
