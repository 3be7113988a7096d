// Package clampx provides a generic range clamp shared by every command
// encoder that silently clamps out-of-range inputs instead of erroring.
package clampx

import "cmp"

// Clamp returns v restricted to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
