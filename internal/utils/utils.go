package utils

import "golang.org/x/exp/constraints"

// Max - Returns the biggest of a and b
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min - Returns the smallest of a and b
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs - Returns the absolute value of a
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
