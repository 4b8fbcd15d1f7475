// SPDX-License-Identifier: MIT
// Package matrix: 2×2 helpers used to state and check inverse identities.

package matrix

import "math"

// Identity returns a freshly allocated 2×2 identity matrix.
func Identity() [][]float64 {
	return [][]float64{{1, 0}, {0, 1}}
}

// Mul returns the standard product a·b of two 2×2 matrices.
// Panics with *ShapeError when either operand is not 2×2.
// Complexity: O(1).
func Mul(a, b [][]float64) [][]float64 {
	mustShape(a)
	mustShape(b)

	out := [][]float64{make([]float64, Size), make([]float64, Size)}
	var i, j, k int // loop iterators
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			for k = 0; k < Size; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// AllClose reports whether a and b agree element-wise within eps
// (DefaultEpsilon unless overridden with WithEpsilon).
// Operands of different shapes are never close; NaN is never close to anything.
func AllClose(a, b [][]float64, opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !(math.Abs(a[i][j]-b[i][j]) <= eps) { // negated form rejects NaN
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is the 2×2 identity within eps.
func IsIdentity(m [][]float64, opts ...Option) bool {
	return AllClose(m, Identity(), opts...)
}
