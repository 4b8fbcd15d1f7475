// SPDX-License-Identifier: MIT
// Package matrix: closed-form 2×2 inversion.
//
// Purpose:
//   - Invert a 2×2 matrix as adj(A)/det(A) with fail-fast validation.
//
// Notes:
//   - Validation order is fixed: shape (panic) → determinant → singular →
//     element type → construction. The typed entry points cannot hold a
//     non-numeric element, so their type step is enforced by the compiler;
//     InvertAny in dynamic.go runs it at runtime.
//   - No pivoting, no conditioning checks: the singular test is det == 0 exactly.

package matrix

import "fmt"

// ZeroDeterminant is the exact value that marks a matrix as singular.
const ZeroDeterminant = 0.0

// Operation name constants for unified error wrapping.
const (
	opInvert       = "Invert"
	opInvertAny    = "InvertAny"
	opInvertMatrix = "InvertMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Invert returns the inverse of the 2×2 matrix m.
// Implementation:
//   - Stage 1: shape precondition; a malformed m panics with *ShapeError.
//   - Stage 2: det = a*d - b*c in float64.
//   - Stage 3: det == 0 → ErrSingular.
//   - Stage 4: [[d/det, -b/det], [-c/det, a/det]] in a fresh allocation.
//
// Inputs:
//   - m: [[a, b], [c, d]]; read only, never retained.
//
// Returns:
//   - [][]float64: new 2×2 inverse, float64 even for integer input.
//
// Errors:
//   - ErrSingular (wrapped with "Invert").
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Integer elements are promoted to float64 before any arithmetic, so
//     products never overflow the element type.
//   - NaN/Inf elements are not rejected; they propagate per IEEE-754.
func Invert[T Number](m [][]T) ([][]float64, error) {
	mustShape(m)

	inv, err := invert2(
		float64(m[0][0]), float64(m[0][1]),
		float64(m[1][0]), float64(m[1][1]),
	)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	return inv, nil
}

// InvertMatrix is Invert for the Matrix interface.
// A nil m returns ErrNilMatrix; a non-2×2 m panics with *ShapeError.
// The result is a new *Dense; m is not modified.
func InvertMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInvertMatrix, err)
	}
	mustMatrixShape(m)

	var (
		v   [Size * Size]float64 // a, b, c, d in row-major order
		err error
	)
	for k := range v {
		if v[k], err = m.At(k/Size, k%Size); err != nil {
			return nil, matrixErrorf(opInvertMatrix, err)
		}
	}

	rows, err := invert2(v[0], v[1], v[2], v[3])
	if err != nil {
		return nil, matrixErrorf(opInvertMatrix, err)
	}

	return NewDenseFrom(rows)
}

// Det returns a*d - b*c for m = [[a, b], [c, d]].
// Panics with *ShapeError when m is not 2×2.
func Det[T Number](m [][]T) float64 {
	mustShape(m)

	return det2(float64(m[0][0]), float64(m[0][1]), float64(m[1][0]), float64(m[1][1]))
}

// det2 is the scalar determinant kernel.
func det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// invert2 is the shared kernel behind every typed entry point.
func invert2(a, b, c, d float64) ([][]float64, error) {
	det := det2(a, b, c, d)
	if det == ZeroDeterminant { // -0.0 compares equal as well
		return nil, ErrSingular
	}

	return construct(a, b, c, d, det), nil
}

// construct builds adj(A)/det as a freshly allocated 2×2 slice.
func construct(a, b, c, d, det float64) [][]float64 {
	return [][]float64{
		{d / det, -b / det},
		{-c / det, a / det},
	}
}
