// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape and nil checks.
//  - Keep the inversion kernels minimal by delegating guards here.
//
// Note:
//  - CheckShape/ValidateMatrixShape return errors for callers holding untrusted data.
//  - mustShape/mustMatrixShape turn the same checks into the always-on
//    precondition panic used by the Invert* entry points.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CheckShape reports whether m is exactly Size rows of Size elements.
// The check is structural and never inspects element values.
//
// Returns a *ShapeError (matching ErrBadShape) on violation, nil otherwise.
// Complexity: O(1).
func CheckShape[T any](m [][]T) error {
	if len(m) != Size {
		return &ShapeError{Rows: len(m), BadRow: -1}
	}
	for i, row := range m {
		if len(row) != Size {
			return &ShapeError{Rows: len(m), BadRow: i, Cols: len(row)}
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMatrixShape is CheckShape for the Matrix interface.
// Assumes m is not nil (caller must ensure).
func ValidateMatrixShape(m Matrix) error {
	if m.Rows() != Size {
		return &ShapeError{Rows: m.Rows(), BadRow: -1}
	}
	if m.Cols() != Size {
		return &ShapeError{Rows: m.Rows(), BadRow: 0, Cols: m.Cols()}
	}

	return nil
}

// mustShape panics with the *ShapeError from CheckShape.
// It runs regardless of build tags.
func mustShape[T any](m [][]T) {
	if err := CheckShape(m); err != nil {
		panic(err)
	}
}

// mustMatrixShape panics with the *ShapeError from ValidateMatrixShape.
func mustMatrixShape(m Matrix) {
	if err := ValidateMatrixShape(m); err != nil {
		panic(err)
	}
}
