// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the two structured error types.
// All recoverable failures MUST be returned as (wrapped) sentinels and tests
// MUST match them via errors.Is. Panics are reserved for programmer errors:
// a malformed shape handed to Invert/InvertAny/InvertMatrix/Det/Mul, and
// nonsensical option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context matters; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape (panic) -> arithmetic on operands -> singular -> non-numeric element.

var (
	// ErrBadShape marks an input that is not exactly 2 rows by 2 columns.
	// Invert* entry points panic with a *ShapeError wrapping it; CheckShape returns it.
	ErrBadShape = errors.New("matrix: input must be a 2x2 matrix")

	// ErrSingular is returned when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: matrix is not invertible")

	// ErrNonNumeric is returned when an element supports arithmetic but is
	// not an integer or floating-point value (e.g., a complex number).
	ErrNonNumeric = errors.New("matrix: matrix elements must be numeric")

	// ErrArithmetic is returned when the determinant cannot be computed
	// because an element does not support multiplication/subtraction.
	ErrArithmetic = errors.New("matrix: unsupported operand for arithmetic")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested Dense dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// ShapeError describes a precondition violation on the input shape.
// Rows is the observed row count; BadRow is the first row whose length
// differs from 2 (-1 when the row count itself is wrong) and Cols its length.
type ShapeError struct {
	Rows   int
	BadRow int
	Cols   int
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.BadRow < 0 {
		return fmt.Sprintf("%v: got %d rows", ErrBadShape, e.Rows)
	}

	return fmt.Sprintf("%v: row %d has %d columns", ErrBadShape, e.BadRow, e.Cols)
}

// Unwrap exposes ErrBadShape to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrBadShape }

// OperandError reports the element that made determinant arithmetic fail.
type OperandError struct {
	Row, Col int
	Value    any
}

// Error implements error.
func (e *OperandError) Error() string {
	return fmt.Sprintf("%v: element (%d,%d) of type %T", ErrArithmetic, e.Row, e.Col, e.Value)
}

// Unwrap exposes ErrArithmetic to errors.Is.
func (e *OperandError) Unwrap() error { return ErrArithmetic }
