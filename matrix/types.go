// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the inverter and Dense.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Size is the fixed edge length of every matrix this package inverts.
const Size = 2

// Number is the set of element kinds accepted by the statically typed
// entry points. Unsigned kinds are excluded: negating b and c must not wrap.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
