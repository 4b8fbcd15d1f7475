// Package matrix inverts 2×2 numeric matrices in closed form.
//
// The matrix package provides:
//
//   - Invert for statically typed input ([][]T, T an integer or float kind).
//   - InvertAny for decoded, dynamically typed input ([][]any).
//   - InvertMatrix for any Matrix implementation, returning a *Dense.
//   - Det, Mul, Identity, AllClose and IsIdentity to state and check
//     the inverse identities A·A⁻¹ = A⁻¹·A = I.
//
// Failure model:
//
//   - A shape other than 2×2 is a programmer error and panics with a
//     *ShapeError (errors.Is(err, ErrBadShape)). Use CheckShape first when the
//     data comes from outside the program.
//   - A zero determinant returns ErrSingular.
//   - In InvertAny, an element that cannot be multiplied returns ErrArithmetic;
//     a complex element in an invertible matrix returns ErrNonNumeric.
//
// All functions are pure: inputs are never modified or retained, results are
// freshly allocated, and concurrent use needs no locking.
//
// See the examples in this package for usage patterns.
package matrix
