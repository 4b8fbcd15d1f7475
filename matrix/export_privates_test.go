// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported operand classification to matrix_test ONLY.
//   - File name ends in _test.go, so it never reaches production builds.

var (
	// ExportedIsNumeric exposes the integer-or-float membership test.
	ExportedIsNumeric = isNumeric

	// ExportedSupportsArithmetic reports whether an element can enter the determinant.
	ExportedSupportsArithmetic = func(v any) bool {
		_, ok := asOperand(v)
		return ok
	}
)
