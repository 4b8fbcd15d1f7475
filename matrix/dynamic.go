// SPDX-License-Identifier: MIT
// Package matrix: inversion of dynamically typed input.
//
// Purpose:
//   - Accept [][]any as produced by YAML/JSON decoders and invert it.
//
// Notes:
//   - The determinant is computed BEFORE element types are validated. An element
//     that cannot be multiplied (string, nil, map, ...) therefore fails in the
//     arithmetic stage with ErrArithmetic, and a singular matrix is reported as
//     ErrSingular even when it holds a complex element. Only a complex element
//     in an otherwise invertible matrix reaches ErrNonNumeric.
//   - bool counts as the integer 0/1 for both arithmetic and the type check.

package matrix

import (
	"fmt"
	"reflect"
)

// operand is an element that supports multiplication and subtraction.
type operand struct {
	re, im  float64
	complex bool
}

// arithmeticOrder lists positions in the order the determinant touches
// them: a and d for a*d, then b and c for b*c.
var arithmeticOrder = [Size * Size][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}}

// InvertAny returns the inverse of a dynamically typed 2×2 matrix.
// Implementation:
//   - Stage 1: shape precondition; a malformed m panics with *ShapeError.
//   - Stage 2: determinant arithmetic; a non-arithmetic element → *OperandError.
//   - Stage 3: det == 0 → ErrSingular.
//   - Stage 4: every element must be bool, integer or float → else ErrNonNumeric.
//   - Stage 5: [[d/det, -b/det], [-c/det, a/det]] in float64.
//
// Errors:
//   - ErrArithmetic (as *OperandError), ErrSingular, ErrNonNumeric; all wrapped with "InvertAny".
//
// Complexity:
//   - Time O(1), Space O(1).
func InvertAny(m [][]any) ([][]float64, error) {
	mustShape(m)

	// Stage 2: operands in arithmetic order
	var (
		ops      [Size][Size]operand
		anyCmplx bool
		ok       bool
		row, col int
		pos      [2]int
	)
	for _, pos = range arithmeticOrder {
		row, col = pos[0], pos[1]
		if ops[row][col], ok = asOperand(m[row][col]); !ok {
			return nil, matrixErrorf(opInvertAny, &OperandError{Row: row, Col: col, Value: m[row][col]})
		}
		anyCmplx = anyCmplx || ops[row][col].complex
	}

	a, b, c, d := ops[0][0], ops[0][1], ops[1][0], ops[1][1]

	// Stage 3: singular test in the widest kind seen
	if anyCmplx {
		if complexDet(a, b, c, d) == 0 {
			return nil, matrixErrorf(opInvertAny, ErrSingular)
		}
	} else if det2(a.re, b.re, c.re, d.re) == ZeroDeterminant {
		return nil, matrixErrorf(opInvertAny, ErrSingular)
	}

	// Stage 4: dedicated type check, row-major
	for row = 0; row < Size; row++ {
		for col = 0; col < Size; col++ {
			if !isNumeric(m[row][col]) {
				return nil, matrixErrorf(opInvertAny,
					fmt.Errorf("element (%d,%d) of type %T: %w", row, col, m[row][col], ErrNonNumeric))
			}
		}
	}

	// Stage 5: all operands are real here
	return construct(a.re, b.re, c.re, d.re, det2(a.re, b.re, c.re, d.re)), nil
}

// complexDet evaluates a*d - b*c over complex128.
func complexDet(a, b, c, d operand) complex128 {
	return a.value()*d.value() - b.value()*c.value()
}

func (o operand) value() complex128 { return complex(o.re, o.im) }

// asOperand reports whether v supports determinant arithmetic and returns it
// as an operand. Named types are classified by their underlying kind.
func asOperand(v any) (operand, bool) {
	if v == nil {
		return operand{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return operand{re: 1}, true
		}
		return operand{}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return operand{re: float64(rv.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return operand{re: float64(rv.Uint())}, true
	case reflect.Float32, reflect.Float64:
		return operand{re: rv.Float()}, true
	case reflect.Complex64, reflect.Complex128:
		z := rv.Complex()
		return operand{re: real(z), im: imag(z), complex: true}, true
	default:
		return operand{}, false
	}
}

// isNumeric is the integer-or-float membership test.
func isNumeric(v any) bool {
	op, ok := asOperand(v)

	return ok && !op.complex
}
