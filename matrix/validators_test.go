// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/inv2x2/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateMatrixShape(t *testing.T) {
	for _, tc := range []struct {
		rows, cols int
		ok         bool
	}{
		{2, 2, true},
		{1, 2, false},
		{2, 1, false},
		{3, 3, false},
	} {
		m, err := matrix.NewDense(tc.rows, tc.cols)
		require.NoError(t, err)

		err = matrix.ValidateMatrixShape(m)
		if tc.ok {
			require.NoError(t, err, "%dx%d", tc.rows, tc.cols)
			continue
		}
		require.ErrorIs(t, err, matrix.ErrBadShape, "%dx%d", tc.rows, tc.cols)
	}
}

func TestShapeError_Unwrap(t *testing.T) {
	err := matrix.CheckShape([][]int{{1, 2}, {3, 4}, {5, 6}})
	var se *matrix.ShapeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 3, se.Rows)
	require.Equal(t, -1, se.BadRow)
}
