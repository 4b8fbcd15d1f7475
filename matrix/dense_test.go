// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/inv2x2/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{2, 2},
		{3, 1},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					v, err := m.At(i, j)
					require.NoError(t, err)
					require.Zero(t, v)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Dense.At(2,0): matrix: index out of range")

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Dense.Set(0,-1): matrix: index out of range")
}

func TestDense_CloneAndDataAreIndependent(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	rows := m.Data()
	rows[1][1] = 42
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Data())
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	require.NoError(t, err)
	require.Equal(t, "[0.6, -0.7]\n[-0.2, 0.4]\n", m.String())
}
