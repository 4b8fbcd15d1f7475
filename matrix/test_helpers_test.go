// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the inversion kernels.
//   • Keep generated data well-conditioned so a 1e-9 tolerance is meaningful.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/inv2x2/matrix"
	"github.com/stretchr/testify/require"
)

// minAbsDet bounds generated determinants away from zero; with entries in
// [-10, 10] inverse entries stay below 40 in magnitude.
const minAbsDet = 0.5

// RandomInvertible RETURNS a pseudo-random 2×2 matrix with |det| ≥ minAbsDet.
// Deterministic for a given rng state.
func RandomInvertible(rng *rand.Rand) [][]float64 {
	for {
		m := [][]float64{
			{rng.Float64()*20 - 10, rng.Float64()*20 - 10},
			{rng.Float64()*20 - 10, rng.Float64()*20 - 10},
		}
		if math.Abs(matrix.Det(m)) >= minAbsDet {
			return m
		}
	}
}

// MustInvert CALLS matrix.Invert and fails the test on error.
func MustInvert(t testing.TB, m [][]float64) [][]float64 {
	t.Helper()
	inv, err := matrix.Invert(m)
	require.NoError(t, err)

	return inv
}

// RequireShapePanic ASSERTS that fn panics with a *ShapeError matching
// ErrBadShape and returns it for further inspection.
func RequireShapePanic(t *testing.T, fn func()) *matrix.ShapeError {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected a shape panic")

	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))

	return se
}
