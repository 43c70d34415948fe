// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qaplocal/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// faulty is a 2×2 Matrix whose At always fails.
type faulty struct{}

func (faulty) Rows() int { return 2 }
func (faulty) Cols() int { return 2 }
func (faulty) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (faulty) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (faulty) Clone() matrix.Matrix { return faulty{} }

// mustRows builds a *Dense from rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}
