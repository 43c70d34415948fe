// Package qap_test provides helpers shared across *_test.go files in this
// package: deterministic instance builders, a recording sink and a
// non-Dense matrix wrapper.
package qap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qaplocal/matrix"
	"github.com/katalvlaran/qaplocal/qap"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed for instance generation across tests.
	seedDet = int64(20240611)

	// nRegression is the instance size of the consistency regression runs.
	nRegression = 20
)

// exampleFlow / exampleDist are the 3×3 instance whose identity cost is
// 2·(1·4 + 2·5 + 3·6) = 64.
var (
	exampleFlow = [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	exampleDist = [][]float64{{0, 4, 5}, {4, 0, 6}, {5, 6, 0}}
)

// opaque hides *matrix.Dense behind the interface to force generic paths.
type opaque struct{ matrix.Matrix }

// rawMatrix is a Matrix that, unlike Dense, stores whatever it is given
// (including NaN), so tests can feed non-finite weights.
type rawMatrix [][]float64

func (m rawMatrix) Rows() int { return len(m) }
func (m rawMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
func (m rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}
	return m[i][j], nil
}
func (m rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v
	return nil
}
func (m rawMatrix) Clone() matrix.Matrix {
	cp := make(rawMatrix, len(m))
	for i := range m {
		cp[i] = append([]float64(nil), m[i]...)
	}
	return cp
}

// dense builds a *matrix.Dense or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomRows returns an n×n matrix with zero diagonal and off-diagonal
// integers in [lo,hi]. symmetric mirrors the upper triangle.
func randomRows(n, lo, hi int, symmetric bool, rng *rand.Rand) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			v := float64(lo + rng.Intn(hi-lo+1))
			rows[i][j] = v
			if symmetric {
				rows[j][i] = v
			}
		}
	}

	return rows
}

// fractionalRows returns an n×n matrix with zero diagonal and
// non-integral off-diagonal values in [0,10).
func fractionalRows(n int, rng *rand.Rand) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = math.Round(rng.Float64()*10*1e6) / 1e6
			}
		}
	}

	return rows
}

// instance is a generated test case.
type instance struct {
	flow, dist *matrix.Dense
	perm       []int
}

// randomInstance builds a reproducible integer instance with weights in
// [0,10] and a shuffled initial permutation.
func randomInstance(t testing.TB, n int, symmetric bool, seed int64) instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	inst := instance{
		flow: dense(t, randomRows(n, 0, 10, symmetric, rng)),
		dist: dense(t, randomRows(n, 0, 10, symmetric, rng)),
		perm: rng.Perm(n),
	}

	return inst
}

// recorder collects events in order.
type recorder struct{ events []qap.Event }

func (r *recorder) Emit(ev qap.Event) { r.events = append(r.events, ev) }

// ofKind filters recorded events.
func (r *recorder) ofKind(k qap.EventKind) []qap.Event {
	var out []qap.Event
	for _, ev := range r.events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}

	return out
}

// clonePerm returns an independent copy of p.
func clonePerm(p []int) []int { return append([]int(nil), p...) }

// swapped returns a copy of p with positions r and s exchanged.
func swapped(p []int, r, s int) []int {
	q := clonePerm(p)
	q[r], q[s] = q[s], q[r]

	return q
}

// Repeat runs fn n times as subtests to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("", fn)
	}
}

// requireLocalOptimum asserts that no exchange of perm strictly improves cost.
func requireLocalOptimum(t *testing.T, ev *qap.Evaluator, perm []int) {
	t.Helper()
	for _, m := range qap.Neighborhood(len(perm)) {
		d, err := ev.Delta(m.R, m.S, perm)
		require.NoError(t, err)
		require.GreaterOrEqualf(t, d, 0.0, "improving move %v left at termination", m)
	}
}
