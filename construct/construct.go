// Package construct builds starting permutations for the local-search
// drivers: a uniform random permutation, the flow/distance potential greedy,
// and a best-of-k random search baseline.
//
// All functions return perm with perm[unit] = location.
package construct

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/qaplocal/matrix"
	"github.com/katalvlaran/qaplocal/qap"
)

// Random returns a uniformly random permutation of [0,n).
//
// Errors: qap.ErrDimensionMismatch (n < 1), qap.ErrNilRNG.
func Random(n int, rng *rand.Rand) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("construct.Random: %w", qap.ErrDimensionMismatch)
	}
	if rng == nil {
		return nil, fmt.Errorf("construct.Random: %w", qap.ErrNilRNG)
	}

	return rng.Perm(n), nil
}

// Greedy assigns heavy units to central locations. A unit's potential is its
// total flow (row plus column sum of F); a location's is its total distance
// (row plus column sum of D). Units sorted by descending potential receive
// locations sorted by ascending potential, rank by rank. Ties keep index
// order, so the result is deterministic.
//
// Errors: as qap.NewEvaluator.
// Complexity: O(n² + n log n).
func Greedy(flow, dist matrix.Matrix) ([]int, error) {
	if _, err := qap.NewEvaluator(flow, dist); err != nil {
		return nil, fmt.Errorf("construct.Greedy: %w", err)
	}
	f, _ := matrix.Flatten(flow)
	d, _ := matrix.Flatten(dist)
	n := flow.Rows()

	unitPot := potentials(f, n)
	locPot := potentials(d, n)

	units := lo.Range(n)
	slices.SortStableFunc(units, func(a, b int) int { return cmp.Compare(unitPot[b], unitPot[a]) })
	locs := lo.Range(n)
	slices.SortStableFunc(locs, func(a, b int) int { return cmp.Compare(locPot[a], locPot[b]) })

	perm := make([]int, n)
	for rank, u := range units {
		perm[u] = locs[rank]
	}

	return perm, nil
}

// potentials returns, for every index i, Σ_j m[i][j] + m[j][i] over a
// row-major n×n buffer.
func potentials(m []float64, n int) []float64 {
	return lo.Map(lo.Range(n), func(i, _ int) float64 {
		var sum float64
		for j := 0; j < n; j++ {
			sum += m[i*n+j] + m[j*n+i]
		}
		return sum
	})
}

// RandomSearch samples iters random permutations and keeps the cheapest;
// the first sample wins ties. It is the unguided baseline the local
// searches are measured against.
//
// Errors: qap.ErrNilRNG, qap.ErrDimensionMismatch (iters < 1).
func RandomSearch(ev *qap.Evaluator, iters int, rng *rand.Rand) ([]int, float64, error) {
	if rng == nil {
		return nil, 0, fmt.Errorf("construct.RandomSearch: %w", qap.ErrNilRNG)
	}
	if ev == nil || iters < 1 {
		return nil, 0, fmt.Errorf("construct.RandomSearch: %w", qap.ErrDimensionMismatch)
	}

	var (
		best     []int
		bestCost float64
	)
	for i := 0; i < iters; i++ {
		perm := rng.Perm(ev.N())
		cost, err := ev.Total(perm)
		if err != nil {
			return nil, 0, fmt.Errorf("construct.RandomSearch: %w", err)
		}
		if best == nil || cost < bestCost {
			best, bestCost = perm, cost
		}
	}

	return best, bestCost, nil
}
