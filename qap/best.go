package qap

import "github.com/katalvlaran/qaplocal/matrix"

// BestImprovement runs steepest-descent pairwise-exchange local search from
// perm, which it refines in place.
//
// Each pass evaluates all n(n−1)/2 exchanges (r<s, row-major order) and
// commits the one with the strictly smallest delta, provided that delta is
// negative; among equal deltas the first one enumerated wins. The search
// stops at the first pass without an improving exchange (a local optimum),
// then verifies the tracked cost against a full recomputation.
//
// Errors: ErrDimensionMismatch, ErrInvalidPermutation, ErrNonFiniteWeight
// (before any scan), *ConsistencyError (at termination).
//
// Complexity: O(n³) per pass (n² deltas × O(n)).
func BestImprovement(perm []int, flow, dist matrix.Matrix, opts ...Option) (Result, error) {
	ev, err := evaluatorFor("BestImprovement", perm, flow, dist)
	if err != nil {
		return Result{}, err
	}

	return ev.bestImprovement(perm, opts)
}

// BestImprovement is the Evaluator-bound form of the package-level driver,
// for callers running many searches on one instance.
func (e *Evaluator) BestImprovement(perm []int, opts ...Option) (Result, error) {
	if err := e.checkPermutation("BestImprovement", perm); err != nil {
		return Result{}, err
	}

	return e.bestImprovement(perm, opts)
}

func (e *Evaluator) bestImprovement(perm []int, opts []Option) (Result, error) {
	s := newSearch(e, StrategyBestImprovement, perm, opts)
	var (
		n         = e.n
		r, t      int
		delta     float64
		bestDelta float64
		best      Move
		found     bool
	)
	for {
		s.passes++
		bestDelta = -s.opts.eps
		found = false

		for r = 0; r < n-1; r++ {
			for t = r + 1; t < n; t++ {
				delta = e.delta(r, t, perm)
				s.evals++
				if delta < bestDelta {
					bestDelta = delta
					best = Move{R: r, S: t}
					found = true
				}
			}
		}

		if !found {
			return s.finish(StopLocalOptimum)
		}
		if s.commit(best, bestDelta) {
			return s.finish(StopMoveLimit)
		}
	}
}
