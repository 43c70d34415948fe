package qap

import (
	"math/rand"

	"github.com/katalvlaran/qaplocal/matrix"
)

// FirstImprovement runs randomized first-improvement pairwise-exchange local
// search from perm, which it refines in place. The move order is drawn from a
// private generator seeded with seed (seed 0 selects a fixed default), so the
// same inputs and seed reproduce the same trajectory.
//
// Every pass shuffles the full list of n(n−1)/2 exchanges, walks it, and
// commits the first exchange with a negative delta; the next pass starts from
// a fresh shuffle. A pass that finds no improving exchange ends the search at
// a local optimum. Different seeds may end in different local optima.
//
// Errors: as BestImprovement.
func FirstImprovement(perm []int, flow, dist matrix.Matrix, seed int64, opts ...Option) (Result, error) {
	ev, err := evaluatorFor("FirstImprovement", perm, flow, dist)
	if err != nil {
		return Result{}, err
	}

	return ev.firstImprovement(perm, NewRNG(seed), opts)
}

// FirstImprovementRand is FirstImprovement with a caller-owned generator.
// rng must not be shared with a concurrently running search.
//
// Errors: ErrNilRNG in addition to FirstImprovement's.
func FirstImprovementRand(perm []int, flow, dist matrix.Matrix, rng *rand.Rand, opts ...Option) (Result, error) {
	if rng == nil {
		return Result{}, qapErrorf("FirstImprovementRand", ErrNilRNG)
	}
	ev, err := evaluatorFor("FirstImprovementRand", perm, flow, dist)
	if err != nil {
		return Result{}, err
	}

	return ev.firstImprovement(perm, rng, opts)
}

// FirstImprovement is the Evaluator-bound form of FirstImprovementRand.
func (e *Evaluator) FirstImprovement(perm []int, rng *rand.Rand, opts ...Option) (Result, error) {
	if rng == nil {
		return Result{}, qapErrorf("FirstImprovement", ErrNilRNG)
	}
	if err := e.checkPermutation("FirstImprovement", perm); err != nil {
		return Result{}, err
	}

	return e.firstImprovement(perm, rng, opts)
}

func (e *Evaluator) firstImprovement(perm []int, rng *rand.Rand, opts []Option) (Result, error) {
	s := newSearch(e, StrategyFirstImprovement, perm, opts)
	// One buffer for the whole run: each pass reshuffles it in place.
	moves := Neighborhood(e.n)

	var (
		threshold = -s.opts.eps
		delta     float64
		improved  bool
	)
	for {
		s.passes++
		shuffleMovesInPlace(moves, rng)
		improved = false

		for _, m := range moves {
			delta = e.delta(m.R, m.S, perm)
			s.evals++
			if delta < threshold {
				improved = true
				if s.commit(m, delta) {
					return s.finish(StopMoveLimit)
				}
				break
			}
		}

		if !improved {
			return s.finish(StopLocalOptimum)
		}
	}
}
