package qap

import (
	"errors"
	"fmt"
)

// Sentinel errors. Call sites wrap them with the operation name via %w;
// callers match with errors.Is.
var (
	// ErrDimensionMismatch: nil or non-square matrices, an empty permutation, or
	// flow/distance/permutation sizes that disagree.
	ErrDimensionMismatch = errors.New("qap: dimension mismatch")

	// ErrInvalidPermutation: a duplicate or out-of-range value in the permutation.
	ErrInvalidPermutation = errors.New("qap: invalid permutation")

	// ErrNonFiniteWeight: NaN or ±Inf in the flow or distance matrix.
	ErrNonFiniteWeight = errors.New("qap: non-finite weight")

	// ErrInvalidMove: exchange positions outside [0,n).
	ErrInvalidMove = errors.New("qap: invalid move")

	// ErrNilRNG: a nil *rand.Rand passed to FirstImprovementRand.
	ErrNilRNG = errors.New("qap: nil random generator")

	// ErrConsistency: the incrementally tracked cost diverged from the
	// recomputed one. Always fatal; see ConsistencyError for the values.
	ErrConsistency = errors.New("qap: incremental cost diverged from recomputed cost")
)

// qapErrorf tags err with the public operation that detected it.
func qapErrorf(op string, err error) error {
	return fmt.Errorf("qap.%s: %w", op, err)
}

// ConsistencyError reports a failed consistency check at termination.
// errors.Is(err, ErrConsistency) holds for it.
type ConsistencyError struct {
	Strategy    Strategy
	Incremental float64 // cost accumulated from committed deltas
	Recomputed  float64 // cost recomputed from scratch on the final permutation
	Moves       int     // committed moves before termination
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: %s after %d moves: incremental=%v recomputed=%v",
		ErrConsistency, e.Strategy, e.Moves, e.Incremental, e.Recomputed)
}

// Unwrap exposes ErrConsistency to errors.Is.
func (e *ConsistencyError) Unwrap() error { return ErrConsistency }
