// Package qap implements pairwise-exchange local search for the Quadratic
// Assignment Problem.
//
// An instance is a flow matrix F (unit × unit) and a distance matrix D
// (location × location). A permutation p assigns location p[i] to unit i and
// costs
//
//	C(p) = Σ_{i≠j} F[i][j] · D[p[i]][p[j]]
//
// The package provides:
//
//   - Evaluator: the cost kernel. Total recomputes C(p) in O(n²); Delta
//     returns the exact change of C(p) for exchanging two positions in O(n),
//     asymmetric F and D included.
//   - BestImprovement: steepest descent. Every pass scans all n(n−1)/2
//     exchanges and commits the single best strictly improving one.
//   - FirstImprovement: every pass reshuffles the exchanges with a seeded,
//     caller-owned generator and commits the first strictly improving one.
//   - A consistency guard that runs at the end of every search and compares
//     the incrementally tracked cost with a from-scratch recomputation. A
//     mismatch is returned as *ConsistencyError and no result is produced.
//
// Drivers mutate the caller's permutation in place by swaps only. They are
// synchronous and keep no global state; an Evaluator is read-only after
// construction and may be shared between goroutines, while each concurrent
// search needs its own permutation and its own *rand.Rand (see DeriveRNG).
//
// Progress is reported through an injectable EventSink (WithSink); LogSink
// adapts events to log/slog.
//
// Errors are sentinels from errors.go; match them with errors.Is / errors.As.
package qap
