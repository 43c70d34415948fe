// Package qap - cost kernel shared by both local-search drivers.
//
// Evaluator prefetches F and D into dense row-major buffers once, so the
// hot loops (Total: O(n²), Delta: O(n)) index plain slices instead of going
// through matrix.Matrix.
//
// Exactness:
//   - When both matrices hold whole numbers and every partial sum the kernel
//     can form stays within 2^53, float64 arithmetic is exact. The evaluator
//     records this as exact=true and the consistency guard then demands
//     bitwise equality.
//   - Otherwise results are subject to rounding and the guard compares with a
//     relative tolerance.
package qap

import (
	"math"

	"github.com/katalvlaran/qaplocal/matrix"
)

// exactLimit is the largest integer magnitude float64 represents exactly.
const exactLimit = 1 << 53

// Evaluator is the QAP cost kernel for one (flow, distance) pair.
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	n     int
	flow  []float64 // flow[i*n+j]  = F[i][j]
	dist  []float64 // dist[a*n+b]  = D[a][b]
	exact bool      // integer-valued and within exactLimit
	scale float64   // max|F| · max|D|, magnitude of a single cost term
}

// NewEvaluator validates flow and dist and prefetches them.
//
// Errors (wrapped, match with errors.Is):
//   - ErrDimensionMismatch: nil or non-square matrices, or different orders.
//   - ErrNonFiniteWeight: NaN or ±Inf anywhere.
//
// Complexity: O(n²) time and space.
func NewEvaluator(flow, dist matrix.Matrix) (*Evaluator, error) {
	const op = "NewEvaluator"
	if matrix.ValidateSquareNonNil(flow) != nil || matrix.ValidateSquareNonNil(dist) != nil {
		return nil, qapErrorf(op, ErrDimensionMismatch)
	}
	if flow.Rows() == 0 || flow.Rows() != dist.Rows() {
		return nil, qapErrorf(op, ErrDimensionMismatch)
	}
	if matrix.ValidateFinite(flow) != nil || matrix.ValidateFinite(dist) != nil {
		return nil, qapErrorf(op, ErrNonFiniteWeight)
	}

	f, err := matrix.Flatten(flow)
	if err != nil {
		return nil, qapErrorf(op, ErrDimensionMismatch)
	}
	d, err := matrix.Flatten(dist)
	if err != nil {
		return nil, qapErrorf(op, ErrDimensionMismatch)
	}

	e := &Evaluator{n: flow.Rows(), flow: f, dist: d}
	e.classify(flow, dist)

	return e, nil
}

// classify fills scale and exact. Errors are impossible here: both matrices
// already passed ValidateFinite.
func (e *Evaluator) classify(flow, dist matrix.Matrix) {
	maxF, _ := matrix.MaxAbs(flow)
	maxD, _ := matrix.MaxAbs(dist)
	e.scale = maxF * maxD

	intF, _ := matrix.IsIntegral(flow)
	intD, _ := matrix.IsIntegral(dist)
	if !intF || !intD {
		return
	}
	// Total touches n² terms, Delta at most 8n+4; the larger count bounds
	// every partial sum either of them forms.
	terms := float64(e.n*e.n + 8*e.n + 4)
	e.exact = terms*e.scale <= exactLimit
}

// N returns the instance order.
func (e *Evaluator) N() int { return e.n }

// Exact reports whether costs on this instance are computed without rounding.
func (e *Evaluator) Exact() bool { return e.exact }

// Total returns Σ_{i≠j} F[i][j]·D[perm[i]][perm[j]].
//
// Errors: ErrDimensionMismatch, ErrInvalidPermutation.
// Complexity: O(n²).
func (e *Evaluator) Total(perm []int) (float64, error) {
	if err := e.checkPermutation("Total", perm); err != nil {
		return 0, err
	}

	return e.total(perm), nil
}

// Delta returns the exact change of Total(perm) if the units at positions r
// and s were exchanged. perm is not modified. r == s yields 0.
//
// Errors: ErrDimensionMismatch, ErrInvalidPermutation, ErrInvalidMove.
// Complexity: O(n).
func (e *Evaluator) Delta(r, s int, perm []int) (float64, error) {
	if err := e.checkPermutation("Delta", perm); err != nil {
		return 0, err
	}
	if r < 0 || r >= e.n || s < 0 || s >= e.n {
		return 0, qapErrorf("Delta", ErrInvalidMove)
	}
	if r == s {
		return 0, nil
	}

	return e.delta(r, s, perm), nil
}

func (e *Evaluator) checkPermutation(op string, perm []int) error {
	if len(perm) != e.n {
		return qapErrorf(op, ErrDimensionMismatch)
	}
	if err := ValidatePermutation(perm); err != nil {
		return qapErrorf(op, err)
	}

	return nil
}

// total is the unchecked O(n²) recomputation.
func (e *Evaluator) total(perm []int) float64 {
	var (
		n    = e.n
		sum  float64
		i, j int
		row  []float64 // F[i][*]
		drow []float64 // D[perm[i]][*]
	)
	for i = 0; i < n; i++ {
		row = e.flow[i*n : (i+1)*n]
		drow = e.dist[perm[i]*n : (perm[i]+1)*n]
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			sum += row[j] * drow[perm[j]]
		}
	}

	return sum
}

// delta is the unchecked O(n) exchange delta; requires r != s.
//
// For every k ∉ {r,s} the four terms linking k with r and s are removed under
// the old assignment and added back with the locations of r and s exchanged.
// The direct r↔s terms are corrected separately in both directions, so
// asymmetric F and D are handled exactly.
func (e *Evaluator) delta(r, s int, perm []int) float64 {
	var (
		n     = e.n
		f     = e.flow
		d     = e.dist
		ur    = perm[r]
		us    = perm[s]
		delta float64
		k, uk int
	)
	for k = 0; k < n; k++ {
		if k == r || k == s {
			continue
		}
		uk = perm[k]
		delta -= f[r*n+k]*d[ur*n+uk] + f[k*n+r]*d[uk*n+ur] +
			f[s*n+k]*d[us*n+uk] + f[k*n+s]*d[uk*n+us]
		delta += f[r*n+k]*d[us*n+uk] + f[k*n+r]*d[uk*n+us] +
			f[s*n+k]*d[ur*n+uk] + f[k*n+s]*d[uk*n+ur]
	}

	delta -= f[r*n+s]*d[ur*n+us] + f[s*n+r]*d[us*n+ur]
	delta += f[r*n+s]*d[us*n+ur] + f[s*n+r]*d[ur*n+us]

	return delta
}

// matches reports whether an incrementally tracked cost agrees with a
// recomputed one under the evaluator's numeric regime.
func (e *Evaluator) matches(incremental, recomputed, tol float64) bool {
	if e.exact {
		return incremental == recomputed
	}
	if math.IsNaN(incremental) || math.IsNaN(recomputed) {
		return false
	}

	return math.Abs(incremental-recomputed) <= tol*math.Max(1, math.Max(math.Abs(recomputed), e.scale))
}

// TotalCost is a one-shot convenience over NewEvaluator(flow, dist).Total(perm).
// The dimension check against len(perm) runs before any matrix is scanned.
//
// Complexity: O(n²).
func TotalCost(perm []int, flow, dist matrix.Matrix) (float64, error) {
	e, err := evaluatorFor("TotalCost", perm, flow, dist)
	if err != nil {
		return 0, err
	}

	return e.total(perm), nil
}

// ExchangeDelta is a one-shot convenience over
// NewEvaluator(flow, dist).Delta(r, s, perm). Searches that evaluate many
// deltas should hold an Evaluator instead: this wrapper pays the O(n²)
// validation and prefetch on every call.
func ExchangeDelta(r, s int, perm []int, flow, dist matrix.Matrix) (float64, error) {
	e, err := evaluatorFor("ExchangeDelta", perm, flow, dist)
	if err != nil {
		return 0, err
	}

	return e.Delta(r, s, perm)
}

// evaluatorFor validates the full (perm, flow, dist) triple up front and
// builds an Evaluator for it.
func evaluatorFor(op string, perm []int, flow, dist matrix.Matrix) (*Evaluator, error) {
	if err := validateShapes(perm, flow, dist); err != nil {
		return nil, qapErrorf(op, err)
	}
	e, err := NewEvaluator(flow, dist)
	if err != nil {
		return nil, err
	}
	if err = e.checkPermutation(op, perm); err != nil {
		return nil, err
	}

	return e, nil
}

// validateShapes rejects every size disagreement before any value is read.
func validateShapes(perm []int, flow, dist matrix.Matrix) error {
	if len(perm) == 0 {
		return ErrDimensionMismatch
	}
	if matrix.ValidateSquareNonNil(flow) != nil || matrix.ValidateSquareNonNil(dist) != nil {
		return ErrDimensionMismatch
	}
	if flow.Rows() != len(perm) || dist.Rows() != len(perm) {
		return ErrDimensionMismatch
	}

	return nil
}
