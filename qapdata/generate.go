package qapdata

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qaplocal/matrix"
	"github.com/katalvlaran/qaplocal/qap"
)

// Generate builds a random asymmetric integer instance of order n.
// Diagonals are zero; every off-diagonal F[i][j] and D[i][j] is drawn
// uniformly from [lo, hi], flow first, cell by cell in row-major order, so
// a given rng state always yields the same instance.
//
// Errors: ErrBadSize (n < 1 or lo > hi), qap.ErrNilRNG.
// Complexity: O(n²).
func Generate(n, lo, hi int, rng *rand.Rand) (*Instance, error) {
	const op = "Generate"
	if n < 1 || lo > hi {
		return nil, dataErrorf(op, ErrBadSize)
	}
	if rng == nil {
		return nil, dataErrorf(op, qap.ErrNilRNG)
	}

	flow, _ := matrix.NewDense(n, n)
	dist, _ := matrix.NewDense(n, n)
	span := hi - lo + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			_ = flow.Set(i, j, float64(lo+rng.Intn(span)))
			_ = dist.Set(i, j, float64(lo+rng.Intn(span)))
		}
	}

	return &Instance{Name: fmt.Sprintf("random-n%d", n), Flow: flow, Dist: dist}, nil
}
