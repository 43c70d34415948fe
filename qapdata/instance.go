package qapdata

import (
	"github.com/katalvlaran/qaplocal/matrix"
	"github.com/katalvlaran/qaplocal/qap"
)

// Instance is one QAP problem: n units, n locations, flow between units and
// distance between locations.
type Instance struct {
	Name string // file base name or generator tag, informational only
	Flow *matrix.Dense
	Dist *matrix.Dense
}

// N returns the instance order.
func (in *Instance) N() int { return in.Flow.Rows() }

// Evaluator validates the instance and returns its cost kernel.
func (in *Instance) Evaluator() (*qap.Evaluator, error) {
	return qap.NewEvaluator(in.Flow, in.Dist)
}
