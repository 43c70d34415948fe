package qap

import "math"

// DefaultTolerance is the relative tolerance of the consistency check for
// instances whose costs are not exactly representable (fractional weights or
// magnitudes beyond 2^53). Integer instances are always compared exactly.
const DefaultTolerance = 1e-9

// defaultInexactEpsilon scales the improvement threshold on inexact instances
// so rounding noise around zero is not mistaken for an improving move.
const defaultInexactEpsilon = 1e-12

// Option configures a single search run.
type Option func(*options)

type options struct {
	sink      EventSink
	maxMoves  int     // 0 ⇒ unlimited
	tolerance float64 // relative, inexact instances only
	eps       float64 // accept a move iff delta < -eps
	epsSet    bool
}

// WithSink routes search events to sink. A nil sink discards events.
func WithSink(sink EventSink) Option {
	return func(o *options) { o.sink = sink }
}

// WithMaxMoves stops the search after n committed exchanges (0 ⇒ unlimited).
// The consistency check still runs on the truncated search.
// Panics if n < 0.
func WithMaxMoves(n int) Option {
	if n < 0 {
		panic("qap: WithMaxMoves requires n >= 0")
	}
	return func(o *options) { o.maxMoves = n }
}

// WithTolerance sets the relative tolerance used by the consistency check on
// inexact instances. Panics if tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("qap: WithTolerance requires a finite tol >= 0")
	}
	return func(o *options) { o.tolerance = tol }
}

// WithEpsilon overrides the improvement threshold: a move is committed only
// when its delta is below -eps. The default is 0 on exact (integer) instances
// and a scale-relative 1e-12 otherwise. Panics if eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("qap: WithEpsilon requires a finite eps >= 0")
	}
	return func(o *options) {
		o.eps = eps
		o.epsSet = true
	}
}

// gatherOptions applies user options over the defaults and resolves the
// improvement threshold against the evaluator's numeric regime.
func gatherOptions(e *Evaluator, user []Option) options {
	o := options{sink: discard{}, tolerance: DefaultTolerance}
	for _, fn := range user {
		fn(&o)
	}
	if o.sink == nil {
		o.sink = discard{}
	}
	if !o.epsSet {
		if e.exact {
			o.eps = 0
		} else {
			o.eps = defaultInexactEpsilon * e.scale
		}
	}

	return o
}
