package qap

// Move exchanges the units at positions R and S (R < S for generated moves).
type Move struct {
	R, S int
}

// Strategy names the neighborhood traversal policy of a driver.
type Strategy uint8

const (
	StrategyBestImprovement Strategy = iota + 1
	StrategyFirstImprovement
)

func (s Strategy) String() string {
	switch s {
	case StrategyBestImprovement:
		return "best-improvement"
	case StrategyFirstImprovement:
		return "first-improvement"
	default:
		return "unknown"
	}
}

// StopReason tells why a driver stopped.
type StopReason uint8

const (
	// StopLocalOptimum: a full pass found no strictly improving exchange.
	StopLocalOptimum StopReason = iota + 1
	// StopMoveLimit: the WithMaxMoves cap was reached first.
	StopMoveLimit
)

func (r StopReason) String() string {
	switch r {
	case StopLocalOptimum:
		return "local-optimum"
	case StopMoveLimit:
		return "move-limit"
	default:
		return "unknown"
	}
}

// Result is the outcome of a successful search. A search that fails the
// consistency check returns the zero Result together with the error.
type Result struct {
	// Permutation is the refined assignment. It aliases the slice passed by
	// the caller, which the driver mutated in place.
	Permutation []int

	// Cost is the verified total cost of Permutation.
	Cost float64

	// InitialCost is the cost of the permutation the search started from.
	InitialCost float64

	Strategy Strategy
	Stopped  StopReason

	Moves       int // committed exchanges
	Passes      int // neighborhood scans started
	Evaluations int // Delta evaluations
}
