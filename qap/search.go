package qap

// search is the mutable state of one driver run.
type search struct {
	ev       *Evaluator
	opts     options
	strategy Strategy

	perm    []int   // caller's buffer, mutated in place
	initial float64 // cost before the first move
	cost    float64 // incrementally tracked cost

	moves   int
	passes  int
	evals   int
	stopped StopReason
}

func newSearch(ev *Evaluator, strategy Strategy, perm []int, user []Option) *search {
	s := &search{
		ev:       ev,
		opts:     gatherOptions(ev, user),
		strategy: strategy,
		perm:     perm,
	}
	s.initial = ev.total(perm)
	s.cost = s.initial

	return s
}

// commit applies m, accumulates its delta and reports the move.
// It returns true when the move cap has been reached.
func (s *search) commit(m Move, delta float64) bool {
	applyExchange(s.perm, m)
	s.cost += delta
	s.moves++
	s.opts.sink.Emit(Event{
		Kind:     EventMove,
		Strategy: s.strategy,
		Moves:    s.moves,
		Pass:     s.passes,
		Move:     m,
		Delta:    delta,
		Cost:     s.cost,
	})

	return s.opts.maxMoves > 0 && s.moves >= s.opts.maxMoves
}

// finish emits the terminal event, runs the consistency guard and builds
// the Result. A failed guard yields the zero Result.
func (s *search) finish(reason StopReason) (Result, error) {
	s.stopped = reason
	s.opts.sink.Emit(Event{
		Kind:     EventTerminal,
		Strategy: s.strategy,
		Moves:    s.moves,
		Pass:     s.passes,
		Cost:     s.cost,
		Stopped:  reason,
	})
	if err := s.verify(); err != nil {
		return Result{}, err
	}

	return Result{
		Permutation: s.perm,
		Cost:        s.cost,
		InitialCost: s.initial,
		Strategy:    s.strategy,
		Stopped:     reason,
		Moves:       s.moves,
		Passes:      s.passes,
		Evaluations: s.evals,
	}, nil
}
