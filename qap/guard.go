package qap

// verify recomputes the cost of the final permutation and compares it with
// the incrementally tracked one. It runs at the end of every search,
// whatever the stop reason.
//
// On mismatch it returns *ConsistencyError carrying both values.
func (s *search) verify() error {
	recomputed := s.ev.total(s.perm)
	ok := s.ev.matches(s.cost, recomputed, s.opts.tolerance)

	s.opts.sink.Emit(Event{
		Kind:       EventConsistency,
		Strategy:   s.strategy,
		Moves:      s.moves,
		Pass:       s.passes,
		Cost:       s.cost,
		Stopped:    s.stopped,
		Recomputed: recomputed,
		Consistent: ok,
	})
	if !ok {
		return &ConsistencyError{
			Strategy:    s.strategy,
			Incremental: s.cost,
			Recomputed:  recomputed,
			Moves:       s.moves,
		}
	}

	return nil
}
