package qap

import (
	"context"
	"log/slog"
)

// EventKind classifies search events.
type EventKind uint8

const (
	// EventMove: an exchange was committed.
	EventMove EventKind = iota + 1
	// EventTerminal: the search stopped (local optimum or move cap).
	EventTerminal
	// EventConsistency: the consistency check ran; see Consistent.
	EventConsistency
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventTerminal:
		return "terminal"
	case EventConsistency:
		return "consistency"
	default:
		return "unknown"
	}
}

// Event is a single observation emitted by a driver.
// Fields that do not apply to Kind are zero.
type Event struct {
	Kind     EventKind
	Strategy Strategy

	Moves int  // committed exchanges so far
	Pass  int  // current neighborhood scan (1-based)
	Move  Move // EventMove
	Delta float64

	// Cost is the incrementally tracked cost after the event.
	Cost float64

	Stopped    StopReason // EventTerminal, EventConsistency
	Recomputed float64    // EventConsistency
	Consistent bool       // EventConsistency
}

// EventSink receives search events synchronously, on the search goroutine.
// Implementations must not retain or mutate solver state.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to EventSink.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

type discard struct{}

func (discard) Emit(Event) {}

// LogSink writes events to logger: moves at Debug, terminal events at Info,
// consistency results at Info or Error. A nil logger means slog.Default().
func LogSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return SinkFunc(func(ev Event) {
		ctx := context.Background()
		switch ev.Kind {
		case EventMove:
			if !logger.Enabled(ctx, slog.LevelDebug) {
				return
			}
			logger.Debug("move committed",
				"strategy", ev.Strategy.String(),
				"pass", ev.Pass,
				"moves", ev.Moves,
				"r", ev.Move.R,
				"s", ev.Move.S,
				"delta", ev.Delta,
				"cost", ev.Cost,
			)
		case EventTerminal:
			logger.Info("search terminated",
				"strategy", ev.Strategy.String(),
				"stopped", ev.Stopped.String(),
				"passes", ev.Pass,
				"moves", ev.Moves,
				"cost", ev.Cost,
			)
		case EventConsistency:
			if ev.Consistent {
				logger.Info("consistency check passed",
					"strategy", ev.Strategy.String(),
					"cost", ev.Cost,
				)
				return
			}
			logger.Error("consistency check failed",
				"strategy", ev.Strategy.String(),
				"incremental", ev.Cost,
				"recomputed", ev.Recomputed,
				"moves", ev.Moves,
			)
		}
	})
}
