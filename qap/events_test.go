package qap_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/qaplocal/qap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLines runs best-improvement on the 3×3 example with a JSON logger at
// level and decodes the emitted records.
func logLines(t *testing.T, level slog.Level) []map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))

	_, err := qap.BestImprovement([]int{0, 1, 2}, dense(t, exampleFlow), dense(t, exampleDist),
		qap.WithSink(qap.LogSink(logger)))
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		rec := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}

	return out
}

func TestLogSink_Info(t *testing.T) {
	recs := logLines(t, slog.LevelInfo)
	require.Len(t, recs, 2)

	assert.Equal(t, "search terminated", recs[0]["msg"])
	assert.Equal(t, "best-improvement", recs[0]["strategy"])
	assert.Equal(t, "local-optimum", recs[0]["stopped"])
	assert.Equal(t, 56.0, recs[0]["cost"])

	assert.Equal(t, "consistency check passed", recs[1]["msg"])
}

func TestLogSink_Debug(t *testing.T) {
	recs := logLines(t, slog.LevelDebug)
	require.Len(t, recs, 3)

	assert.Equal(t, "move committed", recs[0]["msg"])
	assert.Equal(t, "DEBUG", recs[0]["level"])
	assert.Equal(t, 0.0, recs[0]["r"])
	assert.Equal(t, 2.0, recs[0]["s"])
	assert.Equal(t, -8.0, recs[0]["delta"])
}

func TestEventSequence(t *testing.T) {
	rec := &recorder{}
	_, err := qap.BestImprovement([]int{0, 1, 2}, dense(t, exampleFlow), dense(t, exampleDist), qap.WithSink(rec))
	require.NoError(t, err)

	kinds := make([]qap.EventKind, 0, len(rec.events))
	for _, ev := range rec.events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []qap.EventKind{qap.EventMove, qap.EventTerminal, qap.EventConsistency}, kinds)
	assert.Equal(t, "move", qap.EventMove.String())
	assert.Equal(t, "first-improvement", qap.StrategyFirstImprovement.String())
	assert.Equal(t, "move-limit", qap.StopMoveLimit.String())
}
