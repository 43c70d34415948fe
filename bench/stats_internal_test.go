package bench

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	runs := []Run{
		{Algorithm: "ls-first", Cost: 10, Permutation: []int{0, 1}, Duration: 2 * time.Millisecond, Evaluations: 4},
		{Algorithm: "greedy", Cost: 30, Permutation: []int{1, 0}, Evaluations: 1},
		{Algorithm: "ls-first", Cost: 14, Permutation: []int{1, 0}, Duration: 4 * time.Millisecond, Evaluations: 6},
		{Algorithm: "ls-first", Cost: 12, Permutation: []int{0, 1}, Duration: 6 * time.Millisecond, Evaluations: 5},
	}

	rows := summarize([]string{"greedy", "ls-best", "ls-first"}, runs)
	require.Len(t, rows, 2, "algorithms without runs are skipped")

	assert.Equal(t, "greedy", rows[0].Algorithm)
	assert.Equal(t, 0.0, rows[0].StdDev)

	first := rows[1]
	assert.Equal(t, 3, first.Runs)
	assert.Equal(t, 10.0, first.Best)
	assert.Equal(t, 12.0, first.Mean)
	assert.InDelta(t, 2.0, first.StdDev, 1e-12)
	assert.Equal(t, 4*time.Millisecond, first.MeanDuration)
	assert.Equal(t, 15, first.Evaluations)
	assert.Equal(t, 2, first.DistinctOptima)
	assert.False(t, math.IsNaN(first.Mean))
}
