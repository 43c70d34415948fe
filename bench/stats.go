package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
)

// Row aggregates every run of one algorithm.
type Row struct {
	Algorithm      string        `json:"algorithm"`
	Runs           int           `json:"runs"`
	Best           float64       `json:"best"`
	Mean           float64       `json:"mean"`
	StdDev         float64       `json:"std_dev"` // sample deviation, 0 for a single run
	MeanDuration   time.Duration `json:"mean_duration_ns"`
	Evaluations    int           `json:"evaluations"`
	DistinctOptima int           `json:"distinct_optima"`
}

// summarize builds one Row per algorithm, in the order given.
func summarize(algorithms []string, runs []Run) []Row {
	groups := lo.GroupBy(runs, func(r Run) string { return r.Algorithm })

	return lo.FilterMap(algorithms, func(algo string, _ int) (Row, bool) {
		g, ok := groups[algo]
		if !ok || len(g) == 0 {
			return Row{}, false
		}
		return summarizeGroup(algo, g), true
	})
}

func summarizeGroup(algo string, g []Run) Row {
	costs := lo.Map(g, func(r Run, _ int) float64 { return r.Cost })
	mean := lo.Sum(costs) / float64(len(costs))

	var variance float64
	if len(costs) >= 2 {
		variance = lo.SumBy(costs, func(c float64) float64 { return (c - mean) * (c - mean) })
		variance /= float64(len(costs) - 1)
	}
	distinct := lo.Uniq(lo.Map(g, func(r Run, _ int) string { return fmt.Sprint(r.Permutation) }))

	return Row{
		Algorithm:      algo,
		Runs:           len(g),
		Best:           lo.Min(costs),
		Mean:           mean,
		StdDev:         math.Sqrt(variance),
		MeanDuration:   lo.SumBy(g, func(r Run) time.Duration { return r.Duration }) / time.Duration(len(g)),
		Evaluations:    lo.SumBy(g, func(r Run) int { return r.Evaluations }),
		DistinctOptima: len(distinct),
	}
}
