// Package bench runs the constructive baselines and both local searches on
// one instance across a set of seeds and aggregates the outcome per
// algorithm.
//
// Runs execute on a bounded worker pool. Every run owns its generator and
// its permutation buffer; the instance's Evaluator is shared read-only.
// Results are stored by job index, so a report does not depend on worker
// scheduling.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/qaplocal/config"
	"github.com/katalvlaran/qaplocal/construct"
	"github.com/katalvlaran/qaplocal/qap"
	"github.com/katalvlaran/qaplocal/qapdata"
)

// Run is the outcome of one algorithm on one seed.
type Run struct {
	Algorithm   string        `json:"algorithm"`
	Seed        int64         `json:"seed"` // 0 for deterministic algorithms
	Cost        float64       `json:"cost"`
	Permutation []int         `json:"permutation"`
	Moves       int           `json:"moves"`
	Evaluations int           `json:"evaluations"`
	Duration    time.Duration `json:"duration_ns"`
}

// job is one scheduled run.
type job struct {
	algo string
	seed int64
}

// Runner executes a benchmark session for a single instance.
type Runner struct {
	cfg    config.Config
	inst   *qapdata.Instance
	ev     *qap.Evaluator
	logger *slog.Logger
}

// NewRunner validates cfg and builds the shared Evaluator for inst.
// A nil logger means slog.Default().
func NewRunner(inst *qapdata.Instance, cfg config.Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, fmt.Errorf("bench: nil instance")
	}
	ev, err := inst.Evaluator()
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{cfg: cfg, inst: inst, ev: ev, logger: logger}, nil
}

// jobs expands the configuration: deterministic algorithms run once,
// seeded ones once per seed.
func (r *Runner) jobs() []job {
	var out []job
	for _, algo := range r.cfg.Algorithms {
		if algo == config.AlgoGreedy {
			out = append(out, job{algo: algo})
			continue
		}
		for _, seed := range r.cfg.Seeds {
			out = append(out, job{algo: algo, seed: seed})
		}
	}

	return out
}

// Run executes every job and returns the aggregated report.
// Cancelling ctx stops scheduling new runs; runs in flight complete.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var (
		jobs    = r.jobs()
		runs    = make([]Run, len(jobs))
		errs    = make([]error, len(jobs))
		queue   = make(chan int)
		wg      sync.WaitGroup
		workers = min(r.cfg.Workers, len(jobs))
	)

	r.logger.Info("benchmark started",
		"instance", r.inst.Name,
		"n", r.inst.N(),
		"runs", len(jobs),
		"workers", workers,
	)
	start := time.Now()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				runs[idx], errs[idx] = r.execute(jobs[idx])
			}
		}()
	}

	var cancelled error
feed:
	for idx := range jobs {
		if cancelled = ctx.Err(); cancelled != nil {
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case queue <- idx:
		}
	}
	close(queue)
	wg.Wait()

	if cancelled != nil {
		return Report{}, fmt.Errorf("bench: %w", cancelled)
	}
	for i, err := range errs {
		if err != nil {
			return Report{}, fmt.Errorf("bench: %s seed %d: %w", jobs[i].algo, jobs[i].seed, err)
		}
	}

	rep := newReport(r.inst, r.cfg, runs)
	r.logger.Info("benchmark finished",
		"id", rep.ID.String(),
		"elapsed", time.Since(start).String(),
	)

	return rep, nil
}

// execute performs one run with its own generator. Local searches start
// from the random permutation of their seed, so ls-best and ls-first with
// the same seed share a starting point.
func (r *Runner) execute(j job) (Run, error) {
	var (
		n     = r.ev.N()
		rng   = qap.NewRNG(j.seed)
		log   = r.logger.With("algorithm", j.algo, "seed", j.seed)
		opts  = []qap.Option{qap.WithSink(qap.LogSink(log)), qap.WithMaxMoves(r.cfg.MaxMoves)}
		run   = Run{Algorithm: j.algo, Seed: j.seed}
		start = time.Now()
		res   qap.Result
		err   error
	)

	switch j.algo {
	case config.AlgoGreedy:
		run.Permutation, err = construct.Greedy(r.inst.Flow, r.inst.Dist)
		if err == nil {
			run.Cost, err = r.ev.Total(run.Permutation)
			run.Evaluations = 1
		}
	case config.AlgoRandomSearch:
		iters := r.cfg.RandomSearchFactor * n
		run.Permutation, run.Cost, err = construct.RandomSearch(r.ev, iters, rng)
		run.Evaluations = iters
	case config.AlgoBest, config.AlgoFirst:
		var perm []int
		if perm, err = construct.Random(n, rng); err != nil {
			break
		}
		if j.algo == config.AlgoBest {
			res, err = r.ev.BestImprovement(perm, opts...)
		} else {
			res, err = r.ev.FirstImprovement(perm, rng, opts...)
		}
		run.Permutation, run.Cost = res.Permutation, res.Cost
		run.Moves, run.Evaluations = res.Moves, res.Evaluations
	default:
		err = fmt.Errorf("unknown algorithm %q", j.algo)
	}
	run.Duration = time.Since(start)
	if err != nil {
		return Run{}, err
	}

	log.Debug("run finished", "cost", run.Cost, "moves", run.Moves, "duration", run.Duration.String())

	return run, nil
}
