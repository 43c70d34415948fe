package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qaplocal/bench"
	"github.com/katalvlaran/qaplocal/config"
)

var (
	benchConfig   string
	benchInstance string
	benchRandomN  int
	benchWorkers  int
	benchOut      string
	benchCSV      bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run every configured algorithm over the seed set and report statistics",
	Long: `bench runs greedy, random search and both local searches on one instance,
once per seed for the randomized algorithms, and prints best, mean and
standard deviation of the cost per algorithm. With --out the full report is
written as <out>/<report-id>.json.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchConfig, "config", "", "JSON configuration file")
	benchCmd.Flags().StringVar(&benchInstance, "instance", "", "QAPLIB-style instance file (overrides config)")
	benchCmd.Flags().IntVar(&benchRandomN, "random", 0, "Random instance order (overrides config)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "Worker pool size (overrides config)")
	benchCmd.Flags().StringVar(&benchOut, "out", "", "Directory for the JSON report (overrides config)")
	benchCmd.Flags().BoolVar(&benchCSV, "csv", false, "Print the summary as CSV")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if benchConfig != "" {
		var err error
		if cfg, err = config.Load(benchConfig); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("instance") {
		cfg.Instance = benchInstance
	}
	if cmd.Flags().Changed("random") {
		cfg.Instance, cfg.RandomN = "", benchRandomN
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = benchWorkers
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = benchOut
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	inst, err := instanceFrom(cfg.Instance, cfg.RandomN, cfg.InstSeed)
	if err != nil {
		return err
	}
	runner, err := bench.NewRunner(inst, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rep, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if benchCSV {
		if err = bench.WriteCSV(out, rep); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "report %s  instance %s (n=%d)  seeds %v\n", rep.ID, rep.Instance, rep.N, rep.Seeds)
		fmt.Fprintf(out, "%-14s %5s %12s %14s %12s %12s %12s %8s\n",
			"algorithm", "runs", "best", "mean", "std", "time", "evals", "optima")
		for _, row := range rep.Rows {
			fmt.Fprintf(out, "%-14s %5d %12g %14.2f %12.2f %12s %12d %8d\n",
				row.Algorithm, row.Runs, row.Best, row.Mean, row.StdDev,
				row.MeanDuration, row.Evaluations, row.DistinctOptima)
		}
	}

	if cfg.OutputDir != "" {
		path, err := bench.SaveReport(cfg.OutputDir, rep)
		if err != nil {
			return err
		}
		logger.Info("report saved", "path", path)
	}

	return nil
}
