package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qaplocal/qap"
	"github.com/katalvlaran/qaplocal/qapdata"
)

var (
	logLevel string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qapls",
	Short: "Pairwise-exchange local search for the quadratic assignment problem",
	Long: `qapls runs best-improvement and first-improvement 2-exchange local search
on QAP instances, generates random instances and benchmarks the strategies
against greedy and random-search baselines.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(logLevel)
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the JSON logger used by every command. Logs go to stderr
// so stdout carries only command output.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// instanceFrom loads path, or generates a random [1,100] instance of order
// n from seed when path is empty.
func instanceFrom(path string, n int, seed int64) (*qapdata.Instance, error) {
	if path != "" {
		return qapdata.Load(path)
	}
	if n < 1 {
		return nil, fmt.Errorf("either --instance or --random N is required")
	}

	return qapdata.Generate(n, 1, 100, qap.NewRNG(seed))
}
