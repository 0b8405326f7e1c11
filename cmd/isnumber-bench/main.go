package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/on-the-ground/isnumber/internal/bench"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg      = bench.DefaultConfig()
	jsonOut  bool
	debugLog bool
)

var rootCmd = &cobra.Command{
	Use:   "isnumber-bench",
	Short: "isnumber-bench compares finite-number classifiers",
	Long: `isnumber-bench measures the throughput of the strict, default and loose
finite-number classifiers against rival implementations over a fixed table of
sample values, then over the whole table at once.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(debugLog)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()

		var printer bench.Printer = bench.NewColorPrinter(cmd.OutOrStdout())
		if jsonOut {
			printer = bench.NewJSONPrinter(cmd.OutOrStdout())
		}

		if _, err := bench.NewRunner(cfg, logger, printer).Run(cmd.Context()); err != nil {
			logger.Error("benchmark failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.DurationVar(&cfg.CaseTime, "case-time", cfg.CaseTime, "measurement time per contender and sample")
	flags.DurationVar(&cfg.OverallTime, "overall-time", cfg.OverallTime, "measurement time per contender over all samples")
	flags.StringSliceVar(&cfg.Cases, "case", nil, "only run the named samples (repeatable)")
	flags.BoolVar(&jsonOut, "json", false, "print one JSON object per event")
	flags.BoolVar(&debugLog, "debug", false, "enable debug logging")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
