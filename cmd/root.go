package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/config"
	"github.com/ledgerline/finhealth/internal/health"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "finhealth",
	Short: "Financial health scoring engine",
	Long:  "Reduces a full portfolio snapshot into a 0-100 health score, discrete risk signals, and ranked improvement actions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// buildEngine constructs the engine from config, loading an alternate
// benchmark set when one is configured.
func buildEngine() (*health.Engine, error) {
	opts := []health.Option{}

	if cfg.Engine.BenchmarksFile != "" {
		b, err := health.LoadBenchmarks(cfg.Engine.BenchmarksFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, health.WithBenchmarks(b))
	}
	if cfg.Engine.TrendWindowDays > 0 {
		opts = append(opts, health.WithTrendWindow(time.Duration(cfg.Engine.TrendWindowDays)*24*time.Hour))
	}
	if cfg.Engine.ConcernScore > 0 {
		opts = append(opts, health.WithConcernThreshold(cfg.Engine.ConcernScore))
	}

	return health.NewEngine(opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
