package main

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerline/finhealth/internal/store"
)

var (
	batchDir         string
	batchConcurrency int
	batchContinue    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of snapshot files concurrently",
	Long: `Scores every *.json snapshot in a directory. The engine is pure, so
snapshots are scored in parallel; each user's score is appended to the
trend store.

Example:
  finhealth batch --dir snapshots/ --concurrency 8`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of FinancialHealthInput JSON files (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "parallel workers (default from config)")
	batchCmd.Flags().BoolVar(&batchContinue, "continue-on-error", false, "keep scoring after an invalid snapshot")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := cfg.Validate("batch"); err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(batchDir, "*.json"))
	if err != nil {
		return eris.Wrapf(err, "batch: glob %s", batchDir)
	}
	if len(paths) == 0 {
		return eris.Errorf("batch: no snapshot files in %s", batchDir)
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Batch.Concurrency
	}

	now := time.Now().UTC()
	var scored, failed atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		g.Go(func() error {
			input, err := readInput(path)
			if err == nil {
				err = scoreOne(gCtx, engine, st, input, now)
			}
			if err != nil {
				failed.Add(1)
				zap.L().Error("batch: snapshot failed",
					zap.String("path", path),
					zap.Error(err),
				)
				if batchContinue {
					return nil
				}
				return err
			}
			scored.Add(1)
			return nil
		})
	}

	err = g.Wait()
	zap.L().Info("batch: complete",
		zap.Int64("scored", scored.Load()),
		zap.Int64("failed", failed.Load()),
	)
	if err != nil {
		return eris.Wrap(err, "batch: aborted")
	}

	_, _ = os.Stdout.WriteString("batch complete\n")
	return nil
}
