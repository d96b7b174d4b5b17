package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerline/finhealth/internal/export"
	"github.com/ledgerline/finhealth/internal/health"
	"github.com/ledgerline/finhealth/internal/model"
	"github.com/ledgerline/finhealth/internal/store"
)

var (
	scoreInput  string
	scoreFormat string
	scoreOutput string
	scoreNoSave bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one portfolio snapshot file",
	Long: `Reads a FinancialHealthInput JSON file, runs the health engine, and
writes the report.

The stored trend history for the user feeds trend classification, and
the new composite score is appended back to the store afterwards
(disable with --no-save).

Examples:
  # Score a snapshot and print the report as JSON
  finhealth score --input snapshot.json

  # Export the report as a workbook
  finhealth score --input snapshot.json --format xlsx --output report.xlsx`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "", "path to FinancialHealthInput JSON (required)")
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "json", "output format: json, csv, or xlsx")
	scoreCmd.Flags().StringVar(&scoreOutput, "output", "", "output file (default stdout)")
	scoreCmd.Flags().BoolVar(&scoreNoSave, "no-save", false, "skip appending the score to the trend store")
	_ = scoreCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := cfg.Validate("score"); err != nil {
		return err
	}

	input, err := readInput(scoreInput)
	if err != nil {
		return err
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

	now := time.Now().UTC()
	history, err := st.History(ctx, input.UserID, now.AddDate(-1, 0, 0))
	if err != nil {
		return err
	}

	report, err := engine.GenerateReport(input, now, history)
	if err != nil {
		if model.IsPrecondition(err) {
			return eris.Wrap(err, "score: invalid input")
		}
		return err
	}

	if !scoreNoSave {
		if err := st.AppendScore(ctx, input.UserID, model.TrendPoint{Date: now, Score: report.HealthScore.Score}); err != nil {
			return err
		}
	}

	zap.L().Info("score: report generated",
		zap.String("user_id", input.UserID),
		zap.Float64("score", report.HealthScore.Score),
		zap.Float64("confidence", report.HealthScore.Confidence),
		zap.Int("risk_signals", len(report.RiskSignals)),
	)

	return writeReport(report, scoreFormat, scoreOutput)
}

// scoreOne scores a decoded input against stored history and appends
// the new score. Shared by batch and serve.
func scoreOne(ctx context.Context, engine *health.Engine, st store.TrendStore, input *model.FinancialHealthInput, now time.Time) error {
	history, err := st.History(ctx, input.UserID, now.AddDate(-1, 0, 0))
	if err != nil {
		return err
	}
	report, err := engine.GenerateReport(input, now, history)
	if err != nil {
		return err
	}
	return st.AppendScore(ctx, input.UserID, model.TrendPoint{Date: now, Score: report.HealthScore.Score})
}

// readInput loads and decodes a FinancialHealthInput file.
func readInput(path string) (*model.FinancialHealthInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "score: read %s", path)
	}
	var input model.FinancialHealthInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, eris.Wrapf(err, "score: parse %s", path)
	}
	return &input, nil
}

// writeReport renders the report in the requested format.
func writeReport(report *model.FinancialHealthReport, format, output string) error {
	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return eris.Wrapf(err, "score: create %s", output)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return eris.Wrap(err, "score: encode report")
		}
		return nil
	case "csv":
		return export.WriteCSV(out, report)
	case "xlsx":
		return export.WriteXLSX(out, report)
	default:
		return eris.Errorf("score: unknown format %q", format)
	}
}
