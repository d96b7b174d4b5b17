package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ledgerline/finhealth/internal/health"
	"github.com/ledgerline/finhealth/internal/store"
)

var (
	trendUser string
	trendDays int
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show a user's stored score history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("trend"); err != nil {
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
		since := now.AddDate(0, 0, -trendDays)
		points, err := st.History(ctx, trendUser, since)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			return eris.Errorf("trend: no history for user %s", trendUser)
		}

		window := time.Duration(trendDays) * 24 * time.Hour
		classification := health.ClassifyTrend(points, now, window)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSCORE")
		for _, p := range points {
			fmt.Fprintf(w, "%s\t%.0f\n", p.Date.Format("2006-01-02"), p.Score)
		}
		if err := w.Flush(); err != nil {
			return eris.Wrap(err, "trend: flush output")
		}
		fmt.Printf("\ntrend over %d days: %s\n", trendDays, classification)
		return nil
	},
}

func init() {
	trendCmd.Flags().StringVar(&trendUser, "user", "", "user id (required)")
	trendCmd.Flags().IntVar(&trendDays, "days", 90, "history window in days")
	_ = trendCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(trendCmd)
}
