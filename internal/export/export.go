// Package export renders a health report to CSV or XLSX for sharing
// outside the API surface.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ledgerline/finhealth/internal/model"
)

var printer = message.NewPrinter(language.English)

// WriteCSV writes the category breakdown and risk signals as CSV.
func WriteCSV(w io.Writer, report *model.FinancialHealthReport) error {
	cw := csv.NewWriter(w)

	header := []string{"category", "score", "weight", "risk_band", "contribution"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for _, c := range report.Categories {
		row := []string{
			c.Name,
			strconv.FormatFloat(c.Score, 'f', 0, 64),
			strconv.FormatFloat(c.Weight, 'f', 2, 64),
			string(c.RiskBand),
			strconv.FormatFloat(c.Score*c.Weight, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "export: write csv row for %s", c.Name)
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return eris.Wrap(err, "export: write csv separator")
	}
	if err := cw.Write([]string{"composite_score", strconv.FormatFloat(report.HealthScore.Score, 'f', 0, 64)}); err != nil {
		return eris.Wrap(err, "export: write csv composite")
	}
	if err := cw.Write([]string{"confidence", strconv.FormatFloat(report.HealthScore.Confidence, 'f', 0, 64)}); err != nil {
		return eris.Wrap(err, "export: write csv confidence")
	}
	if err := cw.Write([]string{"trend", string(report.HealthScore.Trend)}); err != nil {
		return eris.Wrap(err, "export: write csv trend")
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}
