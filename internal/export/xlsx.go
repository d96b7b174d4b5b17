package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/ledgerline/finhealth/internal/model"
)

// WriteXLSX writes a three-sheet workbook: category breakdown, the full
// metric set, and risk signals with improvement actions.
func WriteXLSX(w io.Writer, report *model.FinancialHealthReport) error {
	f := xlsx.NewFile()

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := writeMetricsSheet(f, report); err != nil {
		return err
	}
	if err := writeSignalsSheet(f, report); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}

func writeSummarySheet(f *xlsx.File, report *model.FinancialHealthReport) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	addRow(sheet, "Composite Score", report.HealthScore.Score)
	addRow(sheet, "Confidence", report.HealthScore.Confidence)
	addRow(sheet, "Trend", string(report.HealthScore.Trend))
	addRow(sheet, "Total Penalty", report.Modifiers.TotalPenalty)
	sheet.AddRow()

	header := sheet.AddRow()
	for _, h := range []string{"Category", "Score", "Weight", "Risk Band"} {
		header.AddCell().Value = h
	}
	for _, c := range report.Categories {
		row := sheet.AddRow()
		row.AddCell().Value = c.Name
		row.AddCell().SetFloat(c.Score)
		row.AddCell().SetFloat(c.Weight)
		row.AddCell().Value = string(c.RiskBand)
	}
	return nil
}

func writeMetricsSheet(f *xlsx.File, report *model.FinancialHealthReport) error {
	sheet, err := f.AddSheet("Metrics")
	if err != nil {
		return eris.Wrap(err, "export: add metrics sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Group", "Metric", "Value", "Benchmark", "Score", "Risk Band", "Confidence"} {
		header.AddCell().Value = h
	}
	for _, g := range report.Metrics.Groups() {
		for _, m := range g.Metrics {
			row := sheet.AddRow()
			row.AddCell().Value = g.Name
			row.AddCell().Value = m.Name
			row.AddCell().SetFloat(m.Value)
			row.AddCell().SetFloat(m.Benchmark)
			row.AddCell().SetFloat(m.Score)
			row.AddCell().Value = string(m.RiskBand)
			row.AddCell().SetFloat(m.Confidence)
		}
	}
	return nil
}

func writeSignalsSheet(f *xlsx.File, report *model.FinancialHealthReport) error {
	sheet, err := f.AddSheet("Signals")
	if err != nil {
		return eris.Wrap(err, "export: add signals sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Signal", "Category", "Severity", "Tier", "Detail"} {
		header.AddCell().Value = h
	}
	for _, s := range report.RiskSignals {
		row := sheet.AddRow()
		row.AddCell().Value = s.Title
		row.AddCell().Value = string(s.Category)
		row.AddCell().Value = string(s.Severity)
		row.AddCell().SetInt(s.Tier)
		row.AddCell().Value = s.Description
	}

	sheet.AddRow()
	actionHeader := sheet.AddRow()
	for _, h := range []string{"Priority", "Action", "Category", "Difficulty", "Score Gain", "Financial Impact"} {
		actionHeader.AddCell().Value = h
	}
	for _, a := range report.ImprovementActions {
		row := sheet.AddRow()
		row.AddCell().SetInt(a.Priority)
		row.AddCell().Value = a.Title
		row.AddCell().Value = a.Category
		row.AddCell().Value = string(a.Difficulty)
		row.AddCell().SetFloat(a.Impact.ScoreImprovement)
		row.AddCell().Value = printer.Sprintf("$%.0f", a.Impact.FinancialImpact)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, label string, value any) {
	row := sheet.AddRow()
	row.AddCell().Value = label
	switch v := value.(type) {
	case float64:
		row.AddCell().SetFloat(v)
	case string:
		row.AddCell().Value = v
	}
}
