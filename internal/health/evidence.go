package health

import (
	"time"

	"github.com/ledgerline/finhealth/internal/model"
)

// Evidence packs keep at most this many trailing history points.
const evidenceTrendTail = 12

// buildEvidence assembles the explainability bundle: which inputs the
// report was built from, how confident it is, and the context a reader
// needs to audit the score.
func buildEvidence(in *model.FinancialHealthInput, categories []model.HealthCategory, confidence float64, history []model.TrendPoint, now time.Time) model.EvidencePack {
	s := in.PortfolioSnapshot

	inputs := []string{"portfolio_snapshot"}
	if len(s.Accounts) > 0 {
		inputs = append(inputs, "accounts")
	}
	if len(s.Income) > 0 {
		inputs = append(inputs, "income")
	}
	if len(s.Expenses) > 0 {
		inputs = append(inputs, "expenses")
	}
	if len(s.Loans) > 0 {
		inputs = append(inputs, "loans")
	}
	if len(s.Investments) > 0 {
		inputs = append(inputs, "investments")
	}
	if len(s.Properties) > 0 {
		inputs = append(inputs, "properties")
	}
	if len(in.Insights) > 0 {
		inputs = append(inputs, "insights")
	}
	if in.StrategyData != nil {
		inputs = append(inputs, "strategy_data")
	}
	if in.LinkageHealth != nil {
		inputs = append(inputs, "linkage_health")
	}
	if in.UserGoals != nil {
		inputs = append(inputs, "user_goals")
	}

	linked := make([]string, 0, len(in.Insights))
	for _, ins := range in.Insights {
		linked = append(linked, ins.ID)
	}

	riskMap := make([]model.RiskMapEntry, 0, len(categories))
	for _, c := range categories {
		riskMap = append(riskMap, model.RiskMapEntry{
			Category: c.Name,
			Score:    c.Score,
			RiskBand: c.RiskBand,
		})
	}

	tail := history
	if len(tail) > evidenceTrendTail {
		tail = tail[len(tail)-evidenceTrendTail:]
	}

	return model.EvidencePack{
		InputsUsed:      inputs,
		ConfidenceLevel: confidence,
		InsightsLinked:  linked,
		HistoricalTrend: append([]model.TrendPoint(nil), tail...),
		RiskMap:         riskMap,
		LastUpdated:     now,
	}
}
