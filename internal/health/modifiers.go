package health

import (
	"strings"

	"github.com/ledgerline/finhealth/internal/model"
)

// Per-modifier caps. Each penalty rule is independent and individually
// bounded; TotalPenalty can never exceed the sum of the caps.
const (
	dataConfidencePenaltyCap   = 15.0
	insightSeverityPenaltyCap  = 10.0
	forecastRiskPenaltyCap     = 8.0
	linkagePenaltyCap          = 7.0
	strategyConflictPenaltyCap = 5.0
)

// computeModifiers evaluates the five penalty rules. Absent optional
// sections contribute nothing here; their effect lands on confidence,
// not on the score.
func computeModifiers(in *model.FinancialHealthInput, metrics *model.AggregatedMetrics, categories []model.HealthCategory) model.ScoreModifiers {
	m := model.ScoreModifiers{
		DataConfidencePenalty:   dataConfidencePenalty(metrics.DataConfidence),
		InsightSeverityPenalty:  insightSeverityPenalty(in.Insights),
		ForecastRiskPenalty:     forecastRiskPenalty(categories),
		LinkagePenalty:          linkagePenalty(in.LinkageHealth),
		StrategyConflictPenalty: strategyConflictPenalty(in.StrategyData),
	}
	m.TotalPenalty = m.DataConfidencePenalty + m.InsightSeverityPenalty +
		m.ForecastRiskPenalty + m.LinkagePenalty + m.StrategyConflictPenalty
	return m
}

// dataConfidencePenalty deducts up to the cap as data presence drops:
// 0.15 points per missing confidence point.
func dataConfidencePenalty(dataConfidence float64) float64 {
	return round1(clamp((100-dataConfidence)*0.15, 0, dataConfidencePenaltyCap))
}

// insightSeverityPenalty deducts 4 per critical and 2 per high insight.
func insightSeverityPenalty(insights []model.Insight) float64 {
	var p float64
	for _, ins := range insights {
		switch strings.ToLower(ins.Severity) {
		case "critical":
			p += 4
		case "high":
			p += 2
		}
	}
	return round1(clamp(p, 0, insightSeverityPenaltyCap))
}

// forecastRiskPenalty deducts 0.2 per point the Forecast category sits
// below the concern threshold.
func forecastRiskPenalty(categories []model.HealthCategory) float64 {
	for _, c := range categories {
		if c.Name != "Forecast" {
			continue
		}
		if c.Score >= DefaultConcernThreshold {
			return 0
		}
		return round1(clamp((DefaultConcernThreshold-c.Score)*0.2, 0, forecastRiskPenaltyCap))
	}
	return 0
}

// linkagePenalty deducts 1 per orphaned entity and 0.5 per missing
// link. Absent linkage data is a confidence problem, not a penalty.
func linkagePenalty(lh *model.LinkageHealth) float64 {
	if lh == nil {
		return 0
	}
	p := float64(len(lh.Orphans)) + 0.5*float64(len(lh.MissingLinks))
	return round1(clamp(p, 0, linkagePenaltyCap))
}

// strategyConflictPenalty deducts 2.5 per conflicting strategy pair.
func strategyConflictPenalty(sd *model.StrategyData) float64 {
	if sd == nil {
		return 0
	}
	return round1(clamp(2.5*float64(len(sd.Conflicts)), 0, strategyConflictPenaltyCap))
}
