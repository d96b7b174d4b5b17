package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/finhealth/internal/model"
)

func TestDataConfidencePenalty(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       float64
	}{
		{"full data", 100, 0},
		{"partial data", 60, 6},
		{"no data hits the cap", 0, 15},
		{"just below full", 90, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataConfidencePenalty(tt.confidence))
		})
	}
}

func TestInsightSeverityPenalty(t *testing.T) {
	tests := []struct {
		name     string
		insights []model.Insight
		want     float64
	}{
		{"none", nil, 0},
		{"low and medium ignored", []model.Insight{{Severity: "low"}, {Severity: "medium"}}, 0},
		{"one critical one high", []model.Insight{{Severity: "critical"}, {Severity: "high"}}, 6},
		{"severity is case insensitive", []model.Insight{{Severity: "CRITICAL"}}, 4},
		{"capped at ten", []model.Insight{
			{Severity: "critical"}, {Severity: "critical"}, {Severity: "critical"}, {Severity: "critical"},
		}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, insightSeverityPenalty(tt.insights))
		})
	}
}

func TestForecastRiskPenalty(t *testing.T) {
	cats := func(forecast float64) []model.HealthCategory {
		return []model.HealthCategory{
			{Name: "Liquidity", Score: 80},
			{Name: "Forecast", Score: forecast},
		}
	}

	assert.Equal(t, 0.0, forecastRiskPenalty(cats(40)))
	assert.Equal(t, 0.0, forecastRiskPenalty(cats(75)))
	assert.Equal(t, 2.0, forecastRiskPenalty(cats(30)))
	// 40 points below threshold would be 8, exactly the cap.
	assert.Equal(t, 8.0, forecastRiskPenalty(cats(0)))
}

func TestLinkagePenalty(t *testing.T) {
	assert.Equal(t, 0.0, linkagePenalty(nil))
	assert.Equal(t, 0.0, linkagePenalty(&model.LinkageHealth{ConsistencyScore: 95}))
	assert.Equal(t, 2.5, linkagePenalty(&model.LinkageHealth{
		Orphans:      []string{"loan-9", "prop-3"},
		MissingLinks: []string{"loan-1->prop-1"},
	}))
	assert.Equal(t, 7.0, linkagePenalty(&model.LinkageHealth{
		Orphans: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	}))
}

func TestStrategyConflictPenalty(t *testing.T) {
	assert.Equal(t, 0.0, strategyConflictPenalty(nil))
	assert.Equal(t, 0.0, strategyConflictPenalty(&model.StrategyData{}))
	assert.Equal(t, 2.5, strategyConflictPenalty(&model.StrategyData{
		Conflicts: []model.StrategyConflict{{ID: "c1"}},
	}))
	assert.Equal(t, 5.0, strategyConflictPenalty(&model.StrategyData{
		Conflicts: []model.StrategyConflict{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
	}))
}

func TestComputeModifiersTotalIsSum(t *testing.T) {
	in := strainedInput()
	in.Insights = []model.Insight{{ID: "i1", Severity: "critical"}}
	in.LinkageHealth = &model.LinkageHealth{Orphans: []string{"loan-2"}, ConsistencyScore: 70}

	agg := NewMetricAggregator(DefaultBenchmarks())
	metrics := agg.Aggregate(in)
	categories := NewCategoryScorer(DefaultCategoryWeights()).Score(&metrics)

	m := computeModifiers(in, &metrics, categories)
	sum := m.DataConfidencePenalty + m.InsightSeverityPenalty +
		m.ForecastRiskPenalty + m.LinkagePenalty + m.StrategyConflictPenalty
	assert.InDelta(t, sum, m.TotalPenalty, 1e-9)
	assert.LessOrEqual(t, m.TotalPenalty, 45.0)
	assert.Equal(t, 4.0, m.InsightSeverityPenalty)
	assert.Equal(t, 1.0, m.LinkagePenalty)
}
