package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/finhealth/internal/model"
)

func TestBaseScoreWeightedComposition(t *testing.T) {
	weights := CategoryWeights{
		Liquidity:   0.20,
		Cashflow:    0.20,
		Debt:        0.12,
		Investments: 0.12,
		Property:    0.12,
		Risk:        0.12,
		Forecast:    0.12,
	}
	require.NoError(t, weights.Validate())

	engine := NewAggregateEngine(weights)
	ordered := weights.ordered()
	categories := make([]model.HealthCategory, len(categoryOrder))
	scores := []float64{90, 10, 50, 50, 50, 50, 50}
	for i, name := range categoryOrder {
		categories[i] = model.HealthCategory{Name: name, Score: scores[i], Weight: ordered[i]}
	}

	// 90*.2 + 10*.2 + 5*50*.12 = 18 + 2 + 30 = 50
	assert.InDelta(t, 50.0, engine.BaseScore(categories), 1e-9)
}

func TestFinalScoreClamps(t *testing.T) {
	engine := NewAggregateEngine(DefaultCategoryWeights())

	assert.Equal(t, 62.0, engine.FinalScore(70.4, model.ScoreModifiers{TotalPenalty: 8.4}))
	assert.Equal(t, 0.0, engine.FinalScore(12, model.ScoreModifiers{TotalPenalty: 45}))
	assert.Equal(t, 100.0, engine.FinalScore(100, model.ScoreModifiers{}))
}

func TestClassifyTrend(t *testing.T) {
	now := testNow
	day := 24 * time.Hour
	window := 90 * day

	points := func(scores ...float64) []model.TrendPoint {
		out := make([]model.TrendPoint, len(scores))
		for i, s := range scores {
			out[i] = model.TrendPoint{
				Date:  now.Add(-time.Duration(len(scores)-i) * 7 * day),
				Score: s,
			}
		}
		return out
	}

	tests := []struct {
		name    string
		history []model.TrendPoint
		want    model.Trend
	}{
		{"empty history", nil, model.TrendStable},
		{"single point", points(70), model.TrendStable},
		{"improving", points(60, 64, 70), model.TrendImproving},
		{"declining", points(70, 66, 60), model.TrendDeclining},
		{"flat within band", points(70, 71, 70.5), model.TrendStable},
		{"exactly plus two percent is stable", points(50, 51), model.TrendStable},
		{"zero base with later gain", points(0, 40), model.TrendImproving},
		{"zero base staying at zero", points(0, 0), model.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrend(tt.history, now, window))
		})
	}
}

func TestClassifyTrendIgnoresOutOfWindowPoints(t *testing.T) {
	now := testNow
	day := 24 * time.Hour
	history := []model.TrendPoint{
		{Date: now.Add(-200 * day), Score: 10}, // outside the window
		{Date: now.Add(-30 * day), Score: 70},
		{Date: now.Add(-1 * day), Score: 70.5},
	}
	assert.Equal(t, model.TrendStable, ClassifyTrend(history, now, 90*day))
}

func TestWindowPointsSortedAscending(t *testing.T) {
	now := testNow
	day := 24 * time.Hour
	history := []model.TrendPoint{
		{Date: now.Add(-5 * day), Score: 3},
		{Date: now.Add(-50 * day), Score: 1},
		{Date: now.Add(-20 * day), Score: 2},
	}

	points := windowPoints(history, now, 90*day)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{points[0].Score, points[1].Score, points[2].Score})
}

// A fully populated input always reports strictly higher confidence
// than the same input with every optional context section removed.
func TestConfidenceDegradesWithMissingContext(t *testing.T) {
	agg := NewMetricAggregator(DefaultBenchmarks())
	engine := NewAggregateEngine(DefaultCategoryWeights())

	full := healthyInput()
	fullMetrics := agg.Aggregate(full)
	fullConf := engine.Confidence(full, &fullMetrics)

	stripped := healthyInput()
	stripped.Insights = nil
	stripped.StrategyData = nil
	stripped.LinkageHealth = nil
	stripped.UserGoals = nil
	strippedMetrics := agg.Aggregate(stripped)
	strippedConf := engine.Confidence(stripped, &strippedMetrics)

	assert.Less(t, strippedConf, fullConf)
	assert.GreaterOrEqual(t, strippedConf, 0.0)
	assert.LessOrEqual(t, fullConf, 100.0)
}

func TestConfidenceBoundedOnEmptyInput(t *testing.T) {
	agg := NewMetricAggregator(DefaultBenchmarks())
	engine := NewAggregateEngine(DefaultCategoryWeights())

	in := emptySnapshotInput()
	metrics := agg.Aggregate(in)
	conf := engine.Confidence(in, &metrics)

	assert.GreaterOrEqual(t, conf, 0.0)
	assert.LessOrEqual(t, conf, 100.0)
	// No portfolio collections at all means no data confidence.
	assert.Equal(t, 0.0, conf)
}
