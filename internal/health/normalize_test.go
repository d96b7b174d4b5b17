package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/finhealth/internal/model"
)

func TestNormalizeScoreHigherIsBetter(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		benchmark float64
		want      float64
	}{
		{"at benchmark", 6, 6, 100},
		{"above benchmark capped", 12, 6, 100},
		{"half of benchmark", 3, 6, 50},
		{"zero value", 0, 6, 0},
		{"negative value", -2, 6, 0},
		{"zero benchmark", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeScore(tt.value, tt.benchmark, true)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalizeScoreLowerIsBetter(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		benchmark float64
		want      float64
	}{
		{"zero value", 0, 0.8, 100},
		{"negative value", -0.1, 0.8, 100},
		{"zero benchmark", 0.5, 0, 0},
		{"at benchmark", 0.8, 0.8, 50},
		{"half benchmark", 0.4, 0.8, 75},
		{"double benchmark", 1.6, 0.8, 0},
		{"just above benchmark", 0.88, 0.8, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeScore(tt.value, tt.benchmark, false)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalizeScoreBounded(t *testing.T) {
	for _, higher := range []bool{true, false} {
		for v := -5.0; v <= 5.0; v += 0.25 {
			got := normalizeScore(v, 0.8, higher)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
			assert.False(t, math.IsNaN(got))
		}
	}
}

func TestRiskBandCutPoints(t *testing.T) {
	tests := []struct {
		score float64
		want  model.RiskBand
	}{
		{100, model.RiskBandExcellent},
		{80, model.RiskBandExcellent},
		{79.9, model.RiskBandGood},
		{60, model.RiskBandGood},
		{59.9, model.RiskBandModerate},
		{40, model.RiskBandModerate},
		{39.9, model.RiskBandConcerning},
		{20, model.RiskBandConcerning},
		{19.9, model.RiskBandCritical},
		{0, model.RiskBandCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, riskBandFor(tt.score), "score %.1f", tt.score)
	}
}

// Both layers must band identically: a category's band is always the
// band its own rounded score maps to under the shared cut points.
func TestCategoryBandConsistentWithMetricBands(t *testing.T) {
	engine := mustEngine()
	for _, in := range []*model.FinancialHealthInput{healthyInput(), strainedInput(), emptySnapshotInput()} {
		report, err := engine.GenerateReport(in, testNow, nil)
		assert.NoError(t, err)

		for _, g := range report.Metrics.Groups() {
			for _, m := range g.Metrics {
				assert.Equal(t, riskBandFor(m.Score), m.RiskBand, "%s/%s", g.Name, m.Name)
			}
		}
		for _, c := range report.Categories {
			assert.Equal(t, riskBandFor(c.Score), c.RiskBand, c.Name)
		}
	}
}
