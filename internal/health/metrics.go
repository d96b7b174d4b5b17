package health

import (
	"github.com/ledgerline/finhealth/internal/model"
)

// MetricAggregator is Layer 1: it turns a validated input into the
// fixed record of benchmarked metric groups. It is pure; every call
// produces a fresh AggregatedMetrics.
type MetricAggregator struct {
	benchmarks Benchmarks
}

// NewMetricAggregator creates an aggregator over the given benchmark set.
func NewMetricAggregator(b Benchmarks) *MetricAggregator {
	return &MetricAggregator{benchmarks: b}
}

// Aggregate computes every metric group plus the data-presence
// confidence scalar. The input must already be validated; Aggregate
// never re-checks structural invariants.
func (a *MetricAggregator) Aggregate(in *model.FinancialHealthInput) model.AggregatedMetrics {
	facts := deriveFacts(in)

	groups := make([]model.MetricGroup, 0, len(categoryDefs()))
	for _, cat := range categoryDefs() {
		group := model.MetricGroup{
			Name:    cat.name,
			Metrics: make([]model.BaseMetric, 0, len(cat.metrics)),
		}
		for _, def := range cat.metrics {
			value := def.value(facts, a.benchmarks)
			benchmark := def.benchmark(a.benchmarks)
			score := round1(normalizeScore(value, benchmark, def.higherIsBetter))
			group.Metrics = append(group.Metrics, model.BaseMetric{
				Name:       def.name,
				Value:      round4(value),
				Benchmark:  benchmark,
				Score:      score,
				RiskBand:   riskBandFor(score),
				Confidence: def.confidence,
			})
		}
		groups = append(groups, group)
	}

	return model.AggregatedMetrics{
		Liquidity:      groups[0],
		Cashflow:       groups[1],
		Debt:           groups[2],
		Investments:    groups[3],
		Property:       groups[4],
		Risk:           groups[5],
		Forecast:       groups[6],
		DataConfidence: a.dataConfidence(facts, in),
	}
}

// dataConfidence scores the presence of each portfolio sub-collection.
// Accounts and income carry the most weight since nearly every metric
// depends on them. A linkage consistency score above 80 earns a bonus.
func (a *MetricAggregator) dataConfidence(f *snapshotFacts, in *model.FinancialHealthInput) float64 {
	var c float64
	if f.hasAccounts {
		c += 20
	}
	if f.hasIncome {
		c += 20
	}
	if f.hasExpenses {
		c += 15
	}
	if f.hasLoans {
		c += 15
	}
	if f.hasInvestments {
		c += 15
	}
	if f.hasProperties {
		c += 15
	}
	if in.LinkageHealth != nil && in.LinkageHealth.ConsistencyScore > 80 {
		c += 10
	}
	return clamp(c, 0, 100)
}
