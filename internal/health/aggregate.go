package health

import (
	"math"
	"sort"
	"time"

	"github.com/ledgerline/finhealth/internal/model"
)

// Trend classification thresholds: percentage change of the composite
// score across the requested window.
const (
	trendImproveThreshold = 2.0
	trendDeclineThreshold = -2.0
)

// AggregateEngine is Layer 3: it combines the seven category scores
// into the composite score, applies the bounded penalty modifiers, and
// derives report-level confidence and trend.
type AggregateEngine struct {
	weights CategoryWeights
}

// NewAggregateEngine creates the layer with the given top-level weights.
func NewAggregateEngine(w CategoryWeights) *AggregateEngine {
	return &AggregateEngine{weights: w}
}

// BaseScore is the linear weighted composition of category scores.
func (e *AggregateEngine) BaseScore(categories []model.HealthCategory) float64 {
	var base float64
	for _, c := range categories {
		base += c.Score * c.Weight
	}
	return base
}

// FinalScore applies the total penalty and clamps into [0,100].
func (e *AggregateEngine) FinalScore(base float64, modifiers model.ScoreModifiers) float64 {
	return clamp(math.Round(base-modifiers.TotalPenalty), 0, 100)
}

// Confidence combines the data-presence scalar with per-metric evidence.
//
// Rule: confidence = min(DataConfidence, weighted metric confidence)
// minus 3 for each absent optional section, clamped to [0,100]. The
// weighted metric confidence is the category-weight-weighted mean of
// each group's average static metric confidence. The min() keeps the
// report from claiming more confidence than its weakest evidence
// channel; the weighted mean (rather than the raw minimum) stops one
// inherently low-observability metric from pinning every report to its
// floor. A consequence of the mean: report confidence can sit above
// the single lowest metric confidence (the insurance proxy at 40), so
// it bounds the weighted evidence, not the weakest individual metric.
func (e *AggregateEngine) Confidence(in *model.FinancialHealthInput, metrics *model.AggregatedMetrics) float64 {
	weights := e.weights.ordered()

	var weighted float64
	for i, g := range metrics.Groups() {
		if len(g.Metrics) == 0 {
			continue
		}
		var sum float64
		for _, m := range g.Metrics {
			sum += m.Confidence
		}
		weighted += weights[i] * (sum / float64(len(g.Metrics)))
	}

	conf := math.Min(metrics.DataConfidence, weighted)

	// Every absent optional context section costs a flat deduction, so
	// a fully populated input always reports strictly higher confidence
	// than the same input with context stripped.
	if len(in.Insights) == 0 {
		conf -= 3
	}
	if in.StrategyData == nil {
		conf -= 3
	}
	if in.LinkageHealth == nil {
		conf -= 3
	}
	if in.UserGoals == nil {
		conf -= 3
	}

	return round1(clamp(conf, 0, 100))
}

// ClassifyTrend compares the earliest and latest scores inside the
// window ending at now. Fewer than two points classify as STABLE.
func ClassifyTrend(history []model.TrendPoint, now time.Time, window time.Duration) model.Trend {
	points := windowPoints(history, now, window)
	if len(points) < 2 {
		return model.TrendStable
	}

	earliest, latest := points[0].Score, points[len(points)-1].Score
	if earliest <= 0 {
		// No base to compute a percentage change from.
		if latest > 0 {
			return model.TrendImproving
		}
		return model.TrendStable
	}

	changePercent := (latest - earliest) / earliest * 100
	switch {
	case changePercent > trendImproveThreshold:
		return model.TrendImproving
	case changePercent < trendDeclineThreshold:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}

// windowPoints returns the in-window history sorted by date ascending.
func windowPoints(history []model.TrendPoint, now time.Time, window time.Duration) []model.TrendPoint {
	cutoff := now.Add(-window)
	points := make([]model.TrendPoint, 0, len(history))
	for _, p := range history {
		if !p.Date.Before(cutoff) && !p.Date.After(now) {
			points = append(points, p)
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
