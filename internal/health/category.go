package health

import (
	"math"

	"github.com/ledgerline/finhealth/internal/model"
)

// DefaultConcernThreshold is the category score below which improvement
// actions are generated.
const DefaultConcernThreshold = 40.0

// CategoryScorer is Layer 2: it reduces each metric group into one
// weighted HealthCategory. Intra-category weights come from the shared
// category definition table and always sum to 1.0; the weighted average
// is over metric scores, never raw values.
type CategoryScorer struct {
	weights CategoryWeights
}

// NewCategoryScorer creates a scorer with the given top-level weights.
func NewCategoryScorer(w CategoryWeights) *CategoryScorer {
	return &CategoryScorer{weights: w}
}

// Score reduces all seven groups, returned in fixed category order.
// It trusts Layer 1's output invariant (structurally complete groups)
// and does not re-validate.
func (s *CategoryScorer) Score(metrics *model.AggregatedMetrics) []model.HealthCategory {
	defs := categoryDefs()
	groups := metrics.Groups()
	topWeights := s.weights.ordered()

	categories := make([]model.HealthCategory, 0, len(defs))
	for i, def := range defs {
		categories = append(categories, scoreCategory(def, groups[i], topWeights[i]))
	}
	return categories
}

func scoreCategory(def categoryDef, group model.MetricGroup, topWeight float64) model.HealthCategory {
	var weighted float64
	contributing := make([]model.ContributingMetric, 0, len(group.Metrics))

	for i, m := range group.Metrics {
		w := def.metrics[i].weight
		weighted += m.Score * w
		contributing = append(contributing, model.ContributingMetric{
			Name:      m.Name,
			Value:     m.Value,
			Weight:    w,
			Score:     m.Score,
			Benchmark: m.Benchmark,
		})
	}

	score := math.Round(weighted)
	return model.HealthCategory{
		Name:                def.name,
		Score:               score,
		Weight:              topWeight,
		ContributingMetrics: contributing,
		RiskBand:            riskBandFor(score),
	}
}

// Weakest returns the lowest-scoring category; ties resolve to the
// earlier category in fixed order.
func (s *CategoryScorer) Weakest(categories []model.HealthCategory) model.HealthCategory {
	weakest := categories[0]
	for _, c := range categories[1:] {
		if c.Score < weakest.Score {
			weakest = c
		}
	}
	return weakest
}

// Strongest returns the highest-scoring category; ties resolve to the
// earlier category in fixed order.
func (s *CategoryScorer) Strongest(categories []model.HealthCategory) model.HealthCategory {
	strongest := categories[0]
	for _, c := range categories[1:] {
		if c.Score > strongest.Score {
			strongest = c
		}
	}
	return strongest
}

// BelowThreshold returns categories scoring under the threshold, in
// fixed category order.
func (s *CategoryScorer) BelowThreshold(categories []model.HealthCategory, threshold float64) []model.HealthCategory {
	var below []model.HealthCategory
	for _, c := range categories {
		if c.Score < threshold {
			below = append(below, c)
		}
	}
	return below
}

// WeightedContribution returns each category's contribution to the
// composite score (score x top-level weight), keyed by category name.
func (s *CategoryScorer) WeightedContribution(categories []model.HealthCategory) map[string]float64 {
	contributions := make(map[string]float64, len(categories))
	for _, c := range categories {
		contributions[c.Name] = round1(c.Score * c.Weight)
	}
	return contributions
}
