// Package health implements the financial health engine: a pure,
// three-layer pipeline that reduces a portfolio snapshot into a single
// 0-100 score, discrete risk signals, and ranked improvement actions.
package health

import (
	"math"

	"github.com/ledgerline/finhealth/internal/model"
)

// normalizeScore maps a raw metric value against its benchmark onto the
// 0-100 scale. It is the single normalization rule shared by the metric
// and category layers.
//
// higher-is-better: score = min(100, value/benchmark*100).
// lower-is-better:  value <= 0 scores 100, benchmark <= 0 scores 0,
// otherwise ((benchmark-value)/benchmark + 1) * 50, clamped to [0,100].
// A value exactly at a lower-is-better benchmark therefore scores 50.
func normalizeScore(value, benchmark float64, higherIsBetter bool) float64 {
	if higherIsBetter {
		if benchmark <= 0 {
			// No meaningful target to compare against.
			return 0
		}
		if value <= 0 {
			return 0
		}
		return math.Min(100, value/benchmark*100)
	}

	if value <= 0 {
		return 100
	}
	if benchmark <= 0 {
		return 0
	}
	return clamp(((benchmark-value)/benchmark+1)*50, 0, 100)
}

// riskBandFor maps a 0-100 score onto its band using the fixed
// 80/60/40/20 cut points. Both layers must use this function so a
// category can never band a score differently than its metrics.
func riskBandFor(score float64) model.RiskBand {
	switch {
	case score >= 80:
		return model.RiskBandExcellent
	case score >= 60:
		return model.RiskBandGood
	case score >= 40:
		return model.RiskBandModerate
	case score >= 20:
		return model.RiskBandConcerning
	default:
		return model.RiskBandCritical
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round1 rounds to one decimal place. Scores are kept at this precision
// so repeat runs over identical input serialize byte-identically.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round4 keeps raw metric values at four decimal places for the same
// reason.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
