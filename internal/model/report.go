package model

import "time"

// RiskBand discretizes a 0-100 score.
type RiskBand string

const (
	RiskBandExcellent  RiskBand = "EXCELLENT"
	RiskBandGood       RiskBand = "GOOD"
	RiskBandModerate   RiskBand = "MODERATE"
	RiskBandConcerning RiskBand = "CONCERNING"
	RiskBandCritical   RiskBand = "CRITICAL"
)

// Trend classifies score movement over a history window.
type Trend string

const (
	TrendImproving Trend = "IMPROVING"
	TrendStable    Trend = "STABLE"
	TrendDeclining Trend = "DECLINING"
)

// RiskCategory groups risk signals by the threat they describe.
type RiskCategory string

const (
	RiskCategorySpending      RiskCategory = "SPENDING"
	RiskCategoryBorrowing     RiskCategory = "BORROWING"
	RiskCategoryLiquidity     RiskCategory = "LIQUIDITY"
	RiskCategoryConcentration RiskCategory = "CONCENTRATION"
	RiskCategoryMarket        RiskCategory = "MARKET"
	RiskCategoryLongevity     RiskCategory = "LONGEVITY"
)

// Severity ranks a risk signal.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Difficulty classifies the effort of an improvement action.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "EASY"
	DifficultyModerate Difficulty = "MODERATE"
	DifficultyHard     Difficulty = "HARD"
)

// BaseMetric is a single measured indicator with its benchmark and the
// score/band/confidence derived from it.
type BaseMetric struct {
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	Benchmark  float64  `json:"benchmark"`
	Score      float64  `json:"score"`      // 0-100
	RiskBand   RiskBand `json:"risk_band"`  // image of Score under the fixed cut points
	Confidence float64  `json:"confidence"` // 0-100, static per metric
}

// MetricGroup is the ordered metric list for one category.
type MetricGroup struct {
	Name    string       `json:"name"`
	Metrics []BaseMetric `json:"metrics"`
}

// AggregatedMetrics is the fixed record of the seven metric groups,
// created fresh per run.
type AggregatedMetrics struct {
	Liquidity   MetricGroup `json:"liquidity"`
	Cashflow    MetricGroup `json:"cashflow"`
	Debt        MetricGroup `json:"debt"`
	Investments MetricGroup `json:"investments"`
	Property    MetricGroup `json:"property"`
	Risk        MetricGroup `json:"risk"`
	Forecast    MetricGroup `json:"forecast"`

	// DataConfidence reflects presence of portfolio sub-collections,
	// not the quality of any individual metric.
	DataConfidence float64 `json:"data_confidence"`
}

// Groups returns the seven groups in fixed category order.
func (m *AggregatedMetrics) Groups() []MetricGroup {
	return []MetricGroup{
		m.Liquidity, m.Cashflow, m.Debt, m.Investments,
		m.Property, m.Risk, m.Forecast,
	}
}

// ContributingMetric is an immutable snapshot of one metric's part in a
// category score.
type ContributingMetric struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Weight    float64 `json:"weight"`
	Score     float64 `json:"score"`
	Benchmark float64 `json:"benchmark"`
}

// HealthCategory is one weighted grouping composing the final score.
type HealthCategory struct {
	Name                string               `json:"name"`
	Score               float64              `json:"score"` // 0-100, rounded
	Weight              float64              `json:"weight"`
	ContributingMetrics []ContributingMetric `json:"contributing_metrics"`
	RiskBand            RiskBand             `json:"risk_band"`
}

// FinancialHealthScore is the composite result.
type FinancialHealthScore struct {
	Score      float64          `json:"score"`      // 0-100
	Confidence float64          `json:"confidence"` // 0-100
	Breakdown  []HealthCategory `json:"breakdown"`  // fixed category order, len 7
	Trend      Trend            `json:"trend"`
	Timestamp  time.Time        `json:"timestamp"`
}

// RiskSignal is a discrete rule-triggered warning, independent of the
// smoothed category scores.
type RiskSignal struct {
	ID          string       `json:"id"`
	Category    RiskCategory `json:"category"`
	Severity    Severity     `json:"severity"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Evidence    RiskEvidence `json:"evidence"`
	Tier        int          `json:"tier"` // 1-5
}

// RiskEvidence records the triggering comparison.
type RiskEvidence struct {
	Metric       string  `json:"metric"`
	CurrentValue float64 `json:"current_value"`
	Threshold    float64 `json:"threshold"`
	Trend        Trend   `json:"trend"`
}

// ActionImpact estimates the payoff of an improvement action.
type ActionImpact struct {
	ScoreImprovement float64 `json:"score_improvement"` // composite points
	FinancialImpact  float64 `json:"financial_impact"`  // dollars per year
	Timeframe        string  `json:"timeframe"`
}

// ImprovementAction is a ranked remediation suggestion. Priority 1 is
// the most impactful per unit of effort; priorities are strictly ordered.
type ImprovementAction struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Impact           ActionImpact `json:"impact"`
	Category         string       `json:"category"`
	Difficulty       Difficulty   `json:"difficulty"`
	Priority         int          `json:"priority"`
	RecommendationID string       `json:"recommendation_id,omitempty"`
}

// TrendPoint is one historical (date, score) observation.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// RiskMapEntry summarizes one category's band for the evidence pack.
type RiskMapEntry struct {
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	RiskBand RiskBand `json:"risk_band"`
}

// EvidencePack is the explainability bundle attached to a report.
type EvidencePack struct {
	InputsUsed      []string       `json:"inputs_used"`
	ConfidenceLevel float64        `json:"confidence_level"`
	InsightsLinked  []string       `json:"insights_linked"`
	HistoricalTrend []TrendPoint   `json:"historical_trend"`
	RiskMap         []RiskMapEntry `json:"risk_map"`
	LastUpdated     time.Time      `json:"last_updated"`
}

// ScoreModifiers holds the five bounded penalties applied to the base
// score. TotalPenalty is always their sum.
type ScoreModifiers struct {
	DataConfidencePenalty   float64 `json:"data_confidence_penalty"`
	InsightSeverityPenalty  float64 `json:"insight_severity_penalty"`
	ForecastRiskPenalty     float64 `json:"forecast_risk_penalty"`
	LinkagePenalty          float64 `json:"linkage_penalty"`
	StrategyConflictPenalty float64 `json:"strategy_conflict_penalty"`
	TotalPenalty            float64 `json:"total_penalty"`
}

// FinancialHealthReport is the full engine output for one run.
type FinancialHealthReport struct {
	HealthScore        FinancialHealthScore `json:"health_score"`
	Categories         []HealthCategory     `json:"categories"`
	RiskSignals        []RiskSignal         `json:"risk_signals"`
	ImprovementActions []ImprovementAction  `json:"improvement_actions"`
	Evidence           EvidencePack         `json:"evidence"`
	Metrics            AggregatedMetrics    `json:"metrics"`
	Modifiers          ScoreModifiers       `json:"modifiers"`
	GeneratedAt        time.Time            `json:"generated_at"`
	UserID             string               `json:"user_id"`
}
