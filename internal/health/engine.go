package health

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/model"
)

// DefaultTrendWindow is the history window trend classification looks at.
const DefaultTrendWindow = 90 * 24 * time.Hour

// Engine is the full financial health pipeline. It holds only
// configuration: every report is computed fresh from its input, the
// injected clock value, and the caller-supplied trend history, so
// identical calls yield byte-identical reports and concurrent use needs
// no locking.
type Engine struct {
	benchmarks  Benchmarks
	weights     CategoryWeights
	trendWindow time.Duration
	concern     float64

	aggregator *MetricAggregator
	scorer     *CategoryScorer
	composer   *AggregateEngine
	risks      *RiskModeller
	actions    *ActionGenerator
}

// Option customizes an Engine.
type Option func(*Engine)

// WithBenchmarks substitutes an alternate benchmark set.
func WithBenchmarks(b Benchmarks) Option {
	return func(e *Engine) { e.benchmarks = b }
}

// WithCategoryWeights substitutes alternate top-level weights.
func WithCategoryWeights(w CategoryWeights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithTrendWindow overrides the trend classification window.
func WithTrendWindow(d time.Duration) Option {
	return func(e *Engine) { e.trendWindow = d }
}

// WithConcernThreshold overrides the category score below which
// improvement actions are generated.
func WithConcernThreshold(score float64) Option {
	return func(e *Engine) { e.concern = score }
}

// NewEngine builds an engine, validating its configuration.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		benchmarks:  DefaultBenchmarks(),
		weights:     DefaultCategoryWeights(),
		trendWindow: DefaultTrendWindow,
		concern:     DefaultConcernThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.benchmarks.Validate(); err != nil {
		return nil, eris.Wrap(err, "engine: benchmarks")
	}
	if err := e.weights.Validate(); err != nil {
		return nil, eris.Wrap(err, "engine: weights")
	}
	if e.concern < 0 || e.concern > 100 {
		return nil, eris.Errorf("engine: concern threshold must be between 0 and 100, got %.1f", e.concern)
	}

	e.aggregator = NewMetricAggregator(e.benchmarks)
	e.scorer = NewCategoryScorer(e.weights)
	e.composer = NewAggregateEngine(e.weights)
	e.risks = NewRiskModeller()
	e.actions = NewActionGenerator(e.benchmarks)
	e.actions.threshold = e.concern
	return e, nil
}

// GenerateReport runs the full pipeline. now is the injected clock
// value; history is the externally persisted (date, score) series used
// for trend classification. A precondition violation aborts before any
// scoring; absent optional sections only degrade confidence.
func (e *Engine) GenerateReport(in *model.FinancialHealthInput, now time.Time, history []model.TrendPoint) (*model.FinancialHealthReport, error) {
	if in == nil {
		return nil, &model.PreconditionError{Violations: []string{"input is required"}}
	}
	if err := in.Validate(); err != nil {
		// Returned unwrapped so callers can match the typed error.
		return nil, err
	}

	metrics := e.aggregator.Aggregate(in)
	categories := e.scorer.Score(&metrics)

	trend := ClassifyTrend(history, now, e.trendWindow)
	signals := e.risks.DeriveSignals(&metrics, trend)
	actions := e.actions.Generate(in, categories)

	modifiers := computeModifiers(in, &metrics, categories)
	base := e.composer.BaseScore(categories)
	final := e.composer.FinalScore(base, modifiers)
	confidence := e.composer.Confidence(in, &metrics)

	return &model.FinancialHealthReport{
		HealthScore: model.FinancialHealthScore{
			Score:      final,
			Confidence: confidence,
			Breakdown:  categories,
			Trend:      trend,
			Timestamp:  now,
		},
		Categories:         categories,
		RiskSignals:        signals,
		ImprovementActions: actions,
		Evidence:           buildEvidence(in, categories, confidence, history, now),
		Metrics:            metrics,
		Modifiers:          modifiers,
		GeneratedAt:        now,
		UserID:             in.UserID,
	}, nil
}
