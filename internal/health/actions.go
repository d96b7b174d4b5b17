package health

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ledgerline/finhealth/internal/model"
)

// actionTemplate drives action synthesis for one weak category.
type actionTemplate struct {
	category   string
	title      string
	advice     string
	difficulty model.Difficulty
	timeframe  string
	// impact estimates the annual dollar effect of remediating the
	// category, from the derived snapshot facts.
	impact func(f *snapshotFacts, b Benchmarks) float64
}

func actionTemplates() []actionTemplate {
	return []actionTemplate{
		{
			category:   "Liquidity",
			title:      "Build up your emergency buffer",
			advice:     "Redirect surplus income into a liquid savings or offset account until reserves cover the benchmark number of months.",
			difficulty: model.DifficultyEasy,
			timeframe:  "3-6 months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				gap := b.EmergencyBufferMonths - f.emergencyBufferMonths(b)
				return math.Max(0, gap*f.monthlyExpenses)
			},
		},
		{
			category:   "Cashflow",
			title:      "Lift your monthly savings margin",
			advice:     "Trim variable spending and review recurring bills to restore a positive gap between income and expenses.",
			difficulty: model.DifficultyEasy,
			timeframe:  "1-3 months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				target := b.SavingsRate * f.monthlyIncome
				actual := f.monthlyIncome - f.monthlyExpenses
				return math.Max(0, (target-actual)*12)
			},
		},
		{
			category:   "Debt",
			title:      "Pay down high-interest debt first",
			advice:     "Direct extra repayments at the highest-rate facility, or consolidate unsecured balances onto a cheaper secured rate.",
			difficulty: model.DifficultyModerate,
			timeframe:  "6-12 months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				rate := f.weightedInterestRate()
				if rate <= b.AverageInterestRate {
					return math.Max(0, f.highInterestDebt*0.05)
				}
				return f.totalDebt * (rate - b.AverageInterestRate) / 100
			},
		},
		{
			category:   "Investments",
			title:      "Diversify and grow your investment base",
			advice:     "Spread concentrated holdings across more asset types and set up a regular contribution plan.",
			difficulty: model.DifficultyModerate,
			timeframe:  "6-12 months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				gap := b.InvestmentToIncome*f.monthlyIncome*12 - f.investmentTotal
				return math.Max(0, gap*0.10)
			},
		},
		{
			category:   "Property",
			title:      "Reduce property gearing",
			advice:     "Make additional principal repayments or revalue to bring the loan-to-value ratio back under the lending benchmark.",
			difficulty: model.DifficultyHard,
			timeframe:  "12-24 months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				return math.Max(0, f.propertyDebt-b.LoanToValue*f.propertyValue)
			},
		},
		{
			category:   "Risk",
			title:      "Close your protection gaps",
			advice:     "Review income protection and insurance cover, and reduce reliance on a single income stream.",
			difficulty: model.DifficultyModerate,
			timeframe:  "1-3 months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				return math.Max(0, f.monthlyExpenses*3)
			},
		},
		{
			category:   "Forecast",
			title:      "Get your retirement trajectory back on track",
			advice:     "Increase concessional contributions or regular investing so projected assets meet your stated retirement target.",
			difficulty: model.DifficultyHard,
			timeframe:  "12+ months",
			impact: func(f *snapshotFacts, b Benchmarks) float64 {
				gap := f.effectiveRetirementTarget(b) - f.investmentTotal
				return math.Max(0, gap*0.05)
			},
		},
	}
}

// effortFactor converts difficulty into the denominator of the
// impact-per-effort ranking.
func effortFactor(d model.Difficulty) float64 {
	switch d {
	case model.DifficultyEasy:
		return 1
	case model.DifficultyModerate:
		return 2
	default:
		return 3
	}
}

// ActionGenerator synthesizes ranked improvement actions for weak
// categories.
type ActionGenerator struct {
	benchmarks Benchmarks
	threshold  float64
	printer    *message.Printer
}

// NewActionGenerator creates a generator using the default concern
// threshold.
func NewActionGenerator(b Benchmarks) *ActionGenerator {
	return &ActionGenerator{
		benchmarks: b,
		threshold:  DefaultConcernThreshold,
		printer:    message.NewPrinter(language.English),
	}
}

// Generate produces one action per category scoring below the concern
// threshold, ranked by composite-score improvement per unit of effort.
// Priority 1 is the best payoff; priorities are strictly ordered.
func (g *ActionGenerator) Generate(in *model.FinancialHealthInput, categories []model.HealthCategory) []model.ImprovementAction {
	facts := deriveFacts(in)
	templates := actionTemplates()

	var actions []model.ImprovementAction
	for i, cat := range categories {
		if cat.Score >= g.threshold {
			continue
		}
		tpl := templates[i]

		// Lifting a weak category to GOOD moves the composite by the
		// gap times the category's top-level weight.
		scoreGain := round1((60 - cat.Score) * cat.Weight)
		dollars := math.Round(tpl.impact(facts, g.benchmarks))

		action := model.ImprovementAction{
			ID:          fmt.Sprintf("action-%s", strings.ToLower(cat.Name)),
			Title:       tpl.title,
			Description: g.describe(tpl, cat, dollars),
			Impact: model.ActionImpact{
				ScoreImprovement: scoreGain,
				FinancialImpact:  dollars,
				Timeframe:        tpl.timeframe,
			},
			Category:         cat.Name,
			Difficulty:       tpl.difficulty,
			RecommendationID: matchRecommendation(in.StrategyData, cat.Name),
		}
		actions = append(actions, action)
	}

	// Rank by impact per effort, ties broken by fixed category order
	// (the pre-sort order).
	sort.SliceStable(actions, func(i, j int) bool {
		ri := actions[i].Impact.ScoreImprovement / effortFactor(actions[i].Difficulty)
		rj := actions[j].Impact.ScoreImprovement / effortFactor(actions[j].Difficulty)
		return ri > rj
	})
	for i := range actions {
		actions[i].Priority = i + 1
	}
	return actions
}

// describe builds the action description, citing the metrics that
// dragged the category down.
func (g *ActionGenerator) describe(tpl actionTemplate, cat model.HealthCategory, dollars float64) string {
	var weak []string
	for _, m := range cat.ContributingMetrics {
		if m.Score < g.threshold {
			weak = append(weak, fmt.Sprintf("%s (%.0f/100)", m.Name, m.Score))
		}
	}

	desc := tpl.advice
	if len(weak) > 0 {
		desc += " Driven by " + strings.Join(weak, ", ") + "."
	}
	if dollars > 0 {
		desc += g.printer.Sprintf(" Estimated impact: $%.0f per year.", dollars)
	}
	return desc
}

// matchRecommendation links the first strategy recommendation touching
// the category, when strategy data exists. Actions are valid without one.
func matchRecommendation(sd *model.StrategyData, category string) string {
	if sd == nil {
		return ""
	}
	needle := strings.ToLower(category)
	for _, rec := range sd.Recommendations {
		if strings.Contains(strings.ToLower(rec.Category), needle) {
			return rec.ID
		}
	}
	return ""
}
