package health

import (
	"fmt"

	"github.com/ledgerline/finhealth/internal/model"
)

// riskRule is one hard-threshold detector. Rules compare a metric's raw
// value to a fixed threshold that is deliberately separate from the
// scoring benchmark: a severely breached metric must surface even when
// its category averages out to a comfortable band.
type riskRule struct {
	id        string
	category  model.RiskCategory
	group     string
	metric    string
	threshold float64
	// critical, when breached for lower-is-worse direction, escalates
	// the severity. Zero means the rule never escalates.
	critical float64
	above    bool // trigger when value > threshold; otherwise value < threshold
	severity model.Severity
	title    string
	describe func(value, threshold float64) string
}

func riskRules() []riskRule {
	return []riskRule{
		{
			id: "risk-lvr-high", category: model.RiskCategoryBorrowing,
			group: "Property", metric: "loanToValue",
			threshold: 0.80, critical: 0.90, above: true,
			severity: model.SeverityHigh,
			title:    "Loan-to-value ratio above lending comfort level",
			describe: func(v, t float64) string {
				return fmt.Sprintf("Portfolio LVR is %.0f%%, above the %.0f%% threshold lenders treat as elevated risk.", v*100, t*100)
			},
		},
		{
			id: "risk-liquidity-buffer", category: model.RiskCategoryLiquidity,
			group: "Liquidity", metric: "emergencyBuffer",
			threshold: 3, above: false,
			severity: model.SeverityCritical,
			title:    "Emergency buffer below three months of expenses",
			describe: func(v, t float64) string {
				return fmt.Sprintf("Liquid reserves cover %.1f months of expenses, below the %.0f-month floor.", v, t)
			},
		},
		{
			id: "risk-negative-savings", category: model.RiskCategorySpending,
			group: "Liquidity", metric: "savingsRate",
			threshold: 0, critical: -0.10, above: false,
			severity: model.SeverityHigh,
			title:    "Spending exceeds income",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("Monthly outgoings exceed income by %.0f%% of income.", -v*100)
			},
		},
		{
			id: "risk-debt-service", category: model.RiskCategoryBorrowing,
			group: "Debt", metric: "debtServiceRatio",
			threshold: 0.35, critical: 0.45, above: true,
			severity: model.SeverityHigh,
			title:    "Debt repayments consuming too much income",
			describe: func(v, t float64) string {
				return fmt.Sprintf("Repayments take %.0f%% of monthly income, above the %.0f%% stress threshold.", v*100, t*100)
			},
		},
		{
			id: "risk-high-interest-debt", category: model.RiskCategoryBorrowing,
			group: "Debt", metric: "highInterestDebtRatio",
			threshold: 0.25, critical: 0.50, above: true,
			severity: model.SeverityMedium,
			title:    "Significant high-interest debt",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("%.0f%% of outstanding debt is at high interest rates.", v*100)
			},
		},
		{
			id: "risk-concentration", category: model.RiskCategoryConcentration,
			group: "Investments", metric: "concentrationRisk",
			threshold: 0.40, critical: 0.60, above: true,
			severity: model.SeverityMedium,
			title:    "Portfolio concentrated in a single holding",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("The largest holding makes up %.0f%% of the investment portfolio.", v*100)
			},
		},
		{
			id: "risk-growth-exposure", category: model.RiskCategoryMarket,
			group: "Investments", metric: "growthAllocation",
			threshold: 0.85, above: true,
			severity: model.SeverityMedium,
			title:    "Heavy exposure to growth assets",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("%.0f%% of the portfolio sits in growth assets exposed to market drawdowns.", v*100)
			},
		},
		{
			id: "risk-expense-volatility", category: model.RiskCategorySpending,
			group: "Cashflow", metric: "expenseVolatility",
			threshold: 0.60, above: true,
			severity: model.SeverityMedium,
			title:    "Expenses dominated by variable spending",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("%.0f%% of monthly expenses are variable, making cashflow hard to predict.", v*100)
			},
		},
		{
			id: "risk-retirement-shortfall", category: model.RiskCategoryLongevity,
			group: "Forecast", metric: "retirementProgress",
			threshold: 0.25, critical: 0.10, above: false,
			severity: model.SeverityMedium,
			title:    "Retirement savings well behind target",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("Retirement holdings are at %.0f%% of the target trajectory.", v*100)
			},
		},
		{
			id: "risk-leverage", category: model.RiskCategoryBorrowing,
			group: "Risk", metric: "debtExposure",
			threshold: 0.75, above: true,
			severity: model.SeverityHigh,
			title:    "Liabilities approaching total asset value",
			describe: func(v, _ float64) string {
				return fmt.Sprintf("Total liabilities are %.0f%% of total assets.", v*100)
			},
		},
	}
}

// RiskModeller derives discrete risk signals from the metric set. It
// runs parallel to category scoring and is deliberately not deduplicated
// against category risk bands.
type RiskModeller struct{}

// NewRiskModeller creates a modeller.
func NewRiskModeller() *RiskModeller {
	return &RiskModeller{}
}

// DeriveSignals evaluates every rule in fixed order, one signal per
// triggered rule. The supplied trend is attached as evidence context.
func (r *RiskModeller) DeriveSignals(metrics *model.AggregatedMetrics, trend model.Trend) []model.RiskSignal {
	signals := make([]model.RiskSignal, 0, 4)
	for _, rule := range riskRules() {
		value, ok := metricValue(metrics, rule.group, rule.metric)
		if !ok {
			continue
		}

		triggered := (rule.above && value > rule.threshold) ||
			(!rule.above && value < rule.threshold)
		if !triggered {
			continue
		}

		severity := rule.severity
		if rule.above && rule.critical > 0 && value > rule.critical {
			severity = escalate(severity)
		}
		if !rule.above && rule.critical != 0 && value < rule.critical {
			severity = escalate(severity)
		}

		signals = append(signals, model.RiskSignal{
			ID:          rule.id,
			Category:    rule.category,
			Severity:    severity,
			Title:       rule.title,
			Description: rule.describe(value, rule.threshold),
			Evidence: model.RiskEvidence{
				Metric:       rule.metric,
				CurrentValue: value,
				Threshold:    rule.threshold,
				Trend:        trend,
			},
			Tier: severityTier(severity),
		})
	}
	return signals
}

// escalate bumps a severity one level toward CRITICAL.
func escalate(s model.Severity) model.Severity {
	switch s {
	case model.SeverityLow:
		return model.SeverityMedium
	case model.SeverityMedium:
		return model.SeverityHigh
	default:
		return model.SeverityCritical
	}
}

// severityTier maps severity onto the 1-5 signal tier scale.
func severityTier(s model.Severity) int {
	switch s {
	case model.SeverityLow:
		return 1
	case model.SeverityMedium:
		return 3
	case model.SeverityHigh:
		return 4
	default:
		return 5
	}
}

// metricValue looks a raw metric value up by group and name.
func metricValue(metrics *model.AggregatedMetrics, group, name string) (float64, bool) {
	for _, g := range metrics.Groups() {
		if g.Name != group {
			continue
		}
		for _, m := range g.Metrics {
			if m.Name == name {
				return m.Value, true
			}
		}
	}
	return 0, false
}
