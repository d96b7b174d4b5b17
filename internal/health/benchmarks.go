package health

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Benchmarks holds every target value metrics are normalized against.
// They are explicit configuration, not hidden globals, so an alternate
// set (another jurisdiction's lending and savings norms) can be loaded
// without touching any scoring code.
type Benchmarks struct {
	// Liquidity.
	EmergencyBufferMonths float64 `yaml:"emergency_buffer_months"`
	LiquidNetWorthRatio   float64 `yaml:"liquid_net_worth_ratio"`
	SavingsRate           float64 `yaml:"savings_rate"`

	// Cashflow.
	IncomeExpenseRatio float64 `yaml:"income_expense_ratio"`
	DiscretionaryRatio float64 `yaml:"discretionary_ratio"`
	IncomeStability    float64 `yaml:"income_stability"`
	ExpenseVolatility  float64 `yaml:"expense_volatility"`

	// Debt.
	DebtToIncome          float64 `yaml:"debt_to_income"`
	DebtServiceRatio      float64 `yaml:"debt_service_ratio"`
	HighInterestDebtRatio float64 `yaml:"high_interest_debt_ratio"`
	AverageInterestRate   float64 `yaml:"average_interest_rate"`
	SecuredDebtRatio      float64 `yaml:"secured_debt_ratio"`

	// Investments.
	InvestmentDiversification float64 `yaml:"investment_diversification"`
	InvestmentToIncome        float64 `yaml:"investment_to_income"`
	GrowthAllocation          float64 `yaml:"growth_allocation"`
	ConcentrationLimit        float64 `yaml:"concentration_limit"`

	// Property.
	LoanToValue      float64 `yaml:"loan_to_value"`
	PropertyEquity   float64 `yaml:"property_equity"`
	PropertyToAssets float64 `yaml:"property_to_assets"`
	RentalYield      float64 `yaml:"rental_yield"`

	// Risk.
	InsuranceCover  float64 `yaml:"insurance_cover"`
	IncomeDiversity float64 `yaml:"income_diversity"`
	DebtExposure    float64 `yaml:"debt_exposure"`

	// Forecast.
	RetirementProgress  float64 `yaml:"retirement_progress"`
	SavingsGoalProgress float64 `yaml:"savings_goal_progress"`
	NetWorthGrowth      float64 `yaml:"net_worth_growth"`

	// Sentinels for zero-denominator inputs.
	EmergencyBufferCapMonths float64 `yaml:"emergency_buffer_cap_months"`
	IncomeExpenseRatioCap    float64 `yaml:"income_expense_ratio_cap"`

	// Fallback goal targets used when the user supplied none.
	DefaultRetirementMultiple float64 `yaml:"default_retirement_multiple"` // x annual income
	DefaultSavingsGoalMonths  float64 `yaml:"default_savings_goal_months"` // x monthly expenses
}

// DefaultBenchmarks returns the standard Australian-household benchmark
// set the engine ships with.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		EmergencyBufferMonths: 6,
		LiquidNetWorthRatio:   0.15,
		SavingsRate:           0.20,

		IncomeExpenseRatio: 1.3,
		DiscretionaryRatio: 0.30,
		IncomeStability:    0.70,
		ExpenseVolatility:  0.40,

		DebtToIncome:          3.5,
		DebtServiceRatio:      0.30,
		HighInterestDebtRatio: 0.10,
		AverageInterestRate:   6.0,
		SecuredDebtRatio:      0.80,

		InvestmentDiversification: 0.60,
		InvestmentToIncome:        2.0,
		GrowthAllocation:          0.60,
		ConcentrationLimit:        0.25,

		LoanToValue:      0.80,
		PropertyEquity:   0.40,
		PropertyToAssets: 0.60,
		RentalYield:      0.04,

		InsuranceCover:  1.0,
		IncomeDiversity: 0.67,
		DebtExposure:    0.50,

		RetirementProgress:  0.50,
		SavingsGoalProgress: 0.75,
		NetWorthGrowth:      0.05,

		EmergencyBufferCapMonths: 24,
		IncomeExpenseRatioCap:    3.0,

		DefaultRetirementMultiple: 10,
		DefaultSavingsGoalMonths:  6,
	}
}

// LoadBenchmarks reads a benchmark set from a YAML file. Fields absent
// from the file keep their default values.
func LoadBenchmarks(path string) (Benchmarks, error) {
	b := DefaultBenchmarks()

	data, err := os.ReadFile(path)
	if err != nil {
		return b, eris.Wrapf(err, "benchmarks: read %s", path)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, eris.Wrapf(err, "benchmarks: parse %s", path)
	}
	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

// Validate checks the benchmark set is internally consistent.
func (b Benchmarks) Validate() error {
	var errs []string

	positive := map[string]float64{
		"emergency_buffer_months":     b.EmergencyBufferMonths,
		"liquid_net_worth_ratio":      b.LiquidNetWorthRatio,
		"savings_rate":                b.SavingsRate,
		"income_expense_ratio":        b.IncomeExpenseRatio,
		"discretionary_ratio":         b.DiscretionaryRatio,
		"income_stability":            b.IncomeStability,
		"expense_volatility":          b.ExpenseVolatility,
		"debt_to_income":              b.DebtToIncome,
		"debt_service_ratio":          b.DebtServiceRatio,
		"high_interest_debt_ratio":    b.HighInterestDebtRatio,
		"average_interest_rate":       b.AverageInterestRate,
		"secured_debt_ratio":          b.SecuredDebtRatio,
		"investment_diversification":  b.InvestmentDiversification,
		"investment_to_income":        b.InvestmentToIncome,
		"growth_allocation":           b.GrowthAllocation,
		"concentration_limit":         b.ConcentrationLimit,
		"loan_to_value":               b.LoanToValue,
		"property_equity":             b.PropertyEquity,
		"property_to_assets":          b.PropertyToAssets,
		"rental_yield":                b.RentalYield,
		"insurance_cover":             b.InsuranceCover,
		"income_diversity":            b.IncomeDiversity,
		"debt_exposure":               b.DebtExposure,
		"retirement_progress":         b.RetirementProgress,
		"savings_goal_progress":       b.SavingsGoalProgress,
		"net_worth_growth":            b.NetWorthGrowth,
		"emergency_buffer_cap_months": b.EmergencyBufferCapMonths,
		"income_expense_ratio_cap":    b.IncomeExpenseRatioCap,
		"default_retirement_multiple": b.DefaultRetirementMultiple,
		"default_savings_goal_months": b.DefaultSavingsGoalMonths,
	}
	for name, v := range positive {
		if v <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be > 0", name))
		}
	}

	if b.EmergencyBufferCapMonths < b.EmergencyBufferMonths {
		errs = append(errs, "emergency_buffer_cap_months must be >= emergency_buffer_months")
	}
	if b.IncomeExpenseRatioCap < b.IncomeExpenseRatio {
		errs = append(errs, "income_expense_ratio_cap must be >= income_expense_ratio")
	}

	if len(errs) > 0 {
		return eris.Errorf("benchmarks: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// CategoryWeights holds the top-level weight of each of the seven
// categories. They must sum to 1.0.
type CategoryWeights struct {
	Liquidity   float64 `yaml:"liquidity" mapstructure:"liquidity"`
	Cashflow    float64 `yaml:"cashflow" mapstructure:"cashflow"`
	Debt        float64 `yaml:"debt" mapstructure:"debt"`
	Investments float64 `yaml:"investments" mapstructure:"investments"`
	Property    float64 `yaml:"property" mapstructure:"property"`
	Risk        float64 `yaml:"risk" mapstructure:"risk"`
	Forecast    float64 `yaml:"forecast" mapstructure:"forecast"`
}

// DefaultCategoryWeights returns the standard top-level weighting.
func DefaultCategoryWeights() CategoryWeights {
	return CategoryWeights{
		Liquidity:   0.20,
		Cashflow:    0.15,
		Debt:        0.15,
		Investments: 0.15,
		Property:    0.15,
		Risk:        0.10,
		Forecast:    0.10,
	}
}

// ordered returns the weights in fixed category order.
func (w CategoryWeights) ordered() []float64 {
	return []float64{
		w.Liquidity, w.Cashflow, w.Debt, w.Investments,
		w.Property, w.Risk, w.Forecast,
	}
}

// Validate checks the weights are non-negative and sum to 1.0.
func (w CategoryWeights) Validate() error {
	var sum float64
	for _, v := range w.ordered() {
		if v < 0 {
			return eris.New("category weights: all weights must be >= 0")
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return eris.Errorf("category weights: must sum to 1.0, got %.6f", sum)
	}
	return nil
}
