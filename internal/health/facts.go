package health

import (
	"math"

	"github.com/ledgerline/finhealth/internal/model"
)

// Loans at or above this rate count as high-interest debt.
const highInterestRateFloor = 8.0

// snapshotFacts holds the sums and shares derived once from a snapshot.
// Every ratio accessor guards its denominator: a potentially-zero divisor
// resolves to a documented sentinel, never NaN or Infinity.
type snapshotFacts struct {
	netWorth         float64
	totalAssets      float64
	totalLiabilities float64

	monthlyIncome     float64
	stableIncome      float64
	incomeTypes       int
	monthlyExpenses   float64
	essentialExpenses float64
	variableExpenses  float64

	liquidAssets float64

	totalDebt         float64
	securedDebt       float64
	highInterestDebt  float64
	monthlyRepayments float64
	rateWeightedDebt  float64 // sum of principal * rate

	propertyValue      float64
	propertyDebt       float64
	investPropValue    float64
	annualRentalIncome float64

	investmentTotal  float64
	growthInvestment float64
	largestHolding   float64
	investmentTypes  int

	hasAccounts    bool
	hasIncome      bool
	hasExpenses    bool
	hasLoans       bool
	hasInvestments bool
	hasProperties  bool

	goals *model.UserGoals
}

// deriveFacts walks the snapshot exactly once.
func deriveFacts(in *model.FinancialHealthInput) *snapshotFacts {
	s := in.PortfolioSnapshot
	f := &snapshotFacts{
		netWorth:         s.NetWorth,
		totalAssets:      s.TotalAssets,
		totalLiabilities: s.TotalLiabilities,
		goals:            in.UserGoals,

		hasAccounts:    len(s.Accounts) > 0,
		hasIncome:      len(s.Income) > 0,
		hasExpenses:    len(s.Expenses) > 0,
		hasLoans:       len(s.Loans) > 0,
		hasInvestments: len(s.Investments) > 0,
		hasProperties:  len(s.Properties) > 0,
	}

	incomeTypes := make(map[string]struct{})
	for _, inc := range s.Income {
		f.monthlyIncome += inc.MonthlyAmount
		if inc.Stable {
			f.stableIncome += inc.MonthlyAmount
		}
		if inc.Type != "" {
			incomeTypes[inc.Type] = struct{}{}
		}
	}
	f.incomeTypes = len(incomeTypes)

	for _, e := range s.Expenses {
		f.monthlyExpenses += e.MonthlyAmount
		if e.Essential {
			f.essentialExpenses += e.MonthlyAmount
		}
		if e.Variable {
			f.variableExpenses += e.MonthlyAmount
		}
	}

	for _, a := range s.Accounts {
		if a.Liquid {
			f.liquidAssets += a.Balance
		}
	}

	for _, l := range s.Loans {
		f.totalDebt += l.Principal
		f.monthlyRepayments += l.MonthlyRepayment
		f.rateWeightedDebt += l.Principal * l.InterestRate
		if l.Secured {
			f.securedDebt += l.Principal
		}
		if l.InterestRate >= highInterestRateFloor {
			f.highInterestDebt += l.Principal
		}
		if l.PropertyID != "" || l.Type == "mortgage" {
			f.propertyDebt += l.Principal
		}
	}

	for _, p := range s.Properties {
		f.propertyValue += p.Value
		f.annualRentalIncome += p.RentalIncome
		if !p.OwnerOccupied {
			f.investPropValue += p.Value
		}
	}

	invTypes := make(map[string]struct{})
	for _, inv := range s.Investments {
		f.investmentTotal += inv.Value
		if inv.GrowthAsset {
			f.growthInvestment += inv.Value
		}
		if inv.Value > f.largestHolding {
			f.largestHolding = inv.Value
		}
		if inv.Type != "" {
			invTypes[inv.Type] = struct{}{}
		}
	}
	f.investmentTypes = len(invTypes)

	return f
}

// --- Liquidity ---

// emergencyBufferMonths is liquid assets over monthly expenses. Zero
// expenses means the buffer cannot be exhausted; the capped maximum is
// reported instead of an undefined ratio.
func (f *snapshotFacts) emergencyBufferMonths(b Benchmarks) float64 {
	if f.monthlyExpenses <= 0 {
		return b.EmergencyBufferCapMonths
	}
	return math.Min(b.EmergencyBufferCapMonths, f.liquidAssets/f.monthlyExpenses)
}

// liquidNetWorthRatio reports 0 for non-positive net worth: there is no
// meaningful base to express liquidity against.
func (f *snapshotFacts) liquidNetWorthRatio() float64 {
	if f.netWorth <= 0 {
		return 0
	}
	return f.liquidAssets / f.netWorth
}

func (f *snapshotFacts) savingsRate() float64 {
	if f.monthlyIncome <= 0 {
		return 0
	}
	return (f.monthlyIncome - f.monthlyExpenses) / f.monthlyIncome
}

// --- Cashflow ---

// incomeExpenseRatio caps at the configured maximum when expenses are
// zero, rather than dividing by zero.
func (f *snapshotFacts) incomeExpenseRatio(b Benchmarks) float64 {
	if f.monthlyExpenses <= 0 {
		if f.monthlyIncome > 0 {
			return b.IncomeExpenseRatioCap
		}
		return 0
	}
	return math.Min(b.IncomeExpenseRatioCap, f.monthlyIncome/f.monthlyExpenses)
}

func (f *snapshotFacts) discretionaryRatio() float64 {
	if f.monthlyIncome <= 0 {
		return 0
	}
	return (f.monthlyIncome - f.essentialExpenses) / f.monthlyIncome
}

func (f *snapshotFacts) incomeStabilityShare() float64 {
	if f.monthlyIncome <= 0 {
		return 0
	}
	return f.stableIncome / f.monthlyIncome
}

// expenseVolatilityShare is 0 when there are no expenses: nothing
// recurring means nothing volatile.
func (f *snapshotFacts) expenseVolatilityShare() float64 {
	if f.monthlyExpenses <= 0 {
		return 0
	}
	return f.variableExpenses / f.monthlyExpenses
}

// --- Debt ---

// debtToIncome with no income reports twice the benchmark when any debt
// exists (worst case) and 0 when debt-free.
func (f *snapshotFacts) debtToIncome(b Benchmarks) float64 {
	annualIncome := f.monthlyIncome * 12
	if annualIncome <= 0 {
		if f.totalDebt > 0 {
			return b.DebtToIncome * 2
		}
		return 0
	}
	return f.totalDebt / annualIncome
}

func (f *snapshotFacts) debtServiceRatio(b Benchmarks) float64 {
	if f.monthlyIncome <= 0 {
		if f.monthlyRepayments > 0 {
			return b.DebtServiceRatio * 2
		}
		return 0
	}
	return f.monthlyRepayments / f.monthlyIncome
}

func (f *snapshotFacts) highInterestDebtShare() float64 {
	if f.totalDebt <= 0 {
		return 0
	}
	return f.highInterestDebt / f.totalDebt
}

func (f *snapshotFacts) weightedInterestRate() float64 {
	if f.totalDebt <= 0 {
		return 0
	}
	return f.rateWeightedDebt / f.totalDebt
}

// securedDebtShare with no debt reports the benchmark itself: an empty
// debt book has nothing unsecured and should not be penalized.
func (f *snapshotFacts) securedDebtShare(b Benchmarks) float64 {
	if f.totalDebt <= 0 {
		return b.SecuredDebtRatio
	}
	return f.securedDebt / f.totalDebt
}

// --- Investments ---

// investmentToIncome with no income reports the benchmark when holdings
// exist (the holdings are real even if income data is missing) and 0
// otherwise.
func (f *snapshotFacts) investmentToIncome(b Benchmarks) float64 {
	annualIncome := f.monthlyIncome * 12
	if annualIncome <= 0 {
		if f.investmentTotal > 0 {
			return b.InvestmentToIncome
		}
		return 0
	}
	return f.investmentTotal / annualIncome
}

// diversification counts distinct holding types against a five-type
// target.
func (f *snapshotFacts) diversification() float64 {
	return math.Min(1, float64(f.investmentTypes)/5)
}

func (f *snapshotFacts) largestHoldingShare() float64 {
	if f.investmentTotal <= 0 {
		return 0
	}
	return f.largestHolding / f.investmentTotal
}

func (f *snapshotFacts) growthAllocationShare() float64 {
	if f.investmentTotal <= 0 {
		return 0
	}
	return f.growthInvestment / f.investmentTotal
}

// --- Property ---

// loanToValue with no property value reports 0: the ratio is undefined
// and any orphaned property debt is already counted by the debt metrics.
func (f *snapshotFacts) loanToValue() float64 {
	if f.propertyValue <= 0 {
		return 0
	}
	return f.propertyDebt / f.propertyValue
}

func (f *snapshotFacts) propertyEquityRatio() float64 {
	if f.propertyValue <= 0 {
		return 0
	}
	return (f.propertyValue - f.propertyDebt) / f.propertyValue
}

func (f *snapshotFacts) propertyToAssetsShare() float64 {
	if f.totalAssets <= 0 {
		return 0
	}
	return f.propertyValue / f.totalAssets
}

// rentalYield is computed over investment property value only. With no
// investment property the benchmark itself is reported: a portfolio is
// not penalized for holding no rentals.
func (f *snapshotFacts) rentalYield(b Benchmarks) float64 {
	if f.investPropValue <= 0 {
		return b.RentalYield
	}
	return f.annualRentalIncome / f.investPropValue
}

// --- Risk ---

// debtExposure with no assets reports twice the benchmark when
// liabilities exist and 0 otherwise.
func (f *snapshotFacts) debtExposure(b Benchmarks) float64 {
	if f.totalAssets <= 0 {
		if f.totalLiabilities > 0 {
			return b.DebtExposure * 2
		}
		return 0
	}
	return f.totalLiabilities / f.totalAssets
}

// incomeDiversityShare counts distinct income types against a
// three-type target.
func (f *snapshotFacts) incomeDiversityShare() float64 {
	return math.Min(1, float64(f.incomeTypes)/3)
}

// insuranceCoverProxy approximates cover adequacy from twelve months of
// liquidity buffer. There is no insurance data source; the metric's low
// static confidence reflects that.
func (f *snapshotFacts) insuranceCoverProxy(b Benchmarks) float64 {
	return math.Min(1.5, f.emergencyBufferMonths(b)/12)
}

// --- Forecast ---

// effectiveRetirementTarget prefers the user's stated target, falling
// back to a multiple of annual income.
func (f *snapshotFacts) effectiveRetirementTarget(b Benchmarks) float64 {
	if f.goals != nil && f.goals.RetirementTarget > 0 {
		return f.goals.RetirementTarget
	}
	return f.monthlyIncome * 12 * b.DefaultRetirementMultiple
}

func (f *snapshotFacts) retirementProgress(b Benchmarks) float64 {
	target := f.effectiveRetirementTarget(b)
	if target <= 0 {
		if f.investmentTotal > 0 {
			return b.RetirementProgress
		}
		return 0
	}
	return f.investmentTotal / target
}

// savingsGoalProgress falls back to a buffer-sized goal when the user
// stated none. With no derivable goal at all the benchmark is reported:
// there is no goal to fall short of.
func (f *snapshotFacts) savingsGoalProgress(b Benchmarks) float64 {
	goal := 0.0
	if f.goals != nil && f.goals.SavingsGoal > 0 {
		goal = f.goals.SavingsGoal
	} else {
		goal = f.monthlyExpenses * b.DefaultSavingsGoalMonths
	}
	if goal <= 0 {
		return b.SavingsGoalProgress
	}
	return f.liquidAssets / goal
}

// netWorthGrowthRate is annual savings over net worth. With non-positive
// net worth, positive saving reports the benchmark and anything else 0.
func (f *snapshotFacts) netWorthGrowthRate(b Benchmarks) float64 {
	annualSavings := (f.monthlyIncome - f.monthlyExpenses) * 12
	if f.netWorth <= 0 {
		if annualSavings > 0 {
			return b.NetWorthGrowth
		}
		return 0
	}
	return annualSavings / f.netWorth
}
