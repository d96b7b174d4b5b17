package health

import (
	"time"

	"github.com/ledgerline/finhealth/internal/model"
)

// testNow is the injected clock value used across engine tests.
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// healthyInput returns a fully populated input for a comfortable
// household: 8k/mo income, 6k/mo expenses, 48k liquid, a 500k property
// with a 300k mortgage, and a diversified investment base.
func healthyInput() *model.FinancialHealthInput {
	return &model.FinancialHealthInput{
		UserID: "user-healthy",
		PortfolioSnapshot: &model.PortfolioSnapshot{
			NetWorth:         420_000,
			TotalAssets:      720_000,
			TotalLiabilities: 300_000,
			Properties: []model.Property{
				{ID: "prop-1", Name: "Home", Type: "residential", Value: 500_000, OwnerOccupied: true},
			},
			Loans: []model.Loan{
				{ID: "loan-1", Name: "Mortgage", Type: "mortgage", Principal: 300_000, InterestRate: 5.5, MonthlyRepayment: 1_900, Secured: true, PropertyID: "prop-1"},
			},
			Accounts: []model.Account{
				{ID: "acc-1", Name: "Everyday", Type: "transaction", Balance: 8_000, Liquid: true},
				{ID: "acc-2", Name: "Savings", Type: "savings", Balance: 40_000, Liquid: true},
			},
			Investments: []model.Investment{
				{ID: "inv-1", Name: "Index ETF", Type: "etf", Value: 60_000, GrowthAsset: true},
				{ID: "inv-2", Name: "Super", Type: "super", Value: 90_000, GrowthAsset: true},
				{ID: "inv-3", Name: "Bonds", Type: "bonds", Value: 30_000},
			},
			Income: []model.IncomeSource{
				{ID: "inc-1", Name: "Salary", Type: "salary", MonthlyAmount: 7_000, Stable: true},
				{ID: "inc-2", Name: "Dividends", Type: "dividend", MonthlyAmount: 1_000},
			},
			Expenses: []model.Expense{
				{ID: "exp-1", Name: "Housing", Category: "housing", MonthlyAmount: 2_500, Essential: true},
				{ID: "exp-2", Name: "Living", Category: "living", MonthlyAmount: 2_000, Essential: true},
				{ID: "exp-3", Name: "Discretionary", Category: "lifestyle", MonthlyAmount: 1_500, Variable: true},
			},
		},
		Insights: []model.Insight{
			{ID: "ins-1", Severity: "low", Category: "spending", Title: "Subscription creep"},
		},
		StrategyData: &model.StrategyData{
			Recommendations: []model.StrategyRecommendation{
				{ID: "rec-1", Category: "debt reduction", Title: "Refinance mortgage"},
			},
		},
		LinkageHealth: &model.LinkageHealth{ConsistencyScore: 92},
		UserGoals: &model.UserGoals{
			RetirementTarget: 1_200_000,
			SavingsGoal:      60_000,
			RiskTolerance:    "balanced",
		},
	}
}

// strainedInput returns a household under pressure: thin buffer,
// spending above income, high-LVR property, and concentrated
// high-interest debt.
func strainedInput() *model.FinancialHealthInput {
	return &model.FinancialHealthInput{
		UserID: "user-strained",
		PortfolioSnapshot: &model.PortfolioSnapshot{
			NetWorth:         40_000,
			TotalAssets:      560_000,
			TotalLiabilities: 520_000,
			Properties: []model.Property{
				{ID: "prop-1", Name: "Apartment", Type: "residential", Value: 500_000, OwnerOccupied: true},
			},
			Loans: []model.Loan{
				{ID: "loan-1", Name: "Mortgage", Type: "mortgage", Principal: 460_000, InterestRate: 6.8, MonthlyRepayment: 3_100, Secured: true, PropertyID: "prop-1"},
				{ID: "loan-2", Name: "Card", Type: "credit_card", Principal: 18_000, InterestRate: 21.5, MonthlyRepayment: 600},
			},
			Accounts: []model.Account{
				{ID: "acc-1", Name: "Everyday", Type: "transaction", Balance: 4_000, Liquid: true},
			},
			Investments: []model.Investment{
				{ID: "inv-1", Name: "Crypto", Type: "crypto", Value: 12_000, GrowthAsset: true},
			},
			Income: []model.IncomeSource{
				{ID: "inc-1", Name: "Salary", Type: "salary", MonthlyAmount: 6_000, Stable: true},
			},
			Expenses: []model.Expense{
				{ID: "exp-1", Name: "Housing", Category: "housing", MonthlyAmount: 3_700, Essential: true},
				{ID: "exp-2", Name: "Living", Category: "living", MonthlyAmount: 1_800, Essential: true},
				{ID: "exp-3", Name: "Discretionary", Category: "lifestyle", MonthlyAmount: 1_100, Variable: true},
			},
		},
	}
}

// emptySnapshotInput returns the minimal valid input: a snapshot with
// no collections at all.
func emptySnapshotInput() *model.FinancialHealthInput {
	return &model.FinancialHealthInput{
		UserID:            "user-empty",
		PortfolioSnapshot: &model.PortfolioSnapshot{},
	}
}

func mustEngine(opts ...Option) *Engine {
	e, err := NewEngine(opts...)
	if err != nil {
		panic(err)
	}
	return e
}
