// Package model defines the input and report types for the financial
// health engine.
package model

// FinancialHealthInput is the fully resolved input for one report run.
// The snapshot is required; all other sections are optional and their
// absence degrades report confidence rather than failing the run.
type FinancialHealthInput struct {
	UserID            string             `json:"user_id"`
	PortfolioSnapshot *PortfolioSnapshot `json:"portfolio_snapshot"`
	Insights          []Insight          `json:"insights,omitempty"`
	StrategyData      *StrategyData      `json:"strategy_data,omitempty"`
	LinkageHealth     *LinkageHealth     `json:"linkage_health,omitempty"`
	UserGoals         *UserGoals         `json:"user_goals,omitempty"`
}

// PortfolioSnapshot is a normalized view of a user's full financial
// position, assembled upstream. Collections may be empty but never nil
// once validated.
type PortfolioSnapshot struct {
	NetWorth         float64        `json:"net_worth"`
	TotalAssets      float64        `json:"total_assets"`
	TotalLiabilities float64        `json:"total_liabilities"`
	Properties       []Property     `json:"properties"`
	Loans            []Loan         `json:"loans"`
	Accounts         []Account      `json:"accounts"`
	Investments      []Investment   `json:"investments"`
	Income           []IncomeSource `json:"income"`
	Expenses         []Expense      `json:"expenses"`
}

// Property is a real-estate holding.
type Property struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // residential, investment, commercial
	Value         float64 `json:"value"`
	RentalIncome  float64 `json:"rental_income"` // annual, gross
	OwnerOccupied bool    `json:"owner_occupied"`
}

// Loan is an outstanding debt facility.
type Loan struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"` // mortgage, personal, car, credit_card
	Principal        float64 `json:"principal"`
	InterestRate     float64 `json:"interest_rate"` // annual percentage, e.g. 5.9
	MonthlyRepayment float64 `json:"monthly_repayment"`
	Secured          bool    `json:"secured"`
	PropertyID       string  `json:"property_id,omitempty"`
}

// Account is a cash or deposit account.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"` // transaction, savings, offset, term_deposit
	Balance float64 `json:"balance"`
	Liquid  bool    `json:"liquid"`
}

// Investment is a non-property investment holding.
type Investment struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"` // shares, etf, super, bonds, crypto
	Value       float64 `json:"value"`
	GrowthAsset bool    `json:"growth_asset"`
}

// IncomeSource is a recurring income stream.
type IncomeSource struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // salary, rental, dividend, business
	MonthlyAmount float64 `json:"monthly_amount"`
	Stable        bool    `json:"stable"`
}

// Expense is a recurring expense line.
type Expense struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	MonthlyAmount float64 `json:"monthly_amount"`
	Essential     bool    `json:"essential"`
	Variable      bool    `json:"variable"`
}

// Insight is an upstream-detected finding about the portfolio.
type Insight struct {
	ID       string `json:"id"`
	Severity string `json:"severity"` // low, medium, high, critical
	Category string `json:"category"`
	Title    string `json:"title"`
}

// StrategyData carries strategy-engine context when available.
type StrategyData struct {
	Recommendations []StrategyRecommendation `json:"recommendations"`
	Conflicts       []StrategyConflict       `json:"conflicts"`
	SBSScores       []SBSScore               `json:"sbs_scores"`
}

// StrategyRecommendation is one strategy-engine suggestion.
type StrategyRecommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

// StrategyConflict flags two strategies working against each other.
type StrategyConflict struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SBSScore is a strategy benefit score.
type SBSScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// LinkageHealth describes entity cross-linkage consistency.
type LinkageHealth struct {
	Orphans          []string `json:"orphans"`
	MissingLinks     []string `json:"missing_links"`
	ConsistencyScore float64  `json:"consistency_score"` // 0-100
}

// UserGoals captures the user's stated targets and preferences.
type UserGoals struct {
	RetirementTarget float64 `json:"retirement_target"`
	SavingsGoal      float64 `json:"savings_goal"`
	RiskTolerance    string  `json:"risk_tolerance"`   // conservative, balanced, aggressive
	InvestmentStyle  string  `json:"investment_style"` // passive, active, mixed
}

// MonthlyIncome sums all income streams.
func (s *PortfolioSnapshot) MonthlyIncome() float64 {
	var total float64
	for _, inc := range s.Income {
		total += inc.MonthlyAmount
	}
	return total
}

// MonthlyExpenses sums all expense lines.
func (s *PortfolioSnapshot) MonthlyExpenses() float64 {
	var total float64
	for _, e := range s.Expenses {
		total += e.MonthlyAmount
	}
	return total
}

// LiquidAssets sums balances of accounts flagged liquid.
func (s *PortfolioSnapshot) LiquidAssets() float64 {
	var total float64
	for _, a := range s.Accounts {
		if a.Liquid {
			total += a.Balance
		}
	}
	return total
}
