package model

import (
	"errors"
	"fmt"
	"strings"
)

// PreconditionError reports structurally invalid input. It aborts the
// run before any scoring happens; the API layer maps it to a client
// error. Missing optional sections are not precondition violations.
type PreconditionError struct {
	Violations []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("input precondition violated: %s", strings.Join(e.Violations, "; "))
}

// IsPrecondition reports whether err is (or wraps) a PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// Validate checks structural invariants of the input. Optional sections
// may be nil; the required snapshot and every present record must be
// well formed.
func (in *FinancialHealthInput) Validate() error {
	var v []string

	if in.UserID == "" {
		v = append(v, "user_id is required")
	}
	if in.PortfolioSnapshot == nil {
		v = append(v, "portfolio_snapshot is required")
		return &PreconditionError{Violations: v}
	}

	s := in.PortfolioSnapshot
	if s.TotalAssets < 0 {
		v = append(v, "total_assets must be >= 0")
	}
	if s.TotalLiabilities < 0 {
		v = append(v, "total_liabilities must be >= 0")
	}

	for i, p := range s.Properties {
		if p.ID == "" {
			v = append(v, fmt.Sprintf("properties[%d]: id is required", i))
		}
		if p.Value < 0 {
			v = append(v, fmt.Sprintf("properties[%d]: value must be >= 0", i))
		}
		if p.RentalIncome < 0 {
			v = append(v, fmt.Sprintf("properties[%d]: rental_income must be >= 0", i))
		}
	}
	for i, l := range s.Loans {
		if l.ID == "" {
			v = append(v, fmt.Sprintf("loans[%d]: id is required", i))
		}
		if l.Principal < 0 {
			v = append(v, fmt.Sprintf("loans[%d]: principal must be >= 0", i))
		}
		if l.InterestRate < 0 {
			v = append(v, fmt.Sprintf("loans[%d]: interest_rate must be >= 0", i))
		}
		if l.MonthlyRepayment < 0 {
			v = append(v, fmt.Sprintf("loans[%d]: monthly_repayment must be >= 0", i))
		}
	}
	for i, a := range s.Accounts {
		if a.ID == "" {
			v = append(v, fmt.Sprintf("accounts[%d]: id is required", i))
		}
	}
	for i, inv := range s.Investments {
		if inv.ID == "" {
			v = append(v, fmt.Sprintf("investments[%d]: id is required", i))
		}
		if inv.Value < 0 {
			v = append(v, fmt.Sprintf("investments[%d]: value must be >= 0", i))
		}
	}
	for i, inc := range s.Income {
		if inc.MonthlyAmount < 0 {
			v = append(v, fmt.Sprintf("income[%d]: monthly_amount must be >= 0", i))
		}
	}
	for i, e := range s.Expenses {
		if e.MonthlyAmount < 0 {
			v = append(v, fmt.Sprintf("expenses[%d]: monthly_amount must be >= 0", i))
		}
	}

	if lh := in.LinkageHealth; lh != nil {
		if lh.ConsistencyScore < 0 || lh.ConsistencyScore > 100 {
			v = append(v, "linkage_health: consistency_score must be between 0 and 100")
		}
	}
	if g := in.UserGoals; g != nil {
		if g.RetirementTarget < 0 {
			v = append(v, "user_goals: retirement_target must be >= 0")
		}
		if g.SavingsGoal < 0 {
			v = append(v, "user_goals: savings_goal must be >= 0")
		}
	}

	if len(v) > 0 {
		return &PreconditionError{Violations: v}
	}
	return nil
}
