package health

// metricDef describes one benchmarked metric: how to read its raw value
// from the derived snapshot facts, which benchmark it is scored against,
// its direction, its intra-category weight, and its static base
// confidence (how directly observable the underlying data is).
type metricDef struct {
	name           string
	higherIsBetter bool
	weight         float64
	confidence     float64
	benchmark      func(Benchmarks) float64
	value          func(*snapshotFacts, Benchmarks) float64
}

// categoryDef is one of the seven scoring categories. The same table
// drives metric aggregation and category scoring so the seven-way
// dispatch exists exactly once. Intra-category weights sum to 1.0.
type categoryDef struct {
	name    string
	metrics []metricDef
}

// categoryOrder is the fixed order categories appear in everywhere:
// reports, tie-breaking, and weight tables.
var categoryOrder = []string{
	"Liquidity", "Cashflow", "Debt", "Investments", "Property", "Risk", "Forecast",
}

func categoryDefs() []categoryDef {
	return []categoryDef{
		{
			name: "Liquidity",
			metrics: []metricDef{
				{
					name: "emergencyBuffer", higherIsBetter: true, weight: 0.40, confidence: 90,
					benchmark: func(b Benchmarks) float64 { return b.EmergencyBufferMonths },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.emergencyBufferMonths(b) },
				},
				{
					name: "liquidNetWorthRatio", higherIsBetter: true, weight: 0.40, confidence: 85,
					benchmark: func(b Benchmarks) float64 { return b.LiquidNetWorthRatio },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.liquidNetWorthRatio() },
				},
				{
					name: "savingsRate", higherIsBetter: true, weight: 0.20, confidence: 90,
					benchmark: func(b Benchmarks) float64 { return b.SavingsRate },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.savingsRate() },
				},
			},
		},
		{
			name: "Cashflow",
			metrics: []metricDef{
				{
					name: "incomeExpenseRatio", higherIsBetter: true, weight: 0.35, confidence: 90,
					benchmark: func(b Benchmarks) float64 { return b.IncomeExpenseRatio },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.incomeExpenseRatio(b) },
				},
				{
					name: "discretionaryRatio", higherIsBetter: true, weight: 0.25, confidence: 75,
					benchmark: func(b Benchmarks) float64 { return b.DiscretionaryRatio },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.discretionaryRatio() },
				},
				{
					name: "incomeStability", higherIsBetter: true, weight: 0.25, confidence: 70,
					benchmark: func(b Benchmarks) float64 { return b.IncomeStability },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.incomeStabilityShare() },
				},
				{
					name: "expenseVolatility", higherIsBetter: false, weight: 0.15, confidence: 60,
					benchmark: func(b Benchmarks) float64 { return b.ExpenseVolatility },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.expenseVolatilityShare() },
				},
			},
		},
		{
			name: "Debt",
			metrics: []metricDef{
				{
					name: "debtToIncome", higherIsBetter: false, weight: 0.30, confidence: 95,
					benchmark: func(b Benchmarks) float64 { return b.DebtToIncome },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.debtToIncome(b) },
				},
				{
					name: "debtServiceRatio", higherIsBetter: false, weight: 0.30, confidence: 90,
					benchmark: func(b Benchmarks) float64 { return b.DebtServiceRatio },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.debtServiceRatio(b) },
				},
				{
					name: "highInterestDebtRatio", higherIsBetter: false, weight: 0.20, confidence: 85,
					benchmark: func(b Benchmarks) float64 { return b.HighInterestDebtRatio },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.highInterestDebtShare() },
				},
				{
					name: "averageInterestRate", higherIsBetter: false, weight: 0.10, confidence: 80,
					benchmark: func(b Benchmarks) float64 { return b.AverageInterestRate },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.weightedInterestRate() },
				},
				{
					name: "securedDebtRatio", higherIsBetter: true, weight: 0.10, confidence: 75,
					benchmark: func(b Benchmarks) float64 { return b.SecuredDebtRatio },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.securedDebtShare(b) },
				},
			},
		},
		{
			name: "Investments",
			metrics: []metricDef{
				{
					name: "investmentToIncome", higherIsBetter: true, weight: 0.30, confidence: 85,
					benchmark: func(b Benchmarks) float64 { return b.InvestmentToIncome },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.investmentToIncome(b) },
				},
				{
					name: "diversification", higherIsBetter: true, weight: 0.25, confidence: 70,
					benchmark: func(b Benchmarks) float64 { return b.InvestmentDiversification },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.diversification() },
				},
				{
					name: "concentrationRisk", higherIsBetter: false, weight: 0.25, confidence: 75,
					benchmark: func(b Benchmarks) float64 { return b.ConcentrationLimit },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.largestHoldingShare() },
				},
				{
					name: "growthAllocation", higherIsBetter: true, weight: 0.20, confidence: 65,
					benchmark: func(b Benchmarks) float64 { return b.GrowthAllocation },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.growthAllocationShare() },
				},
			},
		},
		{
			name: "Property",
			metrics: []metricDef{
				{
					name: "loanToValue", higherIsBetter: false, weight: 0.40, confidence: 95,
					benchmark: func(b Benchmarks) float64 { return b.LoanToValue },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.loanToValue() },
				},
				{
					name: "propertyEquity", higherIsBetter: true, weight: 0.30, confidence: 90,
					benchmark: func(b Benchmarks) float64 { return b.PropertyEquity },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.propertyEquityRatio() },
				},
				{
					name: "propertyToAssets", higherIsBetter: false, weight: 0.15, confidence: 80,
					benchmark: func(b Benchmarks) float64 { return b.PropertyToAssets },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.propertyToAssetsShare() },
				},
				{
					name: "rentalYield", higherIsBetter: true, weight: 0.15, confidence: 70,
					benchmark: func(b Benchmarks) float64 { return b.RentalYield },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.rentalYield(b) },
				},
			},
		},
		{
			name: "Risk",
			metrics: []metricDef{
				{
					name: "debtExposure", higherIsBetter: false, weight: 0.40, confidence: 90,
					benchmark: func(b Benchmarks) float64 { return b.DebtExposure },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.debtExposure(b) },
				},
				{
					name: "incomeDiversity", higherIsBetter: true, weight: 0.30, confidence: 70,
					benchmark: func(b Benchmarks) float64 { return b.IncomeDiversity },
					value:     func(f *snapshotFacts, _ Benchmarks) float64 { return f.incomeDiversityShare() },
				},
				{
					// No insurance data source exists; this is a proxy
					// from the liquidity buffer, hence the low confidence.
					name: "insuranceCover", higherIsBetter: true, weight: 0.30, confidence: 40,
					benchmark: func(b Benchmarks) float64 { return b.InsuranceCover },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.insuranceCoverProxy(b) },
				},
			},
		},
		{
			name: "Forecast",
			metrics: []metricDef{
				{
					name: "retirementProgress", higherIsBetter: true, weight: 0.40, confidence: 55,
					benchmark: func(b Benchmarks) float64 { return b.RetirementProgress },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.retirementProgress(b) },
				},
				{
					name: "savingsGoalProgress", higherIsBetter: true, weight: 0.30, confidence: 60,
					benchmark: func(b Benchmarks) float64 { return b.SavingsGoalProgress },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.savingsGoalProgress(b) },
				},
				{
					name: "netWorthGrowth", higherIsBetter: true, weight: 0.30, confidence: 50,
					benchmark: func(b Benchmarks) float64 { return b.NetWorthGrowth },
					value:     func(f *snapshotFacts, b Benchmarks) float64 { return f.netWorthGrowthRate(b) },
				},
			},
		},
	}
}
