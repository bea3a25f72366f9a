package finance

import (
	"time"

	"fintrack/internal/core"
)

// Alert thresholds: above 80% a budget needs attention, above 100% it
// is exceeded. The raw percentage is never clamped; display layers cap
// the bar width themselves.
const (
	AlertNone       AlertLevel = "ok"
	AlertWarning    AlertLevel = "warning"
	AlertOverBudget AlertLevel = "over-budget"
)

type AlertLevel string

// BudgetProgress is one budget with its period-to-date spend.
type BudgetProgress struct {
	Budget     core.Budget `json:"budget"`
	Spent      core.Money  `json:"spent"`
	Percentage float64     `json:"percentage"`
	Remaining  core.Money  `json:"remaining"`
	Level      AlertLevel  `json:"level"`
}

// ComputeBudgetProgress sums expense transactions in the budget's
// category that fall inside the budget period containing ref.
func ComputeBudgetProgress(b core.Budget, transactions []core.Transaction, ref time.Time) BudgetProgress {
	var spent core.Money
	for _, t := range transactions {
		if t.Type != core.Expense || t.Category != b.Category {
			continue
		}
		if !InPeriod(b.Period, ref, t.Date) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	var pct float64
	if b.Amount.Paise > 0 {
		pct = float64(spent.Paise) / float64(b.Amount.Paise) * 100
	}

	return BudgetProgress{
		Budget:     b,
		Spent:      spent,
		Percentage: pct,
		Remaining:  b.Amount.Sub(spent),
		Level:      alertLevel(pct),
	}
}

func alertLevel(pct float64) AlertLevel {
	switch {
	case pct > 100:
		return AlertOverBudget
	case pct > 80:
		return AlertWarning
	default:
		return AlertNone
	}
}

// ComputeAllBudgetProgress evaluates every budget against the same
// transaction snapshot.
func ComputeAllBudgetProgress(budgets []core.Budget, transactions []core.Transaction, ref time.Time) []BudgetProgress {
	out := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, ComputeBudgetProgress(b, transactions, ref))
	}
	return out
}

// BudgetAlerts returns the budgets that crossed a threshold.
func BudgetAlerts(budgets []core.Budget, transactions []core.Transaction, ref time.Time) []BudgetProgress {
	var alerts []BudgetProgress
	for _, p := range ComputeAllBudgetProgress(budgets, transactions, ref) {
		if p.Level != AlertNone {
			alerts = append(alerts, p)
		}
	}
	return alerts
}
