package finance

import (
	"time"

	"fintrack/internal/core"
)

// recentCount is how many transactions the dashboard shows.
const recentCount = 5

// DashboardStats is the financial overview for the month containing
// the reference instant.
type DashboardStats struct {
	MonthlyIncome   core.Money `json:"monthlyIncome"`
	MonthlyExpenses core.Money `json:"monthlyExpenses"`
	NetSavings      core.Money `json:"netSavings"`
	SavingsRate     float64    `json:"savingsRate"`

	RecentTransactions []core.Transaction `json:"recentTransactions"`
	Budgets            []BudgetProgress   `json:"budgets"`
	OverBudget         []BudgetProgress   `json:"overBudget"`
	Goals              []GoalStatus       `json:"goals"`
	ActiveGoals        int                `json:"activeGoals"`
	TotalGoalTarget    core.Money         `json:"totalGoalTarget"`
	TotalGoalSaved     core.Money         `json:"totalGoalSaved"`
	OverallGoalRate    float64            `json:"overallGoalRate"`
}

// ComputeDashboard derives the dashboard view from full snapshots of
// the three collections. Budget spend uses each budget's declared
// period through the central PeriodWindow rule.
func ComputeDashboard(transactions []core.Transaction, budgets []core.Budget, goals []core.Goal, ref time.Time) DashboardStats {
	stats := DashboardStats{}

	for _, t := range transactions {
		if !sameMonth(t.Date, ref) {
			continue
		}
		switch t.Type {
		case core.Income:
			stats.MonthlyIncome = stats.MonthlyIncome.Add(t.Amount)
		case core.Expense:
			stats.MonthlyExpenses = stats.MonthlyExpenses.Add(t.Amount)
		}
	}
	stats.NetSavings = stats.MonthlyIncome.Sub(stats.MonthlyExpenses)
	if stats.MonthlyIncome.Paise > 0 {
		stats.SavingsRate = float64(stats.NetSavings.Paise) / float64(stats.MonthlyIncome.Paise) * 100
	}

	recent := make([]core.Transaction, len(transactions))
	copy(recent, transactions)
	SortByDateDesc(recent)
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	stats.RecentTransactions = recent

	stats.Budgets = ComputeAllBudgetProgress(budgets, transactions, ref)
	for _, p := range stats.Budgets {
		if p.Level == AlertOverBudget {
			stats.OverBudget = append(stats.OverBudget, p)
		}
	}

	stats.Goals = ComputeAllGoalStatus(goals, ref)
	stats.ActiveGoals = len(goals)
	for _, g := range goals {
		stats.TotalGoalTarget = stats.TotalGoalTarget.Add(g.TargetAmount)
		stats.TotalGoalSaved = stats.TotalGoalSaved.Add(g.CurrentAmount)
	}
	if stats.TotalGoalTarget.Paise > 0 {
		stats.OverallGoalRate = float64(stats.TotalGoalSaved.Paise) / float64(stats.TotalGoalTarget.Paise) * 100
	}

	return stats
}
