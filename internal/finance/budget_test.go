package finance

import (
	"testing"
	"time"

	"fintrack/internal/core"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func expense(category string, paise int64, on time.Time) core.Transaction {
	return core.Transaction{
		Type:     core.Expense,
		Amount:   core.Money{Paise: paise},
		Category: category,
		Date:     on,
	}
}

func TestComputeBudgetProgressMonthly(t *testing.T) {
	ref := date(2026, 8, 15)
	budget := core.Budget{Category: "Groceries", Amount: core.Money{Paise: 100000}, Period: core.Monthly}
	txs := []core.Transaction{
		expense("Groceries", 30000, date(2026, 8, 3)),
		expense("Groceries", 90000, date(2026, 7, 20)), // last month, ignored
		expense("Utilities", 50000, date(2026, 8, 5)),  // other category
		{Type: core.Income, Amount: core.Money{Paise: 20000}, Category: "Groceries", Date: date(2026, 8, 4)},
	}

	p := ComputeBudgetProgress(budget, txs, ref)
	if p.Spent.Paise != 30000 {
		t.Fatalf("spent = %d, want 30000", p.Spent.Paise)
	}
	if p.Percentage != 30 {
		t.Fatalf("percentage = %v, want 30", p.Percentage)
	}
	if p.Level != AlertNone {
		t.Fatalf("level = %s", p.Level)
	}
	if p.Remaining.Paise != 70000 {
		t.Fatalf("remaining = %d", p.Remaining.Paise)
	}
}

func TestComputeBudgetProgressZeroAmount(t *testing.T) {
	budget := core.Budget{Category: "Groceries", Period: core.Monthly}
	txs := []core.Transaction{expense("Groceries", 30000, date(2026, 8, 3))}
	p := ComputeBudgetProgress(budget, txs, date(2026, 8, 15))
	if p.Percentage != 0 {
		t.Fatalf("zero-amount budget must report 0%%, got %v", p.Percentage)
	}
}

func TestComputeBudgetProgressUnclamped(t *testing.T) {
	budget := core.Budget{Category: "Groceries", Amount: core.Money{Paise: 10000}, Period: core.Monthly}
	txs := []core.Transaction{expense("Groceries", 25000, date(2026, 8, 3))}
	p := ComputeBudgetProgress(budget, txs, date(2026, 8, 15))
	if p.Percentage != 250 {
		t.Fatalf("percentage must not be clamped, got %v", p.Percentage)
	}
	if p.Level != AlertOverBudget {
		t.Fatalf("level = %s, want over-budget", p.Level)
	}
	if p.Remaining.Paise != -15000 {
		t.Fatalf("remaining = %d", p.Remaining.Paise)
	}
}

func TestAlertThresholds(t *testing.T) {
	cases := []struct {
		pct  float64
		want AlertLevel
	}{
		{0, AlertNone},
		{80, AlertNone},
		{80.1, AlertWarning},
		{100, AlertWarning},
		{100.1, AlertOverBudget},
	}
	for _, tc := range cases {
		if got := alertLevel(tc.pct); got != tc.want {
			t.Fatalf("alertLevel(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestBudgetAlerts(t *testing.T) {
	ref := date(2026, 8, 15)
	budgets := []core.Budget{
		{ID: 1, Category: "Groceries", Amount: core.Money{Paise: 100000}, Period: core.Monthly},
		{ID: 2, Category: "Transport", Amount: core.Money{Paise: 10000}, Period: core.Monthly},
	}
	txs := []core.Transaction{
		expense("Groceries", 20000, date(2026, 8, 3)),
		expense("Transport", 15000, date(2026, 8, 4)),
	}
	alerts := BudgetAlerts(budgets, txs, ref)
	if len(alerts) != 1 || alerts[0].Budget.ID != 2 {
		t.Fatalf("alerts = %+v", alerts)
	}
}

func TestPeriodWindow(t *testing.T) {
	ref := date(2026, 8, 15)

	cases := []struct {
		period     core.BudgetPeriod
		start, end time.Time
	}{
		{core.Monthly, date(2026, 8, 1), date(2026, 9, 1)},
		{core.Quarterly, date(2026, 7, 1), date(2026, 10, 1)},
		{core.Annual, date(2026, 1, 1), date(2027, 1, 1)},
	}
	for _, tc := range cases {
		start, end := PeriodWindow(tc.period, ref)
		if !start.Equal(tc.start) || !end.Equal(tc.end) {
			t.Fatalf("%s: window [%v, %v), want [%v, %v)", tc.period, start, end, tc.start, tc.end)
		}
		if InPeriod(tc.period, ref, tc.end) {
			t.Fatalf("%s: window end must be exclusive", tc.period)
		}
		if !InPeriod(tc.period, ref, tc.start) {
			t.Fatalf("%s: window start must be inclusive", tc.period)
		}
	}
}
