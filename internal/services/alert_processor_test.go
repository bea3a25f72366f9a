package services

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/store/memory"
)

func TestAlertProcessorCheckBudgets(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	now := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)

	seedBudget := func(category string, paise int64) {
		t.Helper()
		_, err := stores.Budgets.Create(ctx, core.Budget{
			Category:  category,
			Amount:    core.Money{Paise: paise},
			Period:    core.Monthly,
			StartDate: now.AddDate(0, -1, 0),
		})
		if err != nil {
			t.Fatalf("seed budget: %v", err)
		}
	}
	seedExpense := func(category string, paise int64) {
		t.Helper()
		_, err := stores.Transactions.Create(ctx, core.Transaction{
			Type:     core.Expense,
			Amount:   core.Money{Paise: paise},
			Category: category,
			Date:     now,
		})
		if err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	seedBudget("Groceries", 1000000)
	seedBudget("Entertainment", 1000000)
	seedBudget("Transport", 1000000)

	seedExpense("Groceries", 900000)      // 90%, warning
	seedExpense("Entertainment", 1500000) // 150%, over
	seedExpense("Transport", 100000) // 10%, quiet

	alerts, err := NewAlertProcessor(stores, 0).CheckBudgets(ctx, now)
	if err != nil {
		t.Fatalf("check budgets: %v", err)
	}

	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}

	levels := map[string]finance.AlertLevel{}
	for _, a := range alerts {
		levels[a.Budget.Category] = a.Level
	}
	if levels["Groceries"] != finance.AlertWarning {
		t.Errorf("Groceries: got %s", levels["Groceries"])
	}
	if levels["Entertainment"] != finance.AlertOverBudget {
		t.Errorf("Entertainment: got %s", levels["Entertainment"])
	}
}

func TestAlertProcessorNoBudgets(t *testing.T) {
	stores := memory.NewStores()

	alerts, err := NewAlertProcessor(stores, 0).CheckBudgets(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("check budgets: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %d", len(alerts))
	}
}

func TestAlertProcessorBatchSizeCapsEvaluation(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	now := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)

	for _, category := range []string{"Groceries", "Entertainment", "Transport"} {
		_, err := stores.Budgets.Create(ctx, core.Budget{
			Category:  category,
			Amount:    core.Money{Paise: 100000},
			Period:    core.Monthly,
			StartDate: now.AddDate(0, -1, 0),
		})
		if err != nil {
			t.Fatalf("seed budget: %v", err)
		}
		_, err = stores.Transactions.Create(ctx, core.Transaction{
			Type:     core.Expense,
			Amount:   core.Money{Paise: 150000},
			Category: category,
			Date:     now,
		})
		if err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	alerts, err := NewAlertProcessor(stores, 2).CheckBudgets(ctx, now)
	if err != nil {
		t.Fatalf("check budgets: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("batch of 2 must yield 2 alerts, got %d", len(alerts))
	}
	for _, a := range alerts {
		if a.Budget.Category == "Transport" {
			t.Errorf("third budget must not be evaluated in a batch of 2")
		}
	}
}
