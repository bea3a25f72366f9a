package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/format"
	"fintrack/internal/store"
)

// AlertProcessor recomputes budget progress after transaction changes and
// logs budgets that crossed their warning or over-budget thresholds.
// batchSize caps how many budgets one pass evaluates; zero or negative
// means no cap.
type AlertProcessor struct {
	stores    store.Stores
	batchSize int
}

func NewAlertProcessor(stores store.Stores, batchSize int) *AlertProcessor {
	return &AlertProcessor{stores: stores, batchSize: batchSize}
}

// CheckBudgets loads budgets and transactions and returns the progress of
// every budget at or past the warning threshold, ordered by budget.
func (p *AlertProcessor) CheckBudgets(ctx context.Context, now time.Time) ([]finance.BudgetProgress, error) {
	var (
		budgets      []core.Budget
		transactions []core.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = p.stores.Budgets.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = p.stores.Transactions.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load alert inputs: %w", err)
	}

	if p.batchSize > 0 && len(budgets) > p.batchSize {
		slog.WarnContext(ctx, "Budget count exceeds batch size, evaluating first batch only",
			"budgets", len(budgets), "batch_size", p.batchSize)
		budgets = budgets[:p.batchSize]
	}

	alerts := finance.BudgetAlerts(budgets, transactions, now)

	for _, a := range alerts {
		switch a.Level {
		case finance.AlertOverBudget:
			slog.WarnContext(ctx, "Budget exceeded",
				"budget_id", a.Budget.ID,
				"category", a.Budget.Category,
				"period", string(a.Budget.Period),
				"spent", format.RupeesWithPaise(a.Spent),
				"limit", format.RupeesWithPaise(a.Budget.Amount),
				"percentage", format.Percent(a.Percentage))
		case finance.AlertWarning:
			slog.InfoContext(ctx, "Budget nearing limit",
				"budget_id", a.Budget.ID,
				"category", a.Budget.Category,
				"period", string(a.Budget.Period),
				"spent", format.RupeesWithPaise(a.Spent),
				"limit", format.RupeesWithPaise(a.Budget.Amount),
				"percentage", format.Percent(a.Percentage))
		}
	}

	return alerts, nil
}
