// Package store defines the entity store contract. The aggregation and
// HTTP layers depend only on these ports; memory and SQLite
// implementations are selected by the backend factory.
package store

import (
	"context"
	"time"

	"fintrack/internal/core"
)

type (
	// TransactionStore is the CRUD contract for transactions. List
	// returns copies ordered newest first.
	TransactionStore interface {
		List(ctx context.Context) ([]core.Transaction, error)
		Get(ctx context.Context, id int64) (core.Transaction, error)
		Create(ctx context.Context, t core.Transaction) (core.Transaction, error)
		Update(ctx context.Context, id int64, p TransactionPatch) (core.Transaction, error)
		Delete(ctx context.Context, id int64) (core.Transaction, error)
	}

	BudgetStore interface {
		List(ctx context.Context) ([]core.Budget, error)
		Get(ctx context.Context, id int64) (core.Budget, error)
		Create(ctx context.Context, b core.Budget) (core.Budget, error)
		Update(ctx context.Context, id int64, p BudgetPatch) (core.Budget, error)
		Delete(ctx context.Context, id int64) (core.Budget, error)
	}

	GoalStore interface {
		List(ctx context.Context) ([]core.Goal, error)
		Get(ctx context.Context, id int64) (core.Goal, error)
		Create(ctx context.Context, g core.Goal) (core.Goal, error)
		Update(ctx context.Context, id int64, p GoalPatch) (core.Goal, error)
		Delete(ctx context.Context, id int64) (core.Goal, error)
	}

	// Stores bundles the three entity stores one backend provides.
	Stores struct {
		Transactions TransactionStore
		Budgets      BudgetStore
		Goals        GoalStore
	}
)

// Patches carry merge-style updates: nil fields keep the existing
// value, set fields win. The id is never patchable.
type (
	TransactionPatch struct {
		Type          *core.TransactionType
		Amount        *core.Money
		Category      *string
		PaymentMethod *string
		Date          *time.Time
		Description   *string
		IsRecurring   *bool
	}

	BudgetPatch struct {
		Category  *string
		Amount    *core.Money
		Period    *core.BudgetPeriod
		StartDate *time.Time
	}

	GoalPatch struct {
		Name          *string
		Category      *string
		TargetAmount  *core.Money
		CurrentAmount *core.Money
		TargetDate    *time.Time
	}
)

// Apply merges the patch over an existing transaction.
func (p TransactionPatch) Apply(t core.Transaction) core.Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.PaymentMethod != nil {
		t.PaymentMethod = *p.PaymentMethod
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.IsRecurring != nil {
		t.IsRecurring = *p.IsRecurring
	}
	return t
}

// Apply merges the patch over an existing budget.
func (p BudgetPatch) Apply(b core.Budget) core.Budget {
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Amount != nil {
		b.Amount = *p.Amount
	}
	if p.Period != nil {
		b.Period = *p.Period
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	return b
}

// Apply merges the patch over an existing goal.
func (p GoalPatch) Apply(g core.Goal) core.Goal {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
	return g
}
