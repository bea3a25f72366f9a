package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

func tx(category string, paise int64, on time.Time) core.Transaction {
	return core.Transaction{
		Type:          core.Expense,
		Amount:        core.Money{Paise: paise},
		Category:      category,
		PaymentMethod: "Cash",
		Date:          on,
	}
}

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}

	first, err := s.Create(ctx, tx("Groceries", 100, day(1)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("empty collection must assign id 1, got %d", first.ID)
	}
}

func TestCreateIDIsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{items: []core.Transaction{
		{ID: 2, Type: core.Expense, Category: "c", Date: day(1)},
		{ID: 5, Type: core.Expense, Category: "c", Date: day(2)},
	}}

	created, err := s.Create(ctx, tx("Groceries", 100, day(3)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 6 {
		t.Fatalf("ids {2,5} must assign 6, got %d", created.ID)
	}
}

func TestCreateDefaultsDate(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}
	created, err := s.Create(ctx, core.Transaction{Type: core.Expense, Category: "Groceries"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Date.IsZero() {
		t.Fatalf("zero date must default to now")
	}
}

func TestListSortedDescending(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}
	for _, d := range []int{3, 9, 1} {
		if _, err := s.Create(ctx, tx("Groceries", 100, day(d))); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("list not sorted descending")
		}
	}
}

func TestUpdateMergesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}
	created, _ := s.Create(ctx, tx("Groceries", 100, day(1)))

	amount := core.Money{Paise: 900}
	updated, err := s.Update(ctx, created.ID, store.TransactionPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount.Paise != 900 {
		t.Fatalf("amount not updated")
	}
	if updated.Category != "Groceries" || updated.PaymentMethod != "Cash" || !updated.Date.Equal(day(1)) {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must be immutable")
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}

	if _, err := s.Get(ctx, 42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("get: want ErrNotFound, got %v", err)
	}
	if _, err := s.Update(ctx, 42, store.TransactionPatch{}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("update: want ErrNotFound, got %v", err)
	}
	if _, err := s.Delete(ctx, 42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound, got %v", err)
	}
}

func TestDeleteReturnsRemovedCopy(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}
	created, _ := s.Create(ctx, tx("Groceries", 100, day(1)))

	removed, err := s.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != created.ID {
		t.Fatalf("removed copy mismatch")
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("record still present after delete")
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := &TransactionStore{}
	created, _ := s.Create(ctx, tx("Groceries", 100, day(1)))

	got, _ := s.Get(ctx, created.ID)
	got.Category = "Hacked"

	again, _ := s.Get(ctx, created.ID)
	if again.Category != "Groceries" {
		t.Fatalf("mutating a returned copy leaked into the store")
	}
}

func TestGoalStoreDefaultsAndContractPattern(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()

	g, err := stores.Goals.Create(ctx, core.Goal{
		Name:         "Emergency",
		Category:     "Emergency Fund",
		TargetAmount: core.Money{Paise: 100000},
		TargetDate:   day(30),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.ID != 1 || g.CurrentAmount.Paise != 0 {
		t.Fatalf("defaults wrong: %+v", g)
	}

	saved := core.Money{Paise: 2500}
	updated, err := stores.Goals.Update(ctx, g.ID, store.GoalPatch{CurrentAmount: &saved})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CurrentAmount.Paise != 2500 || updated.Name != "Emergency" {
		t.Fatalf("merge wrong: %+v", updated)
	}
}

func TestBudgetStoreValidation(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()
	if _, err := stores.Budgets.Create(ctx, core.Budget{Category: "", Amount: core.Money{Paise: 1}, Period: core.Monthly}); err == nil {
		t.Fatalf("empty category must be rejected")
	}
	if _, err := stores.Budgets.Create(ctx, core.Budget{Category: "Groceries", Amount: core.Money{Paise: 100}, Period: core.Monthly}); err != nil {
		t.Fatalf("valid budget rejected: %v", err)
	}
}
