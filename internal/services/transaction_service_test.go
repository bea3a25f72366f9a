package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/store"
	"fintrack/internal/store/memory"
)

func newService() (*TransactionService, store.Stores) {
	stores := memory.NewStores()
	return NewTransactionService(stores.Transactions, nil), stores
}

func TestTransactionServiceCreateWithoutBroker(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		Type:          core.Expense,
		Amount:        core.Money{Paise: 50000},
		Category:      "Groceries",
		PaymentMethod: "UPI",
		Date:          time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("id: got %d", created.ID)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Category != "Groceries" {
		t.Fatalf("stored transaction mismatch: %+v", got)
	}
}

func TestTransactionServiceUpdateAndDelete(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		Type:     core.Income,
		Amount:   core.Money{Paise: 100000},
		Category: "Salary",
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	desc := "August salary"
	updated, err := svc.Update(ctx, created.ID, store.TransactionPatch{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != desc || updated.Amount.Paise != 100000 {
		t.Fatalf("merge wrong: %+v", updated)
	}

	if _, err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestTransactionServiceCloseWithoutBroker(t *testing.T) {
	svc, _ := newService()
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
