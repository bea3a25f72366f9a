// Package memory provides mutex-guarded in-memory stores. Callers
// always receive independent copies; persisting a change means calling
// back through the store.
package memory

import (
	"context"
	"sync"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/store"
)

// NewStores returns an empty in-memory backend.
func NewStores() store.Stores {
	return store.Stores{
		Transactions: &TransactionStore{},
		Budgets:      &BudgetStore{},
		Goals:        &GoalStore{},
	}
}

// nextID assigns max existing id + 1, or 1 for an empty collection.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

type TransactionStore struct {
	mu    sync.Mutex
	items []core.Transaction
}

func (s *TransactionStore) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]core.Transaction(nil), s.items...)
	finance.SortByDateDesc(out)
	return out, nil
}

func (s *TransactionStore) Get(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.items {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, core.ErrNotFound
}

func (s *TransactionStore) Create(_ context.Context, t core.Transaction) (core.Transaction, error) {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = nextID(s.transactionIDs())
	t.CreatedAt = time.Now()
	s.items = append(s.items, t)
	return t, nil
}

func (s *TransactionStore) Update(_ context.Context, id int64, p store.TransactionPatch) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID != id {
			continue
		}
		merged := p.Apply(t)
		merged.ID = id
		if err := merged.Validate(); err != nil {
			return core.Transaction{}, err
		}
		s.items[i] = merged
		return merged, nil
	}
	return core.Transaction{}, core.ErrNotFound
}

func (s *TransactionStore) Delete(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return t, nil
		}
	}
	return core.Transaction{}, core.ErrNotFound
}

func (s *TransactionStore) transactionIDs() []int64 {
	ids := make([]int64, len(s.items))
	for i, t := range s.items {
		ids[i] = t.ID
	}
	return ids
}

type BudgetStore struct {
	mu    sync.Mutex
	items []core.Budget
}

func (s *BudgetStore) List(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Budget(nil), s.items...), nil
}

func (s *BudgetStore) Get(_ context.Context, id int64) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.items {
		if b.ID == id {
			return b, nil
		}
	}
	return core.Budget{}, core.ErrNotFound
}

func (s *BudgetStore) Create(_ context.Context, b core.Budget) (core.Budget, error) {
	if b.StartDate.IsZero() {
		b.StartDate = time.Now()
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, len(s.items))
	for i, it := range s.items {
		ids[i] = it.ID
	}
	b.ID = nextID(ids)
	b.CreatedAt = time.Now()
	s.items = append(s.items, b)
	return b, nil
}

func (s *BudgetStore) Update(_ context.Context, id int64, p store.BudgetPatch) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.items {
		if b.ID != id {
			continue
		}
		merged := p.Apply(b)
		merged.ID = id
		if err := merged.Validate(); err != nil {
			return core.Budget{}, err
		}
		s.items[i] = merged
		return merged, nil
	}
	return core.Budget{}, core.ErrNotFound
}

func (s *BudgetStore) Delete(_ context.Context, id int64) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.items {
		if b.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return b, nil
		}
	}
	return core.Budget{}, core.ErrNotFound
}

type GoalStore struct {
	mu    sync.Mutex
	items []core.Goal
}

func (s *GoalStore) List(_ context.Context) ([]core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Goal(nil), s.items...), nil
}

func (s *GoalStore) Get(_ context.Context, id int64) (core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.items {
		if g.ID == id {
			return g, nil
		}
	}
	return core.Goal{}, core.ErrNotFound
}

func (s *GoalStore) Create(_ context.Context, g core.Goal) (core.Goal, error) {
	// CurrentAmount's zero value is the documented default
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, len(s.items))
	for i, it := range s.items {
		ids[i] = it.ID
	}
	g.ID = nextID(ids)
	g.CreatedAt = time.Now()
	s.items = append(s.items, g)
	return g, nil
}

func (s *GoalStore) Update(_ context.Context, id int64, p store.GoalPatch) (core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.items {
		if g.ID != id {
			continue
		}
		merged := p.Apply(g)
		merged.ID = id
		if err := merged.Validate(); err != nil {
			return core.Goal{}, err
		}
		s.items[i] = merged
		return merged, nil
	}
	return core.Goal{}, core.ErrNotFound
}

func (s *GoalStore) Delete(_ context.Context, id int64) (core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.items {
		if g.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return g, nil
		}
	}
	return core.Goal{}, core.ErrNotFound
}
