package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/store"
)

// TransactionService orchestrates transaction writes across the store and
// AMQP. Event publishing is best-effort: a broker failure never fails the
// request, the write already landed in the store.
type TransactionService struct {
	transactions store.TransactionStore
	amqpClient   *amqp.Client
}

func NewTransactionService(transactions store.TransactionStore, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		amqpClient:   amqpClient,
	}
}

func (s *TransactionService) List(ctx context.Context) ([]core.Transaction, error) {
	return s.transactions.List(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id int64) (core.Transaction, error) {
	return s.transactions.Get(ctx, id)
}

func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	created, err := s.transactions.Create(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.publishEvent(ctx, created.ID, amqp.ActionCreated)
	return created, nil
}

func (s *TransactionService) Update(ctx context.Context, id int64, p store.TransactionPatch) (core.Transaction, error) {
	updated, err := s.transactions.Update(ctx, id, p)
	if err != nil {
		return core.Transaction{}, err
	}

	s.publishEvent(ctx, updated.ID, amqp.ActionUpdated)
	return updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) (core.Transaction, error) {
	removed, err := s.transactions.Delete(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}

	s.publishEvent(ctx, removed.ID, amqp.ActionDeleted)
	return removed, nil
}

func (s *TransactionService) publishEvent(ctx context.Context, id int64, action string) {
	if s.amqpClient == nil {
		return
	}

	if err := s.amqpClient.PublishTransactionEvent(ctx, id, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"id", id, "action", action, "error", err)
	}
}

// Close closes the AMQP connection if one is attached.
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
