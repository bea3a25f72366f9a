package http

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/finance"
)

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.stores.Budgets.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List budgets error", "error", err)
		writeDomainError(w, err)
		return
	}
	if budgets == nil {
		budgets = []core.Budget{}
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := s.stores.Budgets.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var b core.Budget
	if err := decodeJSON(r, &b); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	b.ID = 0

	created, err := s.stores.Budgets.Create(r.Context(), b)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create budget error", "error", err)
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload budgetPatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	updated, err := s.stores.Budgets.Update(r.Context(), id, payload.toPatch())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	removed, err := s.stores.Budgets.Delete(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusOK, removed)
}

// handleBudgetProgress returns the progress of every budget against
// expense spend in the period containing now.
func (s *Server) handleBudgetProgress(w http.ResponseWriter, r *http.Request) {
	var (
		budgets      []core.Budget
		transactions []core.Transaction
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		budgets, err = s.stores.Budgets.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.stores.Transactions.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.ErrorContext(r.Context(), "Budget progress load error", "error", err)
		writeDomainError(w, err)
		return
	}

	progress := finance.ComputeAllBudgetProgress(budgets, transactions, time.Now())
	if progress == nil {
		progress = []finance.BudgetProgress{}
	}
	writeJSON(w, http.StatusOK, progress)
}
