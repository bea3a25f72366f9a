package http

import (
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/finance"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := s.txService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions error", "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, finance.FilterTransactions(transactions, filter))
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := s.txService.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if err := decodeJSON(r, &t); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	t.ID = 0

	// Imported values outside the fixed enumerations are stored
	// verbatim; flag them so they can be found later.
	if _, ok := core.ClassifyCategory(t.Type, t.Category); !ok {
		slog.WarnContext(r.Context(), "Unrecognized category stored verbatim", "category", t.Category)
	}
	if t.PaymentMethod != "" && !core.IsKnownPaymentMethod(t.PaymentMethod) {
		slog.WarnContext(r.Context(), "Unrecognized payment method stored verbatim", "payment_method", t.PaymentMethod)
	}

	created, err := s.txService.Create(r.Context(), t)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create transaction error", "error", err)
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload transactionPatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	updated, err := s.txService.Update(r.Context(), id, payload.toPatch())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	removed, err := s.txService.Delete(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusOK, removed)
}
