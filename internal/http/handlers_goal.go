package http

import (
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/store"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.stores.Goals.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List goals error", "error", err)
		writeDomainError(w, err)
		return
	}

	statuses := finance.ComputeAllGoalStatus(goals, time.Now())
	if statuses == nil {
		statuses = []finance.GoalStatus{}
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := s.stores.Goals.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, finance.ComputeGoalStatus(g, time.Now()))
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var g core.Goal
	if err := decodeJSON(r, &g); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	g.ID = 0

	if g.Category != "" && !core.IsKnownGoalCategory(g.Category) {
		slog.WarnContext(r.Context(), "Unrecognized goal category stored verbatim", "category", g.Category)
	}

	created, err := s.stores.Goals.Create(r.Context(), g)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create goal error", "error", err)
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload goalPatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	updated, err := s.stores.Goals.Update(r.Context(), id, payload.toPatch())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	removed, err := s.stores.Goals.Delete(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusOK, removed)
}

// handleContributeGoal adds a positive amount to a goal's saved total.
func (s *Server) handleContributeGoal(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload struct {
		Amount core.Money `json:"amount"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	g, err := s.stores.Goals.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	contributed, err := finance.ApplyContribution(g, payload.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	updated, err := s.stores.Goals.Update(r.Context(), id, store.GoalPatch{
		CurrentAmount: &contributed.CurrentAmount,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Goal contribution recorded",
		"goal_id", id,
		"amount_paise", payload.Amount.Paise,
		"current_paise", updated.CurrentAmount.Paise)

	s.invalidateViews()
	writeJSON(w, http.StatusOK, finance.ComputeGoalStatus(updated, time.Now()))
}
