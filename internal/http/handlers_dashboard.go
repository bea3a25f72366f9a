package http

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/finance"
)

const dashboardCacheKey = "dashboard"

// handleDashboard loads the three collections concurrently and derives
// the dashboard snapshot. Responses are cached until the next mutation
// or TTL expiry.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if stats, ok := s.dashboardCache.Get(dashboardCacheKey); ok {
		slog.DebugContext(r.Context(), "Dashboard cache hit")
		writeJSON(w, http.StatusOK, stats)
		return
	}

	var (
		transactions []core.Transaction
		budgets      []core.Budget
		goals        []core.Goal
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		transactions, err = s.txService.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.stores.Budgets.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.stores.Goals.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard load error", "error", err)
		writeDomainError(w, err)
		return
	}

	stats := finance.ComputeDashboard(transactions, budgets, goals, time.Now())
	s.dashboardCache.Set(dashboardCacheKey, stats)

	writeJSON(w, http.StatusOK, stats)
}
