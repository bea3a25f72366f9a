package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/finance"
)

// handleReport aggregates transactions over a preset window. Unknown
// period values fall back to six months.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	period := finance.ReportPeriod(strings.TrimSpace(r.URL.Query().Get("period")))
	if period == "" {
		period = finance.Period6Months
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	key := string(period) + "|" + category
	if report, ok := s.reportCache.Get(key); ok {
		slog.DebugContext(r.Context(), "Report cache hit", "period", string(period), "category", category)
		writeJSON(w, http.StatusOK, report)
		return
	}

	transactions, err := s.txService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Report load error", "error", err)
		writeDomainError(w, err)
		return
	}

	report := finance.BuildReport(transactions, period, category, time.Now())
	s.reportCache.Set(key, report)

	writeJSON(w, http.StatusOK, report)
}

// handleCategories returns the fixed enumerations used by forms.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"expenseCategories": core.ExpenseCategories,
		"incomeCategories":  core.IncomeCategories,
		"paymentMethods":    core.PaymentMethods,
		"goalCategories":    core.GoalCategories,
	})
}
