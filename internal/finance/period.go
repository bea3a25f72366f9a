// Package finance is the aggregation and filtering engine. Every
// function here is pure: it operates on snapshots passed in by the
// caller and computes derived views without touching a store.
package finance

import (
	"time"

	"fintrack/internal/core"
)

// PeriodWindow returns the half-open interval [start, end) of the
// budget period containing ref. This is the single source of truth for
// period scoping; both the budget view and the dashboard use it.
func PeriodWindow(p core.BudgetPeriod, ref time.Time) (start, end time.Time) {
	y, m, _ := ref.Date()
	loc := ref.Location()
	switch p {
	case core.Quarterly:
		qm := time.Month((int(m)-1)/3*3 + 1)
		start = time.Date(y, qm, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 3, 0)
	case core.Annual:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	default: // monthly
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	}
	return start, end
}

// InPeriod reports whether t falls inside the budget period containing ref.
func InPeriod(p core.BudgetPeriod, ref, t time.Time) bool {
	start, end := PeriodWindow(p, ref)
	return !t.Before(start) && t.Before(end)
}

// sameMonth reports whether two instants share a calendar month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysBetween returns the whole-day difference to - from, truncated
// toward zero. The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// startOfMonth returns midnight on the first day of t's month.
func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
