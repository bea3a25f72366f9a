package finance

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/core"
)

// FilterAll is the wildcard value that deactivates a select filter.
const FilterAll = "all"

// Filter is the predicate set applied to a transaction list. Zero
// values (and FilterAll for the select fields) deactivate a predicate.
type Filter struct {
	Search        string
	Type          string
	Category      string
	PaymentMethod string
	DateFrom      time.Time
	DateTo        time.Time
}

func (f Filter) matches(t core.Transaction) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Category), needle) {
			return false
		}
	}
	if f.Type != "" && f.Type != FilterAll && string(t.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && t.Category != f.Category {
		return false
	}
	if f.PaymentMethod != "" && f.PaymentMethod != FilterAll && t.PaymentMethod != f.PaymentMethod {
		return false
	}
	if !f.DateFrom.IsZero() && t.Date.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && t.Date.After(f.DateTo) {
		return false
	}
	return true
}

// FilterTransactions applies every active predicate as a conjunction
// and returns the matches newest first, regardless of input order.
// Filtering an already-filtered result with the same filter yields the
// same set.
func FilterTransactions(transactions []core.Transaction, f Filter) []core.Transaction {
	out := make([]core.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	SortByDateDesc(out)
	return out
}

// SortByDateDesc orders transactions newest first in place. The sort
// is stable so same-instant transactions keep their relative order.
func SortByDateDesc(transactions []core.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
