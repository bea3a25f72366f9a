package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/finance"
	"fintrack/internal/store"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func decodeJSON(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Patch payloads mirror the store patches; absent fields stay nil so
// updates only touch what the client sent.

type transactionPatchPayload struct {
	Type          *string     `json:"type"`
	Amount        *core.Money `json:"amount"`
	Category      *string     `json:"category"`
	PaymentMethod *string     `json:"paymentMethod"`
	Date          *time.Time  `json:"date"`
	Description   *string     `json:"description"`
	IsRecurring   *bool       `json:"isRecurring"`
}

func (p transactionPatchPayload) toPatch() store.TransactionPatch {
	patch := store.TransactionPatch{
		Amount:        p.Amount,
		Category:      p.Category,
		PaymentMethod: p.PaymentMethod,
		Date:          p.Date,
		Description:   p.Description,
		IsRecurring:   p.IsRecurring,
	}
	if p.Type != nil {
		t := core.TransactionType(*p.Type)
		patch.Type = &t
	}
	return patch
}

type budgetPatchPayload struct {
	Category  *string     `json:"category"`
	Amount    *core.Money `json:"amount"`
	Period    *string     `json:"period"`
	StartDate *time.Time  `json:"startDate"`
}

func (p budgetPatchPayload) toPatch() store.BudgetPatch {
	patch := store.BudgetPatch{
		Category:  p.Category,
		Amount:    p.Amount,
		StartDate: p.StartDate,
	}
	if p.Period != nil {
		period := core.BudgetPeriod(*p.Period)
		patch.Period = &period
	}
	return patch
}

type goalPatchPayload struct {
	Name          *string     `json:"name"`
	Category      *string     `json:"category"`
	TargetAmount  *core.Money `json:"targetAmount"`
	CurrentAmount *core.Money `json:"currentAmount"`
	TargetDate    *time.Time  `json:"targetDate"`
}

func (p goalPatchPayload) toPatch() store.GoalPatch {
	return store.GoalPatch{
		Name:          p.Name,
		Category:      p.Category,
		TargetAmount:  p.TargetAmount,
		CurrentAmount: p.CurrentAmount,
		TargetDate:    p.TargetDate,
	}
}

const queryDateLayout = "2006-01-02"

// parseFilter builds the transaction filter from query parameters.
// dateTo covers the whole named day.
func parseFilter(q url.Values) (finance.Filter, error) {
	f := finance.Filter{
		Search:        strings.TrimSpace(q.Get("search")),
		Type:          strings.TrimSpace(q.Get("type")),
		Category:      strings.TrimSpace(q.Get("category")),
		PaymentMethod: strings.TrimSpace(q.Get("paymentMethod")),
	}

	if v := strings.TrimSpace(q.Get("dateFrom")); v != "" {
		d, err := time.Parse(queryDateLayout, v)
		if err != nil {
			return finance.Filter{}, fmt.Errorf("invalid dateFrom %q", v)
		}
		f.DateFrom = d
	}
	if v := strings.TrimSpace(q.Get("dateTo")); v != "" {
		d, err := time.Parse(queryDateLayout, v)
		if err != nil {
			return finance.Filter{}, fmt.Errorf("invalid dateTo %q", v)
		}
		f.DateTo = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return f, nil
}
