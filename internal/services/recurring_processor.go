package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/core"
)

// RecurringProcessor materializes monthly instances from recurring
// transaction templates. A template is any transaction flagged recurring;
// each month it spawns one concrete instance on the template's day of
// month, clamped to the last day when the month is shorter.
type RecurringProcessor struct {
	service *TransactionService
}

func NewRecurringProcessor(service *TransactionService) *RecurringProcessor {
	return &RecurringProcessor{service: service}
}

// ProcessDue creates the instances due at now and returns how many were
// created.
func (p *RecurringProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	if p.service == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	transactions, err := p.service.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	var templates []core.Transaction
	for _, t := range transactions {
		if t.IsRecurring {
			templates = append(templates, t)
		}
	}

	slog.InfoContext(ctx, "Processing recurring transactions",
		"templates", len(templates),
		"processing_date", now.Format("2006-01-02"))

	created := 0
	for _, tpl := range templates {
		if !isDueMonthly(tpl, transactions, now) {
			continue
		}

		instance := core.Transaction{
			Type:          tpl.Type,
			Amount:        tpl.Amount,
			Category:      tpl.Category,
			PaymentMethod: tpl.PaymentMethod,
			Date:          instanceDate(tpl.Date, now),
			Description:   tpl.Description,
			IsRecurring:   false,
		}

		if _, err := p.service.Create(ctx, instance); err != nil {
			slog.ErrorContext(ctx, "Failed to create transaction from recurring template",
				"template_id", tpl.ID,
				"category", tpl.Category,
				"error", err)
			continue
		}

		created++
		slog.InfoContext(ctx, "Created transaction from recurring template",
			"template_id", tpl.ID,
			"category", tpl.Category,
			"amount_paise", tpl.Amount.Paise)
	}

	slog.InfoContext(ctx, "Recurring transaction processing complete",
		"created", created,
		"templates_checked", len(templates))

	return created, nil
}

// isDueMonthly reports whether the template should spawn an instance at
// now. Due when the template started in an earlier month, the current
// month has no instance with the template's signature yet, and the
// template's day of month (clamped) has been reached.
func isDueMonthly(tpl core.Transaction, all []core.Transaction, now time.Time) bool {
	if !beforeMonth(tpl.Date, now) {
		return false
	}

	for _, t := range all {
		if t.ID == tpl.ID || t.IsRecurring {
			continue
		}
		if !sameMonth(t.Date, now) {
			continue
		}
		if sameSignature(t, tpl) {
			return false
		}
	}

	return now.Day() >= clampDay(tpl.Date.Day(), now)
}

func sameSignature(a, b core.Transaction) bool {
	return a.Type == b.Type &&
		a.Amount == b.Amount &&
		a.Category == b.Category &&
		a.Description == b.Description
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func beforeMonth(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.Month() < b.Month()
}

// clampDay limits day to the last day of now's month (a template on the
// 31st runs on Feb 28).
func clampDay(day int, now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	if day > lastDay {
		return lastDay
	}
	return day
}

func instanceDate(templateDate, now time.Time) time.Time {
	day := clampDay(templateDate.Day(), now)
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}
