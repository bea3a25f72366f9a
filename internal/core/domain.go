package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Monthly   BudgetPeriod = "monthly"
	Quarterly BudgetPeriod = "quarterly"
	Annual    BudgetPeriod = "annual"
)

type (
	TransactionType string

	BudgetPeriod string

	// Transaction is a single income or expense entry.
	Transaction struct {
		ID            int64           `json:"id"`
		Type          TransactionType `json:"type"`
		Amount        Money           `json:"amount"`
		Category      string          `json:"category"`
		PaymentMethod string          `json:"paymentMethod"`
		Date          time.Time       `json:"date"`
		Description   string          `json:"description"`
		IsRecurring   bool            `json:"isRecurring"`
		CreatedAt     time.Time       `json:"createdAt"`
	}

	// Budget is a spending ceiling for one expense category over a
	// recurring period.
	Budget struct {
		ID        int64        `json:"id"`
		Category  string       `json:"category"`
		Amount    Money        `json:"amount"`
		Period    BudgetPeriod `json:"period"`
		StartDate time.Time    `json:"startDate"`
		CreatedAt time.Time    `json:"createdAt"`
	}

	// Goal is a savings target. CurrentAmount grows through
	// contributions and may exceed TargetAmount.
	Goal struct {
		ID            int64     `json:"id"`
		Name          string    `json:"name"`
		Category      string    `json:"category"`
		TargetAmount  Money     `json:"targetAmount"`
		CurrentAmount Money     `json:"currentAmount"`
		TargetDate    time.Time `json:"targetDate"`
		CreatedAt     time.Time `json:"createdAt"`
	}
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidPeriod    = errors.New("invalid budget period")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyName        = errors.New("empty name")
	ErrLongDescription  = errors.New("description too long (max 200 characters)")
	ErrZeroTargetDate   = errors.New("target date cannot be zero")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (p BudgetPeriod) Valid() bool {
	switch p {
	case Monthly, Quarterly, Annual:
		return true
	}
	return false
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Amount.Paise < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if len(t.Description) > 200 {
		return ErrLongDescription
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Amount.Paise <= 0 {
		return ErrInvalidAmount
	}
	if !b.Period.Valid() {
		return ErrInvalidPeriod
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(g.Category) == "" {
		return ErrEmptyCategory
	}
	if g.TargetAmount.Paise <= 0 {
		return ErrInvalidAmount
	}
	if g.CurrentAmount.Paise < 0 {
		return ErrInvalidAmount
	}
	if g.TargetDate.IsZero() {
		return ErrZeroTargetDate
	}
	return nil
}
