package finance

import (
	"sort"
	"time"

	"fintrack/internal/core"
)

// Report period presets. Each maps to a start-of-month lower bound;
// the range always ends at now.
const (
	Period1Month  ReportPeriod = "1month"
	Period3Months ReportPeriod = "3months"
	Period6Months ReportPeriod = "6months"
	Period1Year   ReportPeriod = "1year"
)

type ReportPeriod string

// Start resolves the preset to its lower bound relative to now.
// Unknown presets fall back to six months.
func (p ReportPeriod) Start(now time.Time) time.Time {
	switch p {
	case Period1Month:
		return startOfMonth(now)
	case Period3Months:
		return startOfMonth(now.AddDate(0, -2, 0))
	case Period1Year:
		return startOfMonth(now.AddDate(0, -11, 0))
	default:
		return startOfMonth(now.AddDate(0, -5, 0))
	}
}

type (
	// MonthlyPoint is one month in the trend series.
	MonthlyPoint struct {
		Label   string     `json:"label"` // e.g. "Jan 2026"
		Year    int        `json:"year"`
		Month   time.Month `json:"month"`
		Income  core.Money `json:"income"`
		Expense core.Money `json:"expense"`
	}

	// CategoryAmount is summed expense spend for one category.
	CategoryAmount struct {
		Category string     `json:"category"`
		Amount   core.Money `json:"amount"`
	}

	// MethodAmount is summed volume for one payment method.
	MethodAmount struct {
		Method string     `json:"method"`
		Amount core.Money `json:"amount"`
	}

	// Report is the full aggregation over a reporting window.
	Report struct {
		Period   ReportPeriod `json:"period"`
		Category string       `json:"category,omitempty"`
		From     time.Time    `json:"from"`
		To       time.Time    `json:"to"`

		Months            []MonthlyPoint   `json:"months"`
		CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
		PaymentMethods    []MethodAmount   `json:"paymentMethods"`

		TotalIncome            core.Money `json:"totalIncome"`
		TotalExpenses          core.Money `json:"totalExpenses"`
		NetSavings             core.Money `json:"netSavings"`
		SavingsRate            float64    `json:"savingsRate"`
		LargestExpenseCategory string     `json:"largestExpenseCategory"`
	}
)

// BuildReport aggregates transactions inside [period start, now],
// optionally restricted to one category. Breakdown ordering follows
// first occurrence in the input so that ties and iteration stay
// deterministic.
func BuildReport(transactions []core.Transaction, period ReportPeriod, category string, now time.Time) Report {
	r := Report{
		Period:   period,
		Category: category,
		From:     period.Start(now),
		To:       now,
	}

	var selected []core.Transaction
	for _, t := range transactions {
		if t.Date.Before(r.From) || t.Date.After(r.To) {
			continue
		}
		if category != "" && category != FilterAll && t.Category != category {
			continue
		}
		selected = append(selected, t)
	}

	months := map[string]*MonthlyPoint{}
	catIndex := map[string]int{}
	methodIndex := map[string]int{}

	for _, t := range selected {
		key := t.Date.Format("2006-01")
		mp, ok := months[key]
		if !ok {
			mp = &MonthlyPoint{
				Label: t.Date.Format("Jan 2006"),
				Year:  t.Date.Year(),
				Month: t.Date.Month(),
			}
			months[key] = mp
		}

		switch t.Type {
		case core.Income:
			mp.Income = mp.Income.Add(t.Amount)
			r.TotalIncome = r.TotalIncome.Add(t.Amount)
		case core.Expense:
			mp.Expense = mp.Expense.Add(t.Amount)
			r.TotalExpenses = r.TotalExpenses.Add(t.Amount)

			// Unrecognized imported categories aggregate under the
			// Other bucket; the stored value stays untouched.
			bucket, _ := core.ClassifyCategory(core.Expense, t.Category)
			i, ok := catIndex[bucket]
			if !ok {
				i = len(r.CategoryBreakdown)
				catIndex[bucket] = i
				r.CategoryBreakdown = append(r.CategoryBreakdown, CategoryAmount{Category: bucket})
			}
			r.CategoryBreakdown[i].Amount = r.CategoryBreakdown[i].Amount.Add(t.Amount)
		}

		j, ok := methodIndex[t.PaymentMethod]
		if !ok {
			j = len(r.PaymentMethods)
			methodIndex[t.PaymentMethod] = j
			r.PaymentMethods = append(r.PaymentMethods, MethodAmount{Method: t.PaymentMethod})
		}
		r.PaymentMethods[j].Amount = r.PaymentMethods[j].Amount.Add(t.Amount)
	}

	for _, mp := range months {
		r.Months = append(r.Months, *mp)
	}
	sort.Slice(r.Months, func(i, j int) bool {
		if r.Months[i].Year != r.Months[j].Year {
			return r.Months[i].Year < r.Months[j].Year
		}
		return r.Months[i].Month < r.Months[j].Month
	})

	r.NetSavings = r.TotalIncome.Sub(r.TotalExpenses)
	if r.TotalIncome.Paise > 0 {
		r.SavingsRate = float64(r.NetSavings.Paise) / float64(r.TotalIncome.Paise) * 100
	}

	// Ties go to the earlier entry in breakdown order.
	r.LargestExpenseCategory = "N/A"
	var max int64 = -1
	for _, c := range r.CategoryBreakdown {
		if c.Amount.Paise > max {
			max = c.Amount.Paise
			r.LargestExpenseCategory = c.Category
		}
	}

	return r
}
