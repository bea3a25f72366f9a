// Package format renders amounts, percentages, dates and durations the
// way the rest of the application presents them: Indian English locale,
// rupee symbol, lakh/crore digit grouping.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"fintrack/internal/core"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Rupees formats an amount as whole rupees with en-IN grouping, e.g.
// ₹1,23,456. Paise are rounded half away from zero.
func Rupees(m core.Money) string {
	rupees := m.Paise / 100
	rem := m.Paise % 100
	if rem >= 50 {
		rupees++
	} else if rem <= -50 {
		rupees--
	}
	return printer.Sprintf("₹%v", number.Decimal(rupees))
}

// RupeesWithPaise formats an amount with two fraction digits, e.g.
// ₹1,23,456.78.
func RupeesWithPaise(m core.Money) string {
	return printer.Sprintf("₹%v", number.Decimal(m.Rupees(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Percent formats a percentage to one decimal, e.g. "30.0%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Date presets used across the UI surfaces.
func DateShort(t time.Time) string     { return t.Format("2 Jan 2006") }
func DateLong(t time.Time) string      { return t.Format("2 January 2006") }
func DateMonthYear(t time.Time) string { return t.Format("Jan 2006") }
func DateDayMonth(t time.Time) string  { return t.Format("2 Jan") }

// Compact renders a number on the en-IN compact ladder: thousands (K),
// lakhs (L), crores (Cr). One decimal, trailing zero trimmed.
func Compact(v float64) string {
	neg := v < 0
	abs := math.Abs(v)

	var scaled float64
	var suffix string
	switch {
	case abs >= 1e7:
		scaled, suffix = abs/1e7, "Cr"
	case abs >= 1e5:
		scaled, suffix = abs/1e5, "L"
	case abs >= 1e3:
		scaled, suffix = abs/1e3, "K"
	default:
		scaled = abs
	}

	s := strconv.FormatFloat(math.Round(scaled*10)/10, 'f', -1, 64)
	if neg {
		s = "-" + s
	}
	return s + suffix
}

// Duration maps a signed day count to a human phrase. Negative values
// read as overdue.
func Duration(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days < 30:
		return fmt.Sprintf("%d days", days)
	case days < 365:
		return fmt.Sprintf("%d months", days/30)
	default:
		return fmt.Sprintf("%d years", days/365)
	}
}
