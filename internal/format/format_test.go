package format

import (
	"testing"
	"time"

	"fintrack/internal/core"
)

func TestRupeesGrouping(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{0, "₹0"},
		{100000, "₹1,000"},
		{10000000, "₹1,00,000"},     // one lakh groups by two past the thousands
		{1234567800, "₹1,23,45,678"},
		{99949, "₹999"},  // rounds down
		{99950, "₹1,000"}, // rounds up
	}
	for _, tc := range cases {
		if got := Rupees(core.Money{Paise: tc.paise}); got != tc.want {
			t.Fatalf("Rupees(%d) = %q, want %q", tc.paise, got, tc.want)
		}
	}
}

func TestRupeesWithPaise(t *testing.T) {
	if got := RupeesWithPaise(core.Money{Paise: 123456}); got != "₹1,234.56" {
		t.Fatalf("got %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(30); got != "30.0%" {
		t.Fatalf("got %q", got)
	}
	if got := Percent(33.333); got != "33.3%" {
		t.Fatalf("got %q", got)
	}
}

func TestDatePresets(t *testing.T) {
	d := time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)
	if got := DateShort(d); got != "2 Aug 2026" {
		t.Fatalf("short = %q", got)
	}
	if got := DateLong(d); got != "2 August 2026" {
		t.Fatalf("long = %q", got)
	}
	if got := DateMonthYear(d); got != "Aug 2026" {
		t.Fatalf("monthYear = %q", got)
	}
	if got := DateDayMonth(d); got != "2 Aug" {
		t.Fatalf("dayMonth = %q", got)
	}
}

func TestCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{950, "950"},
		{1200, "1.2K"},
		{150000, "1.5L"},
		{25000000, "2.5Cr"},
		{-1200, "-1.2K"},
		{1000, "1K"},
	}
	for _, tc := range cases {
		if got := Compact(tc.in); got != tc.want {
			t.Fatalf("Compact(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{-3, "3 days overdue"},
		{0, "Today"},
		{1, "Tomorrow"},
		{12, "12 days"},
		{45, "1 months"},
		{400, "1 years"},
	}
	for _, tc := range cases {
		if got := Duration(tc.days); got != tc.want {
			t.Fatalf("Duration(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}
