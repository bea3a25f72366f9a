// Package core holds the domain model shared by every other package.
//
// This file contains money parsing and conversion. Amounts are kept as
// integer paise; floating-point rupees exist only at the display and
// JSON boundaries.
package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money is an amount in paise (1/100 rupee).
type Money struct {
	Paise int64
}

// MoneyFromRupees converts a rupee amount to Money with half-up
// rounding on the third decimal. NaN and infinities map to a negative
// amount so that validation rejects them.
func MoneyFromRupees(r float64) Money {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Money{Paise: -1}
	}
	return Money{Paise: int64(math.Round(r * 100))}
}

// Rupees returns the rupee value as a float64 for display and JSON.
// Use paise for arithmetic to avoid precision loss.
func (m Money) Rupees() float64 {
	return float64(m.Paise) / 100.0
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Paise: m.Paise + other.Paise}
}

// Sub returns m - other. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{Paise: m.Paise - other.Paise}
}

// MarshalJSON writes the amount as a rupee number with at most two
// decimal places, so 1250 paise becomes 12.5 and 1200 becomes 12.
func (m Money) MarshalJSON() ([]byte, error) {
	p := m.Paise
	var b []byte
	if p < 0 {
		b = append(b, '-')
		p = -p
	}
	b = strconv.AppendInt(b, p/100, 10)
	if rem := p % 100; rem != 0 {
		b = append(b, '.', byte('0'+rem/10))
		if rem%10 != 0 {
			b = append(b, byte('0'+rem%10))
		}
	}
	return b, nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	paise, err := ParseDecimalToPaise(s)
	if err != nil {
		// Exponent notation falls through to float parsing.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f < 0 {
			return ErrInvalidAmount
		}
		*m = MoneyFromRupees(f)
		return nil
	}
	m.Paise = paise
	return nil
}

// ParseDecimalToPaise converts a decimal string to paise with half-up
// rounding on the third decimal place. It accepts both dot (12.34) and
// comma (12,34) separators. Negative amounts are rejected; zero is
// allowed (transaction amounts may legitimately be zero).
func ParseDecimalToPaise(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	var fracPaise int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracPaise = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracPaise += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracPaise++
			}
		}
	}
	return iv*100 + fracPaise, nil
}
