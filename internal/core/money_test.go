package core

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseDecimalToPaise(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1235, true}, // third decimal rounds half up
		{"12.344", 1234, true}, // below half truncates
		{"0", 0, true},
		{"300", 30000, true},
		{"", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToPaise(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: got %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestMoneyFromRupees(t *testing.T) {
	if m := MoneyFromRupees(123.45); m.Paise != 12345 {
		t.Fatalf("got %d", m.Paise)
	}
	if m := MoneyFromRupees(0.005); m.Paise != 1 {
		t.Fatalf("half-up rounding: got %d", m.Paise)
	}
	if nan := MoneyFromRupees(math.NaN()); nan.Paise >= 0 {
		t.Fatalf("NaN should map to a negative amount")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Paise: 500}
	b := Money{Paise: 700}
	if a.Add(b).Paise != 1200 {
		t.Fatalf("add")
	}
	if a.Sub(b).Paise != -200 {
		t.Fatalf("sub should allow negative results")
	}
	if a.Rupees() != 5.0 {
		t.Fatalf("rupees")
	}
}

func TestMoneyJSON(t *testing.T) {
	cases := []struct {
		m    Money
		want string
	}{
		{Money{Paise: 1200}, "12"},
		{Money{Paise: 1250}, "12.5"},
		{Money{Paise: 1234}, "12.34"},
		{Money{Paise: 0}, "0"},
		{Money{Paise: -550}, "-5.5"},
	}
	for _, tc := range cases {
		got, err := json.Marshal(tc.m)
		if err != nil {
			t.Fatalf("marshal %d: %v", tc.m.Paise, err)
		}
		if string(got) != tc.want {
			t.Errorf("marshal %d: got %s want %s", tc.m.Paise, got, tc.want)
		}
	}

	var m Money
	if err := json.Unmarshal([]byte("99.99"), &m); err != nil || m.Paise != 9999 {
		t.Fatalf("unmarshal number: %v %d", err, m.Paise)
	}
	if err := json.Unmarshal([]byte(`"12,34"`), &m); err != nil || m.Paise != 1234 {
		t.Fatalf("unmarshal string: %v %d", err, m.Paise)
	}
	if err := json.Unmarshal([]byte("-3"), &m); err == nil {
		t.Fatalf("negative input must be rejected")
	}
}
