package finance

import (
	"testing"
	"time"

	"fintrack/internal/core"
)

func sampleTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: 1, Type: core.Expense, Amount: core.Money{Paise: 30000}, Category: "Groceries", PaymentMethod: "UPI", Date: date(2026, 8, 3), Description: "weekly shop"},
		{ID: 2, Type: core.Income, Amount: core.Money{Paise: 500000}, Category: "Salary", PaymentMethod: "Bank Transfer", Date: date(2026, 8, 1)},
		{ID: 3, Type: core.Expense, Amount: core.Money{Paise: 12000}, Category: "Transport", PaymentMethod: "Cash", Date: date(2026, 8, 10), Description: "auto fare"},
		{ID: 4, Type: core.Expense, Amount: core.Money{Paise: 8000}, Category: "Entertainment", PaymentMethod: "UPI", Date: date(2026, 7, 28), Description: "movie night"},
	}
}

func ids(txs []core.Transaction) []int64 {
	out := make([]int64, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestFilterConjunction(t *testing.T) {
	got := FilterTransactions(sampleTransactions(), Filter{
		Type:          "expense",
		PaymentMethod: "UPI",
	})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("got ids %v", ids(got))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	// matches description OR category
	got := FilterTransactions(sampleTransactions(), Filter{Search: "GROC"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("category search: got ids %v", ids(got))
	}
	got = FilterTransactions(sampleTransactions(), Filter{Search: "Movie"})
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("description search: got ids %v", ids(got))
	}
}

func TestFilterDateBoundsInclusive(t *testing.T) {
	got := FilterTransactions(sampleTransactions(), Filter{
		DateFrom: date(2026, 8, 1),
		DateTo:   date(2026, 8, 3),
	})
	if len(got) != 2 {
		t.Fatalf("got ids %v", ids(got))
	}
}

func TestFilterAllWildcards(t *testing.T) {
	got := FilterTransactions(sampleTransactions(), Filter{
		Type: FilterAll, Category: FilterAll, PaymentMethod: FilterAll,
	})
	if len(got) != 4 {
		t.Fatalf("wildcards must not filter, got %d", len(got))
	}
}

func TestFilterSortsDescending(t *testing.T) {
	// shuffle input order; output must still be newest first
	in := sampleTransactions()
	in[0], in[2] = in[2], in[0]
	got := FilterTransactions(in, Filter{})
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("output not non-increasing by date at %d", i)
		}
	}
	if got[0].ID != 3 {
		t.Fatalf("newest first: got ids %v", ids(got))
	}
}

func TestFilterIdempotent(t *testing.T) {
	f := Filter{Type: "expense", Search: "a"}
	once := FilterTransactions(sampleTransactions(), f)
	twice := FilterTransactions(once, f)
	if len(once) != len(twice) {
		t.Fatalf("idempotence: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("idempotence: ids differ at %d", i)
		}
	}
}

func TestSortStableForEqualDates(t *testing.T) {
	same := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	in := []core.Transaction{
		{ID: 1, Date: same},
		{ID: 2, Date: same},
		{ID: 3, Date: same},
	}
	SortByDateDesc(in)
	if in[0].ID != 1 || in[1].ID != 2 || in[2].ID != 3 {
		t.Fatalf("stable sort broke relative order: %v", ids(in))
	}
}
