package finance

import (
	"errors"
	"testing"

	"fintrack/internal/core"
)

func TestComputeGoalStatusUrgent(t *testing.T) {
	ref := date(2026, 8, 15)
	g := core.Goal{
		TargetAmount:  core.Money{Paise: 100000},
		CurrentAmount: core.Money{Paise: 25000},
		TargetDate:    ref.AddDate(0, 0, 10),
	}
	s := ComputeGoalStatus(g, ref)
	if s.Progress != 25 {
		t.Fatalf("progress = %v, want 25", s.Progress)
	}
	if s.DaysRemaining != 10 {
		t.Fatalf("days = %d, want 10", s.DaysRemaining)
	}
	if s.Status != GoalUrgent {
		t.Fatalf("status = %s, want urgent", s.Status)
	}
	if s.AmountRemaining.Paise != 75000 {
		t.Fatalf("remaining = %d, want 75000", s.AmountRemaining.Paise)
	}
}

func TestCompletedPrecedesOverdue(t *testing.T) {
	ref := date(2026, 8, 15)
	g := core.Goal{
		TargetAmount:  core.Money{Paise: 50000},
		CurrentAmount: core.Money{Paise: 50000},
		TargetDate:    ref.AddDate(0, 0, -1), // yesterday
	}
	s := ComputeGoalStatus(g, ref)
	if s.Status != GoalCompleted {
		t.Fatalf("status = %s, want completed (completed check precedes overdue)", s.Status)
	}
	if s.DaysRemaining >= 0 {
		t.Fatalf("days = %d, want negative", s.DaysRemaining)
	}
}

func TestGoalStatusBoundaries(t *testing.T) {
	ref := date(2026, 8, 15)
	cases := []struct {
		name    string
		current int64
		days    int
		want    GoalState
	}{
		{"exactly funded is completed not urgent", 100000, 5, GoalCompleted},
		{"overfunded", 120000, 400, GoalCompleted},
		{"past due underfunded", 50000, -3, GoalOverdue},
		{"thirty days out", 50000, 30, GoalUrgent},
		{"thirty one days out", 50000, 31, GoalOnTrack},
	}
	for _, tc := range cases {
		g := core.Goal{
			TargetAmount:  core.Money{Paise: 100000},
			CurrentAmount: core.Money{Paise: tc.current},
			TargetDate:    ref.AddDate(0, 0, tc.days),
		}
		if s := ComputeGoalStatus(g, ref); s.Status != tc.want {
			t.Fatalf("%s: status = %s, want %s", tc.name, s.Status, tc.want)
		}
	}
}

func TestGoalStatusZeroTarget(t *testing.T) {
	s := ComputeGoalStatus(core.Goal{TargetDate: date(2027, 1, 1)}, date(2026, 8, 15))
	if s.Progress != 0 {
		t.Fatalf("zero target must report 0%%, got %v", s.Progress)
	}
}

func TestApplyContribution(t *testing.T) {
	g := core.Goal{CurrentAmount: core.Money{Paise: 1000}}

	got, err := ApplyContribution(g, core.Money{Paise: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CurrentAmount.Paise != 1500 {
		t.Fatalf("current = %d, want 1500", got.CurrentAmount.Paise)
	}
	if g.CurrentAmount.Paise != 1000 {
		t.Fatalf("input goal must not be mutated")
	}

	for _, bad := range []int64{0, -100} {
		if _, err := ApplyContribution(g, core.Money{Paise: bad}); !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("amount %d: want ErrInvalidAmount, got %v", bad, err)
		}
	}
}
