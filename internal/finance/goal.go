package finance

import (
	"time"

	"fintrack/internal/core"
)

const (
	GoalCompleted GoalState = "completed"
	GoalOverdue   GoalState = "overdue"
	GoalUrgent    GoalState = "urgent"
	GoalOnTrack   GoalState = "on-track"
)

type GoalState string

// GoalStatus is a goal with its derived progress figures.
type GoalStatus struct {
	Goal            core.Goal  `json:"goal"`
	Progress        float64    `json:"progress"`
	DaysRemaining   int        `json:"daysRemaining"`
	Status          GoalState  `json:"status"`
	AmountRemaining core.Money `json:"amountRemaining"`
}

// ComputeGoalStatus derives progress and status for a goal at ref.
// Status precedence: completed wins over overdue, overdue over urgent.
// A goal funded to exactly 100% on its last day is completed, not
// urgent.
func ComputeGoalStatus(g core.Goal, ref time.Time) GoalStatus {
	var progress float64
	if g.TargetAmount.Paise > 0 {
		progress = float64(g.CurrentAmount.Paise) / float64(g.TargetAmount.Paise) * 100
	}
	days := DaysBetween(ref, g.TargetDate)

	var status GoalState
	switch {
	case progress >= 100:
		status = GoalCompleted
	case days < 0:
		status = GoalOverdue
	case days <= 30:
		status = GoalUrgent
	default:
		status = GoalOnTrack
	}

	return GoalStatus{
		Goal:            g,
		Progress:        progress,
		DaysRemaining:   days,
		Status:          status,
		AmountRemaining: g.TargetAmount.Sub(g.CurrentAmount),
	}
}

// ComputeAllGoalStatus evaluates every goal at the same instant.
func ComputeAllGoalStatus(goals []core.Goal, ref time.Time) []GoalStatus {
	out := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		out = append(out, ComputeGoalStatus(g, ref))
	}
	return out
}

// ApplyContribution returns the goal with amount added to its saved
// total. The amount must be strictly positive; the caller persists the
// result through the goal store.
func ApplyContribution(g core.Goal, amount core.Money) (core.Goal, error) {
	if amount.Paise <= 0 {
		return core.Goal{}, core.ErrInvalidAmount
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	return g, nil
}
