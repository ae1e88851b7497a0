// Package engine computes priority scores and rankings for tasks.
// All functions are pure: they never mutate their inputs and never fail.
package engine

import (
	"fmt"

	"github.com/existflow/tempo/internal/model"
)

// Base scores per quadrant.
var quadrantScores = map[model.Quadrant]int{
	model.QuadrantQuickWin: 100,
	model.QuadrantBigBet:   70,
	model.QuadrantFillIn:   40,
	model.QuadrantTimeSink: 20,
}

// Score adjustments per deadline bucket.
var deadlineModifiers = map[model.Deadline]int{
	model.DeadlineToday:       30,
	model.DeadlineThisWeek:    15,
	model.DeadlineThisSprint:  0,
	model.DeadlineAfterSprint: -10,
}

// Tier lower bounds, checked highest first.
const (
	tierDoTodayMin  = 90
	tierShouldDoMin = 60
	tierCouldDoMin  = 30
)

// Classify maps an impact/effort pair to its quadrant. The function is total:
// any combination outside the three named pairs is a time sink, which covers
// low impact + high effort.
func Classify(impact model.Impact, effort model.Effort) model.Quadrant {
	if impact == model.ImpactHigh && effort == model.EffortLow {
		return model.QuadrantQuickWin
	}
	if impact == model.ImpactHigh && effort == model.EffortHigh {
		return model.QuadrantBigBet
	}
	if impact == model.ImpactLow && effort == model.EffortLow {
		return model.QuadrantFillIn
	}
	return model.QuadrantTimeSink
}

// Score combines the quadrant base score with the deadline modifier.
// The result is always in [10, 130].
func Score(quadrant model.Quadrant, deadline model.Deadline) int {
	return quadrantScores[quadrant] + deadlineModifiers[deadline]
}

// TierFor maps a score to its priority tier. The thresholds partition the
// whole score axis; each bound is inclusive on the lower end.
func TierFor(score int) model.Tier {
	switch {
	case score >= tierDoTodayMin:
		return model.TierDoToday
	case score >= tierShouldDoMin:
		return model.TierShouldDo
	case score >= tierCouldDoMin:
		return model.TierCouldDo
	default:
		return model.TierDefer
	}
}

// Reason builds the human-readable justification shown under a task:
// quadrant, impact, effort and deadline clauses joined with a middle dot.
func Reason(task model.Task, quadrant model.Quadrant) string {
	impactText := "low impact"
	if task.Impact == model.ImpactHigh {
		impactText = "high impact"
	}
	effortText := "high effort"
	if task.Effort == model.EffortLow {
		effortText = "low effort"
	}
	deadlineText := "no rush"
	switch task.Deadline {
	case model.DeadlineToday:
		deadlineText = "due today"
	case model.DeadlineThisWeek:
		deadlineText = "due this week"
	case model.DeadlineThisSprint:
		deadlineText = "due this sprint"
	}
	return fmt.Sprintf("%s · %s · %s · %s", quadrant.Label(), impactText, effortText, deadlineText)
}
