package model

import "fmt"

// Impact is how much a task moves the needle.
type Impact string

const (
	ImpactHigh Impact = "high"
	ImpactLow  Impact = "low"
)

// Effort is how much work a task takes.
type Effort string

const (
	EffortLow  Effort = "low"
	EffortHigh Effort = "high"
)

// Deadline buckets a task's due horizon.
type Deadline string

const (
	DeadlineToday       Deadline = "today"
	DeadlineThisWeek    Deadline = "this_week"
	DeadlineThisSprint  Deadline = "this_sprint"
	DeadlineAfterSprint Deadline = "after_sprint"
)

// Quadrant is the impact/effort classification a task falls into.
type Quadrant string

const (
	QuadrantQuickWin Quadrant = "quick_win"
	QuadrantBigBet   Quadrant = "big_bet"
	QuadrantFillIn   Quadrant = "fill_in"
	QuadrantTimeSink Quadrant = "time_sink"
)

// Tier is the priority band a task is grouped into on the dashboard.
type Tier string

const (
	TierDoToday  Tier = "do_today"
	TierShouldDo Tier = "should_do"
	TierCouldDo  Tier = "could_do"
	TierDefer    Tier = "defer"
)

// ParseImpact converts a string to an Impact.
func ParseImpact(s string) (Impact, error) {
	switch Impact(s) {
	case ImpactHigh, ImpactLow:
		return Impact(s), nil
	}
	return "", fmt.Errorf("invalid impact %q (want high or low)", s)
}

// ParseEffort converts a string to an Effort.
func ParseEffort(s string) (Effort, error) {
	switch Effort(s) {
	case EffortLow, EffortHigh:
		return Effort(s), nil
	}
	return "", fmt.Errorf("invalid effort %q (want low or high)", s)
}

// ParseDeadline converts a string to a Deadline.
func ParseDeadline(s string) (Deadline, error) {
	switch Deadline(s) {
	case DeadlineToday, DeadlineThisWeek, DeadlineThisSprint, DeadlineAfterSprint:
		return Deadline(s), nil
	}
	return "", fmt.Errorf("invalid deadline %q (want today, this_week, this_sprint or after_sprint)", s)
}

// Urgency returns the sort position of a deadline, most urgent first.
func (d Deadline) Urgency() int {
	switch d {
	case DeadlineToday:
		return 0
	case DeadlineThisWeek:
		return 1
	case DeadlineThisSprint:
		return 2
	default:
		return 3
	}
}

// Label returns the deadline as shown in the UI.
func (d Deadline) Label() string {
	switch d {
	case DeadlineToday:
		return "Today"
	case DeadlineThisWeek:
		return "This week"
	case DeadlineThisSprint:
		return "This sprint"
	default:
		return "After sprint"
	}
}

// Label returns the tier heading as shown on the dashboard.
func (t Tier) Label() string {
	switch t {
	case TierDoToday:
		return "Do today"
	case TierShouldDo:
		return "Should do"
	case TierCouldDo:
		return "Could do"
	default:
		return "Defer"
	}
}

// Label returns the quadrant name as shown in reason strings.
func (q Quadrant) Label() string {
	switch q {
	case QuadrantQuickWin:
		return "Quick win"
	case QuadrantBigBet:
		return "Big bet"
	case QuadrantFillIn:
		return "Fill-in"
	default:
		return "Time sink"
	}
}
