package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/existflow/tempo/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		impact model.Impact
		effort model.Effort
		want   model.Quadrant
	}{
		{model.ImpactHigh, model.EffortLow, model.QuadrantQuickWin},
		{model.ImpactHigh, model.EffortHigh, model.QuadrantBigBet},
		{model.ImpactLow, model.EffortLow, model.QuadrantFillIn},
		{model.ImpactLow, model.EffortHigh, model.QuadrantTimeSink},
	}

	for _, c := range cases {
		if got := Classify(c.impact, c.effort); got != c.want {
			t.Errorf("Classify(%s, %s) = %s, want %s", c.impact, c.effort, got, c.want)
		}
	}
}

func TestClassifyFallback(t *testing.T) {
	// Unrecognized combinations are absorbed as time sink, never an error.
	if got := Classify(model.Impact("medium"), model.Effort("medium")); got != model.QuadrantTimeSink {
		t.Errorf("Classify fallback = %s, want %s", got, model.QuadrantTimeSink)
	}
}

func TestScoreFullTable(t *testing.T) {
	cases := []struct {
		quadrant model.Quadrant
		deadline model.Deadline
		want     int
	}{
		{model.QuadrantQuickWin, model.DeadlineToday, 130},
		{model.QuadrantQuickWin, model.DeadlineThisWeek, 115},
		{model.QuadrantQuickWin, model.DeadlineThisSprint, 100},
		{model.QuadrantQuickWin, model.DeadlineAfterSprint, 90},
		{model.QuadrantBigBet, model.DeadlineToday, 100},
		{model.QuadrantBigBet, model.DeadlineThisWeek, 85},
		{model.QuadrantBigBet, model.DeadlineThisSprint, 70},
		{model.QuadrantBigBet, model.DeadlineAfterSprint, 60},
		{model.QuadrantFillIn, model.DeadlineToday, 70},
		{model.QuadrantFillIn, model.DeadlineThisWeek, 55},
		{model.QuadrantFillIn, model.DeadlineThisSprint, 40},
		{model.QuadrantFillIn, model.DeadlineAfterSprint, 30},
		{model.QuadrantTimeSink, model.DeadlineToday, 50},
		{model.QuadrantTimeSink, model.DeadlineThisWeek, 35},
		{model.QuadrantTimeSink, model.DeadlineThisSprint, 20},
		{model.QuadrantTimeSink, model.DeadlineAfterSprint, 10},
	}

	for _, c := range cases {
		if got := Score(c.quadrant, c.deadline); got != c.want {
			t.Errorf("Score(%s, %s) = %d, want %d", c.quadrant, c.deadline, got, c.want)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.Tier
	}{
		{130, model.TierDoToday},
		{90, model.TierDoToday},
		{89, model.TierShouldDo},
		{60, model.TierShouldDo},
		{59, model.TierCouldDo},
		{30, model.TierCouldDo},
		{29, model.TierDefer},
		{10, model.TierDefer},
		{0, model.TierDefer},
		{-5, model.TierDefer},
	}

	for _, c := range cases {
		if got := TierFor(c.score); got != c.want {
			t.Errorf("TierFor(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestReason(t *testing.T) {
	task := model.Task{
		ID:        "t1",
		Name:      "Ship it",
		Impact:    model.ImpactHigh,
		Effort:    model.EffortLow,
		Deadline:  model.DeadlineToday,
		CreatedAt: time.Now(),
	}

	got := Reason(task, model.QuadrantQuickWin)
	want := "Quick win · high impact · low effort · due today"
	if got != want {
		t.Errorf("Reason = %q, want %q", got, want)
	}
}

func TestReasonAfterSprint(t *testing.T) {
	task := model.Task{
		Impact:   model.ImpactLow,
		Effort:   model.EffortHigh,
		Deadline: model.DeadlineAfterSprint,
	}
	got := Reason(task, model.QuadrantTimeSink)
	if !strings.Contains(got, "no rush") {
		t.Errorf("Reason = %q, want it to contain %q", got, "no rush")
	}
	if !strings.HasPrefix(got, "Time sink") {
		t.Errorf("Reason = %q, want prefix %q", got, "Time sink")
	}
}

func TestDecorateEndToEnd(t *testing.T) {
	a := model.Task{ID: "a", Name: "A", Impact: model.ImpactHigh, Effort: model.EffortLow,
		Deadline: model.DeadlineToday, CreatedAt: time.Now()}
	ra := Decorate(a)
	if ra.Quadrant != model.QuadrantQuickWin || ra.Score != 130 || ra.Tier != model.TierDoToday {
		t.Errorf("Decorate(A) = %s/%d/%s, want quick_win/130/do_today", ra.Quadrant, ra.Score, ra.Tier)
	}

	b := model.Task{ID: "b", Name: "B", Impact: model.ImpactLow, Effort: model.EffortHigh,
		Deadline: model.DeadlineAfterSprint, CreatedAt: time.Now()}
	rb := Decorate(b)
	if rb.Quadrant != model.QuadrantTimeSink || rb.Score != 10 || rb.Tier != model.TierDefer {
		t.Errorf("Decorate(B) = %s/%d/%s, want time_sink/10/defer", rb.Quadrant, rb.Score, rb.Tier)
	}
}
