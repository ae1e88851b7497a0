package review

import (
	"testing"
	"time"

	"github.com/existflow/tempo/internal/model"
	"github.com/existflow/tempo/internal/store"
)

var (
	day1 = time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
)

// newVisitedStore returns a store that looks like it was last used on day1.
func newVisitedStore(t *testing.T, names ...string) *store.Store {
	t.Helper()
	s := store.Open(store.NewMemoryKV(), store.NewMemoryReviewLog())
	s.MarkVisited()
	for _, name := range names {
		if _, err := s.Add(model.NewTask(name, model.ImpactHigh, model.EffortLow, model.DeadlineToday)); err != nil {
			t.Fatal(err)
		}
	}
	s.SetLastActiveDay(store.DayKey(day1))
	return s
}

func TestNoSessionOnSameDay(t *testing.T) {
	s := newVisitedStore(t, "task")
	s.SetLastActiveDay(store.DayKey(day2))

	if sess := Start(s, day2); sess != nil {
		t.Error("no session expected when the day has not changed")
	}
}

func TestNoSessionWithoutTasks(t *testing.T) {
	s := newVisitedStore(t)

	sess := Start(s, day2)
	if sess != nil {
		t.Error("no session expected with an empty active list")
	}
	if s.LastActiveDay() != store.DayKey(day2) {
		t.Error("marker should advance immediately when nothing is pending")
	}
}

func TestNoSessionOnFirstEverLoad(t *testing.T) {
	s := store.Open(store.NewMemoryKV(), store.NewMemoryReviewLog())
	if _, err := s.Add(model.NewTask("t", model.ImpactHigh, model.EffortLow, model.DeadlineToday)); err != nil {
		t.Fatal(err)
	}

	// No marker, no visited flag: nothing to carry over.
	if sess := Start(s, day2); sess != nil {
		t.Error("no session expected before the first day marker exists")
	}
}

func TestDismissScenario(t *testing.T) {
	s := newVisitedStore(t, "leftover")

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}
	pending := sess.Pending()
	if len(pending) != 1 || pending[0].Name != "leftover" {
		t.Fatalf("pending = %v, want exactly the leftover task", pending)
	}

	if err := sess.Dismiss(pending[0].ID); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}

	if len(s.Active()) != 0 {
		t.Error("dismissed task should leave the active set")
	}
	if len(s.Completed()) != 0 {
		t.Error("dismissed task must not be completed")
	}
	if !sess.Done() {
		t.Error("session should be done")
	}
	if s.LastActiveDay() != store.DayKey(day2) {
		t.Error("marker should advance when the session closes")
	}
}

func TestCompleteAndKeep(t *testing.T) {
	s := newVisitedStore(t, "finish", "keep")

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}

	var finishID, keepID string
	for _, p := range sess.Pending() {
		switch p.Name {
		case "finish":
			finishID = p.ID
		case "keep":
			keepID = p.ID
		}
	}

	if err := sess.Complete(finishID, day2); err != nil {
		t.Fatal(err)
	}
	if sess.Done() {
		t.Error("session should still have one pending task")
	}
	if s.LastActiveDay() == store.DayKey(day2) {
		t.Error("marker must not advance mid-session")
	}

	if err := sess.Keep(keepID); err != nil {
		t.Fatal(err)
	}
	if !sess.Done() {
		t.Error("session should be done")
	}

	if len(s.Completed()) != 1 || s.Completed()[0].ID != finishID {
		t.Error("completed task did not land in the completed list")
	}
	if len(s.Active()) != 1 || s.Active()[0].ID != keepID {
		t.Error("kept task should stay active")
	}
}

func TestReschedule(t *testing.T) {
	s := newVisitedStore(t, "push it")

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}
	id := sess.Pending()[0].ID

	if err := sess.Reschedule(id, model.DeadlineAfterSprint); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Deadline != model.DeadlineAfterSprint {
		t.Errorf("deadline = %s, want after_sprint", got.Deadline)
	}
	if !sess.Done() {
		t.Error("session should be done")
	}
}

func TestDismissAll(t *testing.T) {
	s := newVisitedStore(t, "one", "two", "three")

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}

	sess.DismissAll()

	if len(s.Active()) != 0 {
		t.Error("all tasks should be gone from the active set")
	}
	if len(s.Completed()) != 0 {
		t.Error("dismiss-all must not complete anything")
	}
	if !sess.Done() {
		t.Error("session should be done")
	}
	if s.LastActiveDay() != store.DayKey(day2) {
		t.Error("marker should advance")
	}
}

func TestResumeAfterPartialSession(t *testing.T) {
	s := newVisitedStore(t, "resolved", "still pending")

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}
	var resolvedID string
	for _, p := range sess.Pending() {
		if p.Name == "resolved" {
			resolvedID = p.ID
		}
	}
	if err := sess.Keep(resolvedID); err != nil {
		t.Fatal(err)
	}

	// Simulate an app restart before the session finished: the resolved
	// task must not be prompted again.
	sess2 := Start(s, day2)
	if sess2 == nil {
		t.Fatal("expected the session to resume")
	}
	pending := sess2.Pending()
	if len(pending) != 1 || pending[0].Name != "still pending" {
		t.Fatalf("resumed pending = %v, want only the unresolved task", pending)
	}
}

func TestFullyReviewedAdvancesWithoutSession(t *testing.T) {
	s := newVisitedStore(t, "done yesterday")

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}
	if err := sess.Keep(sess.Pending()[0].ID); err != nil {
		t.Fatal(err)
	}

	// Reload after everything is resolved: no session, marker advanced.
	s.SetLastActiveDay(store.DayKey(day1)) // pretend the advance was lost
	if again := Start(s, day2); again != nil {
		t.Error("no session expected when every task was already reviewed")
	}
	if s.LastActiveDay() != store.DayKey(day2) {
		t.Error("marker should advance")
	}
}

func TestDueDoesNotConsumeTrigger(t *testing.T) {
	s := newVisitedStore(t, "pending")

	if !Due(s, day2) {
		t.Fatal("review should be due")
	}
	// Due must not advance the marker or touch the log.
	if s.LastActiveDay() != store.DayKey(day1) {
		t.Error("Due must not advance the marker")
	}
	if sess := Start(s, day2); sess == nil {
		t.Error("session should still start after Due")
	}
}

func TestPendingRankedByPriority(t *testing.T) {
	s := store.Open(store.NewMemoryKV(), store.NewMemoryReviewLog())
	s.MarkVisited()
	low := model.NewTask("low", model.ImpactLow, model.EffortHigh, model.DeadlineAfterSprint)
	high := model.NewTask("high", model.ImpactHigh, model.EffortLow, model.DeadlineToday)
	if _, err := s.Add(low); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(high); err != nil {
		t.Fatal(err)
	}
	s.SetLastActiveDay(store.DayKey(day1))

	sess := Start(s, day2)
	if sess == nil {
		t.Fatal("expected a review session")
	}
	pending := sess.Pending()
	if pending[0].Name != "high" || pending[1].Name != "low" {
		t.Errorf("pending not in rank order: %s, %s", pending[0].Name, pending[1].Name)
	}
}

func TestOldReviewRecordsPruned(t *testing.T) {
	kv := store.NewMemoryKV()
	log := store.NewMemoryReviewLog()
	s := store.Open(kv, log)
	s.MarkVisited()
	s.SetLastActiveDay(store.DayKey(day2))

	ancient := store.DayKey(day2.AddDate(0, 0, -40))
	recent := store.DayKey(day2.AddDate(0, 0, -5))
	if err := log.MarkReviewed(ancient, "old-task"); err != nil {
		t.Fatal(err)
	}
	if err := log.MarkReviewed(recent, "recent-task"); err != nil {
		t.Fatal(err)
	}

	Start(s, day2)

	old, _ := log.Reviewed(ancient)
	if len(old) != 0 {
		t.Error("records older than 30 days should be pruned at load")
	}
	kept, _ := log.Reviewed(recent)
	if !kept["recent-task"] {
		t.Error("recent records must survive pruning")
	}
}
