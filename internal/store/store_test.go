package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/existflow/tempo/internal/model"
)

func newTestStore(t *testing.T) (*Store, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return Open(kv, NewMemoryReviewLog()), kv
}

func addTask(t *testing.T, s *Store, name string) model.Task {
	t.Helper()
	task, err := s.Add(model.NewTask(name, model.ImpactHigh, model.EffortLow, model.DeadlineToday))
	if err != nil {
		t.Fatalf("Add(%s): %v", name, err)
	}
	return task
}

func TestAddAndRank(t *testing.T) {
	s, _ := newTestStore(t)

	a := addTask(t, s, "A")
	ranked := s.Ranked()
	if len(ranked) != 1 || ranked[0].ID != a.ID {
		t.Fatalf("Ranked = %v, want [%s]", ranked, a.ID)
	}
	if ranked[0].Score != 130 || ranked[0].Tier != model.TierDoToday {
		t.Errorf("derived fields = %d/%s, want 130/do_today", ranked[0].Score, ranked[0].Tier)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add(model.NewTask("   ", model.ImpactHigh, model.EffortLow, model.DeadlineToday))
	if err == nil {
		t.Error("blank name should be rejected")
	}
	if len(s.Active()) != 0 {
		t.Error("rejected task must not be stored")
	}
}

func TestCompleteLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	task := addTask(t, s, "finish me")

	now := time.Now()
	done, err := s.Complete(task.ID, now)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if done.CompletedAt.Before(task.CreatedAt) {
		t.Error("CompletedAt must not be earlier than CreatedAt")
	}
	if done.Score != 130 || done.Quadrant != model.QuadrantQuickWin {
		t.Errorf("frozen fields = %d/%s, want 130/quick_win", done.Score, done.Quadrant)
	}
	if len(s.Active()) != 0 {
		t.Error("completed task still in active list")
	}
	if len(s.Completed()) != 1 {
		t.Error("completed task missing from completed list")
	}

	// Round trip back to active.
	if _, err := s.Uncomplete(task.ID); err != nil {
		t.Fatalf("Uncomplete: %v", err)
	}
	if len(s.Active()) != 1 || len(s.Completed()) != 0 {
		t.Error("uncomplete did not move the task back")
	}
}

func TestArchiveRestorePurge(t *testing.T) {
	s, _ := newTestStore(t)
	task := addTask(t, s, "old work")
	if _, err := s.Complete(task.ID, time.Now()); err != nil {
		t.Fatal(err)
	}

	if n := s.ArchiveCompleted(time.Now()); n != 1 {
		t.Fatalf("ArchiveCompleted = %d, want 1", n)
	}
	if len(s.Completed()) != 0 || len(s.Archived()) != 1 {
		t.Fatal("archive did not move the task")
	}

	if _, err := s.Restore(task.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(s.Completed()) != 1 || len(s.Archived()) != 0 {
		t.Fatal("restore did not move the task back")
	}

	s.ArchiveCompleted(time.Now())
	if err := s.PurgeArchived(task.ID); err != nil {
		t.Fatalf("PurgeArchived: %v", err)
	}
	if len(s.Archived()) != 0 {
		t.Error("purged task still archived")
	}
}

func TestIDUniqueAcrossCollections(t *testing.T) {
	s, _ := newTestStore(t)
	task := addTask(t, s, "only once")

	if _, err := s.Add(task); err == nil {
		t.Error("duplicate id in active should be rejected")
	}

	if _, err := s.Complete(task.ID, time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(task); err == nil {
		t.Error("duplicate id in completed should be rejected")
	}

	s.ArchiveCompleted(time.Now())
	if _, err := s.Add(task); err == nil {
		t.Error("duplicate id in archived should be rejected")
	}

	// A given id lives in exactly one collection.
	count := 0
	for _, x := range s.Active() {
		if x.ID == task.ID {
			count++
		}
	}
	for _, x := range s.Completed() {
		if x.ID == task.ID {
			count++
		}
	}
	for _, x := range s.Archived() {
		if x.ID == task.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("id appears in %d collections, want 1", count)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	reviews := NewMemoryReviewLog()
	s := Open(kv, reviews)

	task := addTask(t, s, "persist me")
	done := addTask(t, s, "and me")
	if _, err := s.Complete(done.ID, time.Now()); err != nil {
		t.Fatal(err)
	}

	// Reopen against the same backend.
	s2 := Open(kv, reviews)
	if len(s2.Active()) != 1 || s2.Active()[0].ID != task.ID {
		t.Errorf("reloaded active = %v", s2.Active())
	}
	if len(s2.Completed()) != 1 || s2.Completed()[0].ID != done.ID {
		t.Errorf("reloaded completed = %v", s2.Completed())
	}
	if !s2.Active()[0].CreatedAt.Equal(task.CreatedAt) {
		t.Errorf("CreatedAt not preserved: %v vs %v", s2.Active()[0].CreatedAt, task.CreatedAt)
	}
}

func TestLoadDropsMalformedRecords(t *testing.T) {
	kv := NewMemoryKV()

	good := model.NewTask("good", model.ImpactHigh, model.EffortLow, model.DeadlineToday)
	goodJSON, _ := json.Marshal(good)

	// One good record, one with a broken timestamp, one missing fields.
	blob := `[` + string(goodJSON) + `,
		{"id":"bad1","name":"x","impact":"high","effort":"low","deadline":"today","created_at":"not-a-date"},
		{"name":"no id or timestamp"}]`
	if err := kv.Set(KeyTasks, blob); err != nil {
		t.Fatal(err)
	}

	s := Open(kv, NewMemoryReviewLog())
	active := s.Active()
	if len(active) != 1 || active[0].ID != good.ID {
		t.Fatalf("loaded %d tasks, want only the good one: %v", len(active), active)
	}
}

func TestLoadSurvivesCorruptBlob(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(KeyTasks, "{{{not json"); err != nil {
		t.Fatal(err)
	}

	s := Open(kv, NewMemoryReviewLog())
	if len(s.Active()) != 0 {
		t.Error("corrupt blob should load as empty, not crash")
	}
}

func TestWriteFailureDegradesSilently(t *testing.T) {
	kv := NewMemoryKV()
	s := Open(kv, NewMemoryReviewLog())

	kv.FailWrites = true
	task, err := s.Add(model.NewTask("unsaved", model.ImpactLow, model.EffortLow, model.DeadlineThisWeek))
	if err != nil {
		t.Fatalf("Add must not fail on persistence error: %v", err)
	}

	// In-memory state stays authoritative for the session.
	if _, err := s.Get(task.ID); err != nil {
		t.Error("task should remain in memory after failed write")
	}
}

func TestFindPrefix(t *testing.T) {
	s, _ := newTestStore(t)
	task := addTask(t, s, "findable")

	got, err := s.Find(task.ID[:8])
	if err != nil {
		t.Fatalf("Find by prefix: %v", err)
	}
	if got.ID != task.ID {
		t.Errorf("Find = %s, want %s", got.ID, task.ID)
	}

	if _, err := s.Find("zzzzzzzz"); err == nil {
		t.Error("unknown prefix should not match")
	}
}

func TestUpdateDeadline(t *testing.T) {
	s, _ := newTestStore(t)
	task := addTask(t, s, "reschedule me")

	updated, err := s.UpdateDeadline(task.ID, model.DeadlineAfterSprint)
	if err != nil {
		t.Fatalf("UpdateDeadline: %v", err)
	}
	if updated.Deadline != model.DeadlineAfterSprint {
		t.Errorf("Deadline = %s, want after_sprint", updated.Deadline)
	}
	if updated.Name != task.Name || updated.CreatedAt != task.CreatedAt {
		t.Error("UpdateDeadline must not touch other fields")
	}
}

func TestClearActive(t *testing.T) {
	s, _ := newTestStore(t)
	addTask(t, s, "a")
	done := addTask(t, s, "b")
	if _, err := s.Complete(done.ID, time.Now()); err != nil {
		t.Fatal(err)
	}

	s.ClearActive()
	if len(s.Active()) != 0 {
		t.Error("active tasks should be gone")
	}
	if len(s.Completed()) != 1 {
		t.Error("completed tasks must survive a clear")
	}
}

func TestFlagsAndDayMarker(t *testing.T) {
	s, _ := newTestStore(t)

	if s.HasVisited() {
		t.Error("fresh store should not be visited")
	}
	s.MarkVisited()
	if !s.HasVisited() {
		t.Error("MarkVisited did not stick")
	}

	if s.LastActiveDay() != "" {
		t.Error("fresh store should have no day marker")
	}
	s.SetLastActiveDay("2026-08-27")
	if s.LastActiveDay() != "2026-08-27" {
		t.Errorf("LastActiveDay = %q", s.LastActiveDay())
	}
}
