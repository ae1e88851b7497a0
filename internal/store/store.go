package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/existflow/tempo/internal/engine"
	"github.com/existflow/tempo/internal/logger"
	"github.com/existflow/tempo/internal/model"
)

// DayKeyFormat is how calendar days are encoded in the last-active-day
// marker and the review log.
const DayKeyFormat = "2006-01-02"

// DayKey returns the day key for a point in time.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ErrNotFound is returned when no task matches the given id.
var ErrNotFound = fmt.Errorf("task not found")

// Store holds the in-memory task collections and writes them through to the
// key-value backend on every mutation. Persistence failures are logged and
// the in-memory state stays authoritative for the session.
type Store struct {
	kv      KV
	reviews ReviewLog

	active    []model.Task
	completed []model.CompletedTask
	archived  []model.ArchivedTask
}

// Open loads all collections from the backend. Records that fail to decode
// or lack a valid timestamp are dropped and logged; a bad record never
// aborts the load.
func Open(kv KV, reviews ReviewLog) *Store {
	s := &Store{kv: kv, reviews: reviews}
	s.active = loadSlice(kv, KeyTasks, func(t model.Task) bool {
		return t.ID != "" && !t.CreatedAt.IsZero()
	})
	s.completed = loadSlice(kv, KeyCompleted, func(t model.CompletedTask) bool {
		return t.ID != "" && !t.CreatedAt.IsZero() && !t.CompletedAt.IsZero()
	})
	s.archived = loadSlice(kv, KeyArchived, func(t model.ArchivedTask) bool {
		return t.ID != "" && !t.CreatedAt.IsZero() && !t.ArchivedAt.IsZero()
	})
	keys, _ := kv.ListKeys()
	logger.Debug("Store loaded",
		logger.F("keys", len(keys)),
		logger.F("active", len(s.active)),
		logger.F("completed", len(s.completed)),
		logger.F("archived", len(s.archived)))
	return s
}

// loadSlice reads a JSON array element by element so one malformed record
// does not take the rest of the collection down with it.
func loadSlice[T any](kv KV, key string, valid func(T) bool) []T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Error("Failed to read collection", logger.F("key", key), logger.F("error", err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		logger.Error("Corrupted collection blob, starting empty", logger.F("key", key), logger.F("error", err))
		return nil
	}

	out := make([]T, 0, len(elems))
	for i, e := range elems {
		var t T
		if err := json.Unmarshal(e, &t); err != nil {
			logger.Warn("Dropping malformed record", logger.F("key", key), logger.F("index", i), logger.F("error", err))
			continue
		}
		if !valid(t) {
			logger.Warn("Dropping record with missing fields", logger.F("key", key), logger.F("index", i))
			continue
		}
		out = append(out, t)
	}
	return out
}

// save writes one collection back. Failure degrades to "not durably saved".
func (s *Store) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to encode collection", logger.F("key", key), logger.F("error", err))
		return
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		logger.Error("Failed to persist collection", logger.F("key", key), logger.F("error", err))
	}
}

func (s *Store) saveActive()    { s.save(KeyTasks, s.active) }
func (s *Store) saveCompleted() { s.save(KeyCompleted, s.completed) }
func (s *Store) saveArchived()  { s.save(KeyArchived, s.archived) }

// Active returns a copy of the active task collection.
func (s *Store) Active() []model.Task {
	out := make([]model.Task, len(s.active))
	copy(out, s.active)
	return out
}

// Completed returns a copy of the completed task collection, newest first.
func (s *Store) Completed() []model.CompletedTask {
	out := make([]model.CompletedTask, len(s.completed))
	copy(out, s.completed)
	return out
}

// Archived returns a copy of the archived task collection, newest first.
func (s *Store) Archived() []model.ArchivedTask {
	out := make([]model.ArchivedTask, len(s.archived))
	copy(out, s.archived)
	return out
}

// Ranked returns the active collection ranked by the engine.
func (s *Store) Ranked() []engine.RankedTask {
	return engine.Rank(s.active)
}

// exists reports whether id is present in any of the three collections.
func (s *Store) exists(id string) bool {
	for _, t := range s.active {
		if t.ID == id {
			return true
		}
	}
	for _, t := range s.completed {
		if t.ID == id {
			return true
		}
	}
	for _, t := range s.archived {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Add validates and inserts a new active task.
func (s *Store) Add(task model.Task) (model.Task, error) {
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	if s.exists(task.ID) {
		return model.Task{}, fmt.Errorf("duplicate task id %s", task.ID)
	}
	s.active = append(s.active, task)
	s.saveActive()
	logger.Info("Task added", logger.F("id", task.ID), logger.F("name", task.Name))
	return task, nil
}

// Get returns the active task with the given id.
func (s *Store) Get(id string) (model.Task, error) {
	for _, t := range s.active {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, ErrNotFound
}

// Find resolves a full id or unique id prefix to an active task.
func (s *Store) Find(idOrPrefix string) (model.Task, error) {
	if t, err := s.Get(idOrPrefix); err == nil {
		return t, nil
	}
	var match model.Task
	found := 0
	for _, t := range s.active {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			match = t
			found++
		}
	}
	switch found {
	case 0:
		return model.Task{}, ErrNotFound
	case 1:
		return match, nil
	default:
		return model.Task{}, fmt.Errorf("ambiguous id prefix %q matches %d tasks", idOrPrefix, found)
	}
}

// FindCompleted resolves a full id or unique id prefix to a completed task.
func (s *Store) FindCompleted(idOrPrefix string) (model.CompletedTask, error) {
	var match model.CompletedTask
	found := 0
	for _, t := range s.completed {
		if t.ID == idOrPrefix {
			return t, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			match = t
			found++
		}
	}
	switch found {
	case 0:
		return model.CompletedTask{}, ErrNotFound
	case 1:
		return match, nil
	default:
		return model.CompletedTask{}, fmt.Errorf("ambiguous id prefix %q matches %d tasks", idOrPrefix, found)
	}
}

// FindArchived resolves a full id or unique id prefix to an archived task.
func (s *Store) FindArchived(idOrPrefix string) (model.ArchivedTask, error) {
	var match model.ArchivedTask
	found := 0
	for _, t := range s.archived {
		if t.ID == idOrPrefix {
			return t, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			match = t
			found++
		}
	}
	switch found {
	case 0:
		return model.ArchivedTask{}, ErrNotFound
	case 1:
		return match, nil
	default:
		return model.ArchivedTask{}, fmt.Errorf("ambiguous id prefix %q matches %d tasks", idOrPrefix, found)
	}
}

// Update replaces the editable fields of an active task.
func (s *Store) Update(id, name string, impact model.Impact, effort model.Effort, deadline model.Deadline) (model.Task, error) {
	for i, t := range s.active {
		if t.ID != id {
			continue
		}
		updated := t
		updated.Name = strings.TrimSpace(name)
		updated.Impact = impact
		updated.Effort = effort
		updated.Deadline = deadline
		if err := updated.Validate(); err != nil {
			return model.Task{}, err
		}
		s.active[i] = updated
		s.saveActive()
		return updated, nil
	}
	return model.Task{}, ErrNotFound
}

// UpdateDeadline changes only the deadline of an active task. Used by the
// daily review's reschedule action.
func (s *Store) UpdateDeadline(id string, deadline model.Deadline) (model.Task, error) {
	for i, t := range s.active {
		if t.ID != id {
			continue
		}
		updated := t
		updated.Deadline = deadline
		if err := updated.Validate(); err != nil {
			return model.Task{}, err
		}
		s.active[i] = updated
		s.saveActive()
		return updated, nil
	}
	return model.Task{}, ErrNotFound
}

// Delete removes an active task outright.
func (s *Store) Delete(id string) error {
	for i, t := range s.active {
		if t.ID == id {
			s.active = append(s.active[:i], s.active[i+1:]...)
			s.saveActive()
			logger.Info("Task deleted", logger.F("id", id))
			return nil
		}
	}
	return ErrNotFound
}

// Complete moves an active task to the completed collection, freezing its
// derived fields as they stand at completion time.
func (s *Store) Complete(id string, now time.Time) (model.CompletedTask, error) {
	for i, t := range s.active {
		if t.ID != id {
			continue
		}
		ranked := engine.Decorate(t)
		done := model.CompletedTask{
			Task:        t,
			Quadrant:    ranked.Quadrant,
			Score:       ranked.Score,
			Tier:        ranked.Tier,
			Reason:      ranked.Reason,
			CompletedAt: now,
		}
		s.active = append(s.active[:i], s.active[i+1:]...)
		s.completed = append([]model.CompletedTask{done}, s.completed...)
		s.saveActive()
		s.saveCompleted()
		logger.Info("Task completed", logger.F("id", id))
		return done, nil
	}
	return model.CompletedTask{}, ErrNotFound
}

// Uncomplete moves a completed task back to the active collection, dropping
// the frozen derived fields and the completion time.
func (s *Store) Uncomplete(id string) (model.Task, error) {
	for i, t := range s.completed {
		if t.ID == id {
			s.completed = append(s.completed[:i], s.completed[i+1:]...)
			s.active = append(s.active, t.Task)
			s.saveActive()
			s.saveCompleted()
			logger.Info("Task reopened", logger.F("id", id))
			return t.Task, nil
		}
	}
	return model.Task{}, ErrNotFound
}

// ArchiveCompleted moves every completed task into the archive and returns
// how many were moved.
func (s *Store) ArchiveCompleted(now time.Time) int {
	if len(s.completed) == 0 {
		return 0
	}
	moved := make([]model.ArchivedTask, 0, len(s.completed))
	for _, t := range s.completed {
		moved = append(moved, model.ArchivedTask{CompletedTask: t, ArchivedAt: now})
	}
	s.archived = append(moved, s.archived...)
	s.completed = nil
	s.saveCompleted()
	s.saveArchived()
	logger.Info("Completed tasks archived", logger.F("count", len(moved)))
	return len(moved)
}

// Restore moves an archived task back to the completed collection.
func (s *Store) Restore(id string) (model.CompletedTask, error) {
	for i, t := range s.archived {
		if t.ID == id {
			s.archived = append(s.archived[:i], s.archived[i+1:]...)
			s.completed = append([]model.CompletedTask{t.CompletedTask}, s.completed...)
			s.saveCompleted()
			s.saveArchived()
			logger.Info("Task restored from archive", logger.F("id", id))
			return t.CompletedTask, nil
		}
	}
	return model.CompletedTask{}, ErrNotFound
}

// PurgeArchived permanently deletes an archived task.
func (s *Store) PurgeArchived(id string) error {
	for i, t := range s.archived {
		if t.ID == id {
			s.archived = append(s.archived[:i], s.archived[i+1:]...)
			s.saveArchived()
			logger.Info("Archived task purged", logger.F("id", id))
			return nil
		}
	}
	return ErrNotFound
}

// ClearActive drops every active task. Completed and archived collections
// are untouched.
func (s *Store) ClearActive() {
	s.active = nil
	if err := s.kv.Remove(KeyTasks); err != nil {
		logger.Error("Failed to clear active tasks", logger.F("error", err))
	}
	logger.Info("Active tasks cleared")
}

// HasVisited reports whether the app has been used before.
func (s *Store) HasVisited() bool {
	v, ok, err := s.kv.Get(KeyHasVisited)
	if err != nil {
		logger.Error("Failed to read visited flag", logger.F("error", err))
		return false
	}
	return ok && v == "true"
}

// MarkVisited records that the app has been used.
func (s *Store) MarkVisited() {
	if err := s.kv.Set(KeyHasVisited, "true"); err != nil {
		logger.Error("Failed to set visited flag", logger.F("error", err))
	}
}

// LastActiveDay returns the stored day marker, or "" if none.
func (s *Store) LastActiveDay() string {
	v, ok, err := s.kv.Get(KeyLastActiveDay)
	if err != nil {
		logger.Error("Failed to read day marker", logger.F("error", err))
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

// SetLastActiveDay advances the day marker.
func (s *Store) SetLastActiveDay(day string) {
	if err := s.kv.Set(KeyLastActiveDay, day); err != nil {
		logger.Error("Failed to set day marker", logger.F("error", err))
	}
}

// Reviews exposes the review log for the daily review session.
func (s *Store) Reviews() ReviewLog {
	return s.reviews
}
