// Package review implements the daily carry-over flow: when the app is
// opened on a new calendar day with active tasks left over, each task must
// be triaged once before the day marker advances.
package review

import (
	"time"

	"github.com/existflow/tempo/internal/engine"
	"github.com/existflow/tempo/internal/logger"
	"github.com/existflow/tempo/internal/model"
	"github.com/existflow/tempo/internal/store"
)

// retentionDays is how long review records are kept before pruning.
const retentionDays = 30

// Session is one day's carry-over review. The pending set is captured once
// at trigger time and only shrinks through review resolutions, so a partial
// session survives an app restart without re-prompting resolved tasks.
type Session struct {
	store   *store.Store
	today   string // day key to advance the marker to
	logDay  string // day key the resolutions are recorded under (yesterday)
	pending []engine.RankedTask
}

// Due reports whether a carry-over review is waiting, without side effects.
// CLI commands use it to hint at `tempo review` without consuming the
// trigger.
func Due(s *store.Store, now time.Time) bool {
	today := store.DayKey(now)
	last := s.LastActiveDay()
	if last == "" || last == today || !s.HasVisited() {
		return false
	}
	active := s.Active()
	if len(active) == 0 {
		return false
	}
	reviewed, err := s.Reviews().Reviewed(store.DayKey(now.AddDate(0, 0, -1)))
	if err != nil {
		return true
	}
	for _, t := range active {
		if !reviewed[t.ID] {
			return true
		}
	}
	return false
}

// Start checks the trigger condition and returns a session, or nil when no
// review is due. It also prunes old review records and, when no session
// starts, advances the last-active-day marker immediately.
//
// A review is due when all hold: the day marker is set and differs from
// today, the active collection is non-empty, the app has been used before,
// and at least one active task was not already reviewed for yesterday.
func Start(s *store.Store, now time.Time) *Session {
	today := store.DayKey(now)
	yesterday := store.DayKey(now.AddDate(0, 0, -1))

	cutoff := store.DayKey(now.AddDate(0, 0, -retentionDays))
	if err := s.Reviews().Prune(cutoff); err != nil {
		logger.Warn("Failed to prune review log", logger.F("error", err))
	}

	last := s.LastActiveDay()
	active := s.Active()
	newDay := last != "" && last != today

	if !newDay || len(active) == 0 || !s.HasVisited() {
		s.SetLastActiveDay(today)
		return nil
	}

	reviewed, err := s.Reviews().Reviewed(yesterday)
	if err != nil {
		logger.Error("Failed to read review log", logger.F("error", err))
		reviewed = nil
	}

	var unreviewed []model.Task
	for _, t := range active {
		if !reviewed[t.ID] {
			unreviewed = append(unreviewed, t)
		}
	}
	if len(unreviewed) == 0 {
		// Everything was already triaged this cycle.
		s.SetLastActiveDay(today)
		return nil
	}

	logger.Info("Daily review started",
		logger.F("pending", len(unreviewed)),
		logger.F("last_active_day", last))
	return &Session{
		store:   s,
		today:   today,
		logDay:  yesterday,
		pending: engine.Rank(unreviewed),
	}
}

// Pending returns the tasks still waiting for a resolution, in rank order.
func (r *Session) Pending() []engine.RankedTask {
	out := make([]engine.RankedTask, len(r.pending))
	copy(out, r.pending)
	return out
}

// Done reports whether every captured task has been resolved.
func (r *Session) Done() bool {
	return len(r.pending) == 0
}

// Complete resolves a task by finishing it.
func (r *Session) Complete(id string, now time.Time) error {
	if _, err := r.store.Complete(id, now); err != nil {
		return err
	}
	r.resolve(id)
	return nil
}

// Keep resolves a task by leaving it active unchanged.
func (r *Session) Keep(id string) error {
	if _, err := r.store.Get(id); err != nil {
		return err
	}
	r.resolve(id)
	return nil
}

// Reschedule resolves a task by keeping it active with a new deadline.
func (r *Session) Reschedule(id string, deadline model.Deadline) error {
	if _, err := r.store.UpdateDeadline(id, deadline); err != nil {
		return err
	}
	r.resolve(id)
	return nil
}

// Dismiss resolves a task by discarding it: removed from the active set
// without being completed or archived.
func (r *Session) Dismiss(id string) error {
	if err := r.store.Delete(id); err != nil {
		return err
	}
	r.resolve(id)
	return nil
}

// DismissAll discards every task still pending in the session at once.
func (r *Session) DismissAll() {
	for _, t := range r.pending {
		if err := r.store.Delete(t.ID); err != nil {
			logger.Warn("Dismiss-all skipped task", logger.F("id", t.ID), logger.F("error", err))
		}
		r.record(t.ID)
	}
	r.pending = nil
	r.finishIfDone()
}

// resolve records a single task as reviewed and drops it from the pending
// set, closing the session when it was the last one.
func (r *Session) resolve(id string) {
	r.record(id)
	for i, t := range r.pending {
		if t.ID == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			break
		}
	}
	r.finishIfDone()
}

func (r *Session) record(id string) {
	if err := r.store.Reviews().MarkReviewed(r.logDay, id); err != nil {
		logger.Error("Failed to record review", logger.F("id", id), logger.F("error", err))
	}
}

func (r *Session) finishIfDone() {
	if len(r.pending) == 0 {
		r.store.SetLastActiveDay(r.today)
		logger.Info("Daily review finished")
	}
}
