package engine

import (
	"sort"

	"github.com/existflow/tempo/internal/model"
)

// RankedTask is a task decorated with its derived priority fields. The
// persisted task is embedded untouched; the derived fields are recomputed on
// every ranking and never written back to storage.
type RankedTask struct {
	model.Task
	Quadrant model.Quadrant `json:"quadrant"`
	Score    int            `json:"score"`
	Tier     model.Tier     `json:"tier"`
	Reason   string         `json:"reason"`
}

// Decorate computes the derived priority fields for a single task.
func Decorate(task model.Task) RankedTask {
	quadrant := Classify(task.Impact, task.Effort)
	score := Score(quadrant, task.Deadline)
	return RankedTask{
		Task:     task,
		Quadrant: quadrant,
		Score:    score,
		Tier:     TierFor(score),
		Reason:   Reason(task, quadrant),
	}
}

// Rank decorates and sorts tasks into priority order: score descending, then
// deadline urgency ascending, then creation time ascending. The final
// creation-time key makes the order a deterministic total order, so ranking
// an already-ranked list leaves it unchanged. The input slice is not mutated.
func Rank(tasks []model.Task) []RankedTask {
	ranked := make([]RankedTask, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, Decorate(t))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Deadline.Urgency() != b.Deadline.Urgency() {
			return a.Deadline.Urgency() < b.Deadline.Urgency()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return ranked
}

// GroupByTier splits a ranked list into per-tier groups, preserving order.
// Tiers are returned dashboard-first: do_today, should_do, could_do, defer.
func GroupByTier(ranked []RankedTask) map[model.Tier][]RankedTask {
	groups := make(map[model.Tier][]RankedTask)
	for _, t := range ranked {
		groups[t.Tier] = append(groups[t.Tier], t)
	}
	return groups
}

// TierOrder is the display order of tiers on the dashboard.
var TierOrder = []model.Tier{model.TierDoToday, model.TierShouldDo, model.TierCouldDo, model.TierDefer}
