// Package store owns the three task collections (active, completed,
// archived) and persists them through a key-value contract. All mutations go
// through the Store; nothing else writes to the collections.
package store

// Storage keys for the persisted collections and flags.
const (
	KeyTasks         = "tasks"
	KeyCompleted     = "completed_tasks"
	KeyArchived      = "archived_tasks"
	KeyHasVisited    = "has_visited"
	KeyLastActiveDay = "last_active_day"
)

// KV is the persistence boundary. Values are JSON blobs or small flag
// strings; reads and writes are synchronous and local.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error

	// ListKeys returns all stored keys.
	ListKeys() ([]string, error)
}

// ReviewLog records which tasks were triaged by the daily review, keyed by
// calendar day, so a reloaded session never re-prompts a resolved task.
type ReviewLog interface {
	// MarkReviewed records ids as reviewed on the given day.
	MarkReviewed(day string, ids ...string) error

	// Reviewed returns the set of task ids reviewed on the given day.
	Reviewed(day string) (map[string]bool, error)

	// Prune deletes review records for days before the given day key.
	Prune(before string) error
}
