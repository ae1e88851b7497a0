package store

import "sort"

// MemoryKV is an in-memory KV implementation. It backs tests and the
// --ephemeral mode where nothing is written to disk.
type MemoryKV struct {
	data map[string]string

	// FailWrites makes Set and Remove report an error, for exercising the
	// degraded-persistence path.
	FailWrites bool
}

// NewMemoryKV returns an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	if m.FailWrites {
		return errWriteFailed
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Remove(key string) error {
	if m.FailWrites {
		return errWriteFailed
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) ListKeys() ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// MemoryReviewLog is an in-memory ReviewLog implementation.
type MemoryReviewLog struct {
	days map[string]map[string]bool
}

// NewMemoryReviewLog returns an empty in-memory review log.
func NewMemoryReviewLog() *MemoryReviewLog {
	return &MemoryReviewLog{days: make(map[string]map[string]bool)}
}

func (m *MemoryReviewLog) MarkReviewed(day string, ids ...string) error {
	set, ok := m.days[day]
	if !ok {
		set = make(map[string]bool)
		m.days[day] = set
	}
	for _, id := range ids {
		set[id] = true
	}
	return nil
}

func (m *MemoryReviewLog) Reviewed(day string) (map[string]bool, error) {
	out := make(map[string]bool, len(m.days[day]))
	for id := range m.days[day] {
		out[id] = true
	}
	return out, nil
}

func (m *MemoryReviewLog) Prune(before string) error {
	for day := range m.days {
		if day < before {
			delete(m.days, day)
		}
	}
	return nil
}

type kvError string

func (e kvError) Error() string { return string(e) }

const errWriteFailed = kvError("write failed")
