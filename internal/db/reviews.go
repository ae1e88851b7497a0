package db

import "fmt"

// The reviews table records which tasks the daily review has already
// triaged, keyed by calendar day. DB satisfies the store.ReviewLog contract.

// MarkReviewed records ids as reviewed on the given day.
func (db *DB) MarkReviewed(day string, ids ...string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin review transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range ids {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO reviews (day, task_id) VALUES (?, ?)", day, id,
		); err != nil {
			return fmt.Errorf("failed to record review for %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// Reviewed returns the set of task ids reviewed on the given day.
func (db *DB) Reviewed(day string) (map[string]bool, error) {
	rows, err := db.Query("SELECT task_id FROM reviews WHERE day = ?", day)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews for %s: %w", day, err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

// Prune deletes review records for days before the given day key. Day keys
// are ISO dates, so string comparison orders them correctly.
func (db *DB) Prune(before string) error {
	if _, err := db.Exec("DELETE FROM reviews WHERE day < ?", before); err != nil {
		return fmt.Errorf("failed to prune reviews: %w", err)
	}
	return nil
}
