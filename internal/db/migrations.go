package db

import "fmt"

// migrate runs all database migrations
func (db *DB) migrate() error {
	migrations := []string{
		migrationCreateState,
		migrationCreateReviews,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const migrationCreateState = `
CREATE TABLE IF NOT EXISTS state (
    key TEXT PRIMARY KEY,
    value TEXT
);
`

const migrationCreateReviews = `
CREATE TABLE IF NOT EXISTS reviews (
    day TEXT NOT NULL,
    task_id TEXT NOT NULL,
    PRIMARY KEY (day, task_id)
);

CREATE INDEX IF NOT EXISTS idx_reviews_day ON reviews(day);
`
