package cli

import (
	"fmt"
	"time"

	"github.com/existflow/tempo/internal/config"
	"github.com/existflow/tempo/internal/db"
	"github.com/existflow/tempo/internal/logger"
	"github.com/existflow/tempo/internal/review"
	"github.com/existflow/tempo/internal/store"
)

// App bundles the open database and store for one command invocation.
type App struct {
	Store *store.Store
	dbase *db.DB
}

// loadConfig loads the user config, falling back to defaults when the file
// is missing or unreadable. Never returns nil.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", logger.F("error", err))
		return config.DefaultConfig()
	}
	return cfg
}

// openApp opens the database (or an in-memory backend with --ephemeral) and
// loads the store.
func openApp() (*App, error) {
	if ephemeral {
		return &App{Store: store.Open(store.NewMemoryKV(), store.NewMemoryReviewLog())}, nil
	}

	cfg := loadConfig()

	var dbase *db.DB
	var err error
	if cfg.DBPath != "" {
		dbase, err = db.Open(cfg.DBPath)
	} else {
		dbase, err = db.OpenDefault()
	}
	if err != nil {
		return nil, err
	}

	return &App{Store: store.Open(dbase, dbase), dbase: dbase}, nil
}

// Close closes the underlying database, if any.
func (a *App) Close() {
	if a.dbase != nil {
		_ = a.dbase.Close()
		logger.Info("Database closed")
	}
}

// startup runs the bookkeeping every non-interactive command shares: mark
// the app as used and seed the day marker on first run. The marker is only
// advanced by the review flow, so a pending review is never consumed here.
func startup(st *store.Store) {
	st.MarkVisited()
	if st.LastActiveDay() == "" {
		st.SetLastActiveDay(store.DayKey(time.Now()))
	}
}

// hintReview prints a nudge when a carry-over review is waiting.
func hintReview(st *store.Store) {
	if review.Due(st, time.Now()) {
		fmt.Println("⏰ Tasks are carried over from a previous day. Run: tempo review")
	}
}

// shortID truncates an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// confirm asks a yes/no question on stdin and returns the answer.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var response string
	_, _ = fmt.Scanln(&response)
	return response == "y" || response == "Y"
}
