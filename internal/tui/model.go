package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/tempo/internal/engine"
	"github.com/existflow/tempo/internal/logger"
	"github.com/existflow/tempo/internal/model"
	"github.com/existflow/tempo/internal/review"
	"github.com/existflow/tempo/internal/store"
)

// View represents which task collection is on screen
type View int

const (
	ViewDashboard View = iota
	ViewCompleted
	ViewArchive
)

// Mode represents the current UI mode
type Mode int

const (
	ModeWelcome Mode = iota
	ModeNormal
	ModeWizard
	ModeReview
	ModeReviewDeadline
	ModeConfirm
	ModeHelp
)

// wizardStep is the current field of the add/edit wizard
type wizardStep int

const (
	stepName wizardStep = iota
	stepImpact
	stepEffort
	stepDeadline
)

// wizard holds the add/edit form state
type wizard struct {
	editID   string // empty when adding
	step     wizardStep
	impact   int // choice cursors
	effort   int
	deadline int
}

// confirmKind is which destructive action awaits confirmation
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteTask
	confirmPurgeArchived
	confirmArchiveCompleted
	confirmDismissAll
)

// Model is the main TUI model
type Model struct {
	store   *store.Store
	session *review.Session

	// Collections as rendered
	ranked    []engine.RankedTask
	completed []model.CompletedTask
	archived  []model.ArchivedTask

	// UI state
	width  int
	height int
	view   View
	mode   Mode
	cursor int

	// Input
	input  textinput.Model
	wizard wizard

	// Pending confirmation
	confirm       confirmKind
	confirmTarget string // task id, when the action has one

	message string
}

// NewModel creates a new TUI model. A non-nil review session opens the daily
// review modal before the dashboard is usable.
func NewModel(st *store.Store, session *review.Session, firstRun bool) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		store:   st,
		session: session,
		mode:    ModeNormal,
		input:   ti,
	}
	if firstRun {
		m.mode = ModeWelcome
	} else if session != nil && !session.Done() {
		m.mode = ModeReview
	}

	m.reload()
	logger.Debug("TUI model initialized",
		logger.F("tasks", len(m.ranked)),
		logger.F("mode", int(m.mode)))
	return m
}

// reload re-ranks and re-reads every collection after a mutation
func (m *Model) reload() {
	m.ranked = m.store.Ranked()
	m.completed = m.store.Completed()
	m.archived = m.store.Archived()
	if m.cursor >= m.listLen() {
		m.cursor = m.listLen() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// listLen is the length of the list the cursor moves over in the current view
func (m *Model) listLen() int {
	switch m.view {
	case ViewCompleted:
		return len(m.completed)
	case ViewArchive:
		return len(m.archived)
	default:
		return len(m.ranked)
	}
}

// currentTask returns the ranked task under the cursor on the dashboard
func (m *Model) currentTask() *engine.RankedTask {
	if m.view == ViewDashboard && m.cursor < len(m.ranked) {
		return &m.ranked[m.cursor]
	}
	return nil
}

// currentCompleted returns the completed task under the cursor
func (m *Model) currentCompleted() *model.CompletedTask {
	if m.view == ViewCompleted && m.cursor < len(m.completed) {
		return &m.completed[m.cursor]
	}
	return nil
}

// currentArchived returns the archived task under the cursor
func (m *Model) currentArchived() *model.ArchivedTask {
	if m.view == ViewArchive && m.cursor < len(m.archived) {
		return &m.archived[m.cursor]
	}
	return nil
}

// wizardImpact maps the wizard cursor to an impact value
func (w wizard) wizardImpact() model.Impact {
	if w.impact == 0 {
		return model.ImpactHigh
	}
	return model.ImpactLow
}

// wizardEffort maps the wizard cursor to an effort value
func (w wizard) wizardEffort() model.Effort {
	if w.effort == 0 {
		return model.EffortLow
	}
	return model.EffortHigh
}

var deadlineChoices = []model.Deadline{
	model.DeadlineToday,
	model.DeadlineThisWeek,
	model.DeadlineThisSprint,
	model.DeadlineAfterSprint,
}

// wizardDeadline maps the wizard cursor to a deadline value
func (w wizard) wizardDeadline() model.Deadline {
	return deadlineChoices[w.deadline]
}
