package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tempo/internal/model"
)

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeWelcome:
			return m.updateWelcome(msg)
		case ModeWizard:
			return m.updateWizard(msg)
		case ModeReview:
			return m.updateReview(msg)
		case ModeReviewDeadline:
			return m.updateReviewDeadline(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeHelp:
			if key.Matches(msg, keys.Escape) || key.Matches(msg, keys.Help) || key.Matches(msg, keys.Quit) {
				m.mode = ModeNormal
			}
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	m.store.MarkVisited()
	m.mode = ModeNormal
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Tab):
		m.view = (m.view + 1) % 3
		m.cursor = 0

	case key.Matches(msg, keys.Add):
		if m.view == ViewDashboard {
			m.wizard = wizard{}
			m.input.SetValue("")
			m.input.Focus()
			m.mode = ModeWizard
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Edit):
		if t := m.currentTask(); t != nil {
			m.wizard = wizard{editID: t.ID}
			m.wizard.impact = choiceIndex(t.Impact == model.ImpactLow)
			m.wizard.effort = choiceIndex(t.Effort == model.EffortHigh)
			m.wizard.deadline = t.Deadline.Urgency()
			m.input.SetValue(t.Name)
			m.input.Focus()
			m.mode = ModeWizard
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
		switch m.view {
		case ViewDashboard:
			if t := m.currentTask(); t != nil {
				if _, err := m.store.Complete(t.ID, time.Now()); err == nil {
					m.message = fmt.Sprintf("Completed: %s", t.Name)
				}
				m.reload()
			}
		case ViewCompleted:
			if t := m.currentCompleted(); t != nil {
				if _, err := m.store.Uncomplete(t.ID); err == nil {
					m.message = fmt.Sprintf("Reopened: %s", t.Name)
				}
				m.reload()
			}
		}

	case key.Matches(msg, keys.Delete):
		switch m.view {
		case ViewDashboard:
			if t := m.currentTask(); t != nil {
				m.confirm = confirmDeleteTask
				m.confirmTarget = t.ID
				m.mode = ModeConfirm
			}
		case ViewArchive:
			if t := m.currentArchived(); t != nil {
				m.confirm = confirmPurgeArchived
				m.confirmTarget = t.ID
				m.mode = ModeConfirm
			}
		}

	case key.Matches(msg, keys.Archive):
		if m.view == ViewCompleted && len(m.completed) > 0 {
			m.confirm = confirmArchiveCompleted
			m.mode = ModeConfirm
		}

	case key.Matches(msg, keys.Restore):
		if t := m.currentArchived(); t != nil {
			if _, err := m.store.Restore(t.ID); err == nil {
				m.message = fmt.Sprintf("Restored: %s", t.Name)
			}
			m.reload()
		}
	}

	return m, nil
}

func (m Model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Escape) {
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	// Name step types into the text input; later steps are choices.
	if m.wizard.step == stepName {
		if msg.Type == tea.KeyEnter {
			if m.input.Value() == "" {
				return m, nil // name must not be empty
			}
			m.wizard.step = stepImpact
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	choices := 2
	cursor := &m.wizard.impact
	switch m.wizard.step {
	case stepEffort:
		cursor = &m.wizard.effort
	case stepDeadline:
		cursor = &m.wizard.deadline
		choices = 4
	}

	switch {
	case key.Matches(msg, keys.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, keys.Down):
		if *cursor < choices-1 {
			*cursor++
		}
	case key.Matches(msg, keys.Enter):
		if m.wizard.step < stepDeadline {
			m.wizard.step++
			return m, nil
		}
		m.submitWizard()
		m.mode = ModeNormal
		m.reload()
	}

	return m, nil
}

// submitWizard applies the wizard as an add or an edit
func (m *Model) submitWizard() {
	name := m.input.Value()
	impact := m.wizard.wizardImpact()
	effort := m.wizard.wizardEffort()
	deadline := m.wizard.wizardDeadline()

	if m.wizard.editID != "" {
		if _, err := m.store.Update(m.wizard.editID, name, impact, effort, deadline); err != nil {
			m.message = fmt.Sprintf("Edit failed: %v", err)
			return
		}
		m.message = fmt.Sprintf("Updated: %s", name)
		return
	}

	task, err := m.store.Add(model.NewTask(name, impact, effort, deadline))
	if err != nil {
		m.message = fmt.Sprintf("Add failed: %v", err)
		return
	}
	m.message = fmt.Sprintf("Added: %s", task.Name)
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.session.Pending()
	if len(pending) == 0 {
		m.mode = ModeNormal
		m.reload()
		return m, nil
	}
	task := pending[0]

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "c":
		_ = m.session.Complete(task.ID, time.Now())
	case "k":
		_ = m.session.Keep(task.ID)
	case "r":
		m.mode = ModeReviewDeadline
		m.wizard.deadline = task.Deadline.Urgency()
		return m, nil
	case "d":
		_ = m.session.Dismiss(task.ID)
	case "D":
		m.confirm = confirmDismissAll
		m.mode = ModeConfirm
		return m, nil
	case "esc":
		// Pause the session; resolved tasks stay resolved.
		m.mode = ModeNormal
		m.message = "Review paused — it resumes next time you open Tempo"
		m.reload()
		return m, nil
	}

	if m.session.Done() {
		m.mode = ModeNormal
		m.message = "Review finished 🎉"
	}
	m.reload()
	return m, nil
}

func (m Model) updateReviewDeadline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeReview
	case key.Matches(msg, keys.Up):
		if m.wizard.deadline > 0 {
			m.wizard.deadline--
		}
	case key.Matches(msg, keys.Down):
		if m.wizard.deadline < len(deadlineChoices)-1 {
			m.wizard.deadline++
		}
	case key.Matches(msg, keys.Enter):
		pending := m.session.Pending()
		if len(pending) > 0 {
			_ = m.session.Reschedule(pending[0].ID, m.wizard.wizardDeadline())
		}
		if m.session.Done() {
			m.mode = ModeNormal
			m.message = "Review finished 🎉"
		} else {
			m.mode = ModeReview
		}
		m.reload()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.runConfirmed()
	case "n", "N", "esc", "q":
		if m.confirm == confirmDismissAll {
			m.mode = ModeReview
		} else {
			m.mode = ModeNormal
		}
		m.confirm = confirmNone
		return m, nil
	default:
		return m, nil
	}

	m.confirm = confirmNone
	m.confirmTarget = ""
	m.reload()
	return m, nil
}

// runConfirmed performs the destructive action the user just approved
func (m *Model) runConfirmed() {
	switch m.confirm {
	case confirmDeleteTask:
		if err := m.store.Delete(m.confirmTarget); err == nil {
			m.message = "Task deleted"
		}
		m.mode = ModeNormal
	case confirmPurgeArchived:
		if err := m.store.PurgeArchived(m.confirmTarget); err == nil {
			m.message = "Permanently deleted"
		}
		m.mode = ModeNormal
	case confirmArchiveCompleted:
		n := m.store.ArchiveCompleted(time.Now())
		m.message = fmt.Sprintf("Archived %d tasks", n)
		m.mode = ModeNormal
	case confirmDismissAll:
		m.session.DismissAll()
		m.message = "All remaining tasks dismissed"
		m.mode = ModeNormal
	}
}

// choiceIndex converts a boolean "second choice selected" into a cursor index
func choiceIndex(second bool) int {
	if second {
		return 1
	}
	return 0
}
