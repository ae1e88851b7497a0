package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/tempo/internal/engine"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeWelcome:
		return m.renderWelcome()
	case ModeHelp:
		content = m.renderHelp()
	default:
		switch m.view {
		case ViewCompleted:
			content = m.renderCompleted()
		case ViewArchive:
			content = m.renderArchive()
		default:
			content = m.renderDashboard()
		}
	}

	// Modal overlays
	var modal string
	switch m.mode {
	case ModeWizard:
		modal = m.renderWizard()
	case ModeReview:
		modal = m.renderReview()
	case ModeReviewDeadline:
		modal = m.renderReviewDeadline()
	case ModeConfirm:
		modal = m.renderConfirm()
	}
	if modal != "" {
		content = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

func (m Model) renderWelcome() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Tempo")
	body := HelpStyle.Render("Prioritize what actually matters.\n\n" +
		"Add tasks with impact, effort and a deadline.\n" +
		"Tempo scores them and tells you what to do today.\n\n" +
		"Press any key to start.")
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", body),
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderDashboard() string {
	width := m.width - 4
	var s string

	header := fmt.Sprintf("Tempo — %d tasks", len(m.ranked))
	s += HeaderStyle.Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(0, width-2))) + "\n"

	if len(m.ranked) == 0 {
		s += "\n" + HelpStyle.Render("  No tasks. Press 'a' to add one.")
	}

	groups := engine.GroupByTier(m.ranked)
	idx := 0
	rank := 0
	for _, tier := range engine.TierOrder {
		tasks := groups[tier]
		if len(tasks) == 0 {
			continue
		}
		s += "\n" + TierStyle(tier).Render(fmt.Sprintf("%s (%d)", tier.Label(), len(tasks))) + "\n"
		for _, t := range tasks {
			rank++
			cursor := "  "
			style := TaskItemStyle
			if idx == m.cursor {
				cursor = "❯ "
				style = TaskItemSelectedStyle
			}
			line := fmt.Sprintf("%s%2d. %-*s %s", cursor, rank,
				max(10, width-30), truncate(t.Name, max(10, width-30)),
				ScoreStyle(t.Tier).Render(fmt.Sprintf("%3d", t.Score)))
			s += style.Render(line) + "\n"
			s += "      " + ReasonStyle.Render(t.Reason) + "\n"
			idx++
		}
	}

	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).Render(s)
}

func (m Model) renderCompleted() string {
	width := m.width - 4
	var s string

	s += HeaderStyle.Render(fmt.Sprintf("Completed — %d tasks", len(m.completed))) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(0, width-2))) + "\n\n"

	if len(m.completed) == 0 {
		s += HelpStyle.Render("  Nothing completed yet.")
	}

	for i, t := range m.completed {
		cursor := "  "
		style := TaskDoneStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}
		line := fmt.Sprintf("%s%s %-*s %s", cursor, CompletedMarkStyle.Render("[x]"),
			max(10, width-30), truncate(t.Name, max(10, width-30)),
			t.CompletedAt.Format("Jan 2 15:04"))
		s += style.Render(line) + "\n"
	}

	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).Render(s)
}

func (m Model) renderArchive() string {
	width := m.width - 4
	var s string

	s += HeaderStyle.Render(fmt.Sprintf("Archive — %d tasks", len(m.archived))) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(0, width-2))) + "\n\n"

	if len(m.archived) == 0 {
		s += HelpStyle.Render("  Archive is empty.")
	}

	for i, t := range m.archived {
		cursor := "  "
		style := TaskDoneStyle
		if i == m.cursor {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}
		line := fmt.Sprintf("%s[a] %-*s %s", cursor,
			max(10, width-30), truncate(t.Name, max(10, width-30)),
			t.ArchivedAt.Format("Jan 2"))
		s += style.Render(line) + "\n"
	}

	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).Render(s)
}

func (m Model) renderWizard() string {
	title := "Add Task"
	if m.wizard.editID != "" {
		title = "Edit Task"
	}

	var body string
	switch m.wizard.step {
	case stepName:
		body = "Name\n\n" + m.input.View()
	case stepImpact:
		body = "Impact — how much does it move the needle?\n\n" +
			renderChoice([]string{"High impact", "Low impact"}, m.wizard.impact)
	case stepEffort:
		body = "Effort — how much work is it?\n\n" +
			renderChoice([]string{"Low effort", "High effort"}, m.wizard.effort)
	case stepDeadline:
		labels := make([]string, len(deadlineChoices))
		for i, d := range deadlineChoices {
			labels[i] = d.Label()
		}
		body = "When is it due?\n\n" + renderChoice(labels, m.wizard.deadline)
	}

	help := HelpStyle.Render("enter: next  esc: cancel")
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(title), "", body, "", help))
}

func (m Model) renderReview() string {
	pending := m.session.Pending()
	if len(pending) == 0 {
		return ""
	}
	task := pending[0]

	title := lipgloss.NewStyle().Bold(true).Foreground(Primary).
		Render(fmt.Sprintf("🌅 Daily review — %d left", len(pending)))
	name := lipgloss.NewStyle().Bold(true).Render(task.Name)
	reason := ReasonStyle.Render(fmt.Sprintf("%s · score %d · %s", task.Reason, task.Score, task.Tier.Label()))
	help := HelpStyle.Render("c: complete  k: keep  r: reschedule  d: dismiss\nD: dismiss all  esc: later")

	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, "", name, reason, "", help))
}

func (m Model) renderReviewDeadline() string {
	labels := make([]string, len(deadlineChoices))
	for i, d := range deadlineChoices {
		labels[i] = d.Label()
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("New deadline")
	help := HelpStyle.Render("enter: apply  esc: back")
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, "", renderChoice(labels, m.wizard.deadline), "", help))
}

func (m Model) renderConfirm() string {
	var prompt string
	switch m.confirm {
	case confirmDeleteTask:
		prompt = "Delete this task?"
	case confirmPurgeArchived:
		prompt = "Permanently delete this task?\nThis cannot be undone."
	case confirmArchiveCompleted:
		prompt = fmt.Sprintf("Archive all %d completed tasks?", len(m.completed))
	case confirmDismissAll:
		prompt = fmt.Sprintf("Dismiss all %d remaining tasks?\nThey will not be marked complete.", len(m.session.Pending()))
	}
	help := HelpStyle.Render("y: yes  n: no")
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, prompt, "", help))
}

func (m Model) renderHelp() string {
	rows := []string{
		"Tempo keys",
		"",
		"  ↑/k ↓/j    move",
		"  tab        dashboard / completed / archive",
		"  a          add task",
		"  e          edit task",
		"  x / enter  complete (or reopen in completed view)",
		"  d          delete (confirm)",
		"  A          archive all completed",
		"  r          restore from archive",
		"  ?          close help",
		"  q          quit",
	}
	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderStatusBar() string {
	help := "a:add  e:edit  x:done  d:del  tab:view  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

// renderChoice renders a vertical choice list with a cursor
func renderChoice(labels []string, cursor int) string {
	var s strings.Builder
	for i, l := range labels {
		if i == cursor {
			s.WriteString(TaskItemSelectedStyle.Render("❯ " + l))
		} else {
			s.WriteString(TaskItemStyle.Render("  " + l))
		}
		if i < len(labels)-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

