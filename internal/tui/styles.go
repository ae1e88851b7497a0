package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/existflow/tempo/internal/model"
)

// Color palette
var (
	// Tier colors
	TierDoTodayColor  = lipgloss.Color("#FF6B6B") // Red
	TierShouldDoColor = lipgloss.Color("#FFB347") // Orange
	TierCouldDoColor  = lipgloss.Color("#FFE66D") // Yellow
	TierDeferColor    = lipgloss.Color("#4ECDC4") // Blue

	// Status colors
	Completed = lipgloss.Color("#95E1A3") // Green

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Task list
	TaskListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Task item
	TaskItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true).
			Padding(0, 1)

	CompletedMarkStyle = lipgloss.NewStyle().
				Foreground(Completed)

	ReasonStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// TierStyle returns the heading style for a tier
func TierStyle(tier model.Tier) lipgloss.Style {
	switch tier {
	case model.TierDoToday:
		return lipgloss.NewStyle().Foreground(TierDoTodayColor).Bold(true)
	case model.TierShouldDo:
		return lipgloss.NewStyle().Foreground(TierShouldDoColor).Bold(true)
	case model.TierCouldDo:
		return lipgloss.NewStyle().Foreground(TierCouldDoColor)
	default:
		return lipgloss.NewStyle().Foreground(TierDeferColor)
	}
}

// ScoreStyle returns the style for a score badge
func ScoreStyle(tier model.Tier) lipgloss.Style {
	return TierStyle(tier)
}
