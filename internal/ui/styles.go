package ui

import (
	"github.com/charmbracelet/lipgloss"

	northlight "github.com/northlight/northlight-go"
)

// Color palette for the feedback browser
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, selection
	SuccessColor = lipgloss.Color("#43BF6D") // Green - completed, confirmations
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, rejected
	WarningColor = lipgloss.Color("#FFA500") // Orange - in progress
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 96 // Maximum content width before capping
)

// Shared styles for the feedback browser
var (
	// TitleStyle is for the browser header
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// SelectedStyle highlights the row under the cursor
	SelectedStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// ItemTitleStyle is for feedback titles
	ItemTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// VoteCountStyle is for the vote tally on each row
	VoteCountStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// VotedMarkerStyle marks items this device already voted for
	VotedMarkerStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// MutedStyle is for timestamps, categories, and help text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ErrorStyle is for error banners
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// StatusLineStyle is for transient confirmations at the bottom
	StatusLineStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
)

// statusColors maps known feedback statuses to badge colors.
// Unknown statuses fall back to the muted color.
var statusColors = map[northlight.Status]lipgloss.Color{
	northlight.StatusPending:    MutedColor,
	northlight.StatusSuggested:  PrimaryColor,
	northlight.StatusApproved:   SuccessColor,
	northlight.StatusInProgress: WarningColor,
	northlight.StatusCompleted:  SuccessColor,
	northlight.StatusRejected:   ErrorColor,
}

// StatusBadge renders a colored status label
func StatusBadge(s northlight.Status) string {
	color, ok := statusColors[s]
	if !ok {
		color = MutedColor
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + s.Label() + "]")
}
