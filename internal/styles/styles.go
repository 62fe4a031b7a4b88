// Package styles defines the shared color palette and lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary     = lipgloss.Color("#7DD3FC")
	Secondary   = lipgloss.Color("#A5B4FC")
	Success     = lipgloss.Color("#86EFAC")
	Error       = lipgloss.Color("#F87171")
	TextPrimary = lipgloss.Color("#E5E7EB")
	TextMuted   = lipgloss.Color("#6B7280")
	BgSecondary = lipgloss.Color("#1F2937")
)

var (
	Header = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgSecondary).
		Bold(true)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted)

	Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	KeyHint = lipgloss.NewStyle().
		Foreground(Secondary)

	Selected = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgSecondary).
			Bold(true)

	StatusOK = lipgloss.NewStyle().
			Foreground(Success)

	StatusError = lipgloss.NewStyle().
			Foreground(Error)
)
