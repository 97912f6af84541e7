package theme

import "github.com/charmbracelet/lipgloss"

var (
	Brand    = lipgloss.Color("#667eea")
	Accent   = lipgloss.Color("#764ba2")
	Base     = lipgloss.Color("#1a1b2e")
	Surface  = lipgloss.Color("#2a2c4a")
	Border   = lipgloss.Color("#4b4f7a")
	Text     = lipgloss.Color("#eef0ff")
	Subtext  = lipgloss.Color("#a3a8d1")
	Success  = lipgloss.Color("#48bb78")
	Warning  = lipgloss.Color("#ed8936")
	Critical = lipgloss.Color("#f56565")

	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Header = lipgloss.NewStyle().
		Background(Brand).
		Foreground(Text).
		Bold(true).
		Padding(0, 1)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	CardActive = Card.BorderForeground(Brand)

	Title   = lipgloss.NewStyle().Foreground(Brand).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext)
	Hot     = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Good    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Bad     = lipgloss.NewStyle().Foreground(Critical).Bold(true)
	Pending = lipgloss.NewStyle().Foreground(Warning)
)
