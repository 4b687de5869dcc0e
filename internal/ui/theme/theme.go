package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — tactical dark scheme for low-light field use
var (
	Primary   = lipgloss.Color("#00E5FF") // Cyan
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Text      = lipgloss.Color("#E2E8F0") // Pale Slate
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0E1117") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	Red   = lipgloss.Color("#EF4444")
	Amber = lipgloss.Color("#F59E0B")
	Green = lipgloss.Color("#10B981")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Required = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ErrorLine = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)

// Zone verdict banners
var (
	ZoneRedBanner = lipgloss.NewStyle().
			Foreground(Red).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Red).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center)

	ZoneAmberBanner = lipgloss.NewStyle().
			Foreground(Amber).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Amber).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center)

	ZoneGreenBanner = lipgloss.NewStyle().
			Foreground(Green).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Green).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center)

	CriticalFinding = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	AbnormalFinding = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)
)
