package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/router"
	"github.com/barhechalo/arogyam/internal/screen"
	"github.com/barhechalo/arogyam/internal/ui/layout"
	"github.com/barhechalo/arogyam/internal/ui/theme"
)

type menuItem struct {
	label string
	desc  string
}

// Factories holds constructors for the screens reachable from the menu.
// The home screen never imports them directly, which keeps the screen
// packages free of cycles.
type Factories struct {
	Intake      func() screen.Screen
	Placeholder func(title string) screen.Screen
	Login       func() screen.Screen
}

// HomeScreen is the module selection menu shown after login.
type HomeScreen struct {
	factories Factories
	items     []menuItem
	cursor    int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home menu.
func New(factories Factories) *HomeScreen {
	return &HomeScreen{
		factories: factories,
		items: []menuItem{
			{label: "Heart Disease Triage", desc: "Cardiac field assessment and zone classification"},
			{label: "Brain Stroke (WIP)", desc: "Module under development"},
			{label: "Safe Logout", desc: "Return to the access gate"},
		},
	}
}

func (h *HomeScreen) Title() string {
	return "COMMAND MENU"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.cursor < len(h.items)-1 {
			h.cursor++
		}
	case "enter":
		return h, h.selectCmd()
	}
	return h, nil
}

func (h *HomeScreen) selectCmd() tea.Cmd {
	switch h.cursor {
	case 0:
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: h.factories.Intake()}
		}
	case 1:
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: h.factories.Placeholder("BRAIN STROKE")}
		}
	case 2:
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: h.factories.Login()}
		}
	}
	return nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("SELECT ASSESSMENT MODULE"))
	b.WriteString("\n\n")

	for i, item := range h.items {
		if i == h.cursor {
			b.WriteString(theme.Selected.Render("▸ " + item.label))
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("    " + item.desc))
		} else {
			b.WriteString(theme.Unselected.Render("  " + item.label))
		}
		b.WriteString("\n\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}
