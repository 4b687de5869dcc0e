package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// Select is a vertical single-choice list for longer option sets.
// Selected is -1 until the operator records an answer.
type Select struct {
	Options  []string
	Selected int
	cursor   int
}

// NewSelect creates a select list with no recorded answer.
func NewSelect(options ...string) Select {
	return Select{
		Options:  options,
		Selected: -1,
	}
}

// WithSelected returns a copy with a pre-recorded answer.
func (s Select) WithSelected(i int) Select {
	if i >= 0 && i < len(s.Options) {
		s.Selected = i
		s.cursor = i
	}
	return s
}

// Update handles up/down movement and space/enter selection.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.Options)-1 {
			s.cursor++
		}
	case "enter", "space":
		s.Selected = s.cursor
	}

	return s, nil
}

// View renders the option list.
func (s Select) View(focused bool) string {
	var out string
	for i, opt := range s.Options {
		marker := "  "
		if i == s.Selected {
			marker = "• "
		}
		line := marker + opt

		switch {
		case focused && i == s.cursor:
			out += theme.Selected.Render("▸ "+line) + "\n"
		case i == s.Selected:
			out += lipgloss.NewStyle().Foreground(theme.Secondary).Render("  "+line) + "\n"
		default:
			out += theme.Unselected.Render("  "+line) + "\n"
		}
	}
	return out
}

// Value returns the selected index, or -1 when unset.
func (s Select) Value() int {
	return s.Selected
}
