package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// Toggle is an on/off switch for data-availability flags.
type Toggle struct {
	On bool
}

// NewToggle creates a toggle in the given state.
func NewToggle(on bool) Toggle {
	return Toggle{On: on}
}

// Update flips the state on space/enter.
func (t Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	switch kmsg.String() {
	case "enter", "space", "left", "right", "h", "l":
		t.On = !t.On
	}
	return t, nil
}

// View renders the switch.
func (t Toggle) View(focused bool) string {
	var s string
	if t.On {
		s = lipgloss.NewStyle().Foreground(theme.Green).Render("[on ]")
	} else {
		s = lipgloss.NewStyle().Foreground(theme.TextDim).Render("[off]")
	}
	if focused {
		return theme.Selected.Render("▸ ") + s
	}
	return "  " + s
}
