package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// RadioGroup is a horizontal single-choice selector. Selected is -1 until
// the operator records an answer, so mandatory fields start visibly unset.
type RadioGroup struct {
	Options  []string
	Selected int
	cursor   int
}

// NewRadioGroup creates a radio group with no recorded answer.
func NewRadioGroup(options ...string) RadioGroup {
	return RadioGroup{
		Options:  options,
		Selected: -1,
	}
}

// WithSelected returns a copy with a pre-recorded answer (for fields that
// keep their value when the operator navigates back).
func (r RadioGroup) WithSelected(i int) RadioGroup {
	if i >= 0 && i < len(r.Options) {
		r.Selected = i
		r.cursor = i
	}
	return r
}

// Update handles left/right movement and space/enter selection.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if r.cursor > 0 {
			r.cursor--
		}
	case "right", "l":
		if r.cursor < len(r.Options)-1 {
			r.cursor++
		}
	case "enter", "space":
		r.Selected = r.cursor
	}

	return r, nil
}

// View renders the options on one line.
func (r RadioGroup) View(focused bool) string {
	var s string
	for i, opt := range r.Options {
		marker := "( )"
		if i == r.Selected {
			marker = "(•)"
		}
		item := marker + " " + opt

		switch {
		case focused && i == r.cursor:
			s += theme.Selected.Render(item)
		case i == r.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(item)
		default:
			s += theme.Unselected.Render(item)
		}
		if i < len(r.Options)-1 {
			s += "   "
		}
	}
	return s
}

// Value returns the selected index, or -1 when unset.
func (r RadioGroup) Value() int {
	return r.Selected
}
