package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for integer vitals with a clamped
// range. The stored value falls back to the field default while the text
// is empty or unparseable.
type NumberInput struct {
	Model    textinput.Model
	Min, Max int
	value    int
}

// NewNumberInput creates a numeric input pre-filled with the default value.
func NewNumberInput(value, min, max int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(value)
	ti.CharLimit = 4
	ti.SetValue(strconv.Itoa(value))

	return NumberInput{
		Model: ti,
		Min:   min,
		Max:   max,
		value: value,
	}
}

// Update filters non-digit keys and keeps the parsed value clamped.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)

	if v, err := strconv.Atoi(n.Model.Value()); err == nil {
		if v < n.Min {
			v = n.Min
		}
		if v > n.Max {
			v = n.Max
		}
		n.value = v
	}
	return n, cmd
}

// Focus gives the inner text input keyboard focus.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes keyboard focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// View renders the input with its valid range.
func (n NumberInput) View(focused bool) string {
	rangeHint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  [%d-%d]", n.Min, n.Max))

	return n.Model.View() + rangeHint
}

// Value returns the current clamped value.
func (n NumberInput) Value() int {
	return n.value
}
