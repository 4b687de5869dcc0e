package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// Slider selects a value from a fixed numeric range with left/right keys.
// Used for SpO2 (step 1) and hemoglobin (step 0.1).
type Slider struct {
	Min, Max, Step float64
	Value          float64
	Format         string // fmt verb for the value label, e.g. "%.0f%%"
	Width          int
}

// NewSlider creates a slider positioned at value.
func NewSlider(value, min, max, step float64, format string, width int) Slider {
	return Slider{
		Min:    min,
		Max:    max,
		Step:   step,
		Value:  value,
		Format: format,
		Width:  width,
	}
}

// Update handles left/right (single step) and shift-left/right (x10).
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
	case "right", "l":
		s.Value += s.Step
	case "shift+left":
		s.Value -= s.Step * 10
	case "shift+right":
		s.Value += s.Step * 10
	}

	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
	return s, nil
}

// View renders the track with the value label.
func (s Slider) View(focused bool) string {
	width := s.Width
	if width < 10 {
		width = 10
	}

	frac := (s.Value - s.Min) / (s.Max - s.Min)
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	track := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-filled))

	label := fmt.Sprintf(" "+s.Format, s.Value)
	if focused {
		label = theme.Selected.Render(label)
	} else {
		label = theme.Unselected.Render(label)
	}
	return track + label
}
