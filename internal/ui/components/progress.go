package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// StageProgress displays the intake position as one segment per stage.
type StageProgress struct {
	Stages  int
	Current int // 1-based
	Width   int
}

// NewStageProgress creates a stage indicator.
func NewStageProgress(stages, current, width int) StageProgress {
	return StageProgress{
		Stages:  stages,
		Current: current,
		Width:   width,
	}
}

// View renders the segments: completed stages filled, the active stage
// half-tinted, upcoming stages empty.
func (p StageProgress) View() string {
	if p.Stages <= 0 {
		return ""
	}
	segWidth := p.Width/p.Stages - 1
	if segWidth < 4 {
		segWidth = 4
	}

	segs := make([]string, 0, p.Stages)
	for i := 1; i <= p.Stages; i++ {
		bar := strings.Repeat("━", segWidth)
		switch {
		case i < p.Current:
			segs = append(segs, lipgloss.NewStyle().Foreground(theme.Primary).Render(bar))
		case i == p.Current:
			segs = append(segs, lipgloss.NewStyle().Foreground(theme.Secondary).Render(bar))
		default:
			segs = append(segs, lipgloss.NewStyle().Foreground(theme.Border).Render(bar))
		}
	}
	return strings.Join(segs, " ")
}
