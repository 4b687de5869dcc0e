package placeholder

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/router"
	"github.com/barhechalo/arogyam/internal/screen"
	"github.com/barhechalo/arogyam/internal/ui/layout"
	"github.com/barhechalo/arogyam/internal/ui/theme"
)

// PlaceholderScreen stands in for assessment modules that are not yet
// operational.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a placeholder for the named module.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to menu"},
	}
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	lines := []string{
		theme.Title.Render("⚠ " + p.title),
		"",
		theme.Body.Render("Module under development."),
		theme.Hint.Render("Awaiting clinical parameters."),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(strings.Join(lines, "\n")))
}
