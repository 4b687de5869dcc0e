package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/model"
	"github.com/barhechalo/arogyam/internal/router"
	"github.com/barhechalo/arogyam/internal/screen"
	"github.com/barhechalo/arogyam/internal/screens/home"
	"github.com/barhechalo/arogyam/internal/screens/intake"
	"github.com/barhechalo/arogyam/internal/screens/login"
	"github.com/barhechalo/arogyam/internal/screens/placeholder"
	"github.com/barhechalo/arogyam/internal/ui/layout"
)

// Options carries the artifacts loaded at process start into the UI.
type Options struct {
	Scaler     model.Scaler
	Predictor  model.Predictor
	EngineInfo string // shown in the header, e.g. "ENGINE v1.0.0"
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the access gate.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts}
	m.router = router.New(login.New(m.newHome))
	return m
}

// Screen factories. Constructed as closures so the screen packages stay
// free of each other.

func (m AppModel) newHome() screen.Screen {
	return home.New(home.Factories{
		Intake:      m.newIntake,
		Placeholder: m.newPlaceholder,
		Login:       m.newLogin,
	})
}

func (m AppModel) newLogin() screen.Screen {
	return login.New(m.newHome)
}

func (m AppModel) newIntake() screen.Screen {
	return intake.New(m.opts.Scaler, m.opts.Predictor)
}

func (m AppModel) newPlaceholder(title string) screen.Screen {
	return placeholder.New(title)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.EngineInfo, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
