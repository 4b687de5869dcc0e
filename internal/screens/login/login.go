package login

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/barhechalo/arogyam/internal/auth"
	"github.com/barhechalo/arogyam/internal/router"
	"github.com/barhechalo/arogyam/internal/screen"
	"github.com/barhechalo/arogyam/internal/ui/layout"
	"github.com/barhechalo/arogyam/internal/ui/theme"
)

const (
	fieldUser = iota
	fieldPass
)

// LoginScreen is the static credential gate shown before the main menu.
type LoginScreen struct {
	homeFactory func() screen.Screen
	user        textinput.Model
	pass        textinput.Model
	focus       int
	errMsg      string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen that replaces itself with the screen produced
// by homeFactory on successful access.
func New(homeFactory func() screen.Screen) *LoginScreen {
	user := textinput.New()
	user.Placeholder = "USER ID"
	user.CharLimit = 32

	pass := textinput.New()
	pass.Placeholder = "PASSWORD KEY"
	pass.CharLimit = 64
	pass.EchoMode = textinput.EchoPassword

	return &LoginScreen{
		homeFactory: homeFactory,
		user:        user,
		pass:        pass,
	}
}

func (l *LoginScreen) Title() string {
	return ""
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.user.Focus()
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Access system"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "up", "down":
			l.errMsg = ""
			if l.focus == fieldUser {
				l.focus = fieldPass
				l.user.Blur()
				return l, l.pass.Focus()
			}
			l.focus = fieldUser
			l.pass.Blur()
			return l, l.user.Focus()

		case "enter":
			if auth.Check(l.user.Value(), l.pass.Value()) {
				return l, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: l.homeFactory()}
				}
			}
			l.errMsg = "INVALID CREDENTIALS"
			return l, nil
		}
	}

	var cmd tea.Cmd
	if l.focus == fieldUser {
		l.user, cmd = l.user.Update(msg)
	} else {
		l.pass, cmd = l.pass.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("🛡 AROGYAM"))
	sections = append(sections, theme.Subtitle.Render("SELF ASSESSMENT HEALTH GUIDE"))
	sections = append(sections, theme.Subtitle.Render("BY BARHE CHALO"))
	sections = append(sections, theme.Hint.Render("High-Altitude Cardiovascular Decision Support Tool"))
	sections = append(sections, "")

	form := "USER ID\n" + l.user.View() + "\n\nPASSWORD KEY\n" + l.pass.View()
	sections = append(sections, theme.Card.Render(form))

	if l.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.ErrorLine.Render(l.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
