// Package app wires the Bubble Tea program: root model, screen router and
// the shared frame of header and footer.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/samdyer/revoir/internal/leitner"
	"github.com/samdyer/revoir/internal/router"
	"github.com/samdyer/revoir/internal/screen"
	"github.com/samdyer/revoir/internal/screens/home"
	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	tut    *tutor.Tutor
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel over the given screen stack.
func newAppModel(tut *tutor.Tutor, stack ...screen.Screen) AppModel {
	return AppModel{
		tut:    tut,
		router: router.New(stack...),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
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

	due := len(leitner.DueIndexes(m.tut.Collection, time.Now()))
	header := layout.RenderHeader(title, string(m.tut.Settings.Level), due, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Retour"},
				{Key: "Ctrl+C", Description: "Quitter"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Naviguer"},
				{Key: "Enter", Description: "Choisir"},
				{Key: "Ctrl+C", Description: "Quitter"},
			}
		}
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

// Run starts the Bubble Tea program on the home screen, with any extra
// screens stacked on top of it. save persists the collection and settings;
// it is handed to the screens that grade answers.
func Run(tut *tutor.Tutor, save func() error, extra ...screen.Screen) error {
	stack := append([]screen.Screen{home.New(tut, save)}, extra...)
	p := tea.NewProgram(newAppModel(tut, stack...))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
