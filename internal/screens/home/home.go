// Package home is the landing screen: a menu over the trainer's
// activities plus a glance at what is waiting for review.
package home

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/samdyer/revoir/internal/leitner"
	"github.com/samdyer/revoir/internal/router"
	"github.com/samdyer/revoir/internal/screen"
	"github.com/samdyer/revoir/internal/screens/duewords"
	"github.com/samdyer/revoir/internal/screens/pronounce"
	"github.com/samdyer/revoir/internal/screens/quizrun"
	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/ui/components"
	"github.com/samdyer/revoir/internal/ui/theme"
)

const banner = `███████╗ ███████╗██╗   ██╗ ██████╗ ██╗███████╗
██╔═══██╗██╔════╝██║   ██║██╔═══██╗██║██╔═══██╗
███████╔╝█████╗  ╚██╗ ██╔╝██║   ██║██║███████╔╝
██╔═══██╗██╔══╝   ╚████╔╝ ██║   ██║██║██╔═══██╗
██║   ██║███████╗  ╚██╔╝  ╚██████╔╝██║██║   ██║
╚═╝   ╚═╝╚══════╝   ╚═╝    ╚═════╝ ╚═╝╚═╝   ╚═╝`

// HomeScreen implements screen.Screen for the main menu.
type HomeScreen struct {
	tut  *tutor.Tutor
	save func() error
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over a shared tutor. save persists the
// collection and settings; quiz and pronunciation screens call it after
// every graded answer.
func New(tut *tutor.Tutor, save func() error) *HomeScreen {
	h := &HomeScreen{tut: tut, save: save}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Quiz vocabulaire", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizrun.New(tut, save)}
			}
		}},
		{Label: "Prononciation", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pronounce.New(tut)}
			}
		}},
		{Label: "Mots à revoir", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: duewords.New(tut)}
			}
		}},
		{Label: "Quitter", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	due := len(leitner.DueIndexes(h.tut.Collection, time.Now()))

	title := theme.Title.Width(width).Render(banner)
	subtitle := theme.Subtitle.Width(width).Render("Ton entraîneur de français")

	var status string
	if h.tut.Collection.Len() == 0 {
		status = theme.Hint.Render("Ta liste est vide. Ajoute des mots avec « revoir add ».")
	} else if due == 0 {
		status = theme.Hint.Render(fmt.Sprintf("%d mot(s) enregistrés, rien à revoir pour l’instant.", h.tut.Collection.Len()))
	} else {
		status = theme.French.Render(fmt.Sprintf("⏰ %d mot(s) à revoir maintenant !", due))
	}
	status = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(status)

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	content := title + "\n" + subtitle + "\n\n" + status + "\n\n" + menu

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
