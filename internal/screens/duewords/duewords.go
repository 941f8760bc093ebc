// Package duewords lists the vocabulary waiting for review, weakest boxes
// first.
package duewords

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/samdyer/revoir/internal/leitner"
	"github.com/samdyer/revoir/internal/router"
	"github.com/samdyer/revoir/internal/screen"
	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/ui/layout"
	"github.com/samdyer/revoir/internal/ui/theme"
	"github.com/samdyer/revoir/internal/vocab"
)

// DueScreen implements screen.Screen for the review list.
type DueScreen struct {
	tut *tutor.Tutor
	now time.Time
}

var _ screen.Screen = (*DueScreen)(nil)
var _ screen.KeyHintProvider = (*DueScreen)(nil)

// New creates the review list screen. The due set is fixed at open time.
func New(tut *tutor.Tutor) *DueScreen {
	return &DueScreen{tut: tut, now: time.Now()}
}

func (d *DueScreen) Init() tea.Cmd {
	return nil
}

func (d *DueScreen) Title() string {
	return "À revoir"
}

func (d *DueScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Retour"},
	}
}

func (d *DueScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *DueScreen) View(width, height int) string {
	c := d.tut.Collection
	due := leitner.DueIndexes(c, d.now)

	if len(due) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nAucune révision urgente aujourd’hui. Bravo !")
	}

	items := c.Items
	sort.SliceStable(due, func(a, b int) bool {
		x, y := items[due[a]], items[due[b]]
		if x.Box != y.Box {
			return x.Box < y.Box
		}
		return x.NextDue.Before(y.NextDue)
	})

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.French.Render(fmt.Sprintf("%d mot(s) à réviser maintenant", len(due)))))
	b.WriteString("\n\n")

	for _, idx := range due {
		it := items[idx]
		line := fmt.Sprintf("%s → %s   %s   %s",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(it.Word),
			lipgloss.NewStyle().Foreground(theme.Text).Render(it.Translation),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("boîte %d", it.Box)),
			overdueLabel(it, d.now),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func overdueLabel(it *vocab.Item, now time.Time) string {
	days := leitner.OverdueDays(it, now)
	if days <= 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("aujourd’hui")
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("en retard de %d jour(s)", days))
}
