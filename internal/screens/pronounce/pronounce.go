// Package pronounce is the pronunciation practice screen: it serves a
// target sentence from the phrasebank and scores the transcribed attempt.
package pronounce

import (
	tea "charm.land/bubbletea/v2"

	pron "github.com/samdyer/revoir/internal/pronounce"
	"github.com/samdyer/revoir/internal/router"
	"github.com/samdyer/revoir/internal/screen"
	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/ui/components"
	"github.com/samdyer/revoir/internal/ui/layout"
)

// PronounceScreen implements screen.Screen for pronunciation practice.
type PronounceScreen struct {
	tut   *tutor.Tutor
	input components.TextInput

	result     *pron.Result
	showResult bool
}

var _ screen.Screen = (*PronounceScreen)(nil)
var _ screen.KeyHintProvider = (*PronounceScreen)(nil)

// New creates the pronunciation screen over a shared tutor. The first
// target sentence comes from the tutor's configured topic.
func New(tut *tutor.Tutor) *PronounceScreen {
	return &PronounceScreen{
		tut:   tut,
		input: components.NewTextInput("Ce que tu as dit...", 120),
	}
}

func (p *PronounceScreen) Init() tea.Cmd {
	p.tut.GiveSentence("")
	return p.input.Init()
}

func (p *PronounceScreen) Title() string {
	return "Prononciation"
}

func (p *PronounceScreen) KeyHints() []layout.KeyHint {
	if p.showResult {
		return []layout.KeyHint{
			{Key: "N", Description: "Nouvelle phrase"},
			{Key: "R", Description: "Réessayer"},
			{Key: "Esc", Description: "Retour"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Vérifier"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (p *PronounceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return p.handleKey(kmsg)
	}

	if !p.showResult {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PronounceScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.showResult {
		switch msg.String() {
		case "n", "N":
			p.tut.GiveSentence("")
			p.result = nil
			p.showResult = false
			p.input.Reset()
			return p, p.input.Init()
		case "r", "R":
			p.result = nil
			p.showResult = false
			p.input.Reset()
			return p, p.input.Init()
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	switch msg.String() {
	case "enter":
		return p.checkAttempt()
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PronounceScreen) checkAttempt() (screen.Screen, tea.Cmd) {
	heard := p.input.Value()
	if heard == "" {
		return p, nil
	}

	r, ok := p.tut.Practice().Check(heard)
	if !ok {
		return p, nil
	}

	p.result = &r
	p.showResult = true
	return p, nil
}
