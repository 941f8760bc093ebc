// Package quizrun is the interactive quiz screen: it runs a
// spaced-repetition quiz session over the vocabulary collection and
// persists schedule updates after every graded answer.
package quizrun

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/samdyer/revoir/internal/router"
	"github.com/samdyer/revoir/internal/screen"
	"github.com/samdyer/revoir/internal/tutor"
	"github.com/samdyer/revoir/internal/ui/components"
	"github.com/samdyer/revoir/internal/ui/layout"
)

// defaultCount is the quiz length when the screen is opened from the menu.
const defaultCount = 5

// QuizScreen implements screen.Screen for a running quiz.
type QuizScreen struct {
	tut  *tutor.Tutor
	save func() error

	input  components.TextInput
	prompt string

	showingFeedback bool
	verdict         string
	lastCorrect     bool

	answered int
	correct  int
	total    int
	done     bool // queue exhausted, showing the summary

	saveErr error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over a shared tutor. save is called after each
// answer; a failure is shown but never interrupts the quiz.
func New(tut *tutor.Tutor, save func() error) *QuizScreen {
	return &QuizScreen{
		tut:   tut,
		save:  save,
		input: components.NewTextInput("Ta réponse...", 60),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.prompt = q.tut.StartQuiz(defaultCount, "", time.Now())
	if s := q.tut.QuizSession(); s.Active() {
		q.total = s.Remaining() + 1
	} else {
		// Empty collection: the prompt already carries the message.
		q.done = true
	}
	return q.input.Init()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.done {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Retour"},
		}
	}
	if q.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continuer"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Répondre"},
		{Key: "Esc", Description: "Arrêter"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return q.handleKey(kmsg)
	}

	if !q.showingFeedback && !q.done {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.done {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if q.showingFeedback {
		// Any key moves on to the already-served next prompt.
		q.showingFeedback = false
		if !q.tut.QuizSession().Active() {
			q.done = true
		}
		return q, nil
	}

	switch msg.String() {
	case "enter":
		return q.submitAnswer()
	case "esc":
		// Quitting mid-quiz keeps every box update already made.
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	raw := q.input.Value()
	if raw == "" {
		return q, nil
	}

	s := q.tut.QuizSession()
	r, ok := s.Answer(q.tut.Collection, raw, time.Now())
	if !ok {
		q.done = true
		return q, nil
	}

	q.answered++
	if r.Correct {
		q.correct++
	}
	q.verdict = r.Verdict
	q.lastCorrect = r.Correct
	q.prompt = r.Next
	q.showingFeedback = true
	q.input.Reset()

	q.saveErr = q.save()

	return q, nil
}
