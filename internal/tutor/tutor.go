// Package tutor is the conversational surface of the trainer: level and
// mode settings, vocabulary management, the quiz and pronunciation
// practice. Every operation returns a French reply string; bad input comes
// back as a message, never as an error.
package tutor

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/samdyer/revoir/internal/leitner"
	"github.com/samdyer/revoir/internal/pronounce"
	"github.com/samdyer/revoir/internal/quiz"
	"github.com/samdyer/revoir/internal/vocab"
)

// Level is a CEFR proficiency level.
type Level string

// Levels in ascending order.
var Levels = []Level{"A1", "A2", "B1", "B2", "C1"}

// Mode selects the tutor's conversational activity.
type Mode string

const (
	ModeChat      Mode = "chat"
	ModeRoleplay  Mode = "roleplay"
	ModeQuiz      Mode = "quiz"
	ModeExplain   Mode = "explain"
	ModePronounce Mode = "pronounce"
)

// Modes lists every valid mode.
var Modes = []Mode{ModeChat, ModeRoleplay, ModeQuiz, ModeExplain, ModePronounce}

// Capability names one part of the tool surface. The enabled set is fixed
// when the tutor is constructed.
type Capability string

const (
	CapSettings  Capability = "settings"  // SetLevel, SetMode, PhrasePack
	CapVocab     Capability = "vocab"     // AddVocab, ListVocab, DueWords
	CapQuiz      Capability = "quiz"      // StartQuiz, NextQuestion, AnswerQuiz
	CapPronounce Capability = "pronounce" // GiveSentence, CheckPronunciation
)

// AllCapabilities is the default enabled set.
var AllCapabilities = []Capability{CapSettings, CapVocab, CapQuiz, CapPronounce}

// MsgDisabled is returned by any operation whose capability is off.
const MsgDisabled = "Cet outil n’est pas disponible dans cette session."

// Settings are the tutor's persisted preferences.
type Settings struct {
	Level Level
	Mode  Mode
	Topic string
}

// DefaultSettings are used for a fresh learner.
func DefaultSettings() Settings {
	return Settings{Level: "A1", Mode: ModeChat, Topic: "cafe"}
}

// Tutor bundles the vocabulary collection, the settings and the active
// quiz/pronunciation state for one learner. The caller owns persistence:
// the tutor mutates the collection in memory and never touches storage.
type Tutor struct {
	Settings   Settings
	Collection *vocab.Collection

	caps map[Capability]bool
	rng  *rand.Rand

	quiz *quiz.Session
	pron pronounce.Practice
}

// New creates a tutor over col with the given capability set. A nil caps
// slice enables everything.
func New(col *vocab.Collection, settings Settings, caps []Capability, rng *rand.Rand) *Tutor {
	if col == nil {
		col = &vocab.Collection{}
	}
	if caps == nil {
		caps = AllCapabilities
	}
	enabled := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		enabled[c] = true
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tutor{
		Settings:   settings,
		Collection: col,
		caps:       enabled,
		rng:        rng,
	}
}

// Enabled reports whether a capability is on for this tutor.
func (t *Tutor) Enabled(c Capability) bool { return t.caps[c] }

// QuizSession returns the active quiz session, nil when none.
func (t *Tutor) QuizSession() *quiz.Session { return t.quiz }

// Practice returns the pronunciation practice state.
func (t *Tutor) Practice() *pronounce.Practice { return &t.pron }

// SetLevel sets the CEFR level: A1 through C1.
func (t *Tutor) SetLevel(level string) string {
	if !t.Enabled(CapSettings) {
		return MsgDisabled
	}
	lvl := Level(strings.ToUpper(strings.TrimSpace(level)))
	for _, known := range Levels {
		if lvl == known {
			t.Settings.Level = lvl
			return fmt.Sprintf("Niveau réglé sur %s. On continue !", lvl)
		}
	}
	return fmt.Sprintf("Niveau inconnu: %s. Choisis parmi %s.", level, joinLevels())
}

// SetMode sets the activity mode, with an optional roleplay topic.
func (t *Tutor) SetMode(mode, topic string) string {
	if !t.Enabled(CapSettings) {
		return MsgDisabled
	}
	md := Mode(strings.ToLower(strings.TrimSpace(mode)))
	known := false
	for _, m := range Modes {
		if md == m {
			known = true
			break
		}
	}
	if !known {
		return fmt.Sprintf("Mode inconnu: %s. Choisis parmi %s.", mode, joinModes())
	}
	t.Settings.Mode = md
	if md == ModeRoleplay && topic != "" {
		tp := strings.ToLower(strings.TrimSpace(topic))
		if pronounce.KnownTopic(tp) {
			t.Settings.Topic = tp
		}
	}
	switch md {
	case ModeRoleplay:
		return fmt.Sprintf("Mode roleplay activé, thème: %s.", t.Settings.Topic)
	case ModePronounce:
		return "Mode prononciation activé. Dis « donne-moi une phrase » pour commencer."
	case ModeQuiz:
		return "Mode quiz activé. Dis « start quiz » pour lancer un quiz vocabulaire."
	}
	return fmt.Sprintf("Mode réglé sur %s.", md)
}

// PhrasePack lists the phrasebank sentences for a roleplay topic.
func (t *Tutor) PhrasePack(topic string) string {
	if !t.Enabled(CapSettings) {
		return MsgDisabled
	}
	tp := strings.ToLower(strings.TrimSpace(topic))
	phrases, ok := pronounce.Phrasebank[tp]
	if !ok {
		return fmt.Sprintf("Sujet inconnu: %s. Choisis parmi %s.", topic, strings.Join(pronounce.Topics(), ", "))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Phrases utiles pour %s:", tp)
	for _, p := range phrases {
		fmt.Fprintf(&b, "\n- %s  (%s)", p.Fr, p.En)
	}
	return b.String()
}

// AddVocab adds a vocabulary item in box one, due tomorrow.
func (t *Tutor) AddVocab(word, translation, example string, now time.Time) string {
	if !t.Enabled(CapVocab) {
		return MsgDisabled
	}
	if strings.TrimSpace(word) == "" || strings.TrimSpace(translation) == "" {
		return "Il me faut un mot et sa traduction."
	}
	it := leitner.AddItem(t.Collection, word, translation, example, now)
	return fmt.Sprintf("Ajouté: %s → %s. Première révision demain.", it.Word, it.Translation)
}

// ListVocab lists every saved item with its box and due date.
func (t *Tutor) ListVocab() string {
	if !t.Enabled(CapVocab) {
		return MsgDisabled
	}
	if t.Collection.Len() == 0 {
		return "Ta liste est vide. Ajoute un mot pour commencer."
	}
	var b strings.Builder
	b.WriteString("Vocabulaire enregistré:")
	for i, it := range t.Collection.Items {
		fmt.Fprintf(&b, "\n%d. %s → %s | box %d | due %s",
			i+1, it.Word, it.Translation, it.Box, vocab.FormatTime(it.NextDue))
	}
	return b.String()
}

// DueWords reports the top-k items due for review, ordered by box then due
// date.
func (t *Tutor) DueWords(topK int, includeExamples bool, now time.Time) string {
	if !t.Enabled(CapVocab) {
		return MsgDisabled
	}
	due := leitner.DueIndexes(t.Collection, now)
	if len(due) == 0 {
		return "Aucune révision urgente aujourd’hui. Tu peux lancer un petit quiz pour t’échauffer, dis: « start quiz »."
	}

	items := t.Collection.Items
	sortDue(due, items)

	limit := max(1, topK)
	if limit > len(due) {
		limit = len(due)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d mot(s) à réviser maintenant:", limit)
	for _, idx := range due[:limit] {
		it := items[idx]
		if includeExamples && it.Example != "" {
			fmt.Fprintf(&b, "\n• %s → %s, boîte %d. Exemple: %s", it.Word, it.Translation, it.Box, it.Example)
		} else {
			fmt.Fprintf(&b, "\n• %s → %s, boîte %d", it.Word, it.Translation, it.Box)
		}
	}
	b.WriteString("\nDis « start quiz » pour commencer.")
	return b.String()
}

// StartQuiz starts a spaced-repetition quiz and serves the first question.
func (t *Tutor) StartQuiz(count int, direction string, now time.Time) string {
	if !t.Enabled(CapQuiz) {
		return MsgDisabled
	}
	s, reply := quiz.Start(t.Collection, count, quiz.ParseDirection(direction), now, t.rng)
	t.quiz = s
	return reply
}

// NextQuestion serves the next question of the active quiz.
func (t *Tutor) NextQuestion() string {
	if !t.Enabled(CapQuiz) {
		return MsgDisabled
	}
	if t.quiz == nil {
		return quiz.MsgNoQuestion
	}
	return t.quiz.NextQuestion(t.Collection)
}

// AnswerQuiz grades the answer, updates the schedule and chains the next
// question.
func (t *Tutor) AnswerQuiz(raw string, now time.Time) string {
	if !t.Enabled(CapQuiz) {
		return MsgDisabled
	}
	r, ok := t.quiz.Answer(t.Collection, raw, now)
	if !ok {
		return quiz.MsgNoQuestion
	}
	return r.Reply()
}

// GiveSentence picks a pronunciation target from the phrasebank.
func (t *Tutor) GiveSentence(topic string) string {
	if !t.Enabled(CapPronounce) {
		return MsgDisabled
	}
	tp := strings.ToLower(strings.TrimSpace(topic))
	if tp == "" {
		tp = t.Settings.Topic
	}
	phrase, resolved := pronounce.Pick(tp, t.rng)
	t.pron.SetTarget(phrase.Fr, resolved)
	return fmt.Sprintf("Répète après moi: “%s” (thème: %s).", phrase.Fr, resolved)
}

// CheckPronunciation scores the transcribed attempt against the target.
func (t *Tutor) CheckPronunciation(heard string) string {
	if !t.Enabled(CapPronounce) {
		return MsgDisabled
	}
	r, ok := t.pron.Check(heard)
	if !ok {
		return pronounce.MsgNoTarget
	}
	return r.Reply()
}

// sortDue orders indexes by box then due date: the weakest, longest-waiting
// words lead.
func sortDue(due []int, items []*vocab.Item) {
	sort.SliceStable(due, func(a, b int) bool {
		x, y := items[due[a]], items[due[b]]
		if x.Box != y.Box {
			return x.Box < y.Box
		}
		return x.NextDue.Before(y.NextDue)
	})
}

func joinLevels() string {
	parts := make([]string, len(Levels))
	for i, l := range Levels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

func joinModes() string {
	parts := make([]string, len(Modes))
	for i, m := range Modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
