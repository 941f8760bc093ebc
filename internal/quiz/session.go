// Package quiz implements the spaced-repetition quiz session: a queue of
// due vocabulary, fuzzy grading of each answer and Leitner box updates.
package quiz

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samdyer/revoir/internal/editdist"
	"github.com/samdyer/revoir/internal/leitner"
	"github.com/samdyer/revoir/internal/textnorm"
	"github.com/samdyer/revoir/internal/vocab"
)

// Direction fixes, for the session's lifetime, which side of the pair the
// learner must produce.
type Direction string

const (
	// EnToFr prompts with the English translation and expects the French word.
	EnToFr Direction = "en2fr"
	// FrToEn prompts with the French word and expects the English translation.
	FrToEn Direction = "fr2en"
)

// ParseDirection normalizes a direction string, defaulting to en2fr.
func ParseDirection(s string) Direction {
	if Direction(strings.ToLower(strings.TrimSpace(s))) == FrToEn {
		return FrToEn
	}
	return EnToFr
}

// AcceptThreshold is the normalized token distance at or under which an
// answer counts as correct. Forgiving on purpose: answers arrive through
// noisy speech-to-text.
const AcceptThreshold = 0.34

// Conversational replies for the session edges.
const (
	MsgNoVocab    = "Tu n’as pas encore de vocabulaire. Ajoute quelques mots d’abord."
	MsgFinished   = "Quiz terminé, bravo ! On révisera encore plus tard."
	MsgNoQuestion = "Pas de question en cours. Dis « start quiz » pour commencer."
)

// Session is the state of one quiz over a vocabulary collection. It holds
// item indexes, not items: the collection stays the single owner.
type Session struct {
	ID        string
	queue     []int
	current   int // index into the collection, -1 when no question is open
	direction Direction
}

// Result describes one graded answer.
type Result struct {
	Correct bool
	Gold    string // expected answer, original casing
	Verdict string // French verdict line
	Next    string // next prompt, or the terminal message
	Done    bool   // true when the queue is exhausted after this answer
}

// Reply flattens a result into the conversational response.
func (r Result) Reply() string {
	return r.Verdict + "\nProchaine: " + r.Next
}

// Start builds a session over c and serves the first prompt. Due items are
// quizzed first; with nothing due every item is a candidate, easiest boxes
// first, so practice keeps flowing. With an empty collection it returns a
// nil session and the no-vocabulary message.
func Start(c *vocab.Collection, count int, dir Direction, now time.Time, rng *rand.Rand) (*Session, string) {
	if c.Len() == 0 {
		return nil, MsgNoVocab
	}

	cand := leitner.DueIndexes(c, now)
	if len(cand) == 0 {
		cand = make([]int, len(c.Items))
		for i := range c.Items {
			cand[i] = i
		}
		sort.SliceStable(cand, func(a, b int) bool {
			return c.Items[cand[a]].Box < c.Items[cand[b]].Box
		})
	}
	rng.Shuffle(len(cand), func(i, j int) { cand[i], cand[j] = cand[j], cand[i] })

	n := max(1, min(count, len(cand)))
	s := &Session{
		ID:        uuid.NewString(),
		queue:     cand[:n],
		current:   -1,
		direction: dir,
	}
	return s, s.NextQuestion(c)
}

// NextQuestion pops the next queued item and renders its prompt, or reports
// the quiz finished once the queue is empty.
func (s *Session) NextQuestion(c *vocab.Collection) string {
	if len(s.queue) == 0 {
		s.current = -1
		return MsgFinished
	}
	s.current = s.queue[0]
	s.queue = s.queue[1:]

	it := c.Items[s.current]
	if s.direction == FrToEn {
		return fmt.Sprintf("Traduction en anglais: “%s”.", it.Word)
	}
	return fmt.Sprintf("Traduction en français: “%s”.", it.Translation)
}

// Answer grades raw against the open question, updates the item's box and
// due date, and serves the verdict plus the next prompt. It returns false
// with no state change when no question is open.
func (s *Session) Answer(c *vocab.Collection, raw string, now time.Time) (Result, bool) {
	if !s.Active() {
		return Result{}, false
	}

	it := c.Items[s.current]
	gold := it.Word
	if s.direction == FrToEn {
		gold = it.Translation
	}

	goldTokens := textnorm.Normalize(gold)
	dist := editdist.Distance(goldTokens, textnorm.Normalize(raw))
	accepted := float64(dist)/float64(max(1, len(goldTokens))) <= AcceptThreshold

	r := Result{Correct: accepted, Gold: gold}
	if accepted {
		leitner.Promote(it, raw, now)
		r.Verdict = fmt.Sprintf("✅ Bien joué ! Réponse attendue: “%s”.", gold)
	} else {
		leitner.Reset(it, raw, now)
		r.Verdict = fmt.Sprintf("❌ Presque. La bonne réponse est: “%s”.", gold)
	}

	r.Next = s.NextQuestion(c)
	r.Done = !s.Active()
	return r, true
}

// Active reports whether a question is awaiting an answer.
func (s *Session) Active() bool {
	return s != nil && s.current >= 0
}

// Remaining returns the number of queued questions, not counting the open
// one.
func (s *Session) Remaining() int {
	if s == nil {
		return 0
	}
	return len(s.queue)
}

// Direction returns the session's fixed translation direction.
func (s *Session) Direction() Direction { return s.direction }

// CurrentItem returns the item awaiting an answer, or nil.
func (s *Session) CurrentItem(c *vocab.Collection) *vocab.Item {
	if !s.Active() {
		return nil
	}
	return c.Items[s.current]
}
