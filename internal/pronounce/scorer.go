// Package pronounce scores a transcribed pronunciation attempt against a
// target sentence: word-error-rate tiering, accent-mismatch detection and a
// small table of coaching tips.
package pronounce

import (
	"fmt"
	"math"
	"strings"

	"github.com/samdyer/revoir/internal/editdist"
	"github.com/samdyer/revoir/internal/textnorm"
)

// Tier buckets a word-error-rate into coaching feedback.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierNeedsWork Tier = "needs work"
	TierHard      Tier = "hard to understand"
)

// Label returns the French coaching line for the tier.
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent — très clair !"
	case TierGood:
		return "Bien — compréhensible avec quelques petites erreurs."
	case TierNeedsWork:
		return "Correct — retravaillons l’articulation."
	default:
		return "Difficile à comprendre — on va le décomposer."
	}
}

// TierFor maps a word-error-rate to its tier. Boundaries are inclusive on
// the lower tier: exactly 0.20 is still excellent.
func TierFor(wer float64) Tier {
	switch {
	case wer <= 0.20:
		return TierExcellent
	case wer <= 0.35:
		return TierGood
	case wer <= 0.50:
		return TierNeedsWork
	default:
		return TierHard
	}
}

// Mismatch pairs a target token with what was heard when only the accents
// differ.
type Mismatch struct {
	Want string
	Got  string
}

// AccentMismatches zips target and heard tokens by position, stopping at
// the shorter side, and records pairs that are equal once accents are
// stripped but differ as spoken.
func AccentMismatches(target, heard string) []Mismatch {
	tt := textnorm.Tokenize(target)
	ht := textnorm.Tokenize(heard)
	var out []Mismatch
	for i := 0; i < len(tt) && i < len(ht); i++ {
		if tt[i] != ht[i] && textnorm.StripAccents(tt[i]) == textnorm.StripAccents(ht[i]) {
			out = append(out, Mismatch{Want: tt[i], Got: ht[i]})
		}
	}
	return out
}

// maxMismatchNotes caps how many accent slips a single result reports.
const maxMismatchNotes = 3

// Result is one scored pronunciation attempt.
type Result struct {
	Tier        Tier
	Score       int // 0..100
	WER         float64
	AccentNotes []Mismatch
	Tips        []string
}

// Score compares a transcribed attempt against the target sentence.
func Score(target, heard string) Result {
	wer := editdist.WordErrorRate(target, heard)
	r := Result{
		Tier:  TierFor(wer),
		Score: int(math.Round(100 * math.Max(0, 1-wer))),
		WER:   wer,
	}
	notes := AccentMismatches(target, heard)
	if len(notes) > maxMismatchNotes {
		notes = notes[:maxMismatchNotes]
	}
	r.AccentNotes = notes
	r.Tips = tipsFor(target, heard)
	return r
}

// Reply renders the result as the conversational feedback block.
func (r Result) Reply() string {
	var lines []string
	if len(r.AccentNotes) > 0 {
		pairs := make([]string, len(r.AccentNotes))
		for i, m := range r.AccentNotes {
			pairs[i] = m.Want + "→" + m.Got
		}
		lines = append(lines, "Accents à surveiller: "+strings.Join(pairs, ", "))
	}
	lines = append(lines, r.Tips...)
	if len(lines) == 0 {
		lines = append(lines, tipAllClear)
	}
	return fmt.Sprintf("%s\nScore: %d/100 (WER≈%.2f)\n%s",
		r.Tier.Label(), r.Score, r.WER, strings.Join(lines, "\n"))
}

// MsgNoTarget is returned when scoring is requested before a target
// sentence was set.
const MsgNoTarget = "Pas de phrase cible encore. Demande une phrase d’abord."

// Practice tracks the single active pronunciation target. Setting a new
// target replaces the previous one; targets are never persisted.
type Practice struct {
	target string
	topic  string
}

// SetTarget replaces the active target sentence.
func (p *Practice) SetTarget(sentence, topic string) {
	p.target = sentence
	p.topic = topic
}

// Target returns the active sentence, empty when none is set.
func (p *Practice) Target() string { return p.target }

// Topic returns the topic the active sentence came from.
func (p *Practice) Topic() string { return p.topic }

// Check scores heard against the active target. It returns false when no
// target has been set.
func (p *Practice) Check(heard string) (Result, bool) {
	if p.target == "" {
		return Result{}, false
	}
	return Score(p.target, heard), true
}
