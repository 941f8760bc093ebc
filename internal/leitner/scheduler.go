package leitner

import (
	"strings"
	"time"

	"github.com/samdyer/revoir/internal/vocab"
)

// AddItem appends a new item to the collection in the initial box, due
// after the box-one delay. Word and translation are trimmed.
func AddItem(c *vocab.Collection, word, translation, example string, now time.Time) *vocab.Item {
	it := &vocab.Item{
		Word:        strings.TrimSpace(word),
		Translation: strings.TrimSpace(translation),
		Example:     strings.TrimSpace(example),
		Box:         InitialBox(),
		NextDue:     NextDue(InitialBox(), now),
	}
	c.Items = append(c.Items, it)
	return it
}

// Promote moves an item up one box after a correct answer, recomputes its
// due date and appends a history entry. At the top box the promotion is
// idempotent.
func Promote(it *vocab.Item, rawInput string, now time.Time) {
	it.Box = ClampBox(it.Box + 1)
	it.NextDue = NextDue(it.Box, now)
	it.History = append(it.History, vocab.HistoryEntry{At: now, Correct: true, RawInput: rawInput})
}

// Reset sends an item back to the first box after a wrong answer,
// recomputes its due date and appends a history entry.
func Reset(it *vocab.Item, rawInput string, now time.Time) {
	it.Box = MinBox
	it.NextDue = NextDue(it.Box, now)
	it.History = append(it.History, vocab.HistoryEntry{At: now, Correct: false, RawInput: rawInput})
}

// DueIndexes returns the indexes of items due at or before now. Order is
// unspecified; callers sort as they need.
func DueIndexes(c *vocab.Collection, now time.Time) []int {
	var due []int
	for i, it := range c.Items {
		if it.Due(now) {
			due = append(due, i)
		}
	}
	return due
}

// OverdueDays reports how many whole days past due an item is. Display and
// export only; it never feeds back into scheduling. Zero when not yet due.
func OverdueDays(it *vocab.Item, now time.Time) int {
	if now.Before(it.NextDue) {
		return 0
	}
	return int(now.Sub(it.NextDue).Hours() / 24)
}
