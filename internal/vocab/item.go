// Package vocab defines the vocabulary data model shared by the scheduler,
// the quiz session and the persistence layer.
package vocab

import (
	"strings"
	"time"
)

// TimeLayout is the timestamp encoding agreed with the persistence layer:
// ISO-8601 at seconds precision, sortable as a plain string.
const TimeLayout = "2006-01-02T15:04:05"

// FormatTime encodes t for storage and export.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime decodes a stored timestamp. A malformed value parses to the
// zero time so a corrupted record reads as already due instead of blocking
// the review loop.
func ParseTime(s string) time.Time {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// HistoryEntry records one graded answer. Entries are append-only and kept
// in chronological order.
type HistoryEntry struct {
	At       time.Time
	Correct  bool
	RawInput string
}

// Item is a single vocabulary record. Box stays within [1,5] and NextDue is
// only ever written by the scheduler.
type Item struct {
	Word        string
	Translation string
	Example     string
	Box         int
	NextDue     time.Time
	History     []HistoryEntry
}

// Due reports whether the item is due for review at now.
func (it *Item) Due(now time.Time) bool {
	return !it.NextDue.After(now)
}

// Collection owns a set of vocabulary items. Items are never shared between
// collections.
type Collection struct {
	Items []*Item
}

// Len returns the number of items.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
