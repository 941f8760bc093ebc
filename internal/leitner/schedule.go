// Package leitner implements the spaced-repetition scheduler: five boxes
// with expanding review delays, promote on a correct answer, back to box
// one on a miss.
package leitner

import "time"

// BoxDelays maps each box to its review delay in days. Higher boxes mean
// higher confidence and longer waits.
var BoxDelays = map[int]int{1: 1, 2: 2, 3: 4, 4: 7, 5: 15}

// Box bounds.
const (
	MinBox = 1
	MaxBox = 5
)

// InitialBox is the box assigned to newly added vocabulary.
func InitialBox() int { return MinBox }

// ClampBox forces box into [MinBox, MaxBox]. Promote and Reset clamp on
// every update, so a corrupted stored box can never overflow the delay
// table.
func ClampBox(box int) int {
	if box < MinBox {
		return MinBox
	}
	if box > MaxBox {
		return MaxBox
	}
	return box
}

// NextDue returns the next review time for box as of now.
func NextDue(box int, now time.Time) time.Time {
	return now.AddDate(0, 0, BoxDelays[ClampBox(box)])
}
