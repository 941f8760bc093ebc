package leitner

import (
	"testing"
	"time"

	"github.com/samdyer/revoir/internal/vocab"
)

var testNow = time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)

func TestAddItem(t *testing.T) {
	c := &vocab.Collection{}
	it := AddItem(c, "  chat ", " cat ", " un chat noir ", testNow)

	if c.Len() != 1 {
		t.Fatalf("collection has %d items, want 1", c.Len())
	}
	if it.Word != "chat" || it.Translation != "cat" || it.Example != "un chat noir" {
		t.Errorf("fields not trimmed: %+v", it)
	}
	if it.Box != 1 {
		t.Errorf("Box = %d, want 1", it.Box)
	}
	if want := testNow.AddDate(0, 0, 1); !it.NextDue.Equal(want) {
		t.Errorf("NextDue = %v, want %v", it.NextDue, want)
	}
	if len(it.History) != 0 {
		t.Errorf("new item has history: %v", it.History)
	}
}

func TestPromote_ClimbsBoxes(t *testing.T) {
	it := &vocab.Item{Word: "chat", Translation: "cat", Box: 1}
	for i, wantBox := range []int{2, 3, 4, 5, 5} {
		Promote(it, "chat", testNow)
		if it.Box != wantBox {
			t.Fatalf("after promote %d: Box = %d, want %d", i+1, it.Box, wantBox)
		}
		if want := testNow.AddDate(0, 0, BoxDelays[wantBox]); !it.NextDue.Equal(want) {
			t.Errorf("after promote %d: NextDue = %v, want %v", i+1, it.NextDue, want)
		}
	}
	if len(it.History) != 5 {
		t.Errorf("history length = %d, want 5", len(it.History))
	}
	for _, h := range it.History {
		if !h.Correct || h.RawInput != "chat" || !h.At.Equal(testNow) {
			t.Errorf("bad history entry: %+v", h)
		}
	}
}

func TestReset_AlwaysBoxOne(t *testing.T) {
	for _, startBox := range []int{1, 3, 5, 0, 9} {
		it := &vocab.Item{Word: "chien", Box: startBox}
		Reset(it, "sien", testNow)
		if it.Box != 1 {
			t.Errorf("Reset from box %d: Box = %d, want 1", startBox, it.Box)
		}
		if want := testNow.AddDate(0, 0, 1); !it.NextDue.Equal(want) {
			t.Errorf("Reset from box %d: NextDue = %v, want %v", startBox, it.NextDue, want)
		}
		if len(it.History) != 1 || it.History[0].Correct || it.History[0].RawInput != "sien" {
			t.Errorf("Reset from box %d: history = %+v", startBox, it.History)
		}
	}
}

func TestPromote_ClampsCorruptBox(t *testing.T) {
	it := &vocab.Item{Box: 9}
	Promote(it, "x", testNow)
	if it.Box != 5 {
		t.Errorf("Box = %d, want 5", it.Box)
	}
	it = &vocab.Item{Box: -2}
	Promote(it, "x", testNow)
	if it.Box != 1 {
		t.Errorf("Box = %d, want 1", it.Box)
	}
}

func TestDueIndexes(t *testing.T) {
	c := &vocab.Collection{Items: []*vocab.Item{
		{Word: "a", NextDue: testNow.Add(-time.Hour)},
		{Word: "b", NextDue: testNow.Add(time.Hour)},
		{Word: "c", NextDue: testNow},
		{Word: "d"}, // zero due date: malformed record fallback, always due
	}}
	got := DueIndexes(c, testNow)
	want := map[int]bool{0: true, 2: true, 3: true}
	if len(got) != len(want) {
		t.Fatalf("DueIndexes = %v, want indexes %v", got, want)
	}
	for _, i := range got {
		if !want[i] {
			t.Errorf("unexpected due index %d", i)
		}
	}
}

func TestOverdueDays(t *testing.T) {
	tests := []struct {
		name    string
		nextDue time.Time
		want    int
	}{
		{"not yet due", testNow.Add(time.Hour), 0},
		{"due now", testNow, 0},
		{"half a day over", testNow.Add(-12 * time.Hour), 0},
		{"three days over", testNow.AddDate(0, 0, -3), 3},
	}
	for _, tt := range tests {
		it := &vocab.Item{NextDue: tt.nextDue}
		if got := OverdueDays(it, testNow); got != tt.want {
			t.Errorf("%s: OverdueDays = %d, want %d", tt.name, got, tt.want)
		}
	}
}
