package leitner

import (
	"testing"
	"time"
)

func TestBoxDelays_Values(t *testing.T) {
	expected := map[int]int{1: 1, 2: 2, 3: 4, 4: 7, 5: 15}
	if len(BoxDelays) != len(expected) {
		t.Fatalf("BoxDelays has %d entries, want %d", len(BoxDelays), len(expected))
	}
	for box, days := range expected {
		if BoxDelays[box] != days {
			t.Errorf("BoxDelays[%d] = %d, want %d", box, BoxDelays[box], days)
		}
	}
}

func TestInitialBox(t *testing.T) {
	if InitialBox() != 1 {
		t.Errorf("InitialBox() = %d, want 1", InitialBox())
	}
}

func TestClampBox(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {6, 5}, {9, 5},
	}
	for _, tt := range tests {
		if got := ClampBox(tt.in); got != tt.want {
			t.Errorf("ClampBox(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNextDue_DelayPerBox(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	tests := []struct {
		box  int
		days int
	}{
		{1, 1}, {2, 2}, {3, 4}, {4, 7}, {5, 15},
		// out-of-range boxes clamp before lookup
		{0, 1}, {9, 15},
	}
	for _, tt := range tests {
		got := NextDue(tt.box, now)
		want := now.AddDate(0, 0, tt.days)
		if !got.Equal(want) {
			t.Errorf("NextDue(%d) = %v, want %v", tt.box, got, want)
		}
	}
}
