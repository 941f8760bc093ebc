package quiz

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/samdyer/revoir/internal/vocab"
)

var testNow = time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func dueCollection(items ...*vocab.Item) *vocab.Collection {
	for _, it := range items {
		if it.Box == 0 {
			it.Box = 1
		}
		if it.NextDue.IsZero() {
			it.NextDue = testNow.Add(-time.Hour)
		}
	}
	return &vocab.Collection{Items: items}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"en2fr", EnToFr},
		{"fr2en", FrToEn},
		{" FR2EN ", FrToEn},
		{"", EnToFr},
		{"sideways", EnToFr},
	}
	for _, tt := range tests {
		if got := ParseDirection(tt.in); got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStart_EmptyCollection(t *testing.T) {
	s, msg := Start(&vocab.Collection{}, 5, EnToFr, testNow, testRNG())
	if s != nil {
		t.Fatal("expected nil session for empty collection")
	}
	if msg != MsgNoVocab {
		t.Errorf("msg = %q, want %q", msg, MsgNoVocab)
	}
}

func TestStart_ServesFirstQuestion(t *testing.T) {
	c := dueCollection(&vocab.Item{Word: "chat", Translation: "cat"})
	s, prompt := Start(c, 1, EnToFr, testNow, testRNG())
	if s == nil {
		t.Fatal("expected a session")
	}
	if !s.Active() {
		t.Error("session should be awaiting an answer")
	}
	if want := "Traduction en français: “cat”."; prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
}

func TestStart_DirectionFrToEn(t *testing.T) {
	c := dueCollection(&vocab.Item{Word: "chat", Translation: "cat"})
	_, prompt := Start(c, 1, FrToEn, testNow, testRNG())
	if want := "Traduction en anglais: “chat”."; prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
}

func TestStart_CountTruncation(t *testing.T) {
	c := dueCollection(
		&vocab.Item{Word: "un", Translation: "one"},
		&vocab.Item{Word: "deux", Translation: "two"},
		&vocab.Item{Word: "trois", Translation: "three"},
	)
	tests := []struct {
		count int
		want  int // questions served in total
	}{
		{2, 2},
		{10, 3},
		{0, 1}, // at least one question
		{-5, 1},
	}
	for _, tt := range tests {
		s, _ := Start(c, tt.count, EnToFr, testNow, testRNG())
		served := 1 + s.Remaining()
		if served != tt.want {
			t.Errorf("count %d: serves %d questions, want %d", tt.count, served, tt.want)
		}
	}
}

func TestStart_FallbackWhenNothingDue(t *testing.T) {
	future := testNow.Add(48 * time.Hour)
	c := &vocab.Collection{Items: []*vocab.Item{
		{Word: "un", Translation: "one", Box: 4, NextDue: future},
		{Word: "deux", Translation: "two", Box: 2, NextDue: future},
	}}
	s, prompt := Start(c, 5, EnToFr, testNow, testRNG())
	if s == nil {
		t.Fatalf("expected a session from fallback, got message %q", prompt)
	}
	if served := 1 + s.Remaining(); served != 2 {
		t.Errorf("fallback serves %d questions, want 2", served)
	}
}

func TestAnswer_AcceptPromotes(t *testing.T) {
	it := &vocab.Item{Word: "chat", Translation: "cat"}
	c := dueCollection(it)
	s, _ := Start(c, 1, EnToFr, testNow, testRNG())

	r, ok := s.Answer(c, "chat", testNow)
	if !ok {
		t.Fatal("expected an open question")
	}
	if !r.Correct {
		t.Error("exact answer should be accepted")
	}
	if it.Box != 2 {
		t.Errorf("Box = %d, want 2", it.Box)
	}
	if want := testNow.AddDate(0, 0, 2); !it.NextDue.Equal(want) {
		t.Errorf("NextDue = %v, want %v", it.NextDue, want)
	}
	if !strings.Contains(r.Verdict, "Bien joué") {
		t.Errorf("verdict = %q, want it to contain %q", r.Verdict, "Bien joué")
	}
	if !strings.Contains(r.Next, "Quiz terminé") {
		t.Errorf("next = %q, want terminal message", r.Next)
	}
	if !r.Done {
		t.Error("Done should be true after the last question")
	}
}

func TestAnswer_AccentAndCaseInsensitive(t *testing.T) {
	it := &vocab.Item{Word: "le café", Translation: "the coffee"}
	c := dueCollection(it)
	s, _ := Start(c, 1, EnToFr, testNow, testRNG())

	r, _ := s.Answer(c, "Le Cafe", testNow)
	if !r.Correct {
		t.Error("accent/case variants should grade as correct")
	}
}

func TestAnswer_RejectResets(t *testing.T) {
	it := &vocab.Item{Word: "où est la gare", Translation: "where is the station", Box: 3}
	c := dueCollection(it)
	s, _ := Start(c, 1, EnToFr, testNow, testRNG())

	// One garbled token against a four-token gold: distance 4, ratio 1.0.
	r, _ := s.Answer(c, "bonjour", testNow)
	if r.Correct {
		t.Error("garbled answer should be rejected")
	}
	if it.Box != 1 {
		t.Errorf("Box = %d, want 1 after reject", it.Box)
	}
	if !strings.Contains(r.Verdict, "Presque") {
		t.Errorf("verdict = %q, want the reject wording", r.Verdict)
	}
}

func TestAnswer_ThresholdBoundary(t *testing.T) {
	// Gold has 3 tokens: one substitution gives 1/3 ≈ 0.333 <= 0.34 (accept),
	// two substitutions give 2/3 (reject).
	it := &vocab.Item{Word: "je voudrais ça", Translation: "x"}
	c := dueCollection(it)

	s, _ := Start(c, 1, EnToFr, testNow, testRNG())
	r, _ := s.Answer(c, "je voudrais si", testNow)
	if !r.Correct {
		t.Error("distance 1 over 3 tokens should be accepted")
	}

	it.Box = 1
	it.NextDue = testNow.Add(-time.Hour)
	s, _ = Start(c, 1, EnToFr, testNow, testRNG())
	r, _ = s.Answer(c, "tu veux si", testNow)
	if r.Correct {
		t.Error("distance > 1 over 3 tokens should be rejected")
	}
}

func TestAnswer_EmptyAnswerIsGraded(t *testing.T) {
	it := &vocab.Item{Word: "chat", Translation: "cat", Box: 2}
	c := dueCollection(it)
	s, _ := Start(c, 1, EnToFr, testNow, testRNG())

	r, ok := s.Answer(c, "", testNow)
	if !ok {
		t.Fatal("empty answers are graded, not refused")
	}
	if r.Correct {
		t.Error("empty answer should fail the threshold")
	}
	if it.Box != 1 {
		t.Errorf("Box = %d, want 1", it.Box)
	}
}

func TestQueueExhaustion_ThenNoActiveQuestion(t *testing.T) {
	it := &vocab.Item{Word: "chat", Translation: "cat"}
	c := dueCollection(it)
	s, _ := Start(c, 1, EnToFr, testNow, testRNG())

	r, _ := s.Answer(c, "chat", testNow)
	if r.Next != MsgFinished {
		t.Errorf("next = %q, want %q", r.Next, MsgFinished)
	}
	if s.Active() {
		t.Error("session should be idle after exhaustion")
	}

	boxBefore, dueBefore, histBefore := it.Box, it.NextDue, len(it.History)
	if _, ok := s.Answer(c, "chat", testNow); ok {
		t.Error("answering with no open question must be refused")
	}
	if it.Box != boxBefore || !it.NextDue.Equal(dueBefore) || len(it.History) != histBefore {
		t.Error("refused answer must not mutate any item")
	}
}

func TestEndToEnd_ChatCat(t *testing.T) {
	c := &vocab.Collection{}
	it := &vocab.Item{Word: "chat", Translation: "cat", Box: 1, NextDue: testNow.Add(-time.Minute)}
	c.Items = append(c.Items, it)

	s, prompt := Start(c, 1, ParseDirection("en2fr"), testNow, testRNG())
	if want := "Traduction en français: “cat”."; prompt != want {
		t.Fatalf("prompt = %q, want %q", prompt, want)
	}

	r, ok := s.Answer(c, "chat", testNow)
	if !ok || !r.Correct {
		t.Fatal("exact answer must be accepted")
	}
	if it.Box != 2 {
		t.Errorf("Box = %d, want 2", it.Box)
	}
	if want := testNow.AddDate(0, 0, 2); !it.NextDue.Equal(want) {
		t.Errorf("NextDue = %v, want now+2d", it.NextDue)
	}
	reply := r.Reply()
	if !strings.Contains(reply, "Bien joué") || !strings.Contains(reply, "Quiz terminé") {
		t.Errorf("reply = %q, want verdict then terminal message", reply)
	}
}

func TestAnswer_RecordsHistory(t *testing.T) {
	it := &vocab.Item{Word: "chat", Translation: "cat"}
	c := dueCollection(it)
	s, _ := Start(c, 1, EnToFr, testNow, testRNG())
	s.Answer(c, "le chat", testNow)

	if len(it.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(it.History))
	}
	h := it.History[0]
	if h.RawInput != "le chat" || !h.At.Equal(testNow) {
		t.Errorf("history entry = %+v", h)
	}
}
