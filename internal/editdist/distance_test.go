package editdist

import "testing"

func tok(words ...string) []string { return words }

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want int
	}{
		{"both empty", nil, nil, 0},
		{"empty a", nil, tok("le", "café"), 2},
		{"empty b", tok("le", "café"), nil, 2},
		{"equal", tok("le", "café"), tok("le", "café"), 0},
		{"substitution", tok("le", "chat"), tok("le", "chien"), 1},
		{"insertion", tok("le", "chat"), tok("le", "petit", "chat"), 1},
		{"deletion", tok("le", "petit", "chat"), tok("le", "chat"), 1},
		{"disjoint", tok("un", "deux", "trois"), tok("quatre"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := tok("où", "est", "la", "gare")
	b := tok("ou", "est", "gare")
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance not symmetric: %d vs %d", Distance(a, b), Distance(b, a))
	}
}

func TestWordErrorRate(t *testing.T) {
	tests := []struct {
		name     string
		ref, hyp string
		want     float64
	}{
		{"identical", "je voudrais un café", "je voudrais un café", 0},
		{"accents ignored", "un café s’il vous plaît", "un cafe s'il vous plait", 0},
		{"case ignored", "Bonjour Madame", "bonjour madame", 0},
		{"one of four wrong", "je voudrais un café", "je voudrais un thé", 0.25},
		{"empty reference", "", "anything at all", 0},
		{"empty hypothesis", "un deux", "", 1},
		{"punctuation only reference", "?! ...", "bonjour", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordErrorRate(tt.ref, tt.hyp); got != tt.want {
				t.Errorf("WordErrorRate(%q, %q) = %v, want %v", tt.ref, tt.hyp, got, tt.want)
			}
		})
	}
}

func TestWordErrorRate_CanExceedOne(t *testing.T) {
	got := WordErrorRate("oui", "non je ne sais pas")
	if got <= 1 {
		t.Errorf("WordErrorRate = %v, want > 1 for a long wrong hypothesis", got)
	}
}
