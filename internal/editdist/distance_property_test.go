package editdist

import (
	"testing"

	"pgregory.net/rapid"
)

func tokenSeq() *rapid.Generator[[]string] {
	word := rapid.StringMatching(`[a-zéèêàùç]{1,8}`)
	return rapid.SliceOfN(word, 0, 12)
}

func TestDistance_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := tokenSeq().Draw(t, "a")
		b := tokenSeq().Draw(t, "b")

		d := Distance(a, b)

		if d < 0 {
			t.Fatalf("distance is negative: %d", d)
		}
		if d > max(len(a), len(b)) {
			t.Fatalf("distance %d exceeds max length %d", d, max(len(a), len(b)))
		}
		diff := len(a) - len(b)
		if diff < 0 {
			diff = -diff
		}
		if d < diff {
			t.Fatalf("distance %d below length difference %d", d, diff)
		}
		if d != Distance(b, a) {
			t.Fatalf("distance not symmetric: %d vs %d", d, Distance(b, a))
		}
	})
}

func TestDistance_ZeroIffEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := tokenSeq().Draw(t, "a")
		if got := Distance(a, a); got != 0 {
			t.Fatalf("Distance(a, a) = %d, want 0", got)
		}
	})
}

func TestDistance_TriangleInequality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := tokenSeq().Draw(t, "a")
		b := tokenSeq().Draw(t, "b")
		c := tokenSeq().Draw(t, "c")
		if Distance(a, c) > Distance(a, b)+Distance(b, c) {
			t.Fatalf("triangle inequality violated: d(a,c)=%d > d(a,b)+d(b,c)=%d",
				Distance(a, c), Distance(a, b)+Distance(b, c))
		}
	})
}
