package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StripAccents removes diacritics from s: canonical decomposition, then
// every combining mark (category Mn) is dropped. The result is not
// recomposed; it is only ever used for comparison, never display.
func StripAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Tokenize splits text into lowercase word tokens, left to right. A token is
// a maximal run of letters plus apostrophe and hyphen; every other rune is a
// separator. The typographic apostrophe folds to the plain one so "j’ai"
// and "j'ai" produce the same token.
func Tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range text {
		if isWordRune(r) {
			if r == '’' {
				r = '\''
			}
			cur.WriteRune(unicode.ToLower(r))
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// Normalize returns the comparison form of text: accent-stripped,
// lowercased tokens.
func Normalize(text string) []string {
	return Tokenize(StripAccents(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '’' || r == '-'
}
