package pronounce

import (
	"strings"

	"github.com/samdyer/revoir/internal/textnorm"
)

// tipRule produces one coaching tip when its condition matches a target and
// the learner's attempt.
type tipRule struct {
	match func(target, heard []string, rawTarget string) bool
	text  string
}

// tipTable is deliberately small and replaceable: pattern checks for common
// French pitfalls, not a linguistic rule engine.
var tipTable = []tipRule{
	{
		// Contraction spoken as the bare pronoun.
		match: func(target, heard []string, _ string) bool {
			return len(target) > 0 && len(heard) > 0 &&
				target[0] == "j'ai" && heard[0] == "je"
		},
		text: "Astuce: “j’ai” se prononce comme 'jé', pas 'je'.",
	},
	{
		// Liaison-prone words in the target.
		match: func(_, _ []string, rawTarget string) bool {
			for _, w := range []string{"est-ce que", "vous", "un", "une"} {
				if strings.Contains(rawTarget, w) {
					return true
				}
			}
			return false
		},
		text: "Astuce: fais attention aux liaisons (ex: 'vous‿avez', 'est-ce').",
	},
}

// tipAllClear is shown when nothing in the attempt triggered a tip.
const tipAllClear = "Continuité parfaite, on augmente la vitesse progressivement."

func tipsFor(target, heard string) []string {
	tt := textnorm.Tokenize(target)
	ht := textnorm.Tokenize(heard)
	var tips []string
	for _, rule := range tipTable {
		if rule.match(tt, ht, target) {
			tips = append(tips, rule.text)
		}
	}
	return tips
}
