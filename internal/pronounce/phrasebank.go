package pronounce

import (
	"math/rand"
	"sort"
)

// Phrase pairs a French sentence with its English gloss.
type Phrase struct {
	Fr string
	En string
}

// Phrasebank holds the roleplay and pronunciation sentences by topic.
var Phrasebank = map[string][]Phrase{
	"cafe": {
		{"Bonjour, je voudrais un café s’il vous plaît.", "Hello, I’d like a coffee please."},
		{"C’est à emporter ou sur place ?", "Is that takeaway or for here?"},
		{"Vous prenez la carte ?", "Do you take card?"},
	},
	"travel": {
		{"Où est la gare la plus proche ?", "Where is the nearest train station?"},
		{"À quelle heure part le prochain train pour Lyon ?", "What time is the next train to Lyon?"},
		{"Je cherche un billet aller-retour.", "I’m looking for a return ticket."},
	},
	"hotel": {
		{"J’ai une réservation au nom de Sam.", "I have a reservation under the name Sam."},
		{"À partir de quelle heure est le check-in ?", "From what time is check-in?"},
		{"Est-ce que le petit déjeuner est inclus ?", "Is breakfast included?"},
	},
}

// Topics lists the phrasebank topics in stable order.
func Topics() []string {
	out := make([]string, 0, len(Phrasebank))
	for t := range Phrasebank {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// KnownTopic reports whether topic exists in the phrasebank.
func KnownTopic(topic string) bool {
	_, ok := Phrasebank[topic]
	return ok
}

// Pick returns a random phrase for topic, falling back to a random topic
// when the requested one is unknown. It returns the phrase and the topic it
// actually came from.
func Pick(topic string, rng *rand.Rand) (Phrase, string) {
	if !KnownTopic(topic) {
		topics := Topics()
		topic = topics[rng.Intn(len(topics))]
	}
	phrases := Phrasebank[topic]
	return phrases[rng.Intn(len(phrases))], topic
}
