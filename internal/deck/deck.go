package deck

import (
	"math/rand/v2"

	"github.com/arcanaland/patience/internal/card"
)

// Size is the number of cards in a French deck
const Size = len(card.Suits) * len(card.Ranks)

// pcgStream is the fixed second half of the PCG state; the seed supplies the first
const pcgStream = 0xda3e39cb94b95bdb

// Ordered returns the 52 cards face-down, suit by suit, Ace to King
func Ordered() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// New returns a shuffled deck. The same seed always gives the same order.
func New(seed uint64) []card.Card {
	cards := Ordered()
	Shuffle(cards, seed)
	return cards
}

// Shuffle permutes cards in place using a PCG generator seeded with seed
func Shuffle(cards []card.Card, seed uint64) {
	r := rand.New(rand.NewPCG(seed, pcgStream))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
