package game

import "golang.org/x/exp/rand"

// DeckEntry is one line of a deck list.
type DeckEntry struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Deck is a player's draw pile. The top of the deck is index 0.
type Deck struct {
	cards []Card
}

// NewDeck builds a deck from resolved cards, shuffling when rng is non-nil.
func NewDeck(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	if rng != nil {
		rng.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
	return d
}

func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

func (d *Deck) Len() int {
	return len(d.cards)
}
