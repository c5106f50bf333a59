package game

import (
	"fmt"

	"lorcana/utils"
)

// PlayerState holds one player's zones and lore.
type PlayerState struct {
	ID      PlayerID    `json:"id"`
	Hand    []Card      `json:"hand"`
	Inkwell []CardState `json:"inkwell"`
	Board   []CardState `json:"board"`
	Lore    int         `json:"lore"`
	Deck    *Deck       `json:"-"` // nil when the player cannot draw
}

// NewPlayerState returns an empty player with the given draw deck (which may be nil).
func NewPlayerState(id PlayerID, deck *Deck) *PlayerState {
	return &PlayerState{
		ID:      id,
		Hand:    []Card{},
		Inkwell: []CardState{},
		Board:   []CardState{},
		Deck:    deck,
	}
}

// AvailableInk counts ready inkwell entries.
func (ps *PlayerState) AvailableInk() int {
	count := 0
	for _, ink := range ps.Inkwell {
		if IsReady(ink) {
			count++
		}
	}
	return count
}

// ExertedInk counts exerted inkwell entries.
func (ps *PlayerState) ExertedInk() int {
	count := 0
	for _, ink := range ps.Inkwell {
		if ink.Exerted {
			count++
		}
	}
	return count
}

// ReadyStep readies every inkwell and board entry and dries the board.
func (ps *PlayerState) ReadyStep() {
	for i := range ps.Inkwell {
		ps.Inkwell[i].Exerted = false
		ps.Inkwell[i].Dry = true
	}
	for i := range ps.Board {
		ps.Board[i].Exerted = false
		ps.Board[i].Dry = true
	}
}

// Draw moves the top card of the deck into the hand. It reports false when
// the player has no deck or the deck is empty.
func (ps *PlayerState) Draw() (Card, bool) {
	if ps.Deck == nil {
		return Card{}, false
	}
	card, ok := ps.Deck.Draw()
	if !ok {
		return Card{}, false
	}
	ps.Hand = append(ps.Hand, card)
	return card, true
}

// TakeFromHand removes the first card with the given ID from the hand.
func (ps *PlayerState) TakeFromHand(cardID string) (Card, bool) {
	i := utils.FindIndex(ps.Hand, func(c Card) bool { return c.ID == cardID })
	if i < 0 {
		return Card{}, false
	}
	card := ps.Hand[i]
	ps.Hand = utils.RemoveAt(ps.Hand, i)
	return card, true
}

// AddInk wraps the card as a dry, ready ink and appends it to the inkwell.
func (ps *PlayerState) AddInk(card Card) {
	ps.Inkwell = append(ps.Inkwell, inkState(card))
}

// AddToBoard wraps the card as a wet, ready character and appends it to the board.
func (ps *PlayerState) AddToBoard(card Card) {
	ps.Board = append(ps.Board, boardState(card))
}

// ExertCharacter exerts the first non-exerted board entry with the given ID, falling
// back to any entry with that ID. It reports false when the card is not on the board.
func (ps *PlayerState) ExertCharacter(cardID string) (Card, bool) {
	i := utils.FindIndex(ps.Board, func(cs CardState) bool { return cs.Card.ID == cardID && !cs.Exerted })
	if i < 0 {
		i = utils.FindIndex(ps.Board, func(cs CardState) bool { return cs.Card.ID == cardID })
	}
	if i < 0 {
		return Card{}, false
	}
	ps.Board[i].Exerted = true
	return ps.Board[i].Card, true
}

// PayInk exerts up to cost ready ink, first ready first exerted, and returns how much was paid.
func (ps *PlayerState) PayInk(cost int) int {
	paid := 0
	for i := range ps.Inkwell {
		if paid >= cost {
			break
		}
		if IsReady(ps.Inkwell[i]) {
			ps.Inkwell[i].Exerted = true
			paid++
		}
	}
	return paid
}

// GainLore adds lore. Negative amounts are rejected so lore never decreases.
func (ps *PlayerState) GainLore(amount int) error {
	if amount < 0 {
		return fmt.Errorf("cannot gain negative lore %d", amount)
	}
	ps.Lore += amount
	return nil
}

// Copy returns a deep copy of the zones. The deck is shared since snapshots never draw.
func (ps *PlayerState) Copy() *PlayerState {
	hand := make([]Card, len(ps.Hand))
	copy(hand, ps.Hand)

	inkwell := make([]CardState, len(ps.Inkwell))
	copy(inkwell, ps.Inkwell)

	board := make([]CardState, len(ps.Board))
	copy(board, ps.Board)

	return &PlayerState{
		ID:      ps.ID,
		Hand:    hand,
		Inkwell: inkwell,
		Board:   board,
		Lore:    ps.Lore,
		Deck:    ps.Deck,
	}
}

// Summary is the reporting view of a player.
type Summary struct {
	Hand         []string `json:"hand"`
	Inkwell      int      `json:"inkwell"`
	AvailableInk int      `json:"availableInk"`
	Board        []string `json:"board"`
	Lore         int      `json:"lore"`
	DeckSize     int      `json:"deckSize"`
}

func (ps *PlayerState) Summary() Summary {
	hand := make([]string, 0, len(ps.Hand))
	for _, c := range ps.Hand {
		hand = append(hand, c.Name)
	}
	board := make([]string, 0, len(ps.Board))
	for _, cs := range ps.Board {
		board = append(board, cs.Card.Name)
	}
	deckSize := 0
	if ps.Deck != nil {
		deckSize = ps.Deck.Len()
	}
	return Summary{
		Hand:         hand,
		Inkwell:      len(ps.Inkwell),
		AvailableInk: ps.AvailableInk(),
		Board:        board,
		Lore:         ps.Lore,
		DeckSize:     deckSize,
	}
}
