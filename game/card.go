package game

import "strings"

type CardType string

const (
	CharacterCard CardType = "character"
	ActionCard    CardType = "action"
	ItemCard      CardType = "item"
	LocationCard  CardType = "location"
)

// Card is an immutable catalog entry. Cards are created once when the catalog is loaded.
type Card struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Cost      int      `json:"cost" yaml:"cost"`
	Inkable   bool     `json:"inkable" yaml:"inkable"`
	Lore      int      `json:"lore" yaml:"lore"`
	Strength  *int     `json:"strength,omitempty" yaml:"strength,omitempty"`
	Willpower *int     `json:"willpower,omitempty" yaml:"willpower,omitempty"`
	Type      CardType `json:"type,omitempty" yaml:"type,omitempty"`
	Color     string   `json:"color,omitempty" yaml:"color,omitempty"` // Informational, never used to pay costs
}

// IsCharacter reports whether the card can quest once on the board. Cards without a type are characters.
func (c Card) IsCharacter() bool {
	return c.Type == "" || CardType(strings.ToLower(string(c.Type))) == CharacterCard
}

// CardState wraps a card that is in play (inkwell or board)
type CardState struct {
	Card    Card `json:"card"`
	Exerted bool `json:"exerted"`
	Dry     bool `json:"dry"`
}

// IsReady reports whether the card can act: not exerted and dry.
func IsReady(cs CardState) bool {
	return !cs.Exerted && cs.Dry
}

// IsExerted reports whether the card has been exerted this turn.
func IsExerted(cs CardState) bool {
	return cs.Exerted
}

// IsWet reports whether the card was put into play this turn.
func IsWet(cs CardState) bool {
	return !cs.Dry
}

func inkState(card Card) CardState {
	return CardState{Card: card, Exerted: false, Dry: true}
}

func boardState(card Card) CardState {
	return CardState{Card: card, Exerted: false, Dry: false}
}
