package game

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog indexes cards by ID and by lower-cased name.
type Catalog struct {
	byID   map[string]Card
	byName map[string]Card
	all    []Card
}

// NewCatalog indexes the given cards. Cards without an ID get their name as ID.
func NewCatalog(cards []Card) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[string]Card, len(cards)),
		byName: make(map[string]Card, len(cards)),
	}
	for _, card := range cards {
		if card.Name == "" {
			return nil, &InputValidationError{Field: "catalog", Reason: "card without a name"}
		}
		if card.ID == "" {
			card.ID = card.Name
		}
		if _, ok := c.byID[card.ID]; ok {
			return nil, &InputValidationError{Field: "catalog", Reason: fmt.Sprintf("duplicate card id %q", card.ID)}
		}
		c.byID[card.ID] = card
		c.byName[strings.ToLower(card.Name)] = card
		c.all = append(c.all, card)
	}
	return c, nil
}

// LoadCatalog reads a JSON array of cards.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var cards []Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return NewCatalog(cards)
}

// Lookup finds a card by ID, then by case-insensitive name.
func (c *Catalog) Lookup(key string) (Card, bool) {
	if card, ok := c.byID[key]; ok {
		return card, true
	}
	card, ok := c.byName[strings.ToLower(strings.TrimSpace(key))]
	return card, ok
}

func (c *Catalog) Len() int {
	return len(c.all)
}

// ResolveDeck expands a deck list into cards, in list order.
func (c *Catalog) ResolveDeck(field string, entries []DeckEntry) ([]Card, error) {
	if len(entries) == 0 {
		return nil, &InputValidationError{Field: field, Reason: "deck list is empty"}
	}
	var cards []Card
	for _, entry := range entries {
		if entry.Quantity <= 0 {
			return nil, &InputValidationError{Field: field, Reason: fmt.Sprintf("quantity for %q must be positive, got %d", entry.Name, entry.Quantity)}
		}
		card, ok := c.Lookup(entry.Name)
		if !ok {
			return nil, &InputValidationError{Field: field, Reason: fmt.Sprintf("card %q is not in the catalog", entry.Name)}
		}
		for i := 0; i < entry.Quantity; i++ {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// ParseDeckList decodes a deck list written as YAML or JSON.
func ParseDeckList(data []byte) ([]DeckEntry, error) {
	var entries []DeckEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse deck list: %w", err)
	}
	return entries, nil
}
