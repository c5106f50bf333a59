package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type PlayerID string

const (
	Player1 PlayerID = "player1"
	Player2 PlayerID = "player2"
)

// Players lists the fixed player IDs in seat order.
var Players = []PlayerID{Player1, Player2}

const DefaultOpeningHand = 7

// GameState is the authoritative state of one simulation run.
type GameState struct {
	Players map[PlayerID]*PlayerState `json:"players"`
	Active  PlayerID                  `json:"activePlayer"`
	Discard []Card                    `json:"discard"`
}

// NewGameState creates a game from two already built players, player1 active.
func NewGameState(p1, p2 *PlayerState) *GameState {
	p1.ID = Player1
	p2.ID = Player2
	return &GameState{
		Players: map[PlayerID]*PlayerState{
			Player1: p1,
			Player2: p2,
		},
		Active:  Player1,
		Discard: []Card{},
	}
}

// Setup describes how NewGame builds a run.
type Setup struct {
	Deck1       []Card
	Deck2       []Card
	OpeningHand int
	Seed        uint64 // 0 leaves the decks in list order
}

// NewGame shuffles both decks and deals opening hands.
func NewGame(setup Setup) (*GameState, error) {
	if len(setup.Deck1) == 0 || len(setup.Deck2) == 0 {
		return nil, &InputValidationError{Field: "decks", Reason: "both players need a non-empty deck"}
	}
	if setup.OpeningHand < 0 {
		return nil, &InputValidationError{Field: "openingHand", Reason: fmt.Sprintf("must not be negative, got %d", setup.OpeningHand)}
	}

	var rng *rand.Rand
	if setup.Seed != 0 {
		rng = rand.New(rand.NewSource(setup.Seed))
	}
	p1 := NewPlayerState(Player1, NewDeck(setup.Deck1, rng))
	p2 := NewPlayerState(Player2, NewDeck(setup.Deck2, rng))
	for i := 0; i < setup.OpeningHand; i++ {
		p1.Draw()
		p2.Draw()
	}
	return NewGameState(p1, p2), nil
}

// ActivePlayer returns the ID of the player whose turn it is.
func (gs *GameState) ActivePlayer() PlayerID {
	return gs.Active
}

// PlayerState returns the state for the given player, or nil for an unknown ID.
func (gs *GameState) PlayerState(id PlayerID) *PlayerState {
	return gs.Players[id]
}

func (gs *GameState) SetActivePlayer(id PlayerID) error {
	if _, ok := gs.Players[id]; !ok {
		return &ConfigurationError{Field: "firstPlayer", Value: string(id), Options: playerNames()}
	}
	gs.Active = id
	return nil
}

// SwitchPlayer hands the turn to the other player.
func (gs *GameState) SwitchPlayer() {
	gs.Active = gs.Opponent(gs.Active)
}

func (gs *GameState) Opponent(id PlayerID) PlayerID {
	if id == Player1 {
		return Player2
	}
	return Player1
}

// Copy returns a deep copy of the game. Decks stay shared.
func (gs *GameState) Copy() *GameState {
	players := make(map[PlayerID]*PlayerState, len(gs.Players))
	for id, ps := range gs.Players {
		players[id] = ps.Copy()
	}
	discard := make([]Card, len(gs.Discard))
	copy(discard, gs.Discard)
	return &GameState{
		Players: players,
		Active:  gs.Active,
		Discard: discard,
	}
}

// Leader returns the player with strictly more lore, or "" on a tie.
func (gs *GameState) Leader() PlayerID {
	l1 := gs.Players[Player1].Lore
	l2 := gs.Players[Player2].Lore
	switch {
	case l1 > l2:
		return Player1
	case l2 > l1:
		return Player2
	default:
		return ""
	}
}

func playerNames() []string {
	names := make([]string, len(Players))
	for i, id := range Players {
		names[i] = string(id)
	}
	return names
}
