package engine

import (
	"lorcana/game"

	"github.com/rs/zerolog/log"
)

// Executor applies a chosen path to the authoritative player state.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the path's actions in order. Actions whose card cannot be found,
// and action types that are declared but not implemented, are skipped and
// returned as anomalies. Execute is not idempotent.
func (e *Executor) Execute(ps *game.PlayerState, path game.Path) []*game.DataLookupError {
	var anomalies []*game.DataLookupError
	for _, action := range path.Actions {
		if err := e.apply(ps, action); err != nil {
			log.Warn().Str("path", path.ID).Str("player", string(ps.ID)).Err(err).Msg("skipped action")
			anomalies = append(anomalies, err)
		}
	}
	return anomalies
}

func (e *Executor) apply(ps *game.PlayerState, action game.Action) *game.DataLookupError {
	if !action.IsImplemented() {
		return &game.DataLookupError{Action: action.Type, CardID: action.CardID, Zone: "unsupported action"}
	}

	switch action.Type {
	case game.InkAction:
		card, ok := ps.TakeFromHand(action.CardID)
		if !ok {
			return &game.DataLookupError{Action: action.Type, CardID: action.CardID, Zone: "hand"}
		}
		ps.AddInk(card)

	case game.PlayAction:
		card, ok := ps.TakeFromHand(action.CardID)
		if !ok {
			return &game.DataLookupError{Action: action.Type, CardID: action.CardID, Zone: "hand"}
		}
		ps.PayInk(card.Cost)
		ps.AddToBoard(card)

	case game.QuestAction:
		card, ok := ps.ExertCharacter(action.CardID)
		if !ok {
			return &game.DataLookupError{Action: action.Type, CardID: action.CardID, Zone: "board"}
		}
		if err := ps.GainLore(card.Lore); err != nil {
			log.Warn().Str("card", card.ID).Err(err).Msg("ignored lore")
		}
	}
	return nil
}
