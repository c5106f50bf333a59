package strategy

import "lorcana/game"

// AggressiveWeights push lore harder, especially late.
func AggressiveWeights() Weights {
	w := DefaultWeights()
	w.LoreWeight = 15
	w.LateGameLoreBonus = 5
	w.InkGainWeight = 2
	w.EarlyGameInkBonus = 3
	w.LateGameThreshold = 5
	return w
}

// RampWeights favour growing the inkwell and landing expensive cards.
func RampWeights() Weights {
	w := DefaultWeights()
	w.InkGainWeight = 6
	w.EarlyGameInkBonus = 10
	w.InkRetentionBonus = 1.5
	w.HighCostCardBonus = 2
	w.EarlyGameThreshold = 4
	return w
}

type aggressive struct {
	defaultStrategy
}

// NewAggressive plays whatever quests for the most lore soonest.
func NewAggressive(weights Weights) Strategy {
	return &aggressive{defaultStrategy{name: "aggressive", weights: weights}}
}

func (s *aggressive) PlayPriority(card game.Card, ctx Context) float64 {
	return float64(card.Lore)*2 + efficiency(card)
}

type ramp struct {
	defaultStrategy
}

// NewRamp inks cheap cards and saves expensive ones to play later.
func NewRamp(weights Weights) Strategy {
	return &ramp{defaultStrategy{name: "ramp", weights: weights}}
}

// InkPriority prefers inking the cheapest card, keeping bombs in hand.
func (s *ramp) InkPriority(card game.Card, ctx Context) float64 {
	return -float64(card.Cost)
}

func (s *ramp) PlayPriority(card game.Card, ctx Context) float64 {
	return float64(card.Cost) + efficiency(card)
}
