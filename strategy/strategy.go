package strategy

import "lorcana/game"

// Context is what a strategy knows about the turn being evaluated.
type Context struct {
	Turn  int
	Start game.Snapshot // State the candidate paths were generated from
}

// Strategy scores paths and ranks cards for the generator.
type Strategy interface {
	Name() string
	ScorePath(path game.Path, ctx Context) int
	ScoringWeights() Weights
	// InkPriority ranks inkable cards, higher inks first.
	InkPriority(card game.Card, ctx Context) float64
	// PlayPriority ranks playable cards, higher plays first.
	PlayPriority(card game.Card, ctx Context) float64
}

// Factory builds a strategy from its resolved weights.
type Factory func(Weights) Strategy
