package strategy

import (
	"math"

	"lorcana/game"
)

// QuestChainBonus rewards each quest beyond the first in the same path.
const QuestChainBonus = 15

type defaultStrategy struct {
	name    string
	weights Weights
}

// NewDefault returns the baseline lore-first strategy.
func NewDefault(weights Weights) Strategy {
	return &defaultStrategy{name: "default", weights: weights}
}

func (s *defaultStrategy) Name() string {
	return s.name
}

func (s *defaultStrategy) ScoringWeights() Weights {
	return s.weights
}

// InkPriority is the distance to playability: cards that are furthest from
// being castable next turn are inked first.
func (s *defaultStrategy) InkPriority(card game.Card, ctx Context) float64 {
	return float64(card.Cost - (ctx.Start.AvailableInk + 1))
}

// PlayPriority is lore per ink spent.
func (s *defaultStrategy) PlayPriority(card game.Card, ctx Context) float64 {
	return efficiency(card)
}

func (s *defaultStrategy) ScorePath(path game.Path, ctx Context) int {
	return int(math.Round(weightedScore(s.weights, path, ctx)))
}

// pathFactors are the quantities the scoring formula is built from.
type pathFactors struct {
	loreGained   int
	inkGained    int
	inkUsed      int
	boardGained  int
	actions      int
	handDelta    int
	quests       int
	maxPlayCost  int
	plays        int
	startInk     int
	endInk       int
	availableInk int // Ink that could have been spent: start ink plus ink added this turn
}

func measure(path game.Path, ctx Context) pathFactors {
	start := ctx.Start.EndState()
	end := path.EndState
	f := pathFactors{
		loreGained:  end.Lore - start.Lore,
		inkGained:   path.Count(game.InkAction),
		boardGained: end.BoardSize - start.BoardSize,
		actions:     len(path.Actions),
		handDelta:   end.HandSize - start.HandSize,
		quests:      path.Count(game.QuestAction),
		plays:       path.Count(game.PlayAction),
		startInk:    start.Ink,
		endInk:      end.Ink,
	}
	f.availableInk = start.Ink + f.inkGained
	f.inkUsed = f.availableInk - end.Ink
	for _, a := range path.Actions {
		if a.Type == game.PlayAction && a.Cost > f.maxPlayCost {
			f.maxPlayCost = a.Cost
		}
	}
	return f
}

func weightedScore(w Weights, path game.Path, ctx Context) float64 {
	f := measure(path, ctx)

	score := float64(f.loreGained)*w.LoreWeight +
		float64(f.inkGained)*w.InkGainWeight +
		float64(f.inkUsed)*w.InkUseWeight +
		float64(f.boardGained)*w.BoardPresenceWeight +
		float64(f.actions)*w.ActionEfficiencyWeight +
		float64(f.handDelta)*w.HandSizeWeight +
		float64(10-ctx.Turn)*w.TurnProgressionWeight

	if f.actions > 1 {
		score += w.MultiActionBonus
	}
	if f.inkUsed > 0 && f.endInk == 0 {
		score += w.InkUtilizationBonus
	}
	if ctx.Turn <= w.EarlyGameThreshold && f.inkGained > 0 {
		score += w.EarlyGameInkBonus
	}
	if ctx.Turn > w.LateGameThreshold {
		score += w.LateGameLoreBonus * float64(f.loreGained)
	}
	if f.plays > 0 {
		score += w.HighCostCardBonus * float64(f.maxPlayCost)
	}
	if f.endInk > f.startInk {
		score += w.InkRetentionBonus * float64(f.endInk-f.startInk)
	}
	if f.quests > 1 {
		score += float64(QuestChainBonus * (f.quests - 1))
	}
	return score
}

// efficiency is lore per ink, free cards count as costing one.
func efficiency(card game.Card) float64 {
	return float64(card.Lore) / float64(max(card.Cost, 1))
}
