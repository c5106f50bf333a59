package searcher

import (
	"sort"

	"lorcana/game"
	"lorcana/strategy"
)

// candidate is a card together with its position in the snapshot zone it came from.
type candidate struct {
	card  game.Card
	index int
}

func handCandidates(hand []game.Card, keep func(game.Card) bool) []candidate {
	out := make([]candidate, 0, len(hand))
	for i, c := range hand {
		if keep(c) {
			out = append(out, candidate{card: c, index: i})
		}
	}
	return out
}

// rankInk orders inkable cards by ink priority, then higher cost, then hand position.
func rankInk(cands []candidate, s strategy.Strategy, ctx strategy.Context) {
	sort.SliceStable(cands, func(i, j int) bool {
		pi := s.InkPriority(cands[i].card, ctx)
		pj := s.InkPriority(cands[j].card, ctx)
		if pi != pj {
			return pi > pj
		}
		if cands[i].card.Cost != cands[j].card.Cost {
			return cands[i].card.Cost > cands[j].card.Cost
		}
		return cands[i].index < cands[j].index
	})
}

// rankPlay orders playable cards by play priority, falling back to lore per ink,
// then lower cost, then hand position.
func rankPlay(cands []candidate, s strategy.Strategy, ctx strategy.Context) {
	sort.SliceStable(cands, func(i, j int) bool {
		return playsBefore(cands[i], cands[j], s, ctx)
	})
}

func playsBefore(a, b candidate, s strategy.Strategy, ctx strategy.Context) bool {
	pa := s.PlayPriority(a.card, ctx)
	pb := s.PlayPriority(b.card, ctx)
	if pa != pb {
		return pa > pb
	}
	ea := loreEfficiency(a.card)
	eb := loreEfficiency(b.card)
	if ea != eb {
		return ea > eb
	}
	if a.card.Cost != b.card.Cost {
		return a.card.Cost < b.card.Cost
	}
	return a.index < b.index
}

// questers returns the board characters that are not exerted, highest lore first.
func questers(board []game.CardState) []candidate {
	out := make([]candidate, 0, len(board))
	for i, cs := range board {
		if !cs.Exerted && cs.Card.IsCharacter() {
			out = append(out, candidate{card: cs.Card, index: i})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].card.Lore != out[j].card.Lore {
			return out[i].card.Lore > out[j].card.Lore
		}
		return out[i].index < out[j].index
	})
	return out
}

func loreEfficiency(card game.Card) float64 {
	return float64(card.Lore) / float64(max(card.Cost, 1))
}
