package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lorcana/game"
	"lorcana/strategy"
)

func card(id string, cost, lore int, inkable bool) game.Card {
	return game.Card{ID: id, Name: id, Cost: cost, Lore: lore, Inkable: inkable}
}

func ready(c game.Card) game.CardState {
	return game.CardState{Card: c, Dry: true}
}

func families(paths []game.Path) map[string]int {
	out := make(map[string]int)
	for _, p := range paths {
		out[p.Family]++
	}
	return out
}

func TestGenerate(t *testing.T) {
	s := strategy.NewDefault(strategy.DefaultWeights())

	t.Run("a single inkable card yields only the ink path", func(t *testing.T) {
		x := card("x", 1, 0, true)
		snap := game.Snapshot{Hand: []game.Card{x}}

		paths := Generate(snap, 1, s)

		require.Len(t, paths, 1, "Should generate exactly one path")
		require.Equal(t, "T1-INK-0", paths[0].ID)
		require.Equal(t, []game.Action{game.Ink(x)}, paths[0].Actions)
		require.Equal(t, game.EndState{Ink: 1, HandSize: 0}, paths[0].EndState)
	})

	t.Run("free play and ready quester yield single and combined paths", func(t *testing.T) {
		y := card("y", 0, 1, false)
		z := card("z", 2, 2, false)
		snap := game.Snapshot{Hand: []game.Card{y}, Board: []game.CardState{ready(z)}}

		paths := Generate(snap, 1, s)

		got := families(paths)
		require.Equal(t, 1, got[FamilyPlay], "Should play the free card")
		require.Equal(t, 1, got[FamilyQuest], "Should quest with the ready character")
		require.Equal(t, 1, got[FamilyPlayQuest], "Should combine the play and the quest")

		for i := range paths {
			paths[i].Score = s.ScorePath(paths[i], strategy.Context{Turn: 1, Start: snap})
		}
		game.SortByScore(paths)
		require.Equal(t, FamilyPlayQuest, paths[0].Family, "Combined path should rank first")
	})

	t.Run("an empty hand passes", func(t *testing.T) {
		z := card("z", 2, 2, false)
		snap := game.Snapshot{Board: []game.CardState{ready(z)}, AvailableInk: 2}

		paths := Generate(snap, 4, s)

		require.Len(t, paths, 1)
		require.Equal(t, "T4-PASS-0", paths[0].ID)
		require.Empty(t, paths[0].Actions)
		require.Equal(t, "Pass", paths[0].Description)
		require.Equal(t, snap.EndState(), paths[0].EndState)
	})

	t.Run("an unplayable hand falls back to pass", func(t *testing.T) {
		snap := game.Snapshot{Hand: []game.Card{card("big", 5, 3, false)}}

		paths := Generate(snap, 2, s)

		require.Len(t, paths, 1)
		require.Equal(t, FamilyPass, paths[0].Family)
	})

	t.Run("every inkable card gets an ink path", func(t *testing.T) {
		hand := []game.Card{
			card("a", 1, 1, true),
			card("b", 2, 1, true),
			card("c", 3, 2, false),
			card("d", 4, 2, true),
		}
		snap := game.Snapshot{Hand: hand, AvailableInk: 2}

		paths := Generate(snap, 3, s)

		require.Equal(t, 3, families(paths)[FamilyInk], "Should ink each inkable card")
		require.GreaterOrEqual(t, len(paths), 3)
	})

	t.Run("ink then play never plays the inked card", func(t *testing.T) {
		hand := []game.Card{card("a", 1, 1, true), card("b", 1, 2, true)}
		snap := game.Snapshot{Hand: hand}

		paths := Generate(snap, 2, s)

		for _, p := range paths {
			if p.Family != FamilyInkPlay {
				continue
			}
			require.NotEqual(t, p.Actions[0].CardID, p.Actions[1].CardID, "Path %s should use two different cards", p.ID)
		}
		require.Equal(t, 2, families(paths)[FamilyInkPlay])
	})

	t.Run("combined families use the top ink, play and quester", func(t *testing.T) {
		hand := []game.Card{card("ink", 4, 0, true), card("play", 1, 2, false)}
		board := []game.CardState{ready(card("q1", 1, 1, false)), ready(card("q2", 3, 3, false))}
		snap := game.Snapshot{Hand: hand, Board: board}

		paths := Generate(snap, 2, s)

		var top, all *game.Path
		for i := range paths {
			switch paths[i].Family {
			case FamilyInkPlayQuest:
				top = &paths[i]
			case FamilyInkPlayQuestAll:
				all = &paths[i]
			}
		}
		require.NotNil(t, top)
		require.NotNil(t, all)
		require.Equal(t, "T2-INKPLAYQUEST-0-1", top.ID)
		require.Equal(t, "q2", top.Actions[2].CardID, "Should quest with the highest lore first")
		require.Equal(t, 2, all.Count(game.QuestAction))
		require.Equal(t, 4, all.EndState.Lore)
	})

	t.Run("exerted characters do not quest", func(t *testing.T) {
		tired := game.CardState{Card: card("tired", 1, 1, false), Exerted: true, Dry: true}
		snap := game.Snapshot{Hand: []game.Card{card("a", 1, 1, true)}, Board: []game.CardState{tired}}

		paths := Generate(snap, 2, s)

		for _, p := range paths {
			require.Zero(t, p.Count(game.QuestAction), "Path %s should not quest", p.ID)
		}
	})

	t.Run("generation is deterministic and leaves the snapshot alone", func(t *testing.T) {
		hand := []game.Card{card("a", 1, 1, true), card("b", 2, 2, true), card("c", 0, 1, false)}
		board := []game.CardState{ready(card("q", 1, 1, false))}
		snap := game.Snapshot{Hand: hand, Board: board, AvailableInk: 1}

		first := Generate(snap, 3, s)
		second := Generate(snap, 3, s)

		require.Equal(t, first, second)
		require.Len(t, snap.Hand, 3)
		require.False(t, snap.Board[0].Exerted)
	})

	t.Run("a nil strategy panics", func(t *testing.T) {
		require.Panics(t, func() { Generate(game.Snapshot{}, 1, nil) })
	})
}

func TestRankInk(t *testing.T) {
	s := strategy.NewDefault(strategy.DefaultWeights())
	cands := []candidate{
		{card: card("cheap", 1, 1, true), index: 0},
		{card: card("costly", 5, 1, true), index: 1},
		{card: card("mid", 3, 1, true), index: 2},
	}

	rankInk(cands, s, strategy.Context{Turn: 1})

	require.Equal(t, "costly", cands[0].card.ID, "Default strategy should ink expensive cards first")
	require.Equal(t, "cheap", cands[2].card.ID)
}

func TestQuesters(t *testing.T) {
	board := []game.CardState{
		ready(card("low", 1, 1, false)),
		{Card: card("tired", 1, 5, false), Exerted: true},
		ready(card("high", 1, 3, false)),
		ready(game.Card{ID: "item", Lore: 2, Type: game.ItemCard}),
	}

	got := questers(board)

	require.Len(t, got, 2)
	require.Equal(t, "high", got[0].card.ID)
	require.Equal(t, 2, got[0].index)
	require.Equal(t, "low", got[1].card.ID)
}
