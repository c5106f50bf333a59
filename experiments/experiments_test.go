package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lorcana/config"
	"lorcana/game"
	"lorcana/strategy"
)

func deck() []game.Card {
	cards := make([]game.Card, 0, 20)
	for i := 0; i < 20; i++ {
		cost := i%3 + 1
		cards = append(cards, game.Card{
			ID:      string(rune('a' + i)),
			Name:    string(rune('a' + i)),
			Cost:    cost,
			Lore:    cost,
			Inkable: i%2 == 0,
		})
	}
	return cards
}

func TestStrategyMatchups(t *testing.T) {
	exp := StrategyMatchups(strategy.NewDefaultRegistry(), config.ModeOptimal, 3)

	require.Len(t, exp.Configs, 3)
	require.Len(t, exp.MatchUps, 3, "Three strategies give three pairs")
	require.Equal(t, "aggressive", exp.MatchUps[0][0].Strategy)
	require.Equal(t, "default", exp.MatchUps[0][1].Strategy)
}

func TestRun(t *testing.T) {
	registry := strategy.NewDefaultRegistry()
	base := config.Default()
	base.MaxTurns = 4
	base.OpeningHand = 5

	exp := StrategyMatchups(registry, config.ModeOptimal, 2)
	r := NewRunner(registry, base, deck(), deck(), t.TempDir())

	dir, err := r.Run(context.Background(), exp)
	require.NoError(t, err)

	for _, name := range []string{"setup.json", "agent_configs.csv", "game_records.csv", "turn_records.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}

	f, err := os.Open(filepath.Join(dir, "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(exp.MatchUps)*exp.NumGames, "Should store one record per game")
	require.Equal(t, "player2", rows[1][4], "Game one should start with player two")
	require.Equal(t, "player1", rows[2][4], "Starting seat should alternate")
}
