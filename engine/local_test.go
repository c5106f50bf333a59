package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lorcana/agent"
	"lorcana/config"
	"lorcana/experiments/metrics"
	"lorcana/game"
	"lorcana/searcher"
	"lorcana/strategy"
)

func testDeck(n int) []game.Card {
	cards := make([]game.Card, n)
	for i := range cards {
		cost := i%4 + 1
		cards[i] = card(string(rune('a'+i%26))+string(rune('0'+i/26)), cost, cost/2+1, i%3 != 0)
	}
	return cards
}

func newState(t *testing.T) *game.GameState {
	state, err := game.NewGame(game.Setup{Deck1: testDeck(30), Deck2: testDeck(30), OpeningHand: 7})
	require.NoError(t, err)
	return state
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.MaxTurns = 6
	cfg.FirstPlayer = string(game.Player1)
	return cfg
}

func TestNewRunner(t *testing.T) {
	registry := strategy.NewDefaultRegistry()

	t.Run("unknown strategy fails before any turn", func(t *testing.T) {
		cfg := testConfig()
		cfg.Strategy = "turbo"

		_, err := NewRunner(newState(t), cfg, registry, nil)

		var cfgErr *game.ConfigurationError
		require.True(t, errors.As(err, &cfgErr), "Should return a configuration error")
		require.Equal(t, registry.Names(), cfgErr.Options)
	})

	t.Run("unknown mode fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.AnalysisMode = "deep"

		_, err := NewRunner(newState(t), cfg, registry, nil)

		var cfgErr *game.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.Equal(t, "analysisMode", cfgErr.Field)
	})

	t.Run("sampling in optimal mode fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Selection = agent.Sampling
		cfg.Temperature = 50

		_, err := NewRunner(newState(t), cfg, registry, nil)

		var cfgErr *game.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.Equal(t, "selection", cfgErr.Field)
	})

	t.Run("missing state fails", func(t *testing.T) {
		_, err := NewRunner(nil, testConfig(), registry, nil)

		var inputErr *game.InputValidationError
		require.True(t, errors.As(err, &inputErr))
	})

	t.Run("seeded first player is reproducible", func(t *testing.T) {
		cfg := testConfig()
		cfg.FirstPlayer = ""
		cfg.Seed = 99

		r1, err := NewRunner(newState(t), cfg, registry, nil)
		require.NoError(t, err)
		r2, err := NewRunner(newState(t), cfg, registry, nil)
		require.NoError(t, err)

		require.Equal(t, r1.FirstPlayer(), r2.FirstPlayer())
		require.Equal(t, r1.FirstPlayer(), r1.State().ActivePlayer())
	})
}

func TestRun(t *testing.T) {
	registry := strategy.NewDefaultRegistry()

	t.Run("plays maxTurns alternating turns", func(t *testing.T) {
		r, err := NewRunner(newState(t), testConfig(), registry, nil)
		require.NoError(t, err)

		report, err := r.Run(context.Background())

		require.NoError(t, err)
		require.Len(t, report.Turns, 6)
		require.NotEmpty(t, report.RunID)
		for i, turn := range report.Turns {
			require.Equal(t, i+1, turn.TurnNumber)
			want := game.Player1
			if i%2 == 1 {
				want = game.Player2
			}
			require.Equal(t, want, turn.ActivePlayer, "Turn %d should alternate players", i+1)
		}
	})

	t.Run("first player does not draw on turn one", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTurns = 2
		state := newState(t)
		r, err := NewRunner(state, cfg, registry, nil)
		require.NoError(t, err)

		_, err = r.Run(context.Background())
		require.NoError(t, err)

		p1 := state.PlayerState(game.Player1)
		p2 := state.PlayerState(game.Player2)
		require.Equal(t, 30-7, p1.Deck.Len(), "First player should not draw on turn one")
		require.Equal(t, 30-8, p2.Deck.Len(), "Second player should draw")
	})

	t.Run("best path is reported first and executed", func(t *testing.T) {
		r, err := NewRunner(newState(t), testConfig(), registry, nil)
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		for _, turn := range report.Turns {
			require.NotNil(t, turn.OptimalPathExecuted)
			require.NotEmpty(t, turn.Paths)
			require.Equal(t, turn.Paths[0].ID, turn.OptimalPathExecuted.ID)
			for _, p := range turn.Paths[1:] {
				require.LessOrEqual(t, p.Score, turn.Paths[0].Score)
			}
			require.LessOrEqual(t, turn.PathsReturned, 5)
			require.Equal(t, len(turn.Paths), turn.PathsReturned)
			require.Empty(t, turn.Anomalies)
		}
	})

	t.Run("hypothetical states leave the real state alone", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTurns = 1
		state := newState(t)
		r, err := NewRunner(state, cfg, registry, nil)
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		turn := report.Turns[0]
		p1 := state.PlayerState(game.Player1)
		require.Equal(t, p1.Summary(), turn.OptimalPathExecuted.GameState)
		require.Equal(t, turn.Paths[0].GameState, turn.OptimalPathExecuted.GameState)
		spent := turn.OptimalPathExecuted.Count(game.InkAction) + turn.OptimalPathExecuted.Count(game.PlayAction)
		require.Len(t, p1.Hand, 7-spent)
	})

	t.Run("show all paths overrides the limit", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTurns = 3
		cfg.MaxPathsPerTurn = 1
		cfg.ShowAllPaths = true
		r, err := NewRunner(newState(t), cfg, registry, nil)
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		for _, turn := range report.Turns {
			require.Equal(t, turn.TotalPathsGenerated, turn.PathsReturned)
		}
	})

	t.Run("full mode adds explored candidates", func(t *testing.T) {
		optimal := testConfig()
		optimal.MaxTurns = 4
		full := optimal
		full.AnalysisMode = config.ModeFull
		full.MaxDepth = 3

		ro, err := NewRunner(newState(t), optimal, registry, nil)
		require.NoError(t, err)
		rf, err := NewRunner(newState(t), full, registry, nil)
		require.NoError(t, err)

		reportOptimal, err := ro.Run(context.Background())
		require.NoError(t, err)
		reportFull, err := rf.Run(context.Background())
		require.NoError(t, err)

		require.GreaterOrEqual(t, reportFull.Turns[0].TotalPathsGenerated, reportOptimal.Turns[0].TotalPathsGenerated)
	})

	t.Run("sampled paths are not reported as optimal", func(t *testing.T) {
		cfg := testConfig()
		cfg.AnalysisMode = config.ModeFull
		cfg.MaxTurns = 8
		r, err := NewRunner(newState(t), cfg, registry, nil, WithAgent(agent.NewSamplingAgent(50, 3)))
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		for _, turn := range report.Turns {
			require.True(t, (turn.OptimalPathExecuted == nil) != (turn.SampledPathExecuted == nil),
				"Exactly one executed path should be reported on turn %d", turn.TurnNumber)
			if turn.OptimalPathExecuted != nil {
				require.Equal(t, turn.Paths[0].ID, turn.OptimalPathExecuted.ID)
			} else {
				require.NotEqual(t, turn.Paths[0].ID, turn.SampledPathExecuted.ID)
			}
		}
	})

	t.Run("explored count with duplicate copies", func(t *testing.T) {
		deck := make([]game.Card, 10)
		for i := range deck {
			deck[i] = card("glimmer", 1, 1, true)
		}
		state, err := game.NewGame(game.Setup{Deck1: deck, Deck2: deck, OpeningHand: 4})
		require.NoError(t, err)
		cfg := testConfig()
		cfg.AnalysisMode = config.ModeFull
		cfg.MaxTurns = 1
		cfg.ShowAllPaths = true
		r, err := NewRunner(state, cfg, registry, nil, WithCollector(metrics.NewCollector()))
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, r.TurnMetrics(), 1)
		m := r.TurnMetrics()[0]
		require.GreaterOrEqual(t, m.Explored, 0)
		require.Positive(t, m.Generated)

		full := 0
		for _, p := range report.Turns[0].Paths {
			if p.Family == searcher.FamilyFull {
				full++
			}
		}
		require.Equal(t, full, m.Explored)
		require.LessOrEqual(t, report.Turns[0].TotalPathsGenerated, m.Generated+m.Explored)
	})

	t.Run("lore never decreases", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTurns = 12
		state := newState(t)
		r, err := NewRunner(state, cfg, registry, nil)
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		last := map[game.PlayerID]int{}
		for _, turn := range report.Turns {
			lore := turn.OptimalPathExecuted.GameState.Lore
			require.GreaterOrEqual(t, lore, last[turn.ActivePlayer])
			last[turn.ActivePlayer] = lore
		}
		require.Equal(t, last, report.FinalLore)
		require.Equal(t, state.Leader(), report.Winner)
	})

	t.Run("collects turn metrics", func(t *testing.T) {
		r, err := NewRunner(newState(t), testConfig(), registry, nil, WithCollector(metrics.NewCollector()))
		require.NoError(t, err)

		_, err = r.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, r.TurnMetrics(), 6)
		for _, m := range r.TurnMetrics() {
			require.Positive(t, m.Generated)
			require.Positive(t, m.Returned)
		}
	})

	t.Run("per player strategy", func(t *testing.T) {
		ramp, err := registry.New("ramp", nil)
		require.NoError(t, err)
		r, err := NewRunner(newState(t), testConfig(), registry, nil, WithPlayerStrategy(game.Player2, ramp))
		require.NoError(t, err)

		report, err := r.Run(context.Background())
		require.NoError(t, err)

		require.Equal(t, "default", report.Turns[0].Strategy)
		require.Equal(t, "ramp", report.Turns[1].Strategy)
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		r, err := NewRunner(newState(t), testConfig(), registry, nil)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report, err := r.Run(ctx)

		require.Nil(t, report)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPhase(t *testing.T) {
	require.Equal(t, "pathGeneration", PathGeneration.String())
	require.Equal(t, DrawPhase, TurnStart.Next())
	require.Equal(t, TurnStart, TurnEnd.Next(), "Turn end should wrap around")
}
