package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lorcana/agent"
	"lorcana/config"
	"lorcana/engine"
	"lorcana/experiments/metrics"
	"lorcana/game"
	"lorcana/strategy"
	"lorcana/telemetry"
)

// Experiment pits agent configs against each other over a number of games per matchup.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][]metrics.AgentConfig
	NumGames int
}

// Setup is stored next to the records of a finished experiment.
type Setup struct {
	Name      string        `json:"name"`
	Base      config.Config `json:"base"`
	NumGames  int           `json:"numGames"` // per matchup
	MatchUps  int           `json:"matchUps"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

// StrategyMatchups pairs every registered strategy against every other one, greedy selection.
func StrategyMatchups(registry *strategy.Registry, mode string, numGames int) Experiment {
	configs := []metrics.AgentConfig{}
	for i, name := range registry.Names() {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: name, Selection: agent.Greedy, Mode: mode})
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return Experiment{Name: "strategy_matchups", Configs: configs, MatchUps: matchUps, NumGames: numGames}
}

// Runner plays experiments from the same two decks.
type Runner struct {
	registry *strategy.Registry
	base     config.Config
	deck1    []game.Card
	deck2    []game.Card
	outDir   string
}

func NewRunner(registry *strategy.Registry, base config.Config, deck1, deck2 []game.Card, outDir string) *Runner {
	return &Runner{registry: registry, base: base, deck1: deck1, deck2: deck2, outDir: outDir}
}

// Run plays every game of the experiment and stores the records. It returns the output folder.
func (r *Runner) Run(ctx context.Context, exp Experiment) (string, error) {
	start := time.Now()
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), config1, config2)

		for i := 0; i < exp.NumGames; i++ {
			count++
			gameMetric, turnMetrics, err := r.runGame(ctx, config1, config2, count)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: tm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(exp.MatchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(r.outDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	end := time.Now()
	setup := Setup{
		Name:      exp.Name,
		Base:      r.base,
		NumGames:  exp.NumGames,
		MatchUps:  len(exp.MatchUps),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	if err := writer.WriteJSON("setup.json", setup); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one seeded game. The starting seat alternates between games.
func (r *Runner) runGame(ctx context.Context, config1, config2 metrics.AgentConfig, id int) (metrics.GameMetric, []metrics.TurnMetric, error) {
	seed := r.base.Seed + uint64(id)
	state, err := game.NewGame(game.Setup{
		Deck1:       r.deck1,
		Deck2:       r.deck2,
		OpeningHand: r.base.OpeningHand,
		Seed:        seed,
	})
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	cfg := r.base
	cfg.Seed = seed
	cfg.Strategy = config1.Strategy
	cfg.AnalysisMode = config1.Mode
	cfg.FirstPlayer = string(game.Players[id%2])

	agent1, err := agent.New(config1.Selection, config1.Temperature, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent2, err := agent.New(config2.Selection, config2.Temperature, seed+1)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	strategy2, err := r.registry.New(config2.Strategy, nil)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	runner, err := engine.NewRunner(state, cfg, r.registry, nil,
		engine.WithPlayerAgent(game.Player1, agent1),
		engine.WithPlayerAgent(game.Player2, agent2),
		engine.WithPlayerStrategy(game.Player2, strategy2),
		engine.WithCollector(metrics.NewCollector()),
		engine.WithTracer(telemetry.NoopTracer()),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	start := time.Now()
	report, err := runner.Run(ctx)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	end := time.Now()

	return metrics.GameMetric{
		RunID:       report.RunID,
		FirstPlayer: string(report.FirstPlayer),
		Winner:      string(report.Winner),
		Lore1:       report.FinalLore[game.Player1],
		Lore2:       report.FinalLore[game.Player2],
		StartTime:   start,
		EndTime:     end,
		Duration:    end.Sub(start),
		TotalTurns:  len(report.Turns),
	}, runner.TurnMetrics(), nil
}
