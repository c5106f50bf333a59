package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"

	"lorcana/agent"
	"lorcana/config"
	"lorcana/experiments/metrics"
	"lorcana/game"
	"lorcana/searcher"
	"lorcana/strategy"
	"lorcana/telemetry"
)

var _ Engine = (*Runner)(nil)

type Option func(r *Runner)

// WithAgent replaces the agent built from the config's selection for both players.
func WithAgent(a agent.Agent) Option {
	return func(r *Runner) {
		if a != nil {
			for _, id := range game.Players {
				r.agents[id] = a
			}
		}
	}
}

func WithPlayerAgent(id game.PlayerID, a agent.Agent) Option {
	return func(r *Runner) {
		if a != nil {
			r.agents[id] = a
		}
	}
}

// WithPlayerStrategy lets one player follow a different strategy than the configured one.
func WithPlayerStrategy(id game.PlayerID, s strategy.Strategy) Option {
	return func(r *Runner) {
		if s != nil {
			r.strategies[id] = s
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(r *Runner) {
		if c != nil {
			r.collector = c
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// Runner drives the turn state machine for one analysis run. It owns its game state.
type Runner struct {
	cfg         config.Config
	state       *game.GameState
	strategies  map[game.PlayerID]strategy.Strategy
	agents      map[game.PlayerID]agent.Agent
	executor    *Executor
	explorer    *searcher.Explorer
	collector   metrics.Collector
	tracer      trace.Tracer
	runID       string
	firstPlayer game.PlayerID
	phase       Phase
	turn        int
	turnMetrics []metrics.TurnMetric
}

// NewRunner validates the configuration and prepares a run over state.
// Weights holds optional YAML overrides for the configured strategy.
// Configuration problems are returned before any turn is played.
func NewRunner(state *game.GameState, cfg config.Config, registry *strategy.Registry, weights []byte, options ...Option) (*Runner, error) {
	if state == nil {
		return nil, &game.InputValidationError{Field: "state", Reason: "missing game state"}
	}
	if registry == nil {
		panic("runner requires a strategy registry")
	}

	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}
	s, err := registry.New(cfg.Strategy, weights)
	if err != nil {
		return nil, fmt.Errorf("failed to build strategy: %w", err)
	}
	a, err := agent.New(cfg.Selection, cfg.Temperature, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build agent: %w", err)
	}

	r := &Runner{
		cfg:   cfg,
		state: state,
		strategies: map[game.PlayerID]strategy.Strategy{
			game.Player1: s,
			game.Player2: s,
		},
		agents: map[game.PlayerID]agent.Agent{
			game.Player1: a,
			game.Player2: a,
		},
		executor:  NewExecutor(),
		explorer:  searcher.NewExplorer(searcher.WithMaxDepth(cfg.MaxDepth)),
		collector: metrics.NewDummyCollector(),
		tracer:    telemetry.Tracer("engine"),
		runID:     uuid.NewString(),
		phase:     TurnStart,
		turn:      1,
	}
	for _, option := range options {
		option(r)
	}

	r.firstPlayer = game.PlayerID(cfg.FirstPlayer)
	if r.firstPlayer == "" {
		rng := rand.New(rand.NewSource(cfg.Seed))
		r.firstPlayer = game.Players[rng.Intn(len(game.Players))]
	}
	if err := state.SetActivePlayer(r.firstPlayer); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runner) State() *game.GameState {
	return r.state
}

func (r *Runner) RunID() string {
	return r.runID
}

func (r *Runner) FirstPlayer() game.PlayerID {
	return r.firstPlayer
}

// TurnMetrics returns the metrics of the turns played so far.
func (r *Runner) TurnMetrics() []metrics.TurnMetric {
	return r.turnMetrics
}

// Run plays turns until the turn counter exceeds maxTurns. The context is only checked between turns.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	ctx, span := r.tracer.Start(ctx, "analysis.run")
	defer span.End()
	span.SetAttributes(telemetry.RunAttributes(r.runID, r.cfg.Strategy, r.cfg.AnalysisMode)...)
	span.SetAttributes(attribute.Int("max_turns", r.cfg.MaxTurns))

	log.Info().Msgf("run %s: %s starts, strategy=%s mode=%s", r.runID, r.firstPlayer, r.cfg.Strategy, r.cfg.AnalysisMode)

	report := &Report{
		RunID:       r.runID,
		Strategy:    r.cfg.Strategy,
		Mode:        r.cfg.AnalysisMode,
		FirstPlayer: r.firstPlayer,
		Turns:       []TurnReport{},
	}
	for ; r.turn <= r.cfg.MaxTurns; r.turn++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run stopped before turn %d: %w", r.turn, err)
		}
		report.Turns = append(report.Turns, r.playTurn(ctx))
	}

	report.FinalLore = make(map[game.PlayerID]int, len(game.Players))
	for _, id := range game.Players {
		report.FinalLore[id] = r.state.PlayerState(id).Lore
	}
	report.Winner = r.state.Leader()
	span.SetAttributes(attribute.String("winner", string(report.Winner)))

	log.Info().Msgf("run %s completed after %d turns with lore %v", r.runID, len(report.Turns), report.FinalLore)
	return report, nil
}

// turn carries the results of one pass through the phases.
type turn struct {
	player    *game.PlayerState
	strategy  strategy.Strategy
	agent     agent.Agent
	snapshot  game.Snapshot
	paths     []game.Path
	chosen    game.Path
	anomalies []*game.DataLookupError
}

func (r *Runner) playTurn(ctx context.Context) TurnReport {
	_, span := r.tracer.Start(ctx, "analysis.turn")
	defer span.End()

	id := r.state.ActivePlayer()
	t := &turn{
		player:   r.state.PlayerState(id),
		strategy: r.strategies[id],
		agent:    r.agents[id],
	}

	var report TurnReport
	for r.phase = TurnStart; ; r.phase = r.phase.Next() {
		log.Debug().Int("turn", r.turn).Str("player", string(id)).Msgf("entering %s", r.phase)

		switch r.phase {
		case TurnStart:
			r.collector.Start()
			t.player.ReadyStep()

		case DrawPhase:
			r.draw(t.player)

		case PathGeneration:
			r.generate(t)

		case Scoring:
			r.score(t)

		case Execution:
			report = r.execute(t)

		case TurnEnd:
			r.finish(t)
			span.SetAttributes(telemetry.TurnAttributes(r.turn, string(id), report.TotalPathsGenerated, t.chosen.Score, len(t.anomalies))...)
			r.state.SwitchPlayer()
			return report
		}
	}
}

// draw gives the active player one card, except for the first player's first turn.
func (r *Runner) draw(ps *game.PlayerState) {
	if r.turn == 1 {
		return
	}
	if _, ok := ps.Draw(); !ok {
		log.Debug().Msgf("%s has no card to draw on turn %d", ps.ID, r.turn)
	}
}

func (r *Runner) generate(t *turn) {
	t.snapshot = t.player.Snapshot()
	heuristic := searcher.Generate(t.snapshot, r.turn, t.strategy)
	t.paths = heuristic
	explored := 0
	if r.cfg.AnalysisMode == config.ModeFull {
		t.paths = searcher.Merge(heuristic, r.explorer.Explore(t.snapshot, r.turn, t.strategy))
		explored = countFamily(t.paths, searcher.FamilyFull)
	}
	r.collector.SetGenerated(len(heuristic), explored)
}

// countFamily counts the paths of one family. Merge also drops repeats within the
// heuristic list, so explored survivors are counted rather than derived from lengths.
func countFamily(paths []game.Path, family string) int {
	n := 0
	for _, p := range paths {
		if p.Family == family {
			n++
		}
	}
	return n
}

func (r *Runner) score(t *turn) {
	ctx := strategy.Context{Turn: r.turn, Start: t.snapshot}
	for i := range t.paths {
		t.paths[i].Score = t.strategy.ScorePath(t.paths[i], ctx)
	}
	game.SortByScore(t.paths)
}

func (r *Runner) execute(t *turn) TurnReport {
	returned := t.paths
	if !r.cfg.ShowAllPaths && len(returned) > r.cfg.MaxPathsPerTurn {
		returned = returned[:r.cfg.MaxPathsPerTurn]
	}
	r.collector.SetReturned(len(returned))

	paths := make([]PathReport, len(returned))
	for i, p := range returned {
		hypothetical := t.player.Copy()
		r.executor.Execute(hypothetical, p)
		paths[i] = PathReport{Path: p, GameState: hypothetical.Summary()}
	}

	t.chosen = t.agent.ChoosePath(t.paths)
	t.anomalies = r.executor.Execute(t.player, t.chosen)
	for range t.anomalies {
		r.collector.AddAnomaly()
	}

	report := TurnReport{
		TurnNumber:          r.turn,
		ActivePlayer:        t.player.ID,
		Strategy:            t.strategy.Name(),
		Paths:               paths,
		TotalPathsGenerated: len(t.paths),
		PathsReturned:       len(returned),
		Anomalies:           t.anomalies,
	}
	executed := &PathReport{Path: t.chosen, GameState: t.player.Summary()}
	// Only the top scored path counts as optimal, other agents report what they drew separately
	if t.chosen.ID == t.paths[0].ID {
		report.OptimalPathExecuted = executed
	} else {
		report.SampledPathExecuted = executed
	}
	return report
}

func (r *Runner) finish(t *turn) {
	metric := metrics.TurnMetric{
		Turn:       r.turn,
		Player:     string(t.player.ID),
		Score:      t.chosen.Score,
		Lore:       t.player.Lore,
		PathMetric: r.collector.Complete(),
	}
	r.turnMetrics = append(r.turnMetrics, metric)
	log.Info().Msgf("turn %d: %s executed %q (score %d), lore %d", r.turn, t.player.ID, t.chosen.Description, t.chosen.Score, t.player.Lore)
}
