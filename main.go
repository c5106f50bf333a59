package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lorcana/config"
	"lorcana/engine"
	"lorcana/experiments"
	"lorcana/experiments/metrics"
	"lorcana/game"
	"lorcana/meta"
	"lorcana/strategy"
	"lorcana/telemetry"
)

type options struct {
	catalog    string
	deck1      string
	deck2      string
	request    string
	weights    string
	out        string
	experiment bool
	games      int
	resultsDir string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.catalog, "catalog", "cards.json", "Card catalog (JSON array)")
	flag.StringVar(&opts.deck1, "deck1", "", "Deck list for player1 (YAML or JSON)")
	flag.StringVar(&opts.deck2, "deck2", "", "Deck list for player2 (YAML or JSON)")
	flag.StringVar(&opts.request, "request", "", "Analysis request file with both decks and config overrides")
	flag.StringVar(&opts.weights, "weights", "", "YAML strategy weight overrides")
	flag.StringVar(&opts.out, "out", "", "Report file, stdout when empty")
	flag.BoolVar(&opts.experiment, "experiment", false, "Run strategy matchups instead of a single analysis")
	flag.IntVar(&opts.games, "games", meta.NUM_GAMES, "Games per matchup")
	flag.StringVar(&opts.resultsDir, "results", "experiments", "Folder for experiment records")
	flag.Parse()

	setupLogger()
	envErr := godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setLevel(cfg.LogLevel)
	if envErr != nil {
		// Not fatal, variables may be set directly
		log.Debug().Msgf(".env not loaded: %v", envErr)
	}

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, telemetry.AnalysisAttributes(cfg.Strategy, cfg.AnalysisMode, cfg.Seed)...)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("failed to flush traces")
				}
			}()
		}
	}

	if err := run(ctx, opts, cfg); err != nil {
		log.Error().Err(err).Msg("analysis failed")
		os.Exit(1)
	}
}

func setupLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func setLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func run(ctx context.Context, opts options, cfg config.Config) error {
	catalog, err := loadCatalog(opts.catalog)
	if err != nil {
		return err
	}

	var entries1, entries2 []game.DeckEntry
	var weights []byte
	if opts.weights != "" {
		weights, err = os.ReadFile(opts.weights)
		if err != nil {
			return fmt.Errorf("failed to read weights: %w", err)
		}
	}
	if opts.request != "" {
		req, reqCfg, err := config.LoadRequest(opts.request, cfg)
		if err != nil {
			return err
		}
		cfg = reqCfg
		entries1, entries2 = req.Deck1, req.Deck2
		overrides, err := req.WeightOverrides()
		if err != nil {
			return err
		}
		if overrides != nil {
			weights = overrides
		}
	} else {
		if entries1, err = loadDeckList("deck1", opts.deck1); err != nil {
			return err
		}
		if entries2, err = loadDeckList("deck2", opts.deck2); err != nil {
			return err
		}
	}

	deck1, err := catalog.ResolveDeck("deck1", entries1)
	if err != nil {
		return err
	}
	deck2, err := catalog.ResolveDeck("deck2", entries2)
	if err != nil {
		return err
	}

	registry := strategy.NewDefaultRegistry()

	if opts.experiment {
		cfg, err = cfg.Normalize()
		if err != nil {
			return err
		}
		exp := experiments.StrategyMatchups(registry, cfg.AnalysisMode, opts.games)
		_, err = experiments.NewRunner(registry, cfg, deck1, deck2, opts.resultsDir).Run(ctx, exp)
		return err
	}

	state, err := game.NewGame(game.Setup{Deck1: deck1, Deck2: deck2, OpeningHand: cfg.OpeningHand, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	runner, err := engine.NewRunner(state, cfg, registry, weights)
	if err != nil {
		return err
	}
	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	return writeReport(opts.out, report)
}

func loadCatalog(path string) (*game.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	catalog, err := game.LoadCatalog(f)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("loaded %d cards from %s", catalog.Len(), path)
	return catalog, nil
}

func loadDeckList(field, path string) ([]game.DeckEntry, error) {
	if path == "" {
		return nil, &game.InputValidationError{Field: field, Reason: "missing deck list"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	return game.ParseDeckList(data)
}

func writeReport(path string, report *engine.Report) error {
	if path == "" {
		return metrics.EncodeJSON(os.Stdout, report)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()
	if err := metrics.EncodeJSON(f, report); err != nil {
		return err
	}
	log.Info().Msgf("stored report in %s", path)
	return nil
}
