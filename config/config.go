package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"lorcana/agent"
	"lorcana/game"
	"lorcana/meta"
)

const (
	ModeOptimal = "optimal"
	ModeFull    = "full"
)

// Modes lists the accepted analysis modes.
var Modes = []string{ModeOptimal, ModeFull}

// Config drives one analysis run. Every field can come from the environment
// or from the config section of a request file.
type Config struct {
	Strategy        string  `env:"LORCANA_STRATEGY" yaml:"strategy" json:"strategy"`
	MaxTurns        int     `env:"LORCANA_MAX_TURNS" yaml:"maxTurns" json:"maxTurns"`
	MaxPathsPerTurn int     `env:"LORCANA_MAX_PATHS_PER_TURN" yaml:"maxPathsPerTurn" json:"maxPathsPerTurn"`
	MaxDepth        int     `env:"LORCANA_MAX_DEPTH" yaml:"maxDepth" json:"maxDepth"`
	ShowAllPaths    bool    `env:"LORCANA_SHOW_ALL_PATHS" yaml:"showAllPaths" json:"showAllPaths"`
	AnalysisMode    string  `env:"LORCANA_ANALYSIS_MODE" yaml:"analysisMode" json:"analysisMode"`
	FirstPlayer     string  `env:"LORCANA_FIRST_PLAYER" yaml:"firstPlayer" json:"firstPlayer"`
	OpeningHand     int     `env:"LORCANA_OPENING_HAND" yaml:"openingHand" json:"openingHand"`
	Seed            uint64  `env:"LORCANA_SEED" yaml:"seed" json:"seed"`
	Selection       string  `env:"LORCANA_SELECTION" yaml:"selection" json:"selection"`
	Temperature     float64 `env:"LORCANA_TEMPERATURE" yaml:"temperature" json:"temperature"`
	LogLevel        string  `env:"LORCANA_LOG_LEVEL" yaml:"logLevel" json:"logLevel"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Strategy:        meta.STRATEGY,
		MaxTurns:        meta.MAX_TURNS,
		MaxPathsPerTurn: meta.PATHS_PER_TURN,
		MaxDepth:        meta.DEPTH,
		AnalysisMode:    meta.ANALYSIS_MODE,
		OpeningHand:     meta.OPENING_HAND,
		Selection:       meta.SELECTION,
		Temperature:     1,
		LogLevel:        "info",
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromEnv overlays environment variables on the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize clamps the numeric limits and rejects invalid enumerations.
// Strategy names are checked by the registry when the run is built.
func (c Config) Normalize() (Config, error) {
	if c.Strategy == "" {
		c.Strategy = meta.STRATEGY
	}
	if c.AnalysisMode == "" {
		c.AnalysisMode = meta.ANALYSIS_MODE
	}
	if c.AnalysisMode != ModeOptimal && c.AnalysisMode != ModeFull {
		return Config{}, &game.ConfigurationError{Field: "analysisMode", Value: c.AnalysisMode, Options: Modes}
	}
	if c.Selection == agent.Sampling && c.AnalysisMode == ModeOptimal {
		return Config{}, &game.ConfigurationError{
			Field:  "selection",
			Value:  c.Selection,
			Reason: "optimal mode executes the best scored path, sampling needs another mode",
		}
	}
	if c.MaxTurns < 1 {
		return Config{}, &game.ConfigurationError{Field: "maxTurns", Value: strconv.Itoa(c.MaxTurns), Reason: "must be at least 1"}
	}
	if c.OpeningHand < 0 {
		return Config{}, &game.ConfigurationError{Field: "openingHand", Value: strconv.Itoa(c.OpeningHand), Reason: "must not be negative"}
	}
	if c.FirstPlayer != "" && c.FirstPlayer != string(game.Player1) && c.FirstPlayer != string(game.Player2) {
		return Config{}, &game.ConfigurationError{
			Field:   "firstPlayer",
			Value:   c.FirstPlayer,
			Options: []string{string(game.Player1), string(game.Player2)},
		}
	}
	c.MaxPathsPerTurn = clamp(c.MaxPathsPerTurn, meta.MIN_PATHS, meta.MAX_PATHS)
	c.MaxDepth = clamp(c.MaxDepth, meta.MIN_DEPTH, meta.MAX_DEPTH)
	return c, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
