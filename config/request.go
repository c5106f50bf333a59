package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"lorcana/game"
)

// Request is an analysis request file: two deck lists and an optional config section
// that overrides the base configuration field by field.
type Request struct {
	Deck1   []game.DeckEntry `yaml:"deck1"`
	Deck2   []game.DeckEntry `yaml:"deck2"`
	Config  yaml.Node        `yaml:"config"`
	Weights yaml.Node        `yaml:"weights"`
}

// ParseRequest decodes a YAML or JSON request and applies its config section to base.
func ParseRequest(r io.Reader, base Config) (*Request, Config, error) {
	var req Request
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil && err != io.EOF {
		return nil, Config{}, fmt.Errorf("failed to decode request: %w", err)
	}
	if len(req.Deck1) == 0 {
		return nil, Config{}, &game.InputValidationError{Field: "deck1", Reason: "missing deck list"}
	}
	if len(req.Deck2) == 0 {
		return nil, Config{}, &game.InputValidationError{Field: "deck2", Reason: "missing deck list"}
	}

	cfg := base
	if !req.Config.IsZero() {
		if err := req.Config.Decode(&cfg); err != nil {
			return nil, Config{}, fmt.Errorf("failed to decode request config: %w", err)
		}
	}
	return &req, cfg, nil
}

// LoadRequest reads a request file from disk.
func LoadRequest(path string, base Config) (*Request, Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Config{}, fmt.Errorf("failed to read request: %w", err)
	}
	return ParseRequest(bytes.NewReader(data), base)
}

// WeightOverrides returns the raw weights section, or nil when the request has none.
func (r *Request) WeightOverrides() ([]byte, error) {
	if r.Weights.IsZero() {
		return nil, nil
	}
	data, err := yaml.Marshal(&r.Weights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weight overrides: %w", err)
	}
	return data, nil
}
