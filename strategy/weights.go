package strategy

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"lorcana/game"
)

// Weights configures a strategy's scoring formula.
type Weights struct {
	LoreWeight             float64 `yaml:"loreWeight" json:"loreWeight"`
	InkGainWeight          float64 `yaml:"inkGainWeight" json:"inkGainWeight"`
	InkUseWeight           float64 `yaml:"inkUseWeight" json:"inkUseWeight"`
	BoardPresenceWeight    float64 `yaml:"boardPresenceWeight" json:"boardPresenceWeight"`
	ActionEfficiencyWeight float64 `yaml:"actionEfficiencyWeight" json:"actionEfficiencyWeight"`
	HandSizeWeight         float64 `yaml:"handSizeWeight" json:"handSizeWeight"`
	TurnProgressionWeight  float64 `yaml:"turnProgressionWeight" json:"turnProgressionWeight"`
	MultiActionBonus       float64 `yaml:"multiActionBonus" json:"multiActionBonus"`
	InkUtilizationBonus    float64 `yaml:"inkUtilizationBonus" json:"inkUtilizationBonus"`
	EarlyGameInkBonus      float64 `yaml:"earlyGameInkBonus" json:"earlyGameInkBonus"`
	LateGameLoreBonus      float64 `yaml:"lateGameLoreBonus" json:"lateGameLoreBonus"`
	HighCostCardBonus      float64 `yaml:"highCostCardBonus" json:"highCostCardBonus"`
	InkRetentionBonus      float64 `yaml:"inkRetentionBonus" json:"inkRetentionBonus"`
	EarlyGameThreshold     int     `yaml:"earlyGameThreshold" json:"earlyGameThreshold"`
	LateGameThreshold      int     `yaml:"lateGameThreshold" json:"lateGameThreshold"`
}

// DefaultWeights are tuned so that lore dominates every other term.
func DefaultWeights() Weights {
	return Weights{
		LoreWeight:             10,
		InkGainWeight:          3,
		InkUseWeight:           2,
		BoardPresenceWeight:    5,
		ActionEfficiencyWeight: 1,
		HandSizeWeight:         0.5,
		TurnProgressionWeight:  0.2,
		MultiActionBonus:       5,
		InkUtilizationBonus:    4,
		EarlyGameInkBonus:      6,
		LateGameLoreBonus:      3,
		HighCostCardBonus:      1,
		InkRetentionBonus:      0.5,
		EarlyGameThreshold:     3,
		LateGameThreshold:      7,
	}
}

// ApplyYAML overlays the keys present in data onto a copy of base.
// Unknown keys are configuration errors.
func ApplyYAML(base Weights, data []byte) (Weights, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return base, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	weights := base
	if err := decoder.Decode(&weights); err != nil {
		return base, &game.ConfigurationError{Field: "weights", Value: "yaml", Reason: err.Error()}
	}
	if weights.LateGameThreshold < weights.EarlyGameThreshold {
		return base, &game.ConfigurationError{
			Field:  "weights",
			Value:  fmt.Sprintf("early=%d late=%d", weights.EarlyGameThreshold, weights.LateGameThreshold),
			Reason: "lateGameThreshold must not be below earlyGameThreshold",
		}
	}
	return weights, nil
}
