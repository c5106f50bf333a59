package agent

import (
	"fmt"

	"lorcana/game"
)

const (
	Greedy   = "greedy"
	Sampling = "sampling"
)

// Selections lists the accepted selection names.
var Selections = []string{Greedy, Sampling}

type Agent interface {
	// ChoosePath picks the path to execute from scored candidates
	ChoosePath(paths []game.Path) game.Path
}

// New builds the agent for a selection name. Sampling agents draw from seed.
func New(selection string, temperature float64, seed uint64) (Agent, error) {
	switch selection {
	case "", Greedy:
		return NewEvaluationAgent(), nil
	case Sampling:
		if temperature <= 0 {
			return nil, &game.ConfigurationError{Field: "temperature", Value: fmt.Sprint(temperature), Reason: "must be positive"}
		}
		return NewSamplingAgent(temperature, seed), nil
	default:
		return nil, &game.ConfigurationError{Field: "selection", Value: selection, Options: Selections}
	}
}
