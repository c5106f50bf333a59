package agent

import (
	"lorcana/game"
)

type evaluationAgent struct{}

// NewEvaluationAgent returns an agent that always executes the highest scoring path.
func NewEvaluationAgent() Agent {
	return evaluationAgent{}
}

func (a evaluationAgent) ChoosePath(paths []game.Path) game.Path {
	return findMax(paths)
}

// findMax returns the first path with the highest score.
func findMax(paths []game.Path) game.Path {
	if len(paths) == 0 {
		panic("no paths to choose from")
	}
	best := paths[0]
	for _, p := range paths[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best
}
