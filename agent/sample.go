package agent

import (
	"math"

	"golang.org/x/exp/rand"

	"lorcana/game"
)

type samplingAgent struct {
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent returns an agent that draws a path with probability proportional
// to exp(score / temperature). Lower temperatures approach greedy play.
func NewSamplingAgent(temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("sampling temperature must be positive")
	}
	return &samplingAgent{
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) ChoosePath(paths []game.Path) game.Path {
	if len(paths) == 0 {
		panic("no paths to choose from")
	}
	probs := adjustTemperature(paths, a.temperature)
	return paths[sample(probs, a.rng.Float64())]
}

// adjustTemperature turns scores into a softmax distribution.
func adjustTemperature(paths []game.Path, temperature float64) []float64 {
	top := findMax(paths).Score
	sum := 0.0
	probs := make([]float64, len(paths))
	for i, p := range paths {
		// Shift by the top score so the exponent never overflows
		probs[i] = math.Exp(float64(p.Score-top) / temperature)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func sample(probs []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Rounding errors
}
