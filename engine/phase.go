package engine

// Phase is a step of the turn state machine.
type Phase int

const (
	TurnStart Phase = iota
	DrawPhase
	PathGeneration
	Scoring
	Execution
	TurnEnd
)

func (p Phase) String() string {
	switch p {
	case TurnStart:
		return "turnStart"
	case DrawPhase:
		return "drawPhase"
	case PathGeneration:
		return "pathGeneration"
	case Scoring:
		return "scoring"
	case Execution:
		return "execution"
	case TurnEnd:
		return "turnEnd"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows p. TurnEnd wraps to TurnStart.
func (p Phase) Next() Phase {
	if p == TurnEnd {
		return TurnStart
	}
	return p + 1
}
