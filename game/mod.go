package game

// Snapshot is the read-only view of a player that path generation and scoring work against.
type Snapshot struct {
	Hand         []Card
	Board        []CardState
	AvailableInk int
	Lore         int
}

// Snapshot copies the zones the generator reads.
func (ps *PlayerState) Snapshot() Snapshot {
	hand := make([]Card, len(ps.Hand))
	copy(hand, ps.Hand)
	board := make([]CardState, len(ps.Board))
	copy(board, ps.Board)
	return Snapshot{
		Hand:         hand,
		Board:        board,
		AvailableInk: ps.AvailableInk(),
		Lore:         ps.Lore,
	}
}

// EndState is the snapshot's own state, used by pass paths.
func (s Snapshot) EndState() EndState {
	return EndState{
		Ink:       s.AvailableInk,
		HandSize:  len(s.Hand),
		BoardSize: len(s.Board),
		Lore:      s.Lore,
	}
}

// Apply derives the end state of running the actions against the snapshot without mutating it.
// Ink actions add one available ink, play actions spend their cost, quests add lore.
func (s Snapshot) Apply(actions []Action) EndState {
	end := s.EndState()
	for _, a := range actions {
		switch a.Type {
		case InkAction:
			end.Ink++
			end.HandSize--
		case PlayAction:
			end.Ink -= min(a.Cost, end.Ink)
			end.HandSize--
			end.BoardSize++
		case QuestAction:
			end.Lore += a.Lore
		}
	}
	return end
}
