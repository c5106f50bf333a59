package game

import "fmt"

// ActionType tags an Action.
type ActionType string

const (
	InkAction   ActionType = "ink"
	PlayAction  ActionType = "play"
	QuestAction ActionType = "quest"
	// Reserved: declared for the report format, never generated or executed.
	ChallengeAction ActionType = "challenge"
	SingAction      ActionType = "sing"
)

// Action is one step of a Path. Cost and Lore are captured at generation time.
type Action struct {
	Type     ActionType `json:"type"`
	CardID   string     `json:"cardId"`
	CardName string     `json:"cardName"`
	Cost     int        `json:"cost,omitempty"`
	Lore     int        `json:"lore,omitempty"`
}

func Ink(card Card) Action {
	return Action{Type: InkAction, CardID: card.ID, CardName: card.Name, Cost: card.Cost}
}

func Play(card Card) Action {
	return Action{Type: PlayAction, CardID: card.ID, CardName: card.Name, Cost: card.Cost, Lore: card.Lore}
}

func Quest(card Card) Action {
	return Action{Type: QuestAction, CardID: card.ID, CardName: card.Name, Lore: card.Lore}
}

// IsImplemented reports whether the executor knows how to apply the action.
func (a Action) IsImplemented() bool {
	switch a.Type {
	case InkAction, PlayAction, QuestAction:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	switch a.Type {
	case InkAction:
		return fmt.Sprintf("Ink %s", a.CardName)
	case PlayAction:
		return fmt.Sprintf("Play %s (%d ink)", a.CardName, a.Cost)
	case QuestAction:
		return fmt.Sprintf("Quest with %s (+%d lore)", a.CardName, a.Lore)
	default:
		return fmt.Sprintf("%s %s", a.Type, a.CardName)
	}
}
