package engine

import (
	"lorcana/game"
)

// PathReport is a scored path together with the player it would leave behind.
type PathReport struct {
	game.Path
	GameState game.Summary `json:"gameState"`
}

type TurnReport struct {
	TurnNumber          int                     `json:"turnNumber"`
	ActivePlayer        game.PlayerID           `json:"activePlayer"`
	Strategy            string                  `json:"strategy"`
	Paths               []PathReport            `json:"paths"`
	TotalPathsGenerated int                     `json:"totalPathsGenerated"`
	PathsReturned       int                     `json:"pathsReturned"`
	OptimalPathExecuted *PathReport             `json:"optimalPathExecuted,omitempty"`
	SampledPathExecuted *PathReport             `json:"sampledPathExecuted,omitempty"` // Set instead when the agent did not take the top path
	Anomalies           []*game.DataLookupError `json:"anomalies,omitempty"`
}

type Report struct {
	RunID       string                `json:"runId"`
	Strategy    string                `json:"strategy"`
	Mode        string                `json:"mode"`
	FirstPlayer game.PlayerID         `json:"firstPlayer"`
	Turns       []TurnReport          `json:"turns"`
	FinalLore   map[game.PlayerID]int `json:"finalLore"`
	Winner      game.PlayerID         `json:"winner"` // Higher lore, "" on a tie
}
