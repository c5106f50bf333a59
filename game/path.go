package game

import (
	"fmt"
	"sort"
	"strings"
)

// EndState is the derived result of applying a path to a snapshot.
type EndState struct {
	Ink       int `json:"ink"`
	HandSize  int `json:"handSize"`
	BoardSize int `json:"boardSize"`
	Lore      int `json:"lore"`
}

// Path is one candidate action sequence for a player's turn.
type Path struct {
	ID          string   `json:"pathId"`
	Family      string   `json:"family"`
	Description string   `json:"description"`
	Actions     []Action `json:"actions"`
	EndState    EndState `json:"endState"`
	Score       int      `json:"score"`
}

// Describe joins the actions into a human readable description.
func Describe(actions []Action) string {
	if len(actions) == 0 {
		return "Pass"
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", then ")
}

// Count returns how many actions of the given type the path has.
func (p Path) Count(t ActionType) int {
	n := 0
	for _, a := range p.Actions {
		if a.Type == t {
			n++
		}
	}
	return n
}

// Signature identifies a path by its multiset of actions, ignoring order.
func (p Path) Signature() string {
	keys := make([]string, len(p.Actions))
	for i, a := range p.Actions {
		keys[i] = fmt.Sprintf("%s:%s", a.Type, a.CardID)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// SortByScore orders paths by score, highest first. Ties keep generation order.
func SortByScore(paths []Path) {
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Score > paths[j].Score
	})
}
