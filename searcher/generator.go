package searcher

import (
	"fmt"
	"sort"

	"lorcana/game"
	"lorcana/strategy"
)

// Path families, used in path IDs.
const (
	FamilyPass            = "PASS"
	FamilyInk             = "INK"
	FamilyPlay            = "PLAY"
	FamilyInkPlay         = "INKPLAY"
	FamilyQuest           = "QUEST"
	FamilyPlayQuest       = "PLAYQUEST"
	FamilyInkQuest        = "INKQUEST"
	FamilyInkPlayQuest    = "INKPLAYQUEST"
	FamilyInkPlayQuestAll = "INKPLAYQUESTALL"
	FamilyFull            = "FULL"
)

type generator struct {
	snap     game.Snapshot
	turn     int
	strategy strategy.Strategy
	ctx      strategy.Context
}

// Generate returns the candidate paths for one turn. It is a pure function of its
// inputs: the snapshot is never modified and the output order is deterministic.
// Paths are returned unscored.
func Generate(snap game.Snapshot, turn int, s strategy.Strategy) []game.Path {
	if s == nil {
		panic("path generation requires a strategy")
	}
	g := &generator{
		snap:     snap,
		turn:     turn,
		strategy: s,
		ctx:      strategy.Context{Turn: turn, Start: snap},
	}

	if len(snap.Hand) == 0 {
		return []game.Path{g.pass()}
	}

	inks := g.inkables()
	playable := g.playable(snap.AvailableInk, -1)
	quests := questers(snap.Board)

	paths := make([]game.Path, 0, len(inks)*len(snap.Hand)+len(snap.Hand)+len(quests)+4)
	paths = append(paths, g.inkOnly(inks)...)
	paths = append(paths, g.playOnly(playable)...)
	paths = append(paths, g.inkThenPlay(inks)...)
	paths = append(paths, g.questOnly(quests)...)
	paths = append(paths, g.playThenQuest(playable, quests)...)
	paths = append(paths, g.inkThenQuest(inks, quests)...)
	paths = append(paths, g.inkPlayQuest(inks, quests)...)

	if len(paths) == 0 {
		paths = append(paths, g.pass())
	}
	return paths
}

func (g *generator) newPath(family string, actions []game.Action, indices ...int) game.Path {
	id := fmt.Sprintf("T%d-%s", g.turn, family)
	for _, i := range indices {
		id += fmt.Sprintf("-%d", i)
	}
	return game.Path{
		ID:          id,
		Family:      family,
		Description: game.Describe(actions),
		Actions:     actions,
		EndState:    g.snap.Apply(actions),
	}
}

func (g *generator) pass() game.Path {
	return g.newPath(FamilyPass, []game.Action{}, 0)
}

func (g *generator) inkables() []candidate {
	inks := handCandidates(g.snap.Hand, func(c game.Card) bool { return c.Inkable })
	rankInk(inks, g.strategy, g.ctx)
	return inks
}

// playable returns the hand cards affordable with ink, skipping the hand index exclude.
func (g *generator) playable(ink int, exclude int) []candidate {
	out := make([]candidate, 0, len(g.snap.Hand))
	for i, c := range g.snap.Hand {
		if i != exclude && c.Cost <= ink {
			out = append(out, candidate{card: c, index: i})
		}
	}
	rankPlay(out, g.strategy, g.ctx)
	return out
}

func (g *generator) inkOnly(inks []candidate) []game.Path {
	paths := make([]game.Path, 0, len(inks))
	for _, ink := range inks {
		paths = append(paths, g.newPath(FamilyInk, []game.Action{game.Ink(ink.card)}, ink.index))
	}
	return paths
}

func (g *generator) playOnly(playable []candidate) []game.Path {
	paths := make([]game.Path, 0, len(playable))
	for _, play := range playable {
		paths = append(paths, g.newPath(FamilyPlay, []game.Action{game.Play(play.card)}, play.index))
	}
	return paths
}

// inkThenPlay crosses every inkable card with every other card affordable after the ink.
func (g *generator) inkThenPlay(inks []candidate) []game.Path {
	type combo struct {
		ink  candidate
		play candidate
	}
	var combos []combo
	for _, ink := range inks {
		for _, play := range g.playable(g.snap.AvailableInk+1, ink.index) {
			combos = append(combos, combo{ink: ink, play: play})
		}
	}
	// Inks are already in rank order, the stable sort keeps it between equal plays.
	sort.SliceStable(combos, func(i, j int) bool {
		a, b := combos[i].play, combos[j].play
		if a.index == b.index {
			return false
		}
		return playsBefore(a, b, g.strategy, g.ctx)
	})

	paths := make([]game.Path, 0, len(combos))
	for _, c := range combos {
		actions := []game.Action{game.Ink(c.ink.card), game.Play(c.play.card)}
		paths = append(paths, g.newPath(FamilyInkPlay, actions, c.ink.index, c.play.index))
	}
	return paths
}

func (g *generator) questOnly(quests []candidate) []game.Path {
	paths := make([]game.Path, 0, len(quests))
	for _, q := range quests {
		paths = append(paths, g.newPath(FamilyQuest, []game.Action{game.Quest(q.card)}, q.index))
	}
	return paths
}

func questAll(quests []candidate) []game.Action {
	actions := make([]game.Action, 0, len(quests))
	for _, q := range quests {
		actions = append(actions, game.Quest(q.card))
	}
	return actions
}

// playThenQuest plays the top playable card and quests with every ready character.
func (g *generator) playThenQuest(playable, quests []candidate) []game.Path {
	if len(playable) == 0 || len(quests) == 0 {
		return nil
	}
	top := playable[0]
	actions := append([]game.Action{game.Play(top.card)}, questAll(quests)...)
	return []game.Path{g.newPath(FamilyPlayQuest, actions, top.index)}
}

// inkThenQuest inks the top ink card and quests with every ready character.
func (g *generator) inkThenQuest(inks, quests []candidate) []game.Path {
	if len(inks) == 0 || len(quests) == 0 {
		return nil
	}
	top := inks[0]
	actions := append([]game.Action{game.Ink(top.card)}, questAll(quests)...)
	return []game.Path{g.newPath(FamilyInkQuest, actions, top.index)}
}

// inkPlayQuest builds the two combined families: top ink, top post-ink play and
// the top quester, then the same with every quester.
func (g *generator) inkPlayQuest(inks, quests []candidate) []game.Path {
	if len(inks) == 0 || len(quests) == 0 {
		return nil
	}
	ink := inks[0]
	plays := g.playable(g.snap.AvailableInk+1, ink.index)
	if len(plays) == 0 {
		return nil
	}
	play := plays[0]

	base := []game.Action{game.Ink(ink.card), game.Play(play.card)}
	top := append(append([]game.Action{}, base...), game.Quest(quests[0].card))
	paths := []game.Path{g.newPath(FamilyInkPlayQuest, top, ink.index, play.index)}

	if len(quests) > 1 {
		all := append(append([]game.Action{}, base...), questAll(quests)...)
		paths = append(paths, g.newPath(FamilyInkPlayQuestAll, all, ink.index, play.index))
	}
	return paths
}
