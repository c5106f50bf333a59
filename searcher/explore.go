package searcher

import (
	"lorcana/game"
	"lorcana/strategy"

	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxDepth = 3
	DefaultLimit    = 5000
)

type ExploreOption func(e *Explorer)

// Explorer enumerates action sequences by depth-first search over single legal
// actions. Sequences holding the same multiset of actions lead to the same state
// and are visited once.
type Explorer struct {
	maxDepth int
	limit    int
}

func WithMaxDepth(depth int) ExploreOption {
	return func(e *Explorer) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithLimit caps the number of distinct sequences visited.
func WithLimit(limit int) ExploreOption {
	return func(e *Explorer) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

func NewExplorer(options ...ExploreOption) *Explorer {
	e := &Explorer{maxDepth: DefaultMaxDepth, limit: DefaultLimit}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Explorer) MaxDepth() int {
	return e.maxDepth
}

// node is the search state reached after a sequence of actions.
type node struct {
	actions []game.Action
	inHand  []bool
	quested []bool
	ink     int
	inked   bool
}

type exploration struct {
	*Explorer
	g       *generator
	quests  []candidate
	visited map[string]bool
	paths   []game.Path
}

// Explore returns one path per distinct reachable action multiset of length
// 1 to maxDepth, in discovery order.
func (e *Explorer) Explore(snap game.Snapshot, turn int, s strategy.Strategy) []game.Path {
	if s == nil {
		panic("path exploration requires a strategy")
	}
	x := &exploration{
		Explorer: e,
		g: &generator{
			snap:     snap,
			turn:     turn,
			strategy: s,
			ctx:      strategy.Context{Turn: turn, Start: snap},
		},
		quests:  questers(snap.Board),
		visited: make(map[string]bool),
	}

	root := node{
		inHand:  make([]bool, len(snap.Hand)),
		quested: make([]bool, len(snap.Board)),
		ink:     snap.AvailableInk,
	}
	for i := range root.inHand {
		root.inHand[i] = true
	}
	x.search(root)

	if len(x.visited) >= e.limit {
		log.Debug().Msgf("exploration for turn %d stopped at %d sequences", turn, e.limit)
	}
	return x.paths
}

func (x *exploration) search(n node) {
	if len(n.actions) >= x.maxDepth {
		return
	}
	for _, child := range x.children(n) {
		if len(x.visited) >= x.limit {
			return
		}
		sig := game.Path{Actions: child.actions}.Signature()
		if x.visited[sig] {
			continue
		}
		x.visited[sig] = true
		x.paths = append(x.paths, x.g.newPath(FamilyFull, child.actions, len(x.paths)))
		x.search(child)
	}
}

// children expands the legal single actions from n: at most one ink per turn,
// plays affordable with the remaining ink and quests with unused starting characters.
func (x *exploration) children(n node) []node {
	var out []node
	hand := x.remaining(n)

	if !n.inked {
		inks := make([]candidate, 0, len(hand))
		for _, c := range hand {
			if c.card.Inkable {
				inks = append(inks, c)
			}
		}
		rankInk(inks, x.g.strategy, x.g.ctx)
		for _, c := range inks {
			child := n.extend(game.Ink(c.card))
			child.inHand[c.index] = false
			child.ink++
			child.inked = true
			out = append(out, child)
		}
	}

	plays := make([]candidate, 0, len(hand))
	for _, c := range hand {
		if c.card.Cost <= n.ink {
			plays = append(plays, c)
		}
	}
	rankPlay(plays, x.g.strategy, x.g.ctx)
	for _, c := range plays {
		child := n.extend(game.Play(c.card))
		child.inHand[c.index] = false
		child.ink -= c.card.Cost
		out = append(out, child)
	}

	for _, q := range x.quests {
		if n.quested[q.index] {
			continue
		}
		child := n.extend(game.Quest(q.card))
		child.quested[q.index] = true
		out = append(out, child)
	}
	return out
}

func (x *exploration) remaining(n node) []candidate {
	out := make([]candidate, 0, len(n.inHand))
	for i, ok := range n.inHand {
		if ok {
			out = append(out, candidate{card: x.g.snap.Hand[i], index: i})
		}
	}
	return out
}

func (n node) extend(a game.Action) node {
	actions := make([]game.Action, len(n.actions), len(n.actions)+1)
	copy(actions, n.actions)
	return node{
		actions: append(actions, a),
		inHand:  append([]bool(nil), n.inHand...),
		quested: append([]bool(nil), n.quested...),
		ink:     n.ink,
		inked:   n.inked,
	}
}

// Merge concatenates path lists, dropping any path whose action multiset was already seen.
// Surviving paths keep their order.
func Merge(lists ...[]game.Path) []game.Path {
	seen := make(map[string]bool)
	var out []game.Path
	for _, paths := range lists {
		for _, p := range paths {
			sig := p.Signature()
			if seen[sig] {
				continue
			}
			seen[sig] = true
			out = append(out, p)
		}
	}
	return out
}
