package searcher

import (
	"math"
	"reversi/game"
)

// node is one position in the search tree. w accumulates results from the
// perspective of the side to move in state. children, once expanded, hold
// one entry per legal action in LegalActions order.
type node struct {
	state    game.State
	w        int
	n        int
	children []node
}

func newNode(state game.State) node {
	return node{state: state}
}

func (nd *node) expand() {
	moves := nd.state.LegalActions()
	nd.children = make([]node, len(moves))
	for i, move := range moves {
		nd.children[i] = newNode(nd.state.MustNext(move))
	}
}

// evaluate runs one descent from nd and returns its result for the side to
// move at nd.
func (nd *node) evaluate(m *MCTS) int {
	if nd.state.IsDone() {
		value := DRAW
		if nd.state.IsLose() {
			value = LOSS
		}
		nd.update(value)
		return value
	}

	if len(nd.children) == 0 {
		value := playout(nd.state, m.policy)
		m.metrics.AddFullPlayout()
		nd.update(value)
		if nd.n == m.expandLimit {
			nd.expand()
			m.metrics.AddExpansion()
		}
		return value
	}

	value := -nd.nextChild().evaluate(m)
	nd.update(value)
	return value
}

func (nd *node) update(value int) {
	nd.w += value
	nd.n++
}

// nextChild returns the first unvisited child, otherwise the child with the
// highest UCB1 score. Ties go to the earlier child.
func (nd *node) nextChild() *node {
	total := 0
	for i := range nd.children {
		if nd.children[i].n == 0 {
			return &nd.children[i]
		}
		total += nd.children[i].n
	}

	policy := newUCB1(total)
	best := -1
	maxScore := math.Inf(-1)
	for i := range nd.children {
		if score := policy.score(nd.children[i].w, nd.children[i].n); score > maxScore {
			maxScore = score
			best = i
		}
	}
	return &nd.children[best]
}

// mostVisited returns the index of the child with the most visits among the
// first count children. Ties go to the earlier child.
func (nd *node) mostVisited(count int) int {
	best := -1
	maxVisits := -1
	for i, child := range nd.children[:count] {
		if child.n > maxVisits {
			maxVisits = child.n
			best = i
		}
	}
	return best
}
