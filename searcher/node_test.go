package searcher

import (
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func TestNodeExpand(t *testing.T) {
	root := newNode(opening(t, 8, 8))
	root.expand()

	require.Len(t, root.children, 5, "One child per legal action, Pass included")
	for i, move := range root.state.LegalActions() {
		child := root.children[i]
		require.Equal(t, root.state.MustNext(move).String(), child.state.String(),
			"Child %d should hold the state after %s", i, move)
		require.Zero(t, child.n)
		require.Zero(t, child.w)
		require.Empty(t, child.children)
	}
}

func TestNodeNextChild(t *testing.T) {
	t.Run("first unvisited child wins over any score", func(t *testing.T) {
		nd := &node{children: []node{
			{w: -5, n: 5},
			{w: 0, n: 0},
			{w: 0, n: 0},
		}}

		require.Same(t, &nd.children[1], nd.nextChild())
	})

	t.Run("highest UCB1 score among visited children", func(t *testing.T) {
		nd := &node{children: []node{
			{w: 2, n: 4},  // opponent did well: bad for us
			{w: -3, n: 4}, // opponent did badly: good for us
			{w: 0, n: 4},
		}}

		require.Same(t, &nd.children[1], nd.nextChild())
	})

	t.Run("ties go to the earlier child", func(t *testing.T) {
		nd := &node{children: []node{
			{w: 1, n: 3},
			{w: 1, n: 3},
		}}

		require.Same(t, &nd.children[0], nd.nextChild())
	})
}

func TestNodeEvaluate(t *testing.T) {
	m := NewMCTS(WithSeed(1), WithExpansionThreshold(2))

	t.Run("terminal loss", func(t *testing.T) {
		nd := newNode(mustState(t, [][]game.Cell{{x, o, o}}, 0))

		require.Equal(t, LOSS, nd.evaluate(m))
		require.Equal(t, -1, nd.w)
		require.Equal(t, 1, nd.n)
	})

	t.Run("terminal win counts as zero", func(t *testing.T) {
		nd := newNode(mustState(t, [][]game.Cell{{x, x, o}}, 0))

		require.Equal(t, 0, nd.evaluate(m))
		require.Equal(t, 0, nd.w)
		require.Equal(t, 1, nd.n)
		require.Empty(t, nd.children, "Terminal nodes are never expanded")
	})

	t.Run("leaf expands once it reaches the threshold", func(t *testing.T) {
		nd := newNode(opening(t, 6, 6))

		nd.evaluate(m)
		require.Empty(t, nd.children, "One visit is below the threshold of 2")
		nd.evaluate(m)
		require.Len(t, nd.children, 5)
		require.Equal(t, 2, nd.n)
	})

	t.Run("internal node negates its child's result", func(t *testing.T) {
		nd := newNode(opening(t, 6, 6))
		nd.expand()

		value := nd.evaluate(m)
		child := nd.children[0]
		require.Equal(t, 1, child.n, "The first unvisited child is descended into")
		require.Equal(t, -child.w, value)
		require.Equal(t, value, nd.w)
		require.Equal(t, 1, nd.n)
	})
}

func TestNodeMostVisited(t *testing.T) {
	nd := &node{children: []node{{n: 3}, {n: 7}, {n: 7}, {n: 9}}}

	require.Equal(t, 1, nd.mostVisited(3), "First of the tied maxima within the candidates")
	require.Equal(t, 3, nd.mostVisited(4))
}
