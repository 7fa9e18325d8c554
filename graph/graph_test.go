package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanomouse/mazenav/graph"
	"github.com/nanomouse/mazenav/maze"
)

// corridorGraph is a minimal Grapher implementation for contract tests:
// eleven nodes on a straight east-west corridor at Y=0, cost = index gap,
// neighbors enumerated east first.
type corridorGraph struct{}

var _ graph.Grapher[corridorGraph] = corridorGraph{}

const corridorMax = graph.IndexValue(10)

func (corridorGraph) MaxNodeIndex() graph.IndexValue { return corridorMax }

func (corridorGraph) Distance(from, to graph.NodeIndex[corridorGraph]) graph.Cost {
	d := int(to.Value()) - int(from.Value())
	if d < 0 {
		d = -d
	}

	return graph.Cost(d)
}

func (g corridorGraph) OptimisticDistance(from, to graph.NodeIndex[corridorGraph]) graph.Cost {
	return g.Distance(from, to)
}

func (corridorGraph) AgentStateByNodeIndex(index graph.NodeIndex[corridorGraph], from *graph.NodeIndex[corridorGraph]) maze.AgentState {
	st := maze.AgentState{
		Location:      maze.CoordXY{X: maze.Coord1D(index.Value()), Y: 0},
		LocalLocation: maze.LocalCenter,
	}
	if from != nil {
		st.Heading = st.Location.Sub(maze.CoordXY{X: maze.Coord1D(from.Value()), Y: 0})
	}

	return st
}

func (corridorGraph) NodeIndexByAgentState(state maze.AgentState) (graph.NodeIndex[corridorGraph], error) {
	if state.LocalLocation != maze.LocalCenter || state.Location.Y != 0 {
		return graph.NodeIndex[corridorGraph]{}, graph.ErrInvalidLocation
	}

	return graph.NewNodeIndex[corridorGraph](graph.IndexValue(state.Location.X))
}

func (g corridorGraph) Edge(from, to graph.NodeIndex[corridorGraph]) (graph.Edge[corridorGraph], bool) {
	if g.Distance(from, to) != 1 {
		return graph.Edge[corridorGraph]{}, false
	}

	return graph.NewEdge(from, to), true
}

func (corridorGraph) Neighbors(from graph.NodeIndex[corridorGraph]) []graph.Edge[corridorGraph] {
	out := make([]graph.Edge[corridorGraph], 0, graph.MaxNeighbors)
	for _, step := range []graph.IndexValue{1, -1} {
		v := from.Value() + step
		if v < 0 || v > corridorMax {
			continue
		}
		to, err := graph.NewNodeIndex[corridorGraph](v)
		if err != nil {
			continue
		}
		out = append(out, graph.NewEdge(from, to))
	}

	return out
}

func corridorNode(t *testing.T, v graph.IndexValue) graph.NodeIndex[corridorGraph] {
	t.Helper()
	n, err := graph.NewNodeIndex[corridorGraph](v)
	require.NoError(t, err)

	return n
}

func TestNewNodeIndex_ValidRange(t *testing.T) {
	assert.Equal(t, graph.IndexValue(0), corridorNode(t, 0).Value())
	assert.Equal(t, corridorMax, corridorNode(t, corridorMax).Value())
}

func TestNodeIndex_CompareAndEquality(t *testing.T) {
	a := corridorNode(t, 2)
	b := corridorNode(t, 5)
	c := corridorNode(t, 2)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(c))
	assert.True(t, a == c, "same value must compare equal with ==")
	assert.True(t, a != b)
}

func TestNewEdge_PricesWithVariantDistance(t *testing.T) {
	from := corridorNode(t, 2)
	to := corridorNode(t, 7)

	e := graph.NewEdge(from, to)
	assert.Equal(t, from, e.From())
	assert.Equal(t, to, e.To())
	assert.Equal(t, graph.Cost(5), e.Cost())
}

func TestEdge_Comparable(t *testing.T) {
	a := graph.NewEdge(corridorNode(t, 1), corridorNode(t, 2))
	b := graph.NewEdge(corridorNode(t, 1), corridorNode(t, 2))
	c := graph.NewEdge(corridorNode(t, 2), corridorNode(t, 1))

	assert.True(t, a == b)
	assert.True(t, a != c)
}

func TestGrapher_EdgeAndNeighbors(t *testing.T) {
	var g corridorGraph
	n0 := corridorNode(t, 0)
	n1 := corridorNode(t, 1)

	e, ok := g.Edge(n0, n1)
	require.True(t, ok)
	assert.Equal(t, graph.Cost(1), e.Cost())

	_, ok = g.Edge(n0, n0)
	assert.False(t, ok, "zero-length hop is not an edge")
	_, ok = g.Edge(n0, corridorNode(t, 4))
	assert.False(t, ok, "non-adjacent nodes share no edge")

	end := g.Neighbors(n0)
	require.Len(t, end, 1, "corridor end has a single neighbor")
	assert.Equal(t, n1, end[0].To())

	mid := g.Neighbors(corridorNode(t, 5))
	require.Len(t, mid, 2)
	assert.Equal(t, graph.IndexValue(6), mid[0].To().Value(), "east enumerates first")
	assert.Equal(t, graph.IndexValue(4), mid[1].To().Value())
	assert.LessOrEqual(t, len(mid), graph.MaxNeighbors)
}

func TestGrapher_PoseMapping(t *testing.T) {
	var g corridorGraph
	n2 := corridorNode(t, 2)
	n3 := corridorNode(t, 3)

	st := g.AgentStateByNodeIndex(n3, nil)
	assert.Equal(t, maze.CoordXY{X: 3, Y: 0}, st.Location)
	assert.Equal(t, maze.LocalCenter, st.LocalLocation)
	assert.Equal(t, maze.VectorXY{}, st.Heading, "no predecessor, no heading")

	st = g.AgentStateByNodeIndex(n3, &n2)
	assert.Equal(t, maze.VectorXY{X: 1, Y: 0}, st.Heading)

	back, err := g.NodeIndexByAgentState(st)
	require.NoError(t, err)
	assert.Equal(t, n3, back)

	st.LocalLocation = maze.LocalNorth
	_, err = g.NodeIndexByAgentState(st)
	assert.ErrorIs(t, err, graph.ErrInvalidLocation)
}

// degree consumes the contract generically, the way a searcher would.
func degree[G graph.Grapher[G]](g G, n graph.NodeIndex[G]) int {
	return len(g.Neighbors(n))
}

func TestGrapher_GenericConsumer(t *testing.T) {
	assert.Equal(t, 1, degree(corridorGraph{}, corridorNode(t, 0)))
	assert.Equal(t, 2, degree(corridorGraph{}, corridorNode(t, 5)))
}

func TestRoute_Accumulates(t *testing.T) {
	r := graph.NewRoute[corridorGraph]()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, graph.Cost(0), r.Cost())

	r.Append(corridorNode(t, 0), 0)
	for v := graph.IndexValue(1); v <= 3; v++ {
		r.Append(corridorNode(t, v), 1)
	}

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, graph.Cost(3), r.Cost())

	nodes := r.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, graph.IndexValue(2), nodes[2].Value())

	// The returned slice is a copy; writing to it must not reach the route.
	nodes[0] = corridorNode(t, 9)
	assert.Equal(t, graph.IndexValue(0), r.Nodes()[0].Value())
}
