package gridgraph

import (
	"github.com/nanomouse/mazenav/graph"
	"github.com/nanomouse/mazenav/maze"
)

// neighborOrder fixes the enumeration order of Neighbors.
var neighborOrder = [...]maze.Direction{maze.North, maze.East, maze.South, maze.West}

// MaxNodeIndex returns Width²-1, the index of the north-east corner cell.
// Complexity: O(1).
func (Graph) MaxNodeIndex() graph.IndexValue {
	return graph.IndexValue(maze.Width*maze.Width - 1)
}

// Distance returns the cost of travelling between two cells. On a grid
// every move costs 1, so the metric is the Manhattan distance: exact for
// adjacent cells, and equal to OptimisticDistance everywhere else.
// Complexity: O(1).
func (g Graph) Distance(from, to graph.NodeIndex[Graph]) graph.Cost {
	return g.OptimisticDistance(from, to)
}

// OptimisticDistance returns the Manhattan distance between the cells of
// from and to, ignoring walls. It never overestimates the true cost.
// Complexity: O(1).
func (Graph) OptimisticDistance(from, to graph.NodeIndex[Graph]) graph.Cost {
	return graph.Cost(vectorByNodeIndexPair(from, to).Manhattan())
}

// AgentStateByNodeIndex places an agent at the center of the cell index
// maps to. When from is non-nil the heading is the displacement from
// from's cell to index's cell; otherwise the heading is zero.
// Complexity: O(1).
func (Graph) AgentStateByNodeIndex(index graph.NodeIndex[Graph], from *graph.NodeIndex[Graph]) maze.AgentState {
	state := maze.AgentState{
		Location:      coordByNodeIndex(index),
		LocalLocation: maze.LocalCenter,
	}
	if from != nil {
		state.Heading = vectorByNodeIndexPair(*from, index)
	}

	return state
}

// NodeIndexByAgentState maps an agent state back to the node index of
// the cell it occupies. Only states resting at a cell center have a
// node index; anything else returns graph.ErrInvalidLocation.
// Complexity: O(1).
func (Graph) NodeIndexByAgentState(state maze.AgentState) (graph.NodeIndex[Graph], error) {
	if state.LocalLocation != maze.LocalCenter {
		return graph.NodeIndex[Graph]{}, graph.ErrInvalidLocation
	}

	return nodeIndexByCoord(state.Location)
}

// Edge reports the directed move from from's cell to to's cell. The edge
// exists iff the two cells are axis-adjacent and the wall between them is
// open; its cost is always 1.
// Complexity: O(1).
func (g Graph) Edge(from, to graph.NodeIndex[Graph]) (graph.Edge[Graph], bool) {
	d, err := vectorByNodeIndexPair(from, to).Direction()
	if err != nil {
		return graph.Edge[Graph]{}, false
	}
	if g.Maze.Wall(coordByNodeIndex(from), d) {
		return graph.Edge[Graph]{}, false
	}

	return graph.NewEdge(from, to), true
}

// Neighbors returns the open moves out of from in North, East, South,
// West order. Walled directions are skipped, so the result holds at most
// four of the contract's MaxNeighbors slots.
// Complexity: O(1); allocates one slice per call.
func (g Graph) Neighbors(from graph.NodeIndex[Graph]) []graph.Edge[Graph] {
	edges := make([]graph.Edge[Graph], 0, graph.MaxNeighbors)
	at := coordByNodeIndex(from)
	cell := g.Maze.Cell(at)
	for _, d := range neighborOrder {
		if cell.Wall(d) {
			continue
		}
		next, err := at.Step(d)
		if err != nil {
			// Open perimeter walls cannot occur on a maze built by
			// maze.New; a hand-assembled one simply has no move here.
			continue
		}
		to, err := nodeIndexByCoord(next)
		if err != nil {
			continue
		}
		edges = append(edges, graph.NewEdge(from, to))
	}

	return edges
}

// coordByNodeIndex maps a row-major node index back to its cell:
// x = index mod Width, y = index div Width.
// Complexity: O(1).
func coordByNodeIndex(n graph.NodeIndex[Graph]) maze.CoordXY {
	v := int(n.Value())

	return maze.CoordXY{X: maze.Coord1D(v % maze.Width), Y: maze.Coord1D(v / maze.Width)}
}

// nodeIndexByCoord maps a cell to its row-major node index.
// Complexity: O(1).
func nodeIndexByCoord(c maze.CoordXY) (graph.NodeIndex[Graph], error) {
	return graph.NewNodeIndex[Graph](graph.IndexValue(c.Index()))
}

// vectorByNodeIndexPair returns the displacement from from's cell to
// to's cell.
// Complexity: O(1).
func vectorByNodeIndexPair(from, to graph.NodeIndex[Graph]) maze.VectorXY {
	return coordByNodeIndex(to).Sub(coordByNodeIndex(from))
}
