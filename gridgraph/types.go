// Package gridgraph defines the grid variant type
// for the gridgraph subpackage of github.com/nanomouse/mazenav.
package gridgraph

import (
	"github.com/nanomouse/mazenav/graph"
	"github.com/nanomouse/mazenav/maze"
)

// Graph is the four-directional grid variant: one node per maze cell,
// enumerated row-major (index = X + Y*Width), with a unit-cost edge
// wherever the shared wall is open.
//
// The maze pointer is the only state. Metric and pose operations
// (Distance, OptimisticDistance, AgentStateByNodeIndex,
// NodeIndexByAgentState, MaxNodeIndex) never read it and work on the
// zero value; Edge and Neighbors consult wall state and require a
// Graph built by New.
type Graph struct {
	Maze *maze.Maze
}

// New wraps m as a four-directional grid graph.
func New(m *maze.Maze) Graph {
	return Graph{Maze: m}
}

// Compile-time check that Graph fulfils the full variant contract.
var _ graph.Grapher[Graph] = Graph{}
