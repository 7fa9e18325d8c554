// Package graph defines core types, contracts, and sentinel errors
// for the graph subpackage of github.com/nanomouse/mazenav.
package graph

import (
	"errors"

	"github.com/nanomouse/mazenav/maze"
)

// Sentinel errors for graph operations.
var (
	// ErrOutOfRange indicates a raw node index outside [0, MaxNodeIndex].
	ErrOutOfRange = errors.New("graph: node index out of range")
	// ErrInvalidLocation indicates an agent pose that no node of the
	// variant represents.
	ErrInvalidLocation = errors.New("graph: agent state has no node index")
)

// IndexValue is the raw representation of a node index. int16 covers the
// largest supported geometry (32×32 grid, and sub-cell variants several
// times that) with room to spare.
type IndexValue int16

// Cost is an edge or route traversal cost.
type Cost int32

// MaxNeighbors bounds the result of Grapher.Neighbors for every variant.
// Eight leaves headroom for diagonal or sub-cell variants beyond the
// four-directional grid.
const MaxNeighbors = 8

// Variant marks a graph flavor at the type level. Its single method is the
// static shape of the variant; it must be callable on the zero value,
// because NodeIndex validation and edge pricing dispatch without an
// instance.
type Variant interface {
	// MaxNodeIndex returns the largest valid node index of the variant.
	MaxNodeIndex() IndexValue
}

// Grapher is the full capability contract of a graph variant. A searcher
// holds a Grapher[G] and plans entirely through it; maze internals never
// leak past this interface.
//
// Distance, OptimisticDistance and the two pose mappings are pure: they
// depend only on the variant's geometry and must work on the zero value.
// Edge and Neighbors consult the instance's wall state.
type Grapher[G Variant] interface {
	Variant

	// Distance returns the exact traversal cost between two nodes.
	Distance(from, to NodeIndex[G]) Cost
	// OptimisticDistance returns a lower bound on Distance, usable as an
	// admissible search heuristic.
	OptimisticDistance(from, to NodeIndex[G]) Cost
	// AgentStateByNodeIndex maps a node to the agent pose occupying it.
	// A non-nil from supplies the predecessor node and yields the arrival
	// heading; nil leaves the heading zero.
	AgentStateByNodeIndex(index NodeIndex[G], from *NodeIndex[G]) maze.AgentState
	// NodeIndexByAgentState maps an agent pose back to its node. Returns
	// ErrInvalidLocation when the pose is not on the variant's node set.
	NodeIndexByAgentState(state maze.AgentState) (NodeIndex[G], error)
	// Edge reports the directed edge from→to if the variant connects the
	// two nodes.
	Edge(from, to NodeIndex[G]) (Edge[G], bool)
	// Neighbors returns every edge leaving from, at most MaxNeighbors, in
	// the variant's fixed enumeration order.
	Neighbors(from NodeIndex[G]) []Edge[G]
}
