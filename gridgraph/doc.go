// Package gridgraph exposes a maze as a four-directional grid graph:
// one node per cell, one unit-cost edge per open wall.
//
// What:
//
//   - Graph: a graph.Grapher variant backed by a *maze.Maze.
//   - Nodes enumerate cells row-major: index = X + Y*Width, so node 0 is
//     the south-west corner and MaxNodeIndex the north-east corner.
//   - Edge(from, to): the directed move between two axis-adjacent cells,
//     present iff the wall between them is open; every edge costs 1.
//   - Neighbors(from): the open moves out of a cell, enumerated in
//     North, East, South, West order.
//   - Distance / OptimisticDistance: Manhattan metric over cell
//     coordinates; on a unit-cost grid the two coincide.
//   - AgentStateByNodeIndex / NodeIndexByAgentState: pose mapping
//     between node indices and agents resting at cell centers.
//
// Why:
//
//   - Search code wants a uniform node/edge contract, not wall
//     bookkeeping. Graph pins the grid topology into the type system,
//     so graph.NodeIndex[Graph] and graph.Edge[Graph] cannot be mixed
//     with indices of another variant.
//   - Maze solvers: feed Neighbors and OptimisticDistance straight into
//     best-first search over a loaded or generated maze.
//
// Complexity:
//
//   - Every operation is O(1); Neighbors allocates one slice of at most
//     graph.MaxNeighbors edges per call.
//
// Errors:
//
//   - graph.ErrOutOfRange: node index outside [0, MaxNodeIndex].
//   - graph.ErrInvalidLocation: agent state not at a cell center.
//
// See package graph for the variant contract and package maze for the
// wall and coordinate primitives.
package gridgraph
