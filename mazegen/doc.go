// Package mazegen generates perfect mazes: every cell pair is joined by
// exactly one corridor path, so the open walls form a spanning tree of
// the grid.
//
// The package offers the following key components:
//
//   - Generate(start, goal, opts...): seals the full grid, then carves
//     corridors with the selected algorithm; start and goal are recorded
//     on the returned *maze.Maze.
//   - Algorithm: the carving strategy enum.
//     Wilson:      loop-erased random walks, uniform over spanning trees.
//     Backtracker: iterative depth-first walk, long winding corridors.
//     Kruskal:     randomized wall sweep over a disjoint set, many short
//     dead ends.
//   - Options:
//     WithSeed(seed):   deterministic RNG (default seed 1).
//     WithRand(rng):    caller-supplied RNG.
//     WithAlgorithm(a): carving strategy (default Wilson).
//   - ParseAlgorithm(name): case-insensitive name to Algorithm mapping.
//
// Guarantees:
//
//   - Every generated maze is perfect: exactly Width²-1 interior walls
//     open, the perimeter stays closed, and every cell is reachable.
//   - Determinism: equal start/goal/options produce byte-identical
//     mazes across runs.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; Generate itself returns sentinel errors only.
//
// See individual function documentation for detailed contracts.
package mazegen
