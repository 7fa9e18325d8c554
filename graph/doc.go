// Package graph defines a minimal, compile-time-tagged graph abstraction
// for maze navigation: node handles, priced edges, routes, and the
// capability contract a searcher plans against.
//
// What:
//
//   - NodeIndex[G] wraps a raw int16 index and tags it with the graph
//     variant G it belongs to. Indices of different variants are distinct
//     types; mixing them is a compile error, not a runtime surprise.
//   - Edge[G] is a directed from→to pair priced once, at construction,
//     with the variant's exact Distance.
//   - Route[G] accumulates a node sequence and its total cost for an
//     external searcher.
//   - Variant is the type-level marker (largest valid index); Grapher[G]
//     is the full contract: metrics, pose mapping and adjacency.
//
// Why:
//
//   - A pathfinder (A*, flood fill) can be written once against Grapher
//     and reused over any maze geometry.
//   - The variant tag costs nothing at runtime: a NodeIndex is one int16.
//   - Pure operations (Distance, pose mapping) dispatch on the variant's
//     zero value, so no graph instance is needed to price an edge.
//
// Contract notes:
//
//   - A variant must be meaningful as its zero value for MaxNodeIndex,
//     Distance, OptimisticDistance and the two pose mappings.
//   - OptimisticDistance never exceeds Distance; a searcher may use it as
//     an admissible heuristic.
//   - Neighbors returns at most MaxNeighbors edges in a deterministic
//     order fixed by the variant.
//
// Build-time configuration:
//
//   - Build with -tags mazefast to compile out range validation in
//     NewNodeIndex, matching the maze package's constructor policy.
//
// Errors:
//
//   - ErrOutOfRange: a raw index outside [0, MaxNodeIndex].
//   - ErrInvalidLocation: an agent pose no node of the variant represents.
package graph
