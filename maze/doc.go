// Package maze models a square, wall-based grid maze for an autonomous
// navigating agent, with compile-time sizing and a symmetric wall-state
// invariant.
//
// What:
//
//   - Cell packs four wall flags and four "checked" flags into one byte.
//   - Maze holds Width×Width cells in a fixed, row-major array together
//     with the start and goal coordinates.
//   - SetWall is the single wall mutator: it updates both sides of a shared
//     wall in one call, so two adjacent cells can never disagree.
//   - Load and String parse and render the textual maze format used by
//     classic micromouse tooling ("+---+" wall rows, "|   |" corridor rows).
//   - Coord1D, CoordXY, VectorXY and Direction are the movement primitives;
//     AgentState captures a full agent pose (cell, sub-cell spot, heading).
//
// Why:
//
//   - Robot navigation: the maze is the world model a searcher plans over.
//   - Simulation and tooling: mazes round-trip losslessly through text.
//   - Embedded targets: all storage is value-typed and fixed-capacity;
//     nothing allocates after construction.
//
// Build-time configuration:
//
//   - Width is 16 by default; build with -tags maze8 or -tags maze32 to
//     compile 8×8 or 32×32 geometry. Exactly one width per binary.
//   - Build with -tags mazefast to skip range validation in constructors
//     (NewCoord1D, NewCoordXY). Semantic range checks, such as Add refusing
//     to step off the grid, are always active.
//
// Complexity:
//
//   - SetWall, Cell, Wall, Checked: O(1).
//   - New, Load, String: O(Width²).
//
// Errors:
//
//   - ErrOutOfRange: a coordinate or step leaves [0, Width-1].
//   - ErrInvalidVector: a displacement is not a unit cardinal vector.
//
// Load panics when the input text matches no supported width or encodes a
// maze larger than the compiled Width; a deployment that feeds the wrong
// geometry cannot be recovered at runtime.
package maze
