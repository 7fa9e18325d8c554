// Package mazenav is your in-memory playground for modeling, generating,
// and navigating square cell mazes through a compile-time-typed graph view.
//
// 🚀 What is mazenav?
//
//	A compact, zero-dependency library that brings together:
//		• Maze primitives: cells, walls, coordinates, agent poses
//		• A text codec: load and dump the classic "+---+" wall picture
//		• Graph contract: typed node indices, unit-cost edges, routes
//		• Grid view: the maze as a four-directional graph for search
//		• Generators: Wilson, depth-first backtracker, and Kruskal carves
//
// ✨ Why choose mazenav?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Compile-time widths - 8, 16, or 32 cells per side via build tags
//   - Typed graph variants - node indices of different maps cannot mix
//   - Pure Go - fixed arrays, no reflection, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	maze/      - cells, walls, coordinates, the text codec
//	graph/     - the variant contract: NodeIndex, Edge, Route, Grapher
//	gridgraph/ - the maze as a four-directional unit-cost graph
//	mazegen/   - perfect-maze generators (Wilson, Backtracker, Kruskal)
//
// Quick ASCII example:
//
//	+---+---+
//	|     G |
//	+   +   +
//	| S |   |
//	+---+---+
//
//	represents a 2×2 maze with the start and goal cells marked.
//
//	go get github.com/nanomouse/mazenav
package mazenav
