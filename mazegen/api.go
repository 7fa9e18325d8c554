// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// api.go - the public Generate entry point.
//
// Design contract (strict):
//   - One orchestrator: Generate(start, goal, opts...). Resolves the
//     config, seals the grid, carves with the selected algorithm.
//   - Determinism: equal start/goal/options produce identical mazes.
//   - Every generated maze is perfect: the open walls form a spanning
//     tree, so each cell pair is joined by exactly one corridor path.

package mazegen

import (
	"fmt"

	"github.com/nanomouse/mazenav/maze"
)

// Generate builds a perfect maze spanning the full grid and records
// start and goal as the entry and target cells. The carving strategy
// and RNG come from opts; the defaults are Wilson with seed 1.
//
// Complexity: O(Width²) for Backtracker and Kruskal; Wilson adds the
// random-walk overhead, O(Width²) expected on grid graphs.
//
// Errors:
//   - ErrUnknownAlgorithm if the configured algorithm is not declared.
func Generate(start, goal maze.CoordXY, opts ...Option) (*maze.Maze, error) {
	cfg := newGeneratorConfig(opts...)

	m := maze.New(start, goal)
	sealGrid(m)

	switch cfg.algorithm {
	case Wilson:
		carveWilson(m, cfg.rng)
	case Backtracker:
		carveBacktracker(m, start, cfg.rng)
	case Kruskal:
		carveKruskal(m, cfg.rng)
	default:
		return nil, fmt.Errorf("Generate: %v: %w", cfg.algorithm, ErrUnknownAlgorithm)
	}

	return m, nil
}
