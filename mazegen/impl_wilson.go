// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// impl_wilson.go - Wilson's algorithm (loop-erased random walks).

package mazegen

import (
	"math/rand"

	"github.com/nanomouse/mazenav/maze"
)

// carveWilson seeds the visited region with one random cell, then grows
// it by random walks: each walk starts on an unvisited cell, wanders
// until it touches the region, and joins along its last-exit chain.
// Remembering only the last exit from each touched cell erases loops,
// which is what makes the sampled spanning tree uniform.
func carveWilson(m *maze.Maze, rng *rand.Rand) {
	var visited [cellCount]bool
	visited[rng.Intn(cellCount)] = true

	remaining := cellCount - 1
	for remaining > 0 {
		for idx, d := range wilsonWalk(rng, &visited) {
			m.SetWall(cellCoord(idx), d, false)
			visited[idx] = true
			remaining--
		}
	}
}

// wilsonWalk wanders from a random unvisited cell until it reaches the
// visited region, recording the last exit taken from every cell it
// touches. All recorded cells are unvisited; the cell the walk ends on
// is not recorded.
func wilsonWalk(rng *rand.Rand, visited *[cellCount]bool) map[int]maze.Direction {
	at := randomUnvisited(rng, visited)
	exits := make(map[int]maze.Direction)
	var buf [4]maze.Direction
	for {
		c := cellCoord(at)
		moves := gridDirections(c, buf[:0])
		d := moves[rng.Intn(len(moves))]
		exits[at] = d

		next, _ := c.Step(d)
		if nextIdx := next.Index(); !visited[nextIdx] {
			at = nextIdx
			continue
		}

		return exits
	}
}

// randomUnvisited rejection-samples a cell outside the visited region.
func randomUnvisited(rng *rand.Rand, visited *[cellCount]bool) int {
	for {
		if idx := rng.Intn(cellCount); !visited[idx] {
			return idx
		}
	}
}
