// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// impl_backtracker.go - iterative depth-first carving.

package mazegen

import (
	"math/rand"

	"github.com/nanomouse/mazenav/maze"
)

// carveBacktracker drives a depth-first walk from start, opening the
// wall to a random unvisited neighbor and retreating from dead ends.
// The explicit stack holds the corridor back to start, so full grids
// carve without recursion.
func carveBacktracker(m *maze.Maze, start maze.CoordXY, rng *rand.Rand) {
	var visited [cellCount]bool
	visited[start.Index()] = true
	stack := make([]int, 0, cellCount)
	stack = append(stack, start.Index())

	var buf [4]maze.Direction
	for len(stack) > 0 {
		c := cellCoord(stack[len(stack)-1])

		moves := buf[:0]
		for _, d := range carveOrder {
			if next, err := c.Step(d); err == nil && !visited[next.Index()] {
				moves = append(moves, d)
			}
		}
		if len(moves) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := moves[rng.Intn(len(moves))]
		m.SetWall(c, d, false)
		next, _ := c.Step(d)
		visited[next.Index()] = true
		stack = append(stack, next.Index())
	}
}
