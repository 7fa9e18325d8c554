// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// helpers.go - grid primitives shared by the carving algorithms.

package mazegen

import (
	"github.com/nanomouse/mazenav/maze"
)

// cellCount is the number of cells in the compiled grid.
const cellCount = maze.Width * maze.Width

// carveOrder fixes the direction enumeration shared by all algorithms.
var carveOrder = [...]maze.Direction{maze.North, maze.East, maze.South, maze.West}

// sealGrid closes every interior wall, leaving Width² isolated cells.
// Each wall is named once, as East or North of its south-west cell;
// SetWall mirrors the flag onto the neighbor.
// Complexity: O(Width²).
func sealGrid(m *maze.Maze) {
	for y := 0; y < maze.Width; y++ {
		for x := 0; x < maze.Width; x++ {
			c := maze.CoordXY{X: maze.Coord1D(x), Y: maze.Coord1D(y)}
			if x < maze.Width-1 {
				m.SetWall(c, maze.East, true)
			}
			if y < maze.Width-1 {
				m.SetWall(c, maze.North, true)
			}
		}
	}
}

// cellCoord maps a row-major cell index back to its coordinate.
// Complexity: O(1).
func cellCoord(idx int) maze.CoordXY {
	return maze.CoordXY{X: maze.Coord1D(idx % maze.Width), Y: maze.Coord1D(idx / maze.Width)}
}

// gridDirections appends to buf the directions whose step from c stays
// on the grid, in carveOrder.
// Complexity: O(1).
func gridDirections(c maze.CoordXY, buf []maze.Direction) []maze.Direction {
	for _, d := range carveOrder {
		if _, err := c.Step(d); err == nil {
			buf = append(buf, d)
		}
	}

	return buf
}
