// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// impl_kruskal.go - randomized Kruskal carving over a disjoint set.

package mazegen

import (
	"math/rand"

	"github.com/nanomouse/mazenav/maze"
)

// gridWall names one interior wall by its owning cell and direction.
// Every interior wall is listed exactly once, as East or North of the
// cell on its south-west side.
type gridWall struct {
	cell int
	dir  maze.Direction
}

// carveKruskal shuffles the full interior wall list and opens each wall
// whose two cells still lie in different components. Exactly Width²-1
// walls open, one per union, so the carve ends as a spanning tree.
func carveKruskal(m *maze.Maze, rng *rand.Rand) {
	walls := make([]gridWall, 0, 2*maze.Width*(maze.Width-1))
	for y := 0; y < maze.Width; y++ {
		for x := 0; x < maze.Width; x++ {
			idx := x + y*maze.Width
			if x < maze.Width-1 {
				walls = append(walls, gridWall{cell: idx, dir: maze.East})
			}
			if y < maze.Width-1 {
				walls = append(walls, gridWall{cell: idx, dir: maze.North})
			}
		}
	}
	rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	ds := newCellSet()
	for _, w := range walls {
		c := cellCoord(w.cell)
		next, _ := c.Step(w.dir)
		if ds.union(int16(w.cell), int16(next.Index())) {
			m.SetWall(c, w.dir, false)
		}
	}
}

// cellSet is a disjoint-set forest over cell indices with union by rank
// and iterative path compression.
type cellSet struct {
	parent [cellCount]int16
	rank   [cellCount]int8
}

// newCellSet starts every cell in its own singleton set.
func newCellSet() *cellSet {
	ds := &cellSet{}
	for i := range ds.parent {
		ds.parent[i] = int16(i)
	}

	return ds
}

// find returns the root of x, flattening the walked path behind it.
func (ds *cellSet) find(x int16) int16 {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// union merges the sets holding a and b; reports whether they differed.
func (ds *cellSet) union(a, b int16) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	if ds.rank[ra] < ds.rank[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	if ds.rank[ra] == ds.rank[rb] {
		ds.rank[ra]++
	}

	return true
}
