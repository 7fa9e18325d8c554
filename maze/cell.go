package maze

// Cell packs the state of one maze cell into a single byte: four wall
// flags and four "checked" flags, one per Direction. The zero value has no
// walls and nothing checked. Checked flags are bookkeeping for external
// searchers (typically "this wall has been observed"); the maze itself
// never interprets them.
//
// Cell is a plain value; copies are independent. Wall state inside a Maze
// must be changed through Maze.SetWall so that both sides of a shared wall
// stay in sync.
type Cell uint8

const (
	wallBit    Cell = 1      // shifted by Direction: bits 0-3
	checkedBit Cell = 1 << 4 // shifted by Direction: bits 4-7
)

// Wall reports whether the wall in direction d is present.
// Complexity: O(1).
func (c Cell) Wall(d Direction) bool {
	return c&(wallBit<<d) != 0
}

// SetWall sets or clears the wall flag in direction d on this cell only.
// Complexity: O(1).
func (c *Cell) SetWall(d Direction, present bool) {
	if present {
		*c |= wallBit << d
	} else {
		*c &^= wallBit << d
	}
}

// Checked reports whether the checked flag in direction d is set.
// Complexity: O(1).
func (c Cell) Checked(d Direction) bool {
	return c&(checkedBit<<d) != 0
}

// SetChecked sets or clears the checked flag in direction d.
// Complexity: O(1).
func (c *Cell) SetChecked(d Direction, v bool) {
	if v {
		*c |= checkedBit << d
	} else {
		*c &^= checkedBit << d
	}
}
