package maze

// Maze is a Width×Width grid of cells plus the start and goal coordinates.
// Cells are stored row-major (index = X + Y*Width) in a fixed array, so a
// Maze never allocates after construction and copies are deep.
//
// Wall state obeys one invariant: the two flags describing a shared wall
// always agree. SetWall is the only wall mutator and maintains this; the
// perimeter set by New faces outward only and has no mirror side. Callers
// must not clear perimeter walls; the enclosure is what keeps every legal
// move inside the array.
//
// A Maze is not safe for concurrent mutation; the owner serializes access.
type Maze struct {
	Start CoordXY
	Goal  CoordXY

	cells [Width * Width]Cell
}

// New returns a maze with no interior walls and a fully walled perimeter:
// south along Y=0, north along Y=Width-1, west along X=0, east along
// X=Width-1.
// Complexity: O(Width²).
func New(start, goal CoordXY) *Maze {
	m := &Maze{Start: start, Goal: goal}
	for i := 0; i < Width; i++ {
		m.cells[i].SetWall(South, true)
		m.cells[i+Width*(Width-1)].SetWall(North, true)
		m.cells[i*Width].SetWall(West, true)
		m.cells[Width-1+i*Width].SetWall(East, true)
	}

	return m
}

// cellAt returns the addressable cell for c.
func (m *Maze) cellAt(c CoordXY) *Cell {
	return &m.cells[c.Index()]
}

// Cell returns a copy of the cell at c.
// Complexity: O(1).
func (m *Maze) Cell(c CoordXY) Cell {
	return m.cells[c.Index()]
}

// Wall reports whether the cell at c has a wall in direction d.
// Complexity: O(1).
func (m *Maze) Wall(c CoordXY, d Direction) bool {
	return m.cells[c.Index()].Wall(d)
}

// Checked reports whether the checked flag in direction d is set at c.
// Complexity: O(1).
func (m *Maze) Checked(c CoordXY, d Direction) bool {
	return m.cells[c.Index()].Checked(d)
}

// SetWall sets or clears the wall in direction d of the cell at c, and
// mirrors the change onto the adjacent cell's opposite flag when that
// neighbor exists. A perimeter wall has no neighbor; only its own flag is
// written. This is the sole wall mutator, so the shared-wall invariant
// holds after every call.
// Complexity: O(1).
func (m *Maze) SetWall(c CoordXY, d Direction, present bool) {
	m.cellAt(c).SetWall(d, present)
	if next, err := c.Step(d); err == nil {
		m.cellAt(next).SetWall(d.Inverted(), present)
	}
}

// SetChecked sets or clears the checked flag in direction d at c. No
// mirroring: checked flags are per-cell notes, and a searcher that tracks
// both sides of a wall marks each side itself.
// Complexity: O(1).
func (m *Maze) SetChecked(c CoordXY, d Direction, v bool) {
	m.cellAt(c).SetChecked(d, v)
}
