package maze

// Coord1D is a single axis coordinate in [0, Width-1].
type Coord1D uint8

// NewCoord1D validates v against the compiled Width and returns it as a
// Coord1D. Returns ErrOutOfRange if v ≥ Width; the check is skipped under
// the mazefast build tag.
// Complexity: O(1).
func NewCoord1D(v uint8) (Coord1D, error) {
	if strictValidation && int(v) >= Width {
		return 0, ErrOutOfRange
	}

	return Coord1D(v), nil
}

// CoordXY is a cell coordinate. X grows eastward, Y grows northward, and
// (0,0) is the south-west corner. The struct is comparable; two coordinates
// are equal iff both axes match.
type CoordXY struct {
	X, Y Coord1D
}

// NewCoordXY validates both axes against the compiled Width and returns the
// coordinate. Returns ErrOutOfRange if either axis is ≥ Width; the check is
// skipped under the mazefast build tag.
// Complexity: O(1).
func NewCoordXY(x, y uint8) (CoordXY, error) {
	if strictValidation && (int(x) >= Width || int(y) >= Width) {
		return CoordXY{}, ErrOutOfRange
	}

	return CoordXY{X: Coord1D(x), Y: Coord1D(y)}, nil
}

// Add translates c by v. Returns ErrOutOfRange when the result leaves the
// grid; this check carries neighbor-existence semantics and is performed in
// every build mode.
// Complexity: O(1).
func (c CoordXY) Add(v VectorXY) (CoordXY, error) {
	nx := int(c.X) + int(v.X)
	ny := int(c.Y) + int(v.Y)
	if nx < 0 || ny < 0 || nx >= Width || ny >= Width {
		return CoordXY{}, ErrOutOfRange
	}

	return CoordXY{X: Coord1D(nx), Y: Coord1D(ny)}, nil
}

// Step moves c one cell in direction d; shorthand for Add(d.Vector()).
// Returns ErrOutOfRange when the move leaves the grid.
// Complexity: O(1).
func (c CoordXY) Step(d Direction) (CoordXY, error) {
	return c.Add(d.Vector())
}

// Sub returns the displacement from o to c. Total: every coordinate pair
// has a well-defined signed difference.
// Complexity: O(1).
func (c CoordXY) Sub(o CoordXY) VectorXY {
	return VectorXY{
		X: int8(int(c.X) - int(o.X)),
		Y: int8(int(c.Y) - int(o.Y)),
	}
}

// Index maps c to its row-major cell index: X + Y*Width.
// Complexity: O(1).
func (c CoordXY) Index() int {
	return int(c.X) + int(c.Y)*Width
}

// VectorXY is a signed cell displacement. The zero value means "no
// movement" and doubles as the absent-heading marker in AgentState.
type VectorXY struct {
	X, Y int8
}

// Direction converts a unit cardinal vector to its Direction.
// Returns ErrInvalidVector for every other displacement, including zero.
// Complexity: O(1).
func (v VectorXY) Direction() (Direction, error) {
	switch v {
	case VectorXY{X: 0, Y: 1}:
		return North, nil
	case VectorXY{X: 1, Y: 0}:
		return East, nil
	case VectorXY{X: 0, Y: -1}:
		return South, nil
	case VectorXY{X: -1, Y: 0}:
		return West, nil
	default:
		return 0, ErrInvalidVector
	}
}

// Manhattan returns |X| + |Y|, the taxicab length of the displacement.
// Complexity: O(1).
func (v VectorXY) Manhattan() int {
	x, y := int(v.X), int(v.Y)
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}

	return x + y
}
