// Package maze defines core types and sentinel errors
// for the maze subpackage of github.com/nanomouse/mazenav.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrOutOfRange indicates a coordinate or index outside [0, Width-1].
	ErrOutOfRange = errors.New("maze: coordinate out of range")
	// ErrInvalidVector indicates a displacement that is not a unit cardinal vector.
	ErrInvalidVector = errors.New("maze: vector is not a unit cardinal vector")
)

// Direction identifies one of the four cardinal wall directions of a cell.
// The zero value is North; ordering is clockwise and fixed, because
// neighbor enumeration and tie-breaking depend on it.
type Direction uint8

const (
	// North points toward increasing Y.
	North Direction = iota
	// East points toward increasing X.
	East
	// South points toward decreasing Y.
	South
	// West points toward decreasing X.
	West
)

// Vector returns the unit displacement of d.
// Panics if d is not one of the four Direction constants.
// Complexity: O(1).
func (d Direction) Vector() VectorXY {
	switch d {
	case North:
		return VectorXY{X: 0, Y: 1}
	case East:
		return VectorXY{X: 1, Y: 0}
	case South:
		return VectorXY{X: 0, Y: -1}
	case West:
		return VectorXY{X: -1, Y: 0}
	default:
		panic(fmt.Sprintf("maze: invalid Direction(%d)", uint8(d)))
	}
}

// Inverted returns the opposite direction: North↔South, East↔West.
// Panics if d is not one of the four Direction constants.
// Complexity: O(1).
func (d Direction) Inverted() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		panic(fmt.Sprintf("maze: invalid Direction(%d)", uint8(d)))
	}
}

// String renders the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// CellLocalLocation identifies a sub-cell position: the cell center or the
// midpoint of one of its four walls. Grid variants that only stop at cell
// centers use LocalCenter exclusively; richer variants may address wall
// midpoints as distinct graph nodes.
type CellLocalLocation uint8

const (
	// LocalCenter is the center of a cell.
	LocalCenter CellLocalLocation = iota
	// LocalNorth is the midpoint of a cell's north wall.
	LocalNorth
	// LocalEast is the midpoint of a cell's east wall.
	LocalEast
	// LocalSouth is the midpoint of a cell's south wall.
	LocalSouth
	// LocalWest is the midpoint of a cell's west wall.
	LocalWest
)

// AgentState is a full agent pose: the occupied cell, the sub-cell spot
// within it, and the heading the agent arrived with. A zero Heading means
// the pose carries no arrival direction.
type AgentState struct {
	Location      CoordXY
	LocalLocation CellLocalLocation
	Heading       VectorXY
}
