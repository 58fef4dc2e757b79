// Package grid defines the core coordinate types and sentinel errors.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDirection indicates a vector that is not a cardinal unit vector.
	ErrInvalidDirection = errors.New("grid: invalid direction vector")
	// ErrEmptyGrid indicates a character grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing widths.
	ErrRaggedGrid = errors.New("grid: inconsistent line width")
)

// Vector is an integer 2-D vector. It is a plain value type and is copied freely.
type Vector struct {
	X, Y int
}

// Direction is one of the four cardinal directions.
// Each value is a distinct bit so that directions can be combined into a DirectionSet.
type Direction uint8

const (
	// North points toward decreasing Y.
	North Direction = 1 << iota
	// South points toward increasing Y.
	South
	// East points toward increasing X.
	East
	// West points toward decreasing X.
	West
)

// DirectionSet is a bitmask of Directions.
type DirectionSet uint8

// AllDirections contains North, South, East and West.
const AllDirections = DirectionSet(North | South | East | West)

// Shape describes a rectangular grid anchored at (0,0).
// Width*Height equals the length of any dense array addressed through it.
type Shape struct {
	Width, Height int
}

// SignedShape is an inclusive rectangle that may extend into negative coordinates.
type SignedShape struct {
	TopLeft, BottomRight Vector
}
