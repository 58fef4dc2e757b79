// Package gridgraph defines the cost surface type and sentinel errors.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/crucible/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrMalformedGrid is matched (via errors.Is) by every construction error.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrInvalidCell indicates a character that is not a decimal digit.
	ErrInvalidCell = errors.New("gridgraph: cell is not a cost digit")
	// ErrOutOfBounds indicates a coordinate outside the surface.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrCostOverflow indicates a total path cost that does not fit in uint64.
	ErrCostOverflow = errors.New("gridgraph: accumulated cost overflows uint64")
)

// malformed tags err so that it also matches ErrMalformedGrid.
type malformed struct {
	err error
}

func (m malformed) Error() string { return m.err.Error() }

func (m malformed) Unwrap() []error { return []error{ErrMalformedGrid, m.err} }

// CostSurface is an immutable rectangular field of per-cell traversal costs.
// Costs are stored row-major; shape.Area() == len(costs).
type CostSurface struct {
	shape   grid.Shape
	costs   []int
	maxCost int
}
