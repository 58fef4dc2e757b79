// Package gridgraph provides construction and read-only access for CostSurface.
//
// Cells are addressed by grid.Vector with X as column and Y as row; entering a
// cell costs the value stored for it.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// NewCostSurface constructs a CostSurface from a non-empty, rectangular 2D slice
// indexed values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns, ErrNonRectangular if
// any row length differs, ErrNegativeCost for a cost below zero. Each of them
// also matches ErrMalformedGrid.
// Algorithmic complexity: O(W×H) time and memory.
func NewCostSurface(values [][]int) (*CostSurface, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, malformed{ErrEmptyGrid}
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, malformed{fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)}
		}
	}
	cs := &CostSurface{
		shape: grid.Shape{Width: w, Height: h},
		costs: make([]int, 0, w*h),
	}
	for y, row := range values {
		for x, c := range row {
			if c < 0 {
				return nil, malformed{fmt.Errorf("%w: %d at %v", ErrNegativeCost, c, grid.V(x, y))}
			}
			if c > cs.maxCost {
				cs.maxCost = c
			}
			cs.costs = append(cs.costs, c)
		}
	}

	return cs, nil
}

// ParseCostSurface builds a CostSurface from lines of decimal digits, one digit
// per cell. Ragged, empty or non-digit input yields an error matching
// ErrMalformedGrid.
// Complexity: O(W×H).
func ParseCostSurface(text string) (*CostSurface, error) {
	shape, cells, err := grid.ParseCharGrid(text)
	if err != nil {
		return nil, malformed{err}
	}
	cs := &CostSurface{
		shape: shape,
		costs: make([]int, len(cells)),
	}
	for i, r := range cells {
		if r < '0' || r > '9' {
			at := shape.Coordinate(i)
			return nil, malformed{fmt.Errorf("%w: %q at line %d column %d", ErrInvalidCell, r, at.Y+1, at.X+1)}
		}
		c := int(r - '0')
		if c > cs.maxCost {
			cs.maxCost = c
		}
		cs.costs[i] = c
	}

	return cs, nil
}

// MustParse is like ParseCostSurface but panics on error. Intended for tests
// and package-level fixtures.
func MustParse(text string) *CostSurface {
	cs, err := ParseCostSurface(text)
	if err != nil {
		panic(err)
	}

	return cs
}

// Shape returns the surface dimensions.
func (cs *CostSurface) Shape() grid.Shape {
	return cs.shape
}

// Width returns the number of columns.
func (cs *CostSurface) Width() int {
	return cs.shape.Width
}

// Height returns the number of rows.
func (cs *CostSurface) Height() int {
	return cs.shape.Height
}

// InBounds reports whether v lies within the surface.
// Complexity: O(1).
func (cs *CostSurface) InBounds(v grid.Vector) bool {
	return cs.shape.InBounds(v)
}

// CostAt returns the cost of entering v, or (0, false) when v is out of bounds.
// Complexity: O(1).
func (cs *CostSurface) CostAt(v grid.Vector) (int, bool) {
	if !cs.shape.InBounds(v) {
		return 0, false
	}

	return cs.costs[cs.shape.Index(v)], true
}

// MaxCost returns the largest cell cost on the surface.
func (cs *CostSurface) MaxCost() int {
	return cs.maxCost
}

// Values returns a fresh values[y][x] copy of the costs.
func (cs *CostSurface) Values() [][]int {
	out := make([][]int, cs.shape.Height)
	for y := range out {
		out[y] = make([]int, cs.shape.Width)
		copy(out[y], cs.costs[y*cs.shape.Width:(y+1)*cs.shape.Width])
	}

	return out
}
