// Package grid provides the integer coordinate model shared by every other
// package of crucible: 2-D vectors, the four cardinal directions, and
// rectangular shapes that map coordinates onto dense row-major arrays.
//
// Conventions:
//
//   - X grows to the East (column), Y grows to the South (row).
//   - Direction values are single bits, so a set of directions fits in one
//     byte (DirectionSet). The search engine relies on this for compact
//     "already settled from this heading" markers.
//   - Shape.Index is only defined for in-bounds coordinates; callers must
//     check Shape.InBounds first.
//
// Errors:
//
//   - ErrInvalidDirection: a vector is not one of the four cardinal unit vectors.
//   - ErrEmptyGrid: a character grid has no rows or no columns.
//   - ErrRaggedGrid: character grid rows have differing widths.
//
// Complexity: every operation is O(1) except Coords, ParseCharGrid and
// FormatCharGrid, which are O(W×H).
package grid
