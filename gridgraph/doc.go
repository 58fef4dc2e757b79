// Package gridgraph treats a rectangular block of per-cell traversal costs as
// the weighted surface that history-constrained searches run over.
//
// What:
//
//   - CostSurface wraps a dense, row-major []int of non-negative costs
//     addressed through a grid.Shape. It is immutable once built.
//   - CostAt never panics: out-of-bounds lookups report ok == false.
//   - ParseCostSurface reads the textual digit block used by puzzle inputs.
//   - FreeCost computes the cheapest cell-to-cell cost with no movement rules,
//     a lower bound for every constrained search on the same surface.
//   - RenderPath overlays heading arrows on the digit block for display.
//
// Why:
//
//   - Search engines borrow a CostSurface read-only for one search, so a single
//     surface can serve many concurrent searches without locking.
//
// Complexity:
//
//   - NewCostSurface / ParseCostSurface: O(W×H) time and memory.
//   - CostAt, InBounds:                  O(1).
//   - FreeCost:                          O(W×H + D) by bucket queue when MaxCost <= 255,
//     otherwise O(W×H×log(W×H)) by binary heap.
//   - RenderPath:                        O(W×H + len(path)).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell cost is below zero.
//   - ErrInvalidCell: a character is not a decimal digit.
//   - ErrOutOfBounds: FreeCost endpoints outside the surface.
//   - ErrCostOverflow: FreeCost total does not fit in uint64.
package gridgraph
