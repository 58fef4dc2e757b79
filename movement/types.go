package movement

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// ErrBadRunBounds indicates run limits outside 1 ≤ MinRun ≤ MaxRun.
var ErrBadRunBounds = errors.New("movement: run bounds must satisfy 1 <= min <= max")

// State is one node of the augmented search space.
// Two States are equal iff Pos, Heading and Run all match.
type State struct {
	Pos     grid.Vector    // cell occupied after the move
	Heading grid.Direction // direction of the move that produced the state
	Run     int            // consecutive moves in Heading, including this one (≥ 1)
}

// Valid reports whether s satisfies the State invariants.
func (s State) Valid() bool {
	return s.Run >= 1 && s.Heading.Valid()
}

// Step returns the Pos/Heading pair of s, the form used for path rendering.
func (s State) Step() grid.Neighbor {
	return grid.Neighbor{Pos: s.Pos, Dir: s.Heading}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("%v %s×%d", s.Pos, s.Heading, s.Run)
}

// Policy enumerates legal moves. Implementations must be pure: no mutable
// state may be retained between calls, so one Policy can serve concurrent searches.
type Policy interface {
	// Start lists the first moves away from a standing origin, one per allowed
	// heading, each with Run == 1.
	Start(origin, dst grid.Vector, headings grid.DirectionSet) []State
	// Next lists the legal successors of s. Order only affects tie-breaking.
	Next(s State, dst grid.Vector) []State
}

// RunLimiter is implemented by policies whose runs never exceed a fixed bound.
// Search engines use it to size dense per-cell tables.
type RunLimiter interface {
	RunLimit() int
}
