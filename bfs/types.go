// Package bfs provides tunable options and error definitions
// for breadth-first search over movement states.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/movement"
)

// Sentinel errors for BFS execution.
var (
	// ErrPolicyNil is returned if a nil policy is passed.
	ErrPolicyNil = errors.New("bfs: policy is nil")

	// ErrOutOfBounds is returned when Start or Destination lies off the shape.
	ErrOutOfBounds = errors.New("bfs: endpoint out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrPolicyContract is the panic value for a policy proposing a state that
	// is not one valid move away from its predecessor.
	ErrPolicyContract = errors.New("bfs: policy proposed an invalid state")

	// ErrNotReached is returned by PathTo for a state the search never visited.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start and Destination default to the shape's top-left and bottom-right
	// corners when unset.
	Start       grid.Vector
	Destination grid.Vector

	// SeedHeadings limits the headings of the first move.
	SeedHeadings grid.DirectionSet

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s movement.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many moves.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can forbid a move by returning false. For seed moves,
	// from is the start cell.
	FilterNeighbor func(from grid.Vector, to movement.State) bool

	hasStart       bool
	hasDestination bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - corner to corner, all four seed headings
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all moves allowed)
//   - no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		SeedHeadings:   grid.AllDirections,
		OnVisit:        func(movement.State, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(grid.Vector, movement.State) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Start sets the cell the search begins on.
func Start(v grid.Vector) Option {
	return func(o *BFSOptions) {
		o.Start, o.hasStart = v, true
	}
}

// Destination sets the target cell.
func Destination(v grid.Vector) Option {
	return func(o *BFSOptions) {
		o.Destination, o.hasDestination = v, true
	}
}

// WithSeedHeadings restricts the headings of the first move. An empty set is
// an ErrOptionViolation.
func WithSeedHeadings(set grid.DirectionSet) Option {
	return func(o *BFSOptions) {
		if set&grid.AllDirections == 0 {
			o.err = fmt.Errorf("%w: no seed headings", ErrOptionViolation)
			return
		}
		o.SeedHeadings = set & grid.AllDirections
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s movement.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search after d moves.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(from grid.Vector, to movement.State) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: moves from the start cell to each state.
//   - Parent: predecessor of each non-seed state in the BFS tree.
//   - CellDepth: fewest moves to stand on each reached cell (start is 0).
//   - Found, Moves, Final: the first destination state visited, if any.
type BFSResult struct {
	Start       grid.Vector
	Destination grid.Vector
	Order       []movement.State
	Depth       map[movement.State]int
	Parent      map[movement.State]movement.State
	CellDepth   map[grid.Vector]int
	Found       bool
	Moves       int
	Final       movement.State
}

// Reached reports the fewest moves needed to stand on v.
func (r *BFSResult) Reached(v grid.Vector) (int, bool) {
	d, ok := r.CellDepth[v]

	return d, ok
}

// PathTo reconstructs the move sequence from the start cell to dest.
// Returns ErrNotReached if dest was not visited.
func (r *BFSResult) PathTo(dest movement.State) ([]movement.State, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []movement.State{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
