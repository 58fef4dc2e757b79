// Package dijkstra defines configuration options, sentinel errors and the
// result type for the history-constrained uniform-cost search.
//
// Options:
//
//	– Start / Destination: endpoints (default: top-left → bottom-right corner).
//	– SeedHeadings:        headings the first move may take (default: all four).
//	– ReturnPath:          if true, keep parent pointers and return the path.
//	– MemoryMode:          map-backed (default) or dense slice-backed tables.
//	– MaxCost:             optional cap; states costlier than this are never queued.
//	– OnSettle:            diagnostic hook called once per settled state.
//
// Errors (sentinel):
//
//	– ErrNilSurface       if the cost surface pointer is nil.
//	– ErrNilPolicy        if the movement policy is nil.
//	– ErrOutOfBounds      if Start or Destination lies outside the surface.
//	– ErrOptionViolation  if an Option received an invalid argument.
//	– ErrPolicyContract   panic value when a policy proposes an invalid state.
//
// Example usage:
//
//	res, err := dijkstra.Search(surface, movement.Bounded(4, 10), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no path")
//	}
//	fmt.Println(res.Cost, len(res.Path))
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/movement"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSurface indicates that a nil *gridgraph.CostSurface was passed.
	ErrNilSurface = errors.New("dijkstra: cost surface is nil")

	// ErrNilPolicy indicates that a nil movement.Policy was passed.
	ErrNilPolicy = errors.New("dijkstra: movement policy is nil")

	// ErrOutOfBounds indicates that the start or destination cell is off the surface.
	ErrOutOfBounds = errors.New("dijkstra: endpoint out of bounds")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrCostOverflow indicates that the destination was not reached and some
	// candidate cost did not fit in uint64.
	ErrCostOverflow = errors.New("dijkstra: accumulated cost overflows uint64")

	// ErrPolicyContract is the panic value raised when a policy proposes a state
	// that breaks the State invariants (Run < 1, invalid heading, non-adjacent
	// cell, or a run above its declared RunLimit).
	ErrPolicyContract = errors.New("dijkstra: movement policy broke its contract")
)

// MemoryMode selects the backing store for the distance table, the settled
// set and the parent pointers.
//
// MemoryModeMap   – hash maps keyed by movement.State; works with any policy.
// MemoryModeDense – flat slices indexed by (cell, heading, run). Needs a policy
// implementing movement.RunLimiter; otherwise Search falls back to MemoryModeMap.
type MemoryMode int

const (
	// MemoryModeMap stores tables in maps keyed by the composite State.
	MemoryModeMap MemoryMode = iota

	// MemoryModeDense stores tables in preallocated slices, one slot per
	// (cell, heading, run) combination, with settled flags packed as one
	// grid.DirectionSet byte per (cell, run).
	MemoryModeDense
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case MemoryModeMap:
		return "map"
	case MemoryModeDense:
		return "dense"
	}

	return fmt.Sprintf("MemoryMode(%d)", int(m))
}

// SettleFunc observes every state at the moment its cost becomes final.
type SettleFunc func(s movement.State, cost uint64)

// Options configures the behavior of Search.
type Options struct {
	Start        grid.Vector       // start cell (defaults to the top-left corner)
	Destination  grid.Vector       // destination cell (defaults to the bottom-right corner)
	SeedHeadings grid.DirectionSet // headings allowed for the first move
	MemoryMode   MemoryMode        // table backing
	ReturnPath   bool              // whether to keep parent pointers
	MaxCost      uint64            // states costing more are never queued
	OnSettle     SettleFunc        // optional settle hook

	hasStart, hasDestination bool
	err                      error // first invalid option, surfaced as ErrOptionViolation
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - Start / Destination: corners of the surface, resolved by Search.
//   - SeedHeadings:        grid.AllDirections.
//   - MemoryMode:          MemoryModeMap.
//   - ReturnPath:          false (no parent pointers allocated).
//   - MaxCost:             math.MaxUint64 (no cap).
//   - OnSettle:            nil.
func DefaultOptions() Options {
	return Options{
		SeedHeadings: grid.AllDirections,
		MemoryMode:   MemoryModeMap,
		ReturnPath:   false,
		MaxCost:      math.MaxUint64,
	}
}

// Start sets the start cell.
func Start(v grid.Vector) Option {
	return func(o *Options) {
		o.Start = v
		o.hasStart = true
	}
}

// Destination sets the destination cell.
func Destination(v grid.Vector) Option {
	return func(o *Options) {
		o.Destination = v
		o.hasDestination = true
	}
}

// WithSeedHeadings restricts the headings of the first move.
// grid.DirectionsOf(grid.East, grid.South) reproduces a corner-only seeding.
// An empty set is invalid.
func WithSeedHeadings(set grid.DirectionSet) Option {
	return func(o *Options) {
		if set&grid.AllDirections == 0 {
			o.fail(fmt.Errorf("%w: no seed headings", ErrOptionViolation))
			return
		}
		o.SeedHeadings = set & grid.AllDirections
	}
}

// WithReturnPath enables parent pointers and path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMemoryMode selects the table backing.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		if mode != MemoryModeMap && mode != MemoryModeDense {
			o.fail(fmt.Errorf("%w: unknown memory mode %d", ErrOptionViolation, int(mode)))
			return
		}
		o.MemoryMode = mode
	}
}

// WithMaxCost stops queueing states whose cost exceeds limit. A destination that
// is only reachable above the cap is reported as not found.
func WithMaxCost(limit uint64) Option {
	return func(o *Options) {
		o.MaxCost = limit
	}
}

// WithOnSettle registers a hook called once per settled state, in settle order.
func WithOnSettle(fn SettleFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result is the outcome of one Search.
//
// Found == false with a nil error is the "no path" outcome: the frontier was
// exhausted (or capped by MaxCost) without settling a destination state.
type Result struct {
	Found       bool             // whether the destination was reached
	Cost        uint64           // minimal total cost; 0 when !Found
	Start       grid.Vector      // resolved start cell
	Destination grid.Vector      // resolved destination cell
	Path        []movement.State // states after each move, start excluded; nil unless ReturnPath
	Settled     int              // number of states settled
}

// Final returns the destination state the search ended on.
func (r *Result) Final() (movement.State, bool) {
	if !r.Found || len(r.Path) == 0 {
		return movement.State{}, false
	}

	return r.Path[len(r.Path)-1], true
}

// Steps converts Path into the (cell, heading) pairs used for rendering.
func (r *Result) Steps() []grid.Neighbor {
	out := make([]grid.Neighbor, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.Step()
	}

	return out
}

// Cells returns the visited cells, start included.
func (r *Result) Cells() []grid.Vector {
	out := make([]grid.Vector, 0, len(r.Path)+1)
	out = append(out, r.Start)
	for _, s := range r.Path {
		out = append(out, s.Pos)
	}

	return out
}
