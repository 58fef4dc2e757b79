// Package bfs provides breadth-first search over movement states,
// returning fewest-move distances, parent links, and visit order.
//
// BFS explores states in increasing move count from a start cell,
// with an optional visit hook, depth limiting, and move filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/movement"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state movement.State
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	shape  grid.Shape
	policy movement.Policy
	opts   BFSOptions
	ctx    context.Context
	queue  []queueItem
	res    *BFSResult
}

// BFS runs breadth-first search over the states of policy p on shape,
// applying any number of functional Options.
// Returns ErrPolicyNil, ErrOptionViolation or ErrOutOfBounds for invalid
// input, ctx.Err() on cancellation, or any user-supplied hook error. An
// unreachable destination is not an error: BFSResult.Found is false.
func BFS(shape grid.Shape, p movement.Policy, opts ...Option) (*BFSResult, error) {
	if p == nil {
		return nil, ErrPolicyNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.hasStart {
		o.Start = shape.TopLeft()
	}
	if !o.hasDestination {
		o.Destination = shape.BottomRight()
	}
	if !shape.InBounds(o.Start) || !shape.InBounds(o.Destination) {
		return nil, fmt.Errorf("%w: %v → %v on %dx%d",
			ErrOutOfBounds, o.Start, o.Destination, shape.Width, shape.Height)
	}

	// Prepare walker; capacity hints are capped, the maps grow as states are reached
	n := min(shape.Area(), 1<<16)
	w := &walker{
		shape:  shape,
		policy: p,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]queueItem, 0, n),
		res: &BFSResult{
			Start:       o.Start,
			Destination: o.Destination,
			Order:       make([]movement.State, 0, n),
			Depth:       make(map[movement.State]int, n),
			Parent:      make(map[movement.State]movement.State, n),
			CellDepth:   map[grid.Vector]int{o.Start: 0},
		},
	}

	// Standing on the destination already takes no moves.
	if o.Start == o.Destination {
		w.res.Found = true
		return w.res, nil
	}

	// Seed queue with the first moves (no parent)
	for _, s := range p.Start(o.Start, o.Destination, o.SeedHeadings) {
		w.offer(o.Start, s, 1, nil)
	}
	// Main loop
	return w.res, w.loop()
}

// offer validates s as a move from cell from, applies bounds, filtering and
// MaxDepth, and enqueues s at depth d if it was never seen.
func (w *walker) offer(from grid.Vector, s movement.State, d int, parent *movement.State) {
	if !s.Valid() || s.Pos != from.Step(s.Heading) {
		panic(fmt.Errorf("%w: %v proposed from %v", ErrPolicyContract, s, from))
	}
	if !w.shape.InBounds(s.Pos) {
		return
	}
	if w.opts.MaxDepth > 0 && d > w.opts.MaxDepth {
		return
	}
	if !w.opts.FilterNeighbor(from, s) {
		return
	}
	if _, seen := w.res.Depth[s]; seen {
		return
	}
	w.res.Depth[s] = d
	if parent != nil {
		w.res.Parent[s] = *parent
	}
	w.queue = append(w.queue, queueItem{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		// destination states are terminal
		if item.state.Pos == w.opts.Destination {
			continue
		}
		for _, next := range w.policy.Next(item.state, w.opts.Destination) {
			w.offer(item.state.Pos, next, item.depth+1, &item.state)
		}
	}

	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the state in Order and CellDepth, notes the first destination
// arrival, and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	s := item.state
	w.res.Order = append(w.res.Order, s)
	if _, ok := w.res.CellDepth[s.Pos]; !ok {
		w.res.CellDepth[s.Pos] = item.depth
	}
	if s.Pos == w.opts.Destination && !w.res.Found {
		w.res.Found = true
		w.res.Moves = item.depth
		w.res.Final = s
	}
	if err := w.opts.OnVisit(s, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", s, err)
	}

	return nil
}
