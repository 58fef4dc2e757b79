// Package dijkstra implements a uniform-cost (Dijkstra) search over the
// augmented state space (cell, heading, run length) of a cost grid.
//
// It processes states in order of increasing accumulated cost using a min-heap,
// asks a movement.Policy for the legal successors of each settled state, and
// prices each successor by the cost of the cell it enters.
//
// Complexity (S = W·H·4·R states, R = longest run the policy allows):
//
//   - Time:  O(S log S)
//   - Each state is settled at most once.
//   - Each settled state yields at most 3 successors, each at most one push.
//   - Space: O(S)
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: improved states are pushed again and
//     stale heap entries are skipped when popped (they are already settled).
//   - Ties in cost are broken by insertion order, so identical inputs always
//     settle states in the same order.
//   - The first destination state popped is optimal because cell costs are
//     non-negative.
//   - Policies only describe geometry; off-surface proposals are dropped here.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// Search finds the minimal total cost of travelling from Options.Start to
// Options.Destination on cs while obeying p. Entering a cell costs that cell's
// value; the start cell itself is free.
//
// Returns:
//
//   - res.Found == true:  res.Cost is minimal over all legal move sequences;
//     res.Path holds the states after each move when WithReturnPath was given.
//   - res.Found == false: no legal sequence reaches the destination. This is a
//     normal outcome and err is nil.
//   - err: invalid inputs only.
//
// Preconditions and validation (in order):
//  1. cs must be non-nil (ErrNilSurface).
//  2. p must be non-nil (ErrNilPolicy).
//  3. Options must be valid (ErrOptionViolation).
//  4. Start and Destination must lie on cs (ErrOutOfBounds).
//
// Each call allocates its own tables; cs and p are only read, so concurrent
// searches may share them.
//
// Complexity:
//
//   - Time:  O(S log S)
//   - Space: O(S)
func Search(cs *gridgraph.CostSurface, p movement.Policy, opts ...Option) (*Result, error) {
	// 1) Validate surface and policy.
	if cs == nil {
		return nil, ErrNilSurface
	}
	if p == nil {
		return nil, ErrNilPolicy
	}

	// 2) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !cfg.hasStart {
		cfg.Start = cs.Shape().TopLeft()
	}
	if !cfg.hasDestination {
		cfg.Destination = cs.Shape().BottomRight()
	}

	// 3) Validate endpoints.
	if !cs.InBounds(cfg.Start) || !cs.InBounds(cfg.Destination) {
		return nil, fmt.Errorf("%w: %v → %v on %dx%d",
			ErrOutOfBounds, cfg.Start, cfg.Destination, cs.Width(), cs.Height())
	}

	res := &Result{Start: cfg.Start, Destination: cfg.Destination}

	// 4) Standing on the destination already costs nothing.
	if cfg.Start == cfg.Destination {
		res.Found = true
		if cfg.ReturnPath {
			res.Path = []movement.State{}
		}

		return res, nil
	}

	// 5) Run the search with fresh per-invocation state.
	r := &runner{
		cs:      cs,
		policy:  p,
		options: cfg,
		table:   newTable(cs.Shape(), p, cfg),
		pq:      make(statePQ, 0, cs.Shape().Area()),
	}
	r.init()
	final, ok := r.process()
	res.Settled = r.settled
	if !ok {
		if r.overflow {
			return nil, fmt.Errorf("%w: %v → %v", ErrCostOverflow, cfg.Start, cfg.Destination)
		}

		return res, nil
	}
	res.Found = true
	res.Cost = r.table.cost(final)
	if cfg.ReturnPath {
		res.Path = r.path(final)
	}

	return res, nil
}

// MinCost is a shorthand for Search returning only the cost and whether the
// destination was reached.
func MinCost(cs *gridgraph.CostSurface, p movement.Policy, opts ...Option) (uint64, bool, error) {
	res, err := Search(cs, p, opts...)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	cs       *gridgraph.CostSurface // read-only for the whole search
	policy   movement.Policy        // read-only strategy
	options  Options                // resolved configuration
	table    table                  // distances, settled set, parents
	pq       statePQ                // lazy min-heap
	seq      uint64                 // insertion counter for deterministic ties
	settled  int                    // states settled so far
	overflow bool                   // a candidate cost did not fit in uint64
}

// init seeds the frontier with the policy's first moves away from Start.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range r.policy.Start(r.options.Start, r.options.Destination, r.options.SeedHeadings) {
		r.checkContract(r.options.Start, s)
		c, ok := r.cs.CostAt(s.Pos)
		if !ok {
			continue
		}
		r.offer(s, 0, c, nil)
	}
}

// process is the main loop. It returns the first settled destination state, or
// ok == false once the frontier is exhausted.
func (r *runner) process() (movement.State, bool) {
	dst := r.options.Destination
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(*stateItem)

		// 2) Skip stale entries for states already final.
		if !r.table.settle(item.state) {
			continue
		}
		r.settled++
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.state, item.cost)
		}

		// 3) The first destination state settled is optimal.
		if item.state.Pos == dst {
			return item.state, true
		}

		// 4) Expand.
		r.relax(item.state, item.cost)
	}

	return movement.State{}, false
}

// relax prices every legal successor of u and records improvements.
func (r *runner) relax(u movement.State, cost uint64) {
	for _, v := range r.policy.Next(u, r.options.Destination) {
		r.checkContract(u.Pos, v)

		// Policies may propose off-surface states; drop them here.
		c, ok := r.cs.CostAt(v.Pos)
		if !ok {
			continue
		}
		r.offer(v, cost, c, &u)
	}
}

// offer prices s as base plus the cell cost step, records it if it strictly
// improves on the known cost and respects MaxCost, then pushes s onto the heap.
// A sum that reaches math.MaxUint64 (the "unknown" marker of the tables) is
// dropped and remembered in r.overflow.
func (r *runner) offer(s movement.State, base uint64, step int, parent *movement.State) {
	c := base + uint64(step)
	if c < base || c == math.MaxUint64 {
		r.overflow = true
		return
	}
	if c > r.options.MaxCost {
		return
	}
	if c >= r.table.cost(s) {
		return
	}
	r.table.relax(s, c, parent)
	r.seq++
	heap.Push(&r.pq, &stateItem{state: s, cost: c, seq: r.seq})
}

// checkContract panics with ErrPolicyContract if s is not a valid single
// move away from the cell from.
func (r *runner) checkContract(from grid.Vector, s movement.State) {
	d, err := grid.DirectionOf(s.Pos.Sub(from))
	if err != nil || d != s.Heading || !s.Valid() {
		panic(fmt.Errorf("%w: %v proposed from %v", ErrPolicyContract, s, from))
	}
}

// path walks parent pointers back from final to a seed state.
func (r *runner) path(final movement.State) []movement.State {
	out := []movement.State{final}
	for cur := final; ; {
		prev, ok := r.table.parent(cur)
		if !ok {
			break
		}
		out = append(out, prev)
		cur = prev
	}
	// reverse to get start → destination
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// stateItem is a frontier entry: a state, the cost it was queued with, and its
// insertion sequence number.
type stateItem struct {
	state movement.State
	cost  uint64
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by cost, then by insertion order.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs pop in insertion order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *stateItem.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
