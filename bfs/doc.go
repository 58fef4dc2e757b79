// Package bfs provides a breadth-first search over movement states on a grid,
// returning fewest-move distances, parent links, and visit order.
//
// What
//
//   - Explore movement.State nodes (cell, heading, run) in non-decreasing move
//     count from a start cell, asking a movement.Policy for successors.
//   - Ignore cell costs: the answer is "can this vehicle get there at all, and in
//     how few moves", not "how cheaply".
//   - Returns a BFSResult containing:
//   - Order:     visit sequence of states
//   - Depth:     state → moves from the start cell
//   - Parent:    state → its predecessor in the BFS tree
//   - CellDepth: cell → fewest moves to first stand on it
//   - Found/Moves/Final: the first destination state reached
//   - Supports an OnVisit hook (may abort with an error), WithFilterNeighbor to
//     forbid individual moves (walls, one-way cells), and a MaxDepth limit.
//
// Why
//
//   - Cheap feasibility check before a weighted search: if BFS cannot reach the
//     destination, no cost surface will make dijkstra.Search succeed.
//   - Reachable-area maps for a vehicle with steering limits.
//
// Determinism
//
//	Successors are enqueued in the order the policy returns them, and seeds in
//	the order of policy.Start, so the visit sequence is fully reproducible.
//
// Destination
//
//	States standing on the destination are terminal: they are visited and
//	recorded, never expanded. Policies such as movement.RunBounded only propose
//	destination states whose run satisfies the landing rule.
//
// Complexity (S = W·H·4·R states, R = longest allowed run)
//
//   - Time:   O(S)   (each state enqueued at most once)
//   - Memory: O(S)   (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(cs.Shape(), movement.Bounded(4, 10),
//	    bfs.WithContext(ctx),
//	    bfs.WithFilterNeighbor(func(from grid.Vector, to movement.State) bool {
//	        c, _ := cs.CostAt(to.Pos)
//	        return c != 9 // treat 9 as a wall
//	    }),
//	)
//	if err != nil {
//	    // ErrPolicyNil, ErrOutOfBounds, ErrOptionViolation, ctx or hook errors
//	}
//	if res.Found {
//	    fmt.Println(res.Moves)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, top-left → bottom-right, all seed
//     headings, no depth limit, no filtering, no-op hook.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - Start(v), Destination(v): override the endpoints.
//   - WithSeedHeadings(set):   restrict the headings of the first move.
//   - WithMaxDepth(d):         stop exploring beyond d moves (>0).
//   - WithFilterNeighbor(fn):  skip moves for which fn(from, to) == false.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrPolicyNil        if the policy is nil.
//   - ErrOutOfBounds      if an endpoint lies outside the shape.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrPolicyContract   panic value when a policy proposes a non-adjacent state.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
