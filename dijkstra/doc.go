// Package dijkstra provides a uniform-cost shortest-path search over a cost
// grid whose move legality depends on movement history.
//
// Overview:
//
//   - A plain grid Dijkstra keys its tables by cell. Here a node is a
//     movement.State: the cell, the heading the vehicle arrived with, and how
//     many straight moves it has made in that heading. Two visits to the same
//     cell with different headings or runs are different nodes, because the
//     moves available next differ.
//   - Which node may follow which is decided by an injected movement.Policy,
//     so one search loop serves every vehicle (e.g. "at most 3 straight" and
//     "between 4 and 10 straight before turning or stopping").
//   - Entering a cell costs that cell's value from the gridgraph.CostSurface;
//     the start cell is free.
//
// When to use:
//
//   - Route planning for vehicles with momentum or steering limits.
//   - Any grid search where the cost or legality of a step depends on the last
//     few steps, as long as that history fits in (heading, run length).
//
// Key features:
//
//   - Functional options: Start, Destination, WithSeedHeadings, WithReturnPath,
//     WithMemoryMode, WithMaxCost, WithOnSettle.
//   - "No path" is a normal result (Result.Found == false, nil error).
//   - WithReturnPath: parent pointers are only allocated when requested.
//   - MemoryModeDense: slice-backed tables for policies that declare a run limit,
//     sized by the shorter of that limit and the surface's longer side; very
//     large layouts fall back to maps.
//
// Seeding:
//
//   - The search starts standing on Start with no heading. The policy's Start
//     method proposes the first moves (one per allowed seed heading, Run = 1),
//     so the first straight run is counted from the first real move. All four
//     headings are allowed by default; off-surface seeds are dropped.
//
// Performance and complexity (S = W·H·4·R states, R = longest allowed run):
//
//   - Time:  O(S log S)
//   - Space: O(S) for distances and the settled set, plus O(S) parents when
//     WithReturnPath is set, plus the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilSurface:      nil *gridgraph.CostSurface.
//   - ErrNilPolicy:       nil movement.Policy.
//   - ErrOutOfBounds:     Start or Destination off the surface.
//   - ErrOptionViolation: invalid option argument.
//   - ErrCostOverflow:    destination not reached and some total exceeded uint64.
//   - ErrPolicyContract:  panic value for a policy proposing an invalid state.
//
// Thread safety:
//
//   - Search never mutates the surface or the policy. Each call owns its own
//     tables and heap, so concurrent searches on one surface are safe.
//
// See also:
//
//   - movement.RunBounded: the vehicle policies.
//   - gridgraph.CostSurface.FreeCost: the history-free lower bound.
//   - gridgraph.CostSurface.RenderPath: draws Result.Steps().
package dijkstra
