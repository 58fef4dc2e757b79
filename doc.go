// Package crucible finds cheapest routes across grids of entry costs for
// vehicles whose legal moves depend on how they have been moving.
//
// 🚀 What is crucible?
//
//	A small, dependency-light library that brings together:
//		• Grid primitives: vectors, headings, turns, bounds (grid/)
//		• Cost surfaces: parse digit grids, free-movement lower bound, rendering (gridgraph/)
//		• Movement policies: "at most N straight", "between M and N straight" (movement/)
//		• History-aware Dijkstra over (cell, heading, run) states (dijkstra/)
//		• Fewest-moves reachability for the same vehicles (bfs/)
//
// ✨ Why crucible?
//
//   - One search loop for every vehicle: rules live in a movement.Policy
//   - Deterministic results: ties are broken by discovery order
//   - Two memory layouts: maps for anything, dense slices for bounded runs
//   - "No path" is a normal answer, not an error
//
// Layout:
//
//	grid/            Vector, Direction, DirectionSet, Shape, char-grid parsing
//	gridgraph/       CostSurface, FreeCost, RenderPath
//	movement/        State, Policy, RunBounded
//	dijkstra/        Search, MinCost, functional options, Result
//	bfs/             fewest-moves reachability, move filters (walls)
//	internal/wsapi/  JSON-over-websocket solve endpoint
//	cmd/crucible/    command-line driver
//
// Quick example (costs are paid on entry; the start cell is free):
//
//	19111          19^>>
//	11191   ──►    v>>9v     cost 8 with at most 3 straight moves
//	99911          9991v
//
//	go get github.com/katalvlaran/crucible
package crucible
