// Package movement models the augmented search node and the rules that decide
// which node may follow which.
//
// Overview:
//
//   - State is the node of a history-constrained grid search: the cell, the
//     heading the vehicle arrived with, and the length of its current straight
//     run (including the move that produced the state). The same cell reached
//     with a different heading or run is a different node, because its future
//     moves differ. State is a comparable struct and is used directly as a map key.
//   - Policy is a read-only strategy: given a State and the destination cell it
//     lists the legal successor States. Policies never see costs; pricing moves
//     is the search engine's job, so policies are testable without any grid.
//   - RunBounded is the one parameterised policy family shipped here. With
//     MinRun == 1 it is the "turn anytime, at most MaxRun straight" vehicle;
//     with MinRun > 1 it additionally forbids turning, or stopping on the
//     destination, before MinRun straight moves.
//
// Reversal is never legal. Candidate states may lie outside any particular
// grid; the engine filters them.
//
// Errors:
//
//   - ErrBadRunBounds: MinRun < 1 or MaxRun < MinRun.
package movement
