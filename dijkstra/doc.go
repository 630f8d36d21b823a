// Package dijkstra finds the minimum cumulative cost of crossing a weighted
// grid when the legality of each step depends on the path's recent movement.
//
// Overview:
//
//   - The search runs over gridgraph.State (position, heading, run length)
//     rather than over raw cells, so the same cell may be reached several
//     times under states that are not interchangeable.
//   - A momentum.Policy decides which headings are legal from each state.
//     The engine never hard-codes a constraint; swapping the Policy swaps
//     the puzzle variant.
//   - Entering a cell costs its grid value; the start cell is never charged.
//   - The first time a goal state that the Policy lets terminate is popped
//     from the priority queue, its cost is the answer.
//
// When to use:
//
//   - Momentum-constrained routing on static, non-negative cost grids.
//   - One start, one goal; for all-pairs or multi-source queries look elsewhere.
//
// Key features:
//
//   - Functional options: WithStart, WithGoal, WithReturnPath, WithMaxCost, WithLogger.
//   - ReturnPath: rebuilds the sequence of states from the start seed to the goal.
//   - MaxCost: abandons the search once the cheapest open entry exceeds the cap.
//   - Stopper-aware goal check: policies such as momentum.Sustained refuse to
//     end a path on a short final run, and the search carries on past such pops.
//
// Performance and complexity (S = W×H×4×maxRun augmented states):
//
//   - Time:  O(S log S)
//   - Space: O(S) for the visited set and the lazy-decrease-key heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrNilPolicy:        the policy is nil.
//   - ErrStartOutOfBounds: WithStart points outside the grid.
//   - ErrGoalOutOfBounds:  WithGoal points outside the grid.
//   - ErrBadMaxCost:       WithMaxCost received a negative value (via panic).
//   - momentum.ErrBadRunLimits: the policy's limits admit no move.
//
// An unreachable goal is not an error: Result.Reachable is false and
// Result.Cost is Unreachable.
//
// Thread safety:
//
//   - Each call owns its frontier and visited set. A *gridgraph.Grid is
//     read-only and may be shared by any number of concurrent calls.
package dijkstra
