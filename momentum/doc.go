// Package momentum defines transition policies: the rules that decide,
// from the state a path is in, which heading it may take next.
//
// A Policy sees the current gridgraph.State (position, heading, run length)
// and a candidate heading, and answers whether the step is legal. Policies
// are pure values: no shared mutable state, no I/O. The same Policy may be
// handed to any number of concurrent searches.
//
// Provided policies:
//
//   - Bounded:       no reversal; at most MaxRun consecutive steps in one heading.
//   - Sustained:     no reversal; at least MinRun steps before turning (or
//     stopping), at most MaxRun steps in one heading.
//   - Unconstrained: no reversal; nothing else.
//
// A policy that restricts where a path may end also implements Stopper.
// Search engines consult CanStop before accepting a goal state.
//
// Errors:
//
//   - ErrBadRunLimits: a policy's run limits cannot admit any move.
//   - ErrUnknownPolicy: ByName was given a name it does not know.
package momentum
