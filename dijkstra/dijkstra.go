// Package dijkstra implements a state-augmented Dijkstra search over a
// momentum-constrained cost grid.
//
// Notes on implementation choices:
//
//   - Every heading is seeded at the start with run length 0 and cost 0, so the
//     first real step may go in any direction the policy allows.
//   - The goal check runs before the visited check, on the popped entry.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Predecessors are recorded when a state is finalized, never on push.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// MinimumCost returns the cheapest cumulative entry cost of a path from the
// start cell to the goal cell of g, where every step is approved by p and
// the final state is one p lets terminate (see momentum.Stopper).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. p must be non-nil (ErrNilPolicy).
//  3. p's own limits must be valid (momentum.Validate).
//  4. Start must lie inside g (ErrStartOutOfBounds).
//  5. Goal must lie inside g (ErrGoalOutOfBounds).
//
// A goal that no legal path reaches yields Result{Reachable: false,
// Cost: Unreachable} and a nil error.
//
// Complexity:
//
//   - Time:  O(S log S), S = number of reachable augmented states.
//   - Space: O(S)
func MinimumCost(g *gridgraph.Grid, p momentum.Policy, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate collaborators
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if p == nil {
		return Result{}, ErrNilPolicy
	}
	if err := momentum.Validate(p); err != nil {
		return Result{}, err
	}

	// 3) Resolve and validate endpoints
	if !cfg.goalSet {
		cfg.Goal = g.Corner()
	}
	if !g.InBounds(cfg.Start) {
		return Result{}, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, cfg.Start, g.Rows(), g.Cols())
	}
	if !g.InBounds(cfg.Goal) {
		return Result{}, fmt.Errorf("%w: %v in %dx%d", ErrGoalOutOfBounds, cfg.Goal, g.Rows(), g.Cols())
	}

	r := &runner{
		g:       g,
		policy:  p,
		options: cfg,
		visited: make(map[gridgraph.State]struct{}, g.Len()*len(gridgraph.Directions)),
		pq:      make(statePQ, 0, g.Len()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.State]gridgraph.State, g.Len()*len(gridgraph.Directions))
	}

	r.init()
	res := r.process()

	cfg.Logger.WithFields(logrus.Fields{
		"start":     cfg.Start,
		"goal":      cfg.Goal,
		"reachable": res.Reachable,
		"cost":      res.Cost,
		"expanded":  res.Expanded,
	}).Debug("dijkstra: search finished")

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Grid                     // Read-only cost grid.
	policy  momentum.Policy                     // Transition rule; read-only.
	options Options                             // Resolved configuration.
	visited map[gridgraph.State]struct{}        // States whose minimum cost is final.
	prev    map[gridgraph.State]gridgraph.State // Finalized state → its predecessor; nil unless ReturnPath.
	pq      statePQ                             // Min-heap frontier.
}

// init seeds the frontier with one run-0 state per heading at cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, d := range gridgraph.Directions {
		heap.Push(&r.pq, &stateItem{
			state: gridgraph.State{Pos: r.options.Start, Dir: d, Run: 0},
			cost:  0,
			root:  true,
		})
	}
}

// process is the main loop. It pops the cheapest entry until a goal state
// the policy lets terminate is found, the frontier empties, or the cheapest
// entry exceeds MaxCost.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)

		// Everything left is dearer than the cap.
		if item.cost > r.options.MaxCost {
			break
		}

		// Goal reached: the first acceptable pop carries the minimum cost.
		if item.state.Pos == r.options.Goal && momentum.CanStop(r.policy, item.state) {
			return r.finish(item)
		}

		// Stale entry for a state already finalized at lower or equal cost.
		if _, done := r.visited[item.state]; done {
			continue
		}
		r.visited[item.state] = struct{}{}
		if r.prev != nil && !item.root {
			r.prev[item.state] = item.parent
		}

		r.expand(item)
	}

	return Result{Cost: Unreachable, Expanded: len(r.visited)}
}

// expand pushes every policy-approved, in-bounds successor of item.
func (r *runner) expand(item *stateItem) {
	cur := item.state
	for _, d := range gridgraph.Directions {
		if !r.policy.Allow(cur, d) {
			continue
		}
		next := cur.Step(d)
		if !r.g.InBounds(next.Pos) {
			continue
		}
		if _, done := r.visited[next]; done {
			continue
		}
		heap.Push(&r.pq, &stateItem{
			state:  next,
			cost:   item.cost + int64(r.g.Cost(next.Pos)),
			parent: cur,
		})
	}
}

// finish builds the Result for the terminating goal entry.
func (r *runner) finish(item *stateItem) Result {
	res := Result{
		Cost:      item.cost,
		Reachable: true,
		Final:     item.state,
		Expanded:  len(r.visited),
	}
	if r.prev == nil {
		return res
	}

	// Walk predecessors back to a seed; seeds have no prev entry.
	path := []gridgraph.State{item.state}
	at, ok := item.parent, !item.root
	for ok {
		path = append(path, at)
		at, ok = r.prev[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// stateItem is a frontier entry: a state, the cost of reaching it, and the
// state it was reached from.
type stateItem struct {
	state  gridgraph.State
	cost   int64
	parent gridgraph.State
	root   bool // seed entry with no parent
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Ties are broken by heap order; correctness only needs non-negative costs.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// PathCost recomputes the entry cost of a state path on g: the sum of the
// costs of every cell entered after the first state.
func PathCost(g *gridgraph.Grid, path []gridgraph.State) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += int64(g.Cost(path[i].Pos))
	}

	return total
}
