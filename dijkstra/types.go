package dijkstra

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by MinimumCost.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilPolicy indicates that a nil momentum.Policy was passed.
	ErrNilPolicy = errors.New("dijkstra: policy is nil")

	// ErrStartOutOfBounds indicates that the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start lies outside the grid")

	// ErrGoalOutOfBounds indicates that the goal coordinate lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal lies outside the grid")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Unreachable is the Cost reported when no legal path reaches the goal.
const Unreachable int64 = -1

// Result is the outcome of one search.
//
// Cost      – minimum cumulative entry cost, or Unreachable.
// Reachable – false when no path satisfying the policy exists (within MaxCost).
// Final     – the goal state the search terminated on (zero value if unreachable).
// Path      – states from the start seed to Final; nil unless WithReturnPath.
// Expanded  – number of states finalized before the search ended.
type Result struct {
	Cost      int64
	Reachable bool
	Final     gridgraph.State
	Path      []gridgraph.State
	Expanded  int
}

// Options configures the behavior of MinimumCost.
//
// Start      – starting cell. Default is the origin (0,0).
// Goal       – target cell. Default is the grid's bottom-right corner.
// ReturnPath – if true, Result.Path is populated.
// MaxCost    – entries costlier than this are never expanded. Default math.MaxInt64.
// Logger     – receives a Debug summary of the search. Default discards.
type Options struct {
	Start      gridgraph.Coord
	Goal       gridgraph.Coord
	ReturnPath bool
	MaxCost    int64
	Logger     logrus.FieldLogger

	goalSet bool
}

// Option represents a functional option for configuring MinimumCost.
type Option func(*Options)

// WithStart sets the starting cell.
func WithStart(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithGoal sets the target cell. Without it the goal is the bottom-right corner.
func WithGoal(c gridgraph.Coord) Option {
	return func(o *Options) {
		o.Goal = c
		o.goalSet = true
	}
}

// WithReturnPath enables reconstruction of the winning state sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the accumulated cost the search will explore.
// A goal cheaper than or equal to max is still found; anything dearer is
// reported as unreachable. Negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithLogger routes the search summary to l. A nil l keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// discard swallows log output when no Logger is configured.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// DefaultOptions returns an Options struct initialized with defaults:
//   - Start:      (0,0).
//   - Goal:       unset; resolved to the grid's corner by MinimumCost.
//   - ReturnPath: false.
//   - MaxCost:    math.MaxInt64 (no cap).
//   - Logger:     discards everything.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt64,
		Logger:  discard,
	}
}
