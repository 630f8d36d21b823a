package momentum

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

var (
	// ErrBadRunLimits indicates MaxRun < 1, MinRun < 0 or MinRun > MaxRun.
	ErrBadRunLimits = errors.New("momentum: invalid run limits")
	// ErrUnknownPolicy indicates ByName received an unregistered name.
	ErrUnknownPolicy = errors.New("momentum: unknown policy")
)

// Policy decides whether stepping in next is legal from cur.
type Policy interface {
	Allow(cur gridgraph.State, next gridgraph.Direction) bool
}

// Stopper is implemented by policies that also restrict where a path may end.
// CanStop reports whether a path standing in s may terminate there.
type Stopper interface {
	CanStop(s gridgraph.State) bool
}

// PolicyFunc adapts an ordinary function to the Policy interface.
type PolicyFunc func(cur gridgraph.State, next gridgraph.Direction) bool

// Allow calls f(cur, next).
func (f PolicyFunc) Allow(cur gridgraph.State, next gridgraph.Direction) bool {
	return f(cur, next)
}

// CanStop reports whether p lets a path terminate in s.
// Policies that do not implement Stopper accept every state.
func CanStop(p Policy, s gridgraph.State) bool {
	if st, ok := p.(Stopper); ok {
		return st.CanStop(s)
	}

	return true
}

// Unconstrained forbids only reversal.
type Unconstrained struct{}

// Allow rejects a step that reverses cur.Dir.
func (Unconstrained) Allow(cur gridgraph.State, next gridgraph.Direction) bool {
	return next != cur.Dir.Reverse()
}

// Bounded forbids reversal and caps a straight run at MaxRun steps.
type Bounded struct {
	MaxRun int
}

// Standard returns the bounded-momentum policy with a maximum run of 3.
func Standard() Bounded { return Bounded{MaxRun: 3} }

// Allow rejects reversal, and continuing straight once MaxRun steps are taken.
func (b Bounded) Allow(cur gridgraph.State, next gridgraph.Direction) bool {
	if next == cur.Dir.Reverse() {
		return false
	}
	if next == cur.Dir && cur.Run >= b.MaxRun {
		return false
	}

	return true
}

// Validate reports ErrBadRunLimits when MaxRun < 1.
func (b Bounded) Validate() error {
	if b.MaxRun < 1 {
		return fmt.Errorf("%w: bounded MaxRun=%d", ErrBadRunLimits, b.MaxRun)
	}

	return nil
}

// Sustained forbids reversal, turning before MinRun steps, and continuing
// straight past MaxRun steps. A path may only end after at least MinRun
// steps in its final heading.
type Sustained struct {
	MinRun, MaxRun int
}

// Ultra returns the sustained-momentum policy: at least 4, at most 10
// steps per straight segment.
func Ultra() Sustained { return Sustained{MinRun: 4, MaxRun: 10} }

// Allow rejects reversal, turning while cur.Run < MinRun, and continuing
// straight once MaxRun steps are taken.
//
// A Run of 0 is subject to the same rule: from a fresh start the path may
// only set off in the heading it was seeded with.
func (s Sustained) Allow(cur gridgraph.State, next gridgraph.Direction) bool {
	if next == cur.Dir.Reverse() {
		return false
	}
	if next != cur.Dir && cur.Run < s.MinRun {
		return false
	}
	if next == cur.Dir && cur.Run >= s.MaxRun {
		return false
	}

	return true
}

// CanStop accepts a state whose final straight segment is at least MinRun
// long, or the untouched start (Run == 0).
func (s Sustained) CanStop(st gridgraph.State) bool {
	return st.Run == 0 || st.Run >= s.MinRun
}

// Validate reports ErrBadRunLimits when MaxRun < 1, MinRun < 0 or MinRun > MaxRun.
func (s Sustained) Validate() error {
	if s.MaxRun < 1 || s.MinRun < 0 || s.MinRun > s.MaxRun {
		return fmt.Errorf("%w: sustained MinRun=%d MaxRun=%d", ErrBadRunLimits, s.MinRun, s.MaxRun)
	}

	return nil
}

// Validate checks p's parameters when p knows how to validate itself.
// Policies without a Validate method are always valid.
func Validate(p Policy) error {
	if v, ok := p.(interface{ Validate() error }); ok {
		return v.Validate()
	}

	return nil
}

// registry maps the driver-facing policy names to constructors.
var registry = map[string]func() Policy{
	"standard": func() Policy { return Standard() },
	"ultra":    func() Policy { return Ultra() },
	"free":     func() Policy { return Unconstrained{} },
}

// ByName returns the named policy. Names are case-insensitive.
func ByName(name string) (Policy, error) {
	mk, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
	}

	return mk(), nil
}

// Names lists the registered policy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
