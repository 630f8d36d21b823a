package momentum_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// PolicySuite exercises the transition policies one rule at a time.
type PolicySuite struct {
	suite.Suite
}

func at(dir gridgraph.Direction, run int) gridgraph.State {
	return gridgraph.State{Pos: gridgraph.Coord{Row: 5, Col: 5}, Dir: dir, Run: run}
}

// TestReversalAlwaysRejected checks every policy forbids turning back.
func (s *PolicySuite) TestReversalAlwaysRejected() {
	policies := []momentum.Policy{momentum.Unconstrained{}, momentum.Standard(), momentum.Ultra()}
	for _, p := range policies {
		for _, d := range gridgraph.Directions {
			for _, run := range []int{0, 1, 4, 10} {
				require.False(s.T(), p.Allow(at(d, run), d.Reverse()),
					"%T allowed reversal from %v run %d", p, d, run)
			}
		}
	}
}

// TestUnconstrained accepts straight and turning moves at any run.
func (s *PolicySuite) TestUnconstrained() {
	p := momentum.Unconstrained{}
	require.True(s.T(), p.Allow(at(gridgraph.East, 100), gridgraph.East))
	require.True(s.T(), p.Allow(at(gridgraph.East, 0), gridgraph.North))
	require.True(s.T(), momentum.CanStop(p, at(gridgraph.East, 1)))
}

// TestBounded caps the straight run at three.
func (s *PolicySuite) TestBounded() {
	p := momentum.Standard()
	require.Equal(s.T(), 3, p.MaxRun)

	for run := 0; run < 3; run++ {
		require.True(s.T(), p.Allow(at(gridgraph.South, run), gridgraph.South), "run %d", run)
	}
	require.False(s.T(), p.Allow(at(gridgraph.South, 3), gridgraph.South))
	// Turning is fine at any run, including at the cap.
	require.True(s.T(), p.Allow(at(gridgraph.South, 3), gridgraph.East))
	require.True(s.T(), p.Allow(at(gridgraph.South, 1), gridgraph.West))
	require.True(s.T(), momentum.CanStop(p, at(gridgraph.South, 1)))
}

// TestSustained enforces the minimum commitment and the maximum run.
func (s *PolicySuite) TestSustained() {
	p := momentum.Ultra()
	require.Equal(s.T(), momentum.Sustained{MinRun: 4, MaxRun: 10}, p)

	for run := 0; run < 4; run++ {
		require.False(s.T(), p.Allow(at(gridgraph.East, run), gridgraph.South), "turn at run %d", run)
		require.True(s.T(), p.Allow(at(gridgraph.East, run), gridgraph.East), "straight at run %d", run)
	}
	for run := 4; run < 10; run++ {
		require.True(s.T(), p.Allow(at(gridgraph.East, run), gridgraph.South), "turn at run %d", run)
		require.True(s.T(), p.Allow(at(gridgraph.East, run), gridgraph.East), "straight at run %d", run)
	}
	require.False(s.T(), p.Allow(at(gridgraph.East, 10), gridgraph.East))
	require.True(s.T(), p.Allow(at(gridgraph.East, 10), gridgraph.North))
}

// TestSustainedCanStop only ends a path on a committed run or the start.
func (s *PolicySuite) TestSustainedCanStop() {
	p := momentum.Ultra()
	require.True(s.T(), p.CanStop(at(gridgraph.East, 0)))
	for run := 1; run < 4; run++ {
		require.False(s.T(), p.CanStop(at(gridgraph.East, run)), "run %d", run)
	}
	require.True(s.T(), p.CanStop(at(gridgraph.East, 4)))
	require.True(s.T(), momentum.CanStop(p, at(gridgraph.East, 10)))
}

// TestPolicyFunc adapts a closure.
func (s *PolicySuite) TestPolicyFunc() {
	onlyEast := momentum.PolicyFunc(func(_ gridgraph.State, next gridgraph.Direction) bool {
		return next == gridgraph.East
	})
	require.True(s.T(), onlyEast.Allow(at(gridgraph.North, 2), gridgraph.East))
	require.False(s.T(), onlyEast.Allow(at(gridgraph.North, 2), gridgraph.North))
	require.True(s.T(), momentum.CanStop(onlyEast, at(gridgraph.North, 2)))
	require.NoError(s.T(), momentum.Validate(onlyEast))
}

// TestValidate rejects limits that admit no move.
func (s *PolicySuite) TestValidate() {
	require.NoError(s.T(), momentum.Validate(momentum.Standard()))
	require.NoError(s.T(), momentum.Validate(momentum.Ultra()))
	require.NoError(s.T(), momentum.Validate(momentum.Unconstrained{}))

	require.ErrorIs(s.T(), momentum.Validate(momentum.Bounded{}), momentum.ErrBadRunLimits)
	require.ErrorIs(s.T(), momentum.Validate(momentum.Sustained{MinRun: 5, MaxRun: 4}), momentum.ErrBadRunLimits)
	require.ErrorIs(s.T(), momentum.Validate(momentum.Sustained{MinRun: -1, MaxRun: 4}), momentum.ErrBadRunLimits)
}

// TestByName resolves registered names case-insensitively.
func (s *PolicySuite) TestByName() {
	p, err := momentum.ByName("Standard")
	require.NoError(s.T(), err)
	require.Equal(s.T(), momentum.Standard(), p)

	p, err = momentum.ByName(" ultra ")
	require.NoError(s.T(), err)
	require.Equal(s.T(), momentum.Ultra(), p)

	p, err = momentum.ByName("free")
	require.NoError(s.T(), err)
	require.Equal(s.T(), momentum.Unconstrained{}, p)

	_, err = momentum.ByName("turbo")
	require.ErrorIs(s.T(), err, momentum.ErrUnknownPolicy)
	require.Equal(s.T(), []string{"free", "standard", "ultra"}, momentum.Names())
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicySuite))
}
