package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// randomGrid builds a deterministic n×n grid with costs in 1..9.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(42))
	vals := make([][]int, n)
	for r := range vals {
		vals[r] = make([]int, n)
		for c := range vals[r] {
			vals[r][c] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewGrid(vals)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkMinimumCost_Standard measures the bounded-momentum search on a
// 141×141 grid, the size of a typical puzzle input.
func BenchmarkMinimumCost_Standard(b *testing.B) {
	g := randomGrid(b, 141)
	p := momentum.Standard()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.MinimumCost(g, p)
	}
}

// BenchmarkMinimumCost_Ultra measures the sustained-momentum search on the same grid.
func BenchmarkMinimumCost_Ultra(b *testing.B) {
	g := randomGrid(b, 141)
	p := momentum.Ultra()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.MinimumCost(g, p)
	}
}
