package gridgraph_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/crucible/gridgraph"
)

// BenchmarkParseDigits measures parsing of a 141×141 digit grid,
// the size of a typical puzzle input.
// Complexity: O(W×H)
func BenchmarkParseDigits(b *testing.B) {
	const n = 141
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.ParseDigits(strings.NewReader(input)); err != nil {
			b.Fatalf("ParseDigits failed: %v", err)
		}
	}
}
