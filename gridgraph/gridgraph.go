package gridgraph

import (
	"fmt"
)

// Grid is an immutable rectangular array of cell entry costs.
// The cost at a cell is charged when a path enters it, never when it leaves.
// A Grid is safe for concurrent readers.
type Grid struct {
	rows, cols int
	costs      [][]int
	minCost    int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost (wrapped with the cell position) if any cost is below zero.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	lowest := values[0][0]
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range values[r] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, r, c, v)
			}
			if v < lowest {
				lowest = v
			}
			cells[r][c] = v
		}
	}

	return &Grid{rows: h, cols: w, costs: cells, minCost: lowest}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells, Rows()×Cols().
func (g *Grid) Len() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cost returns the price of entering c. The caller must ensure InBounds(c).
// Complexity: O(1).
func (g *Grid) Cost(c Coord) int {
	return g.costs[c.Row][c.Col]
}

// Corner returns the bottom-right cell, the default search goal.
func (g *Grid) Corner() Coord {
	return Coord{Row: g.rows - 1, Col: g.cols - 1}
}

// MinCost returns the cheapest cell cost in the grid.
func (g *Grid) MinCost() int { return g.minCost }

// Values returns a deep copy of the cost matrix.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.costs {
		out[r] = append([]int(nil), g.costs[r]...)
	}

	return out
}
