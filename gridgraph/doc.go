// Package gridgraph treats a rectangular grid of non-negative entry costs
// as the substrate of a shortest-path search, and defines the movement
// model used to walk it.
//
// What:
//
//   - Grid wraps a rectangular [][]int of cell costs. It is immutable once built.
//   - Coord is a (Row, Col) value; Direction is the closed set North, East, South, West.
//   - Direction.Delta gives the unit offset of one step; Direction.Reverse its opposite.
//   - State couples a position with the direction it was entered from and the
//     number of consecutive steps already taken in that direction.
//   - ParseDigits reads a grid whose every character is one decimal digit.
//
// Why:
//
//   - Momentum-constrained routing: the cost of a move depends on where the
//     path came from, so searches run over State rather than over raw cells.
//   - Heat-loss style puzzles: entering a cell costs its value, leaving is free.
//
// Complexity:
//
//   - NewGrid, ParseDigits: O(W×H) time and memory.
//   - InBounds, Cost, Delta, Reverse, Step: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrBadCell: a parsed character is not a decimal digit.
package gridgraph
