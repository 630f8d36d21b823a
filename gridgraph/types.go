package gridgraph

import "fmt"

// Coord addresses a single cell: Row grows downward, Col grows to the right.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Move returns the cell one step away from c in direction d.
func (c Coord) Move(d Direction) Coord {
	return c.Add(d.Delta())
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Direction is one of the four axis-aligned headings.
// The zero value is North.
type Direction uint8

const (
	// North moves one row up.
	North Direction = iota
	// East moves one column right.
	East
	// South moves one row down.
	South
	// West moves one column left.
	West
)

// Directions lists every Direction in a fixed iteration order.
var Directions = [4]Direction{North, East, South, West}

// deltas is indexed by Direction.
var deltas = [4]Coord{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// Delta returns the unit offset produced by one step in d.
// Panics if d is not one of the four declared constants.
func (d Direction) Delta() Coord {
	if d > West {
		panic(fmt.Sprintf("gridgraph: invalid direction %d", uint8(d)))
	}

	return deltas[d]
}

// Reverse returns the opposite heading: North↔South, East↔West.
// Panics if d is not one of the four declared constants.
func (d Direction) Reverse() Direction {
	if d > West {
		panic(fmt.Sprintf("gridgraph: invalid direction %d", uint8(d)))
	}

	return (d + 2) % 4
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// State is a position in the momentum-augmented search space: standing at
// Pos, having arrived by moving Dir, after Run consecutive steps in Dir.
// A Run of 0 marks a path that has not moved yet.
//
// State is comparable and is used directly as a map key.
type State struct {
	Pos Coord
	Dir Direction
	Run int
}

// Step returns the successor of s after one step in next.
// Run restarts at 1 when next differs from s.Dir and grows by one otherwise.
// Step does not check bounds or legality.
func (s State) Step(next Direction) State {
	run := 1
	if next == s.Dir {
		run = s.Run + 1
	}

	return State{Pos: s.Pos.Move(next), Dir: next, Run: run}
}

// String renders s as "(row,col) dir×run".
func (s State) String() string {
	return fmt.Sprintf("%s %s×%d", s.Pos, s.Dir, s.Run)
}
