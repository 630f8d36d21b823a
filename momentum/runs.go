package momentum

import "github.com/katalvlaran/crucible/gridgraph"

// Segment is one maximal straight stretch of a path.
type Segment struct {
	Dir gridgraph.Direction
	Len int
}

// Runs splits a path of consecutive states into its straight segments.
// States with Run == 0 (a seed that has not moved) are skipped.
func Runs(path []gridgraph.State) []Segment {
	var segs []Segment
	for _, s := range path {
		if s.Run == 0 {
			continue
		}
		if len(segs) == 0 || s.Run == 1 {
			segs = append(segs, Segment{Dir: s.Dir, Len: 1})
			continue
		}
		segs[len(segs)-1].Len++
	}

	return segs
}

// Complies reports whether every step of path is legal under p and the
// final state may terminate under p. An empty path trivially complies.
func Complies(p Policy, path []gridgraph.State) bool {
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if !p.Allow(prev, cur.Dir) || prev.Step(cur.Dir) != cur {
			return false
		}
	}
	if len(path) == 0 {
		return true
	}

	return CanStop(p, path[len(path)-1])
}
