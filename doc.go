// Package crucible finds the cheapest way across a weighted grid when the
// legality of every step depends on how the path has been moving.
//
// What is crucible?
//
//	A small, dependency-light toolkit built around one search:
//		• gridgraph/ — immutable cost Grid, Coord, Direction, State, digit parsing
//		• momentum/  — transition policies (Bounded, Sustained, Unconstrained)
//		• dijkstra/  — state-augmented Dijkstra over (cell, heading, run length)
//		• config/    — environment configuration for the driver
//		• cmd/heatloss — reads a grid and solves each momentum variant concurrently
//
// Quick example:
//
//	g, _ := gridgraph.ParseDigits(r)
//	res, _ := dijkstra.MinimumCost(g, momentum.Ultra())
//	fmt.Println(res.Cost)
//
//	go get github.com/katalvlaran/crucible
package crucible
