// Package runpath computes exact shortest paths on rectangular cost grids
// for a mover that must alternate movement axis at every turn and must
// travel a bounded number of cells per straight run.
//
// Overview:
//
//   - Every grid cell becomes two search nodes, one per arrival axis
//     (Horizontal / Vertical), so the run constraint is encoded in the
//     graph rather than tracked during the search.
//   - A move is a straight run of MinRun..MaxRun cells along the axis
//     perpendicular to the arrival axis, compressed into a single edge
//     whose cost is the sum of every cell stepped onto.
//   - A label-setting (Dijkstra) search over this node space, with a
//     min-heap ordered ascending by accumulated cost and lazy deletion of
//     stale entries, finalizes each node's optimal cost exactly once.
//   - Predecessor links optionally record one cheapest route, which
//     PathTo expands back into the individual grid cells.
//
// When to use:
//
//   - Movement planning where momentum or steering limits forbid tight
//     turns: minimum-turn-radius vehicles, conveyor routing, any "must go
//     straight for a while, then must turn" rule.
//   - Run bounds (1, 3) give "turn after at most three cells"; (4, 10)
//     gives "commit to at least four cells, at most ten".
//
// Key properties:
//
//   - Exact: costs are provably minimal for non-negative cell costs.
//   - Reusable inputs: the grid is immutable, so one grid serves any
//     number of sequential searches with different run bounds.
//   - Per-invocation state: each ShortestPath call owns fresh label
//     arrays and a fresh heap; nothing leaks between calls.
//   - Single-threaded and synchronous: no goroutines, no cancellation;
//     a search runs to completion, bounded by the finite node space.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      nil *grid.Grid passed to ShortestPath.
//   - ErrBadRunBounds: run bounds violate 1 ≤ MinRun ≤ MaxRun.
//   - ErrOutOfBounds:  source or queried coordinate outside the grid.
//   - ErrUnreachable:  requested node never labeled under the run bounds.
//   - ErrNoPathData:   path requested without WithReturnPath.
//
// API reference:
//
//	func ShortestPath(g *grid.Grid, source grid.Coord, opts ...Option) (*Result, error)
//	func Neighbors(g *grid.Grid, n Node, minRun, maxRun int) ([]Edge, error)
//	func Solve(input string, minRun, maxRun int) (int64, []grid.Coord, error)
//
//	Result methods: Cost, BestCost, BestNode, PathTo, Path.
//
// See also:
//
//   - grid.Grid: parsing and cost lookups for the underlying field.
//   - render.Render: terminal visualization of a solved route.
package runpath
