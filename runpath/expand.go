package runpath

import (
	"fmt"

	"github.com/ivonindza/gridpath/grid"
)

// step is a unit offset along one compass direction.
type step struct {
	dx, dy int
}

// Walk order within an axis: negative direction first, then positive.
var (
	verticalSteps   = [2]step{{0, -1}, {0, 1}} // north, south
	horizontalSteps = [2]step{{-1, 0}, {1, 0}} // west, east
)

// Neighbors produces every legal move out of n under the given run bounds.
//
// The outgoing axis is always perpendicular to n.Orient: a node entered
// horizontally emits north/south runs, a node entered vertically emits
// west/east runs. Along each of the two directions the walk advances one
// cell at a time, accumulating cell costs. The first minRun-1 cells are
// cost-only: they never become edge targets, and if any of them falls
// outside the grid the whole direction yields no edges. Cells at step
// distance minRun..maxRun each yield one Edge whose cost is the cumulative
// sum so far; the walk stops early at the grid boundary.
//
// Returns ErrOutOfBounds if n itself lies outside the grid.
// Complexity: O(maxRun) time, O(maxRun) memory for the result.
func Neighbors(g *grid.Grid, n Node, minRun, maxRun int) ([]Edge, error) {
	if minRun < 1 || maxRun < minRun {
		return nil, ErrBadRunBounds
	}
	if !g.InBounds(n.Coord) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, n.Coord.X, n.Coord.Y)
	}

	steps := verticalSteps
	if n.Orient == Vertical {
		steps = horizontalSteps
	}
	out := n.Orient.perpendicular()

	edges := make([]Edge, 0, 2*(maxRun-minRun+1))
	for _, s := range steps {
		edges = walkDirection(g, n.Coord, s, out, minRun, maxRun, edges)
	}

	return edges, nil
}

// walkDirection advances from c along s, appending one Edge per cell at
// step distance minRun..maxRun. Costs of skipped prefix cells still count
// toward every emitted edge.
func walkDirection(g *grid.Grid, c grid.Coord, s step, out Orientation, minRun, maxRun int, edges []Edge) []Edge {
	var acc int64
	// Mandatory prefix: accumulate but never emit. An out-of-bounds step
	// here invalidates the entire direction, not just the remainder.
	for i := 1; i < minRun; i++ {
		c.X += s.dx
		c.Y += s.dy
		cost, err := g.Cost(c)
		if err != nil {
			return edges
		}
		acc += cost
	}

	for i := minRun; i <= maxRun; i++ {
		c.X += s.dx
		c.Y += s.dy
		cost, err := g.Cost(c)
		if err != nil {
			break
		}
		acc += cost
		edges = append(edges, Edge{To: Node{Coord: c, Orient: out}, Cost: acc})
	}

	return edges
}
