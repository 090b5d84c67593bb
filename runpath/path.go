package runpath

import (
	"fmt"

	"github.com/ivonindza/gridpath/grid"
)

// Result holds the label tables of one completed ShortestPath run.
// It is read-only after the search returns; each invocation produces a
// fresh Result and no two Results share state.
type Result struct {
	g    *grid.Grid
	dist []int64
	prev []int // nil unless WithReturnPath was set
}

// Cost returns the best accumulated cost to reach n, and whether n was
// reached at all. Both orientation nodes of the search source report 0.
// Nodes outside the grid extent report (Unlabeled, false).
// Complexity: O(1).
func (r *Result) Cost(n Node) (int64, bool) {
	if !r.g.InBounds(n.Coord) {
		return Unlabeled, false
	}
	d := r.dist[nodeIndex(r.g, n)]

	return d, d != Unlabeled
}

// BestNode returns whichever orientation node of c was reached more
// cheaply, Horizontal winning ties. Returns ErrOutOfBounds if c lies
// outside the grid, ErrUnreachable if neither orientation was labeled.
// Complexity: O(1).
func (r *Result) BestNode(c grid.Coord) (Node, error) {
	if !r.g.InBounds(c) {
		return Node{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}

	h := Node{Coord: c, Orient: Horizontal}
	v := Node{Coord: c, Orient: Vertical}
	dh := r.dist[nodeIndex(r.g, h)]
	dv := r.dist[nodeIndex(r.g, v)]

	if dh == Unlabeled && dv == Unlabeled {
		return Node{}, fmt.Errorf("%w: (%d,%d)", ErrUnreachable, c.X, c.Y)
	}
	if dv < dh {
		return v, nil
	}

	return h, nil
}

// BestCost returns the minimum accumulated cost to reach the cell at c,
// over both of its orientation nodes. Errors as BestNode.
// Complexity: O(1).
func (r *Result) BestCost(c grid.Coord) (int64, error) {
	n, err := r.BestNode(c)
	if err != nil {
		return Unlabeled, err
	}

	return r.dist[nodeIndex(r.g, n)], nil
}

// PathTo reconstructs the cell sequence from the search source to n,
// inclusive on both ends, by walking predecessor links. Each link is a
// compressed run of up to MaxRun cells and is expanded back into the
// individual intervening coordinates.
//
// Returns ErrNoPathData if the search ran without WithReturnPath,
// ErrOutOfBounds if n lies outside the grid, ErrUnreachable if n was
// never labeled.
// Complexity: O(L) where L is the returned path length.
func (r *Result) PathTo(n Node) ([]grid.Coord, error) {
	if r.prev == nil {
		return nil, ErrNoPathData
	}
	if !r.g.InBounds(n.Coord) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, n.Coord.X, n.Coord.Y)
	}
	idx := nodeIndex(r.g, n)
	if r.dist[idx] == Unlabeled {
		return nil, fmt.Errorf("%w: (%d,%d)/%s", ErrUnreachable, n.Coord.X, n.Coord.Y, n.Orient)
	}

	// Walk terminal → source, expanding each run edge cell by cell, then
	// reverse into source → terminal order.
	path := []grid.Coord{n.Coord}
	last := n.Coord
	for r.prev[idx] != noPrev {
		idx = r.prev[idx]
		from := nodeAt(r.g, idx).Coord
		path = appendRunCells(path, last, from)
		last = from
	}

	reverse(path)

	return path, nil
}

// Path reconstructs the cell sequence from the search source to the
// cheaper orientation node of c. Errors as BestNode and PathTo.
func (r *Result) Path(c grid.Coord) ([]grid.Coord, error) {
	n, err := r.BestNode(c)
	if err != nil {
		return nil, err
	}

	return r.PathTo(n)
}

// appendRunCells appends the cells strictly between to and from, plus
// from itself, walking backward from to. The two coordinates share one
// axis value because every run is a straight line.
func appendRunCells(path []grid.Coord, to, from grid.Coord) []grid.Coord {
	dx, dy := unitStep(to, from)
	for c := to; c != from; {
		c.X += dx
		c.Y += dy
		path = append(path, c)
	}

	return path
}

// unitStep returns the single-cell offset leading from a toward b.
func unitStep(a, b grid.Coord) (dx, dy int) {
	switch {
	case b.X > a.X:
		dx = 1
	case b.X < a.X:
		dx = -1
	case b.Y > a.Y:
		dy = 1
	case b.Y < a.Y:
		dy = -1
	}

	return dx, dy
}

// reverse flips path in place.
func reverse(path []grid.Coord) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
