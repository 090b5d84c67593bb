// Package runpath implements a label-setting shortest-path search over a
// cost grid whose mover must alternate movement axis at every turn and
// must travel between MinRun and MaxRun cells before turning.
//
// The search space doubles each grid cell into two nodes, one per arrival
// orientation, and compresses every straight run of MinRun..MaxRun cells
// into a single weighted edge toward the perpendicular orientation. A
// Dijkstra-style search with a min-heap priority queue and lazy deletion
// of stale entries then yields exact minimum costs.
//
// Complexity, with N = Width×Height grid cells and R = MaxRun-MinRun+1:
//
//   - Time:  O(N·R·log(N·R))
//   - Each of the 2N nodes is finalized at most once.
//   - Each finalization emits up to 2R edges, each of which may push
//     one heap entry; every heap operation costs O(log) of the heap size.
//   - Space: O(N·R)
//   - O(N) for the label arrays (cost, predecessor, finalized flag).
//   - O(N·R) worst-case heap entries under lazy decrease-key.
package runpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/ivonindza/gridpath/grid"
)

// Unlabeled is the cost reported for nodes the search never reached.
const Unlabeled = int64(math.MaxInt64)

// noPrev marks a node without a recorded predecessor.
const noPrev = -1

// ShortestPath computes the minimum accumulated cost from source to every
// reachable search node of g, under the run bounds carried by opts.
//
// The mover starts at source with no movement history, so both
// orientation nodes of source are seeded at cost zero; the cost to a
// destination cell is the cheaper of its two orientation nodes.
//
// Preconditions and validation (in order):
//  1. Run bounds must satisfy 1 ≤ MinRun ≤ MaxRun (ErrBadRunBounds).
//  2. g must be non-nil (ErrNilGrid).
//  3. g must have at least one row and one column (grid.ErrEmptyGrid).
//  4. source must lie inside the grid extent (ErrOutOfBounds).
//
// Options customization:
//
//   - WithRun(min, max): run bounds per invocation (default 1, 3).
//   - WithReturnPath(): record predecessors for path reconstruction.
//
// The returned Result owns its label arrays; g itself is never mutated
// and may be reused by later invocations with different run bounds.
func ShortestPath(g *grid.Grid, source grid.Coord, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinRun < 1 || cfg.MaxRun < cfg.MinRun {
		return nil, ErrBadRunBounds
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Width() == 0 || g.Height() == 0 {
		return nil, grid.ErrEmptyGrid
	}

	// 3) Validate the source coordinate.
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: source (%d,%d)", ErrOutOfBounds, source.X, source.Y)
	}

	// 4) Allocate label arrays: one slot per (cell, orientation) pair,
	//    indexed by orientation block + row-major cell index. Arrays beat
	//    maps here since the node space is bounded and known up front.
	nodes := 2 * g.Width() * g.Height()
	dist := make([]int64, nodes)
	done := make([]bool, nodes)
	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, nodes)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    dist,
		prev:    prev,
		done:    done,
		pq:      make(nodePQ, 0, nodes),
	}

	// 5) Seed labels and run the main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{g: g, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state of a single ShortestPath execution.
type runner struct {
	g       *grid.Grid // read-only input grid
	options Options    // run bounds and path recording flag
	dist    []int64    // node index → best known cost from source
	prev    []int      // node index → predecessor node index (nil if off)
	done    []bool     // node index → cost finalized
	pq      nodePQ     // min-heap of pending (cost, node) entries
}

// nodeIndex linearizes n into the label arrays: the Vertical block
// follows the Horizontal block, each ordered row-major.
func nodeIndex(g *grid.Grid, n Node) int {
	return int(n.Orient)*g.Width()*g.Height() + g.Index(n.Coord)
}

// nodeAt inverts nodeIndex.
func nodeAt(g *grid.Grid, idx int) Node {
	cells := g.Width() * g.Height()

	return Node{Coord: g.CoordAt(idx % cells), Orient: Orientation(idx / cells)}
}

// init sets every label to unlabeled, then seeds both orientation nodes
// of the source at cost zero and pushes them onto the heap.
func (r *runner) init(source grid.Coord) {
	for i := range r.dist {
		r.dist[i] = Unlabeled
	}
	for i := range r.prev {
		r.prev[i] = noPrev
	}

	heap.Init(&r.pq)
	for _, o := range [2]Orientation{Horizontal, Vertical} {
		n := Node{Coord: source, Orient: o}
		idx := nodeIndex(r.g, n)
		r.dist[idx] = 0
		heap.Push(&r.pq, &nodeItem{node: n, dist: 0})
	}
}

// process repeatedly pops the cheapest pending node, discards stale
// entries, finalizes the node, and relaxes its outgoing run edges.
// Terminates when the heap empties: every push stems from a strict cost
// improvement, and costs are non-negative integers, so the number of
// pushes per node is finite.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		idx := nodeIndex(r.g, item.node)

		// Lazy deletion: the same node may sit in the heap several times;
		// only the entry matching the current best cost of a not-yet
		// finalized node is live.
		if r.done[idx] || item.dist > r.dist[idx] {
			continue
		}
		r.done[idx] = true

		if err := r.relax(item.node, idx); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every run edge out of u and improves neighbor labels.
// Assumes dist[uIdx] is finalized.
func (r *runner) relax(u Node, uIdx int) error {
	edges, err := Neighbors(r.g, u, r.options.MinRun, r.options.MaxRun)
	if err != nil {
		// Unreachable for nodes that entered the heap, but kept as a
		// defensive invariant check.
		return fmt.Errorf("runpath: expanding (%d,%d)/%s: %w", u.Coord.X, u.Coord.Y, u.Orient, err)
	}

	var vIdx int
	var candidate int64
	for _, e := range edges {
		vIdx = nodeIndex(r.g, e.To)

		candidate = r.dist[uIdx] + e.Cost
		// Strict improvement only: first-found wins on cost ties, which
		// keeps predecessor chains acyclic even across zero-cost cells.
		if candidate >= r.dist[vIdx] {
			continue
		}

		r.dist[vIdx] = candidate
		if r.prev != nil {
			r.prev[vIdx] = uIdx
		}
		heap.Push(&r.pq, &nodeItem{node: e.To, dist: candidate})
	}

	return nil
}

// nodeItem is one pending heap entry: a search node and the path cost it
// was pushed with. Stale entries are filtered on pop, not on push.
type nodeItem struct {
	node Node
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered ascending by accumulated
// path cost, used with the lazy decrease-key strategy: improvements push
// duplicates, pops skip entries superseded by a better label.
type nodePQ []*nodeItem

// Len returns the number of pending entries.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders entries ascending by path cost.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push, x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
