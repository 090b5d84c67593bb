package runpath_test

import (
	"errors"
	"testing"

	"github.com/ivonindza/gridpath/grid"
	"github.com/ivonindza/gridpath/runpath"
)

// layered is a 5×5 grid where every cell of row y costs y+1, making
// cumulative run costs easy to compute by hand.
const layered = "11111\n22222\n33333\n44444\n55555"

func mustParse(t *testing.T, input string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	return g
}

//----------------------------------------------------------------------------//
// Neighbor Generation Tests
//----------------------------------------------------------------------------//

// TestNeighbors_HorizontalNode verifies that a horizontally entered node
// emits vertical runs in both directions with cumulative costs, clipped
// at the grid boundary.
func TestNeighbors_HorizontalNode(t *testing.T) {
	g := mustParse(t, layered)

	n := runpath.Node{Coord: grid.Coord{X: 2, Y: 2}, Orient: runpath.Horizontal}
	edges, err := runpath.Neighbors(g, n, 1, 3)
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}

	// North yields rows 1 and 0 (row -1 clips); south yields rows 3 and 4.
	want := []runpath.Edge{
		{To: runpath.Node{Coord: grid.Coord{X: 2, Y: 1}, Orient: runpath.Vertical}, Cost: 2},
		{To: runpath.Node{Coord: grid.Coord{X: 2, Y: 0}, Orient: runpath.Vertical}, Cost: 3},
		{To: runpath.Node{Coord: grid.Coord{X: 2, Y: 3}, Orient: runpath.Vertical}, Cost: 4},
		{To: runpath.Node{Coord: grid.Coord{X: 2, Y: 4}, Orient: runpath.Vertical}, Cost: 9},
	}
	assertEdges(t, edges, want)
}

// TestNeighbors_VerticalNode verifies horizontal emission from a
// vertically entered node.
func TestNeighbors_VerticalNode(t *testing.T) {
	g := mustParse(t, layered)

	n := runpath.Node{Coord: grid.Coord{X: 2, Y: 2}, Orient: runpath.Vertical}
	edges, err := runpath.Neighbors(g, n, 1, 3)
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}

	// Row 2 cells all cost 3; west clips at x=0, east at x=4.
	want := []runpath.Edge{
		{To: runpath.Node{Coord: grid.Coord{X: 1, Y: 2}, Orient: runpath.Horizontal}, Cost: 3},
		{To: runpath.Node{Coord: grid.Coord{X: 0, Y: 2}, Orient: runpath.Horizontal}, Cost: 6},
		{To: runpath.Node{Coord: grid.Coord{X: 3, Y: 2}, Orient: runpath.Horizontal}, Cost: 3},
		{To: runpath.Node{Coord: grid.Coord{X: 4, Y: 2}, Orient: runpath.Horizontal}, Cost: 6},
	}
	assertEdges(t, edges, want)
}

// TestNeighbors_MinRunPrefix verifies that cells within the mandatory
// prefix contribute cost without becoming edge targets.
func TestNeighbors_MinRunPrefix(t *testing.T) {
	g := mustParse(t, layered)

	// From the top-left corner, only the southbound run survives: rows
	// 1..3 (costs 2+3+4=9) are skipped, row 4 is the single target.
	n := runpath.Node{Coord: grid.Coord{X: 0, Y: 0}, Orient: runpath.Horizontal}
	edges, err := runpath.Neighbors(g, n, 4, 10)
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}

	want := []runpath.Edge{
		{To: runpath.Node{Coord: grid.Coord{X: 0, Y: 4}, Orient: runpath.Vertical}, Cost: 14},
	}
	assertEdges(t, edges, want)
}

// TestNeighbors_PrefixLeavesGrid verifies that a direction whose
// mandatory prefix crosses the boundary yields no edges at all.
func TestNeighbors_PrefixLeavesGrid(t *testing.T) {
	g := mustParse(t, layered)

	// From the middle row with MinRun=4, neither the north nor the south
	// prefix fits inside the 5-row grid.
	n := runpath.Node{Coord: grid.Coord{X: 0, Y: 2}, Orient: runpath.Horizontal}
	edges, err := runpath.Neighbors(g, n, 4, 10)
	if err != nil {
		t.Fatalf("Neighbors error: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("Neighbors = %v; want none", edges)
	}
}

// TestNeighbors_Errors verifies validation of run bounds and node position.
func TestNeighbors_Errors(t *testing.T) {
	g := mustParse(t, layered)

	n := runpath.Node{Coord: grid.Coord{X: 0, Y: 0}, Orient: runpath.Horizontal}
	if _, err := runpath.Neighbors(g, n, 0, 3); !errors.Is(err, runpath.ErrBadRunBounds) {
		t.Errorf("min=0 error = %v; want ErrBadRunBounds", err)
	}
	if _, err := runpath.Neighbors(g, n, 3, 2); !errors.Is(err, runpath.ErrBadRunBounds) {
		t.Errorf("max<min error = %v; want ErrBadRunBounds", err)
	}

	outside := runpath.Node{Coord: grid.Coord{X: 9, Y: 9}, Orient: runpath.Vertical}
	if _, err := runpath.Neighbors(g, outside, 1, 3); !errors.Is(err, runpath.ErrOutOfBounds) {
		t.Errorf("outside node error = %v; want ErrOutOfBounds", err)
	}
}

// assertEdges compares generated edges to the expected list, order included:
// negative direction first, then positive, nearest target first.
func assertEdges(t *testing.T, got, want []runpath.Edge) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("edge count = %d (%v); want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}
