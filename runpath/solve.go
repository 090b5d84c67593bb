package runpath

import (
	"github.com/ivonindza/gridpath/grid"
)

// Solve parses input as a digit-cost grid and returns the minimum total
// cost of moving from the top-left cell to the bottom-right cell under
// run bounds (minRun, maxRun), together with the cell sequence of one
// cheapest route (source and terminal inclusive). The cost of the
// starting cell is never charged; a 1×1 grid therefore solves to 0.
//
// The two standard configurations are (1, 3) and (4, 10).
//
// Errors: grid.ErrEmptyGrid, grid.ErrNonRectangular, grid.ErrNonDigit on
// malformed input; ErrBadRunBounds on an invalid run configuration;
// ErrUnreachable if no sequence of legal runs connects the corners.
func Solve(input string, minRun, maxRun int) (int64, []grid.Coord, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, nil, err
	}
	if minRun < 1 || maxRun < minRun {
		return 0, nil, ErrBadRunBounds
	}

	res, err := ShortestPath(g, grid.Coord{X: 0, Y: 0}, WithRun(minRun, maxRun), WithReturnPath())
	if err != nil {
		return 0, nil, err
	}

	goal := grid.Coord{X: g.Width() - 1, Y: g.Height() - 1}
	n, err := res.BestNode(goal)
	if err != nil {
		return 0, nil, err
	}
	path, err := res.PathTo(n)
	if err != nil {
		return 0, nil, err
	}
	cost, _ := res.Cost(n)

	return cost, path, nil
}
