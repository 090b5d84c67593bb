// Package grid models a rectangular field of per-cell movement costs,
// parsed once from a block of digit characters and immutable afterwards.
//
// The grid is the read-only half of a path search: it answers bounds and
// cost queries in O(1) and exposes a row-major linearization so callers
// can keep per-cell search state in flat arrays.
package grid

import (
	"fmt"
	"strings"
)

// Parse constructs a Grid from a text blob of newline-separated rows,
// each character a decimal digit giving that cell's movement cost.
// Trailing newlines are ignored.
//
// Returns ErrEmptyGrid if the input has no rows or no columns,
// ErrNonRectangular if any row length differs from the first,
// ErrNonDigit (with row/column context) on any non-digit character.
// Nothing is partially constructed on failure.
// Complexity: O(W×H) time and memory.
func Parse(input string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])

	costs := make([]int64, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			ch := line[x]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrNonDigit, ch, y, x)
			}
			costs = append(costs, int64(ch-'0'))
		}
	}

	return &Grid{width: w, height: h, costs: costs}, nil
}

// FromRows constructs a Grid from a 2D cost slice. The input is copied,
// so later mutation of rows does not affect the Grid.
//
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrCostRange if any cell
// lies outside 0..9.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]int64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])

	costs := make([]int64, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c < 0 || c > 9 {
				return nil, fmt.Errorf("%w: %d at row %d, column %d", ErrCostRange, c, y, x)
			}
			costs = append(costs, c)
		}
	}

	return &Grid{width: w, height: h, costs: costs}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid extent.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cost returns the movement cost of the cell at c.
// Returns ErrOutOfBounds if c lies outside the grid extent.
// Complexity: O(1).
func (g *Grid) Cost(c Coord) (int64, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}

	return g.costs[c.Y*g.width+c.X], nil
}

// Index maps c to its row-major index: Y*Width + X. The caller must
// ensure c is in bounds. Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// CoordAt converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) CoordAt(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}
