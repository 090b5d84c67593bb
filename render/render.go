// Package render draws a cost grid to a terminal, highlighting the cells
// of a solved route.
//
// Each grid row becomes one output line of digit characters; cells that
// appear in the path are colored. Rendering is a reporting concern and
// lives outside the solver packages, which never perform I/O.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/ivonindza/gridpath/grid"
)

// pathColor highlights route cells. Respects color.NoColor, so output
// degrades to plain digits on non-terminal writers.
var pathColor = color.New(color.FgBlue, color.Bold)

// Render writes the digit grid to w, one line per row, coloring every
// cell that appears in path. Coordinates in path outside the grid extent
// are ignored. Complexity: O(W×H + len(path)).
func Render(w io.Writer, g *grid.Grid, path []grid.Coord) error {
	onPath := make(map[grid.Coord]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			cost, err := g.Cost(c)
			if err != nil {
				return err
			}
			cell := string(byte('0' + cost))
			if _, ok := onPath[c]; ok {
				cell = pathColor.Sprint(cell)
			}
			if _, err = bw.WriteString(cell); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
