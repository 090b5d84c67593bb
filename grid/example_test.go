package grid_test

import (
	"fmt"

	"github.com/ivonindza/gridpath/grid"
)

// ExampleParse demonstrates loading a digit field and querying it.
func ExampleParse() {
	g, err := grid.Parse("241\n321\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cost, _ := g.Cost(grid.Coord{X: 1, Y: 1})
	fmt.Printf("%dx%d, cost(1,1)=%d, inside(3,0)=%v\n",
		g.Width(), g.Height(), cost, g.InBounds(grid.Coord{X: 3, Y: 0}))
	// Output: 3x2, cost(1,1)=2, inside(3,0)=false
}
