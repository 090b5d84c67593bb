// Command gridpath reads a digit-cost grid from a file and prints the
// minimum corner-to-corner path cost under the two standard run
// configurations: turn within 1..3 cells, and commit to 4..10 cells.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ivonindza/gridpath/grid"
	"github.com/ivonindza/gridpath/render"
	"github.com/ivonindza/gridpath/runpath"
)

var (
	inputPath = flag.String("input", "input", "path to the grid file")
	showPath  = flag.Bool("render", false, "render the 4..10 route on the grid")
)

func main() {
	flag.Parse()

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *inputPath, err)
	}
	input := string(data)

	cost, _, err := runpath.Solve(input, 1, 3)
	if err != nil {
		log.Fatalf("solving with run bounds (1,3): %v", err)
	}
	fmt.Printf("Run bounds (1,3): minimum cost %d\n", cost)

	cost, path, err := runpath.Solve(input, 4, 10)
	if err != nil {
		log.Fatalf("solving with run bounds (4,10): %v", err)
	}
	fmt.Printf("Run bounds (4,10): minimum cost %d\n", cost)

	if *showPath {
		g, err := grid.Parse(input)
		if err != nil {
			log.Fatalf("parsing grid: %v", err)
		}
		if err := render.Render(os.Stdout, g, path); err != nil {
			log.Fatalf("rendering path: %v", err)
		}
	}
}
