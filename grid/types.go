// Package grid defines the core types and sentinel errors
// for the grid subpackage of github.com/ivonindza/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonDigit indicates a character outside '0'..'9' in textual input.
	ErrNonDigit = errors.New("grid: every cell must be a single decimal digit")
	// ErrCostRange indicates a programmatic cell cost outside 0..9.
	ErrCostRange = errors.New("grid: cell cost must be in range 0..9")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord identifies a grid cell. X grows rightward (column), Y grows
// downward (row). Coordinates outside the grid extent are invalid and
// are never stored.
type Coord struct {
	X, Y int
}

// Grid is an immutable rectangular table of per-cell movement costs.
// Dimensions are fixed at construction; costs are stored row-major.
// A Grid may safely be shared across sequential searches, since nothing
// mutates it after construction.
type Grid struct {
	width, height int
	costs         []int64
}
