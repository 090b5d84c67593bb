// Package runpath defines core types, configuration options, and sentinel
// errors for the constrained-run shortest-path solver.
package runpath

import (
	"errors"

	"github.com/ivonindza/gridpath/grid"
)

// Sentinel errors returned by the runpath solver.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to ShortestPath.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrBadRunBounds indicates an invalid run configuration:
	// MinRun must be ≥ 1 and MaxRun ≥ MinRun.
	ErrBadRunBounds = errors.New("runpath: run bounds must satisfy 1 <= MinRun <= MaxRun")

	// ErrOutOfBounds indicates that the source, a queried node, or an
	// internally accessed coordinate lies outside the grid extent.
	ErrOutOfBounds = errors.New("runpath: coordinate out of bounds")

	// ErrUnreachable indicates that the requested node was never labeled:
	// no sequence of legal runs connects it to the source under the
	// configured run bounds.
	ErrUnreachable = errors.New("runpath: node unreachable from source")

	// ErrNoPathData indicates a path was requested from a Result computed
	// without WithReturnPath.
	ErrNoPathData = errors.New("runpath: predecessors not recorded; enable WithReturnPath")
)

// Orientation is the axis class of the move that arrived at a node:
// Horizontal for east/west arrivals, Vertical for north/south. It is not
// a compass direction. A node's outgoing moves always run along the
// perpendicular axis, which is what forces the mover to alternate axes.
type Orientation uint8

const (
	// Horizontal marks a node entered by an east- or west-bound run.
	Horizontal Orientation = iota
	// Vertical marks a node entered by a north- or south-bound run.
	Vertical
)

// String returns "Horizontal" or "Vertical".
func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}

	return "Vertical"
}

// perpendicular returns the opposite axis class.
func (o Orientation) perpendicular() Orientation {
	if o == Horizontal {
		return Vertical
	}

	return Horizontal
}

// Node is a search-space position: a grid coordinate tagged with the
// orientation it was entered by. Each grid cell maps to exactly two Nodes.
type Node struct {
	Coord  grid.Coord
	Orient Orientation
}

// Edge is one legal move out of a Node: a straight run of MinRun..MaxRun
// cells along the perpendicular axis, compressed into a single edge.
// Cost is the sum of the costs of every cell stepped onto during the run.
type Edge struct {
	To   Node
	Cost int64
}

// Options configures a single ShortestPath invocation.
//
// MinRun     – minimum cells the mover must traverse along one axis
// before turning is legal. Must be ≥ 1.
// MaxRun     – maximum cells before turning is mandatory. Must be ≥ MinRun.
// ReturnPath – if true, predecessors are recorded so paths can be
// reconstructed from the Result; otherwise only costs are kept.
type Options struct {
	MinRun     int
	MaxRun     int
	ReturnPath bool
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithRun sets the run bounds: the mover must travel at least min and at
// most max cells along one axis before turning. Panics with the
// ErrBadRunBounds message if min < 1 or max < min; invalid bounds are a
// programming error, caught as early as possible.
func WithRun(min, max int) Option {
	if min < 1 || max < min {
		panic(ErrBadRunBounds.Error())
	}

	return func(o *Options) {
		o.MinRun = min
		o.MaxRun = max
	}
}

// WithReturnPath enables predecessor recording, allowing PathTo and Path
// on the returned Result. Off by default to save memory.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns the baseline configuration: run bounds (1, 3),
// no path recording.
func DefaultOptions() Options {
	return Options{
		MinRun:     1,
		MaxRun:     3,
		ReturnPath: false,
	}
}
