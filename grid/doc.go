// Package grid provides an immutable rectangular cost field backing the
// runpath solver.
//
// What:
//
//   - Grid wraps a rectangular table of single-digit movement costs.
//   - Parse builds it from a text blob of digit rows; FromRows from slices.
//   - O(1) bounds checks, cost lookups, and row-major (de)linearization.
//
// Why:
//
//   - Path searches over terrain-like inputs: every cell charges a toll.
//   - The flat row-major Index lets search engines keep per-cell labels
//     in plain arrays instead of maps.
//
// Complexity:
//
//   - Parse / FromRows: O(W×H), Memory: O(W×H).
//   - InBounds / Cost / Index / CoordAt: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonDigit: textual input contains a character outside '0'..'9'.
//   - ErrCostRange: programmatic cost outside 0..9.
//   - ErrOutOfBounds: coordinate outside the grid extent.
package grid
