// Package gridpath computes exact shortest paths on rectangular cost
// grids for movers that must alternate movement axis and travel a bounded
// number of cells per straight run.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• grid:    immutable digit-cost fields with O(1) lookups
//		• runpath: constrained-run Dijkstra with path reconstruction
//		• render:  terminal visualization of solved routes
//
// ✨ Why choose gridpath?
//
//   - Exact answers – label-setting search, provably minimal costs
//   - Pure Go core – the solver does no I/O and holds no global state
//   - Reusable inputs – one parsed grid serves any number of searches
//     with different run bounds
//
// Quick ASCII example, run bounds (1,3):
//
//	    19        *9
//	    11        **
//
//	the cheapest corner-to-corner route (starred) costs 2, turning at
//	the first legal cell to dodge the 9.
//
// Dive into the runpath package docs for the full model: orientation
// nodes, compressed run edges, and the lazy-deletion priority queue.
//
//	go get github.com/ivonindza/gridpath
package gridpath
