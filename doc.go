// Package gridpath provides A* search over an 8-connected occupancy grid.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive renderers or debugging tools.
//
// Step costs and the octile heuristic are integers scaled by 100 so the
// arithmetic stays exact. When the goal cannot be reached the search still
// returns the path to the cell that came closest to it.
package gridpath
