// Package pathfind is the single entry point over the three planners:
// 2^k A* and Theta* (package astar) and ANYA (package anya).
//
// Solve validates a Task against a gridmap.Map, dispatches to the selected
// Algorithm and converts the goal node into a Path of lattice points.
// Path offers the helpers the command line and the scenario runner share:
// Turns drops collinear interior points, EuclideanLength recomputes the
// length from the points, and Validate checks a path against the map.
//
// Errors:
//
//   - ErrUnknownAlgorithm from ParseAlgorithm and Solve.
//   - ErrBlockedSegment, ErrNotTaut from Validate.
//   - Errors of the underlying planners are returned unchanged.
package pathfind
