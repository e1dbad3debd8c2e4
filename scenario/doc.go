// Package scenario runs batches of path planning tasks described in HCL.
//
// A scenario file declares maps and runs:
//
//	map "arena" {
//	  file = "maps/arena.map"          # MovingAI map, relative to the file
//	}
//
//	map "box" {
//	  height = 3
//	  width  = 4
//	  rows   = ["....", ".#..", "...."]
//	}
//
//	run "corner" {
//	  map       = "box"
//	  algorithm = "anya"               # astar | theta | anya (default astar)
//	  k         = 3                    # connectivity for astar and theta
//	  heuristic = "euclidean"
//	  start     = [0, 0]
//	  goal      = [height, width]      # height and width of the map are in scope
//	  expect    = 5                    # optional expected length
//	}
//
// Parse and Load decode the file with hclparse and gohcl and resolve it into
// a Scenario: maps are read once and shared read-only by every run.
//
// Runner executes the runs on a bounded pool of goroutines. Each run is one
// single-threaded search; it gets a uuid, a log line, an OpenTelemetry span
// and Prometheus observations, and ends in a Report. A run whose length
// differs from its expectation by more than Tolerance is reported as a
// mismatch.
package scenario
