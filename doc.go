// Package pathfinder plans shortest paths on grid maps: 2^k-connected A*,
// Theta* and the optimal any-angle planner ANYA.
//
// 🚀 What is in the box?
//
//	A grid planning library that brings together:
//		• Grid maps: lattice points at cell corners, exact line of sight,
//		  diagonal-corner rules, 2^k move directions
//		• Planners: A* over 2^k directions, Theta*, ANYA over exact rational intervals
//		• One driver: every planner is a generator behind the same best-first search
//		• Batches: HCL scenario files and MovingAI benchmarks, run concurrently
//		• Output: text, PNG and terminal rendering of maps and paths
//
// Packages:
//
//	rational/  — exact fractions used for ANYA interval endpoints
//	gridmap/   — Map, Point, line of sight, k-neighbour directions, regions
//	heuristic/ — Euclidean, Manhattan, Octile, Chebyshev, Zero
//	search/    — generic best-first driver, frontier, closed set, stepper
//	astar/     — A* over 2^k directions and Theta*
//	anya/      — ANYA interval search
//	pathfind/  — algorithm selection, path reconstruction and validation
//	movingai/  — MovingAI .map and .scen readers
//	render/    — text, PNG (gg) and terminal (tcell) output
//	scenario/  — HCL scenario files, concurrent runner, metrics and tracing
//	cmd/pathfinder — the command line tool
//
// Quick ASCII example (the wall detour found by ANYA):
//
//	S * .        S = (0,0), G = (3,0)
//	# # *        path (0,0) (1,2) (2,2) (3,0)
//	G * .        length 1 + 2√5
//
//	go run ./cmd/pathfinder -algorithm anya -map maps/arena.map 0 0 10 12
package pathfinder
