// Package search implements the best-first search driver shared by every
// path planner in this module, together with the two collections it runs on:
// the Frontier (priority queue of open nodes) and the Closed record (best g
// per expanded identity).
//
// What:
//
//   - Frontier[N, K] orders nodes by Score: lower F first, then lower H, then
//     the most recently created node (larger Seq). In Dedup mode it keeps at
//     most one entry per identity key and replaces it only on a strictly
//     better F; in Duplicates mode every push is kept.
//   - Closed[K] remembers the best g recorded for each expanded key. A popped
//     node whose key is closed with an equal-or-better g is a stale duplicate.
//   - Run drives a Generator to completion: pop best, skip stale, goal test,
//     expand, push children, close. The outcome is FOUND or EXHAUSTED; the
//     latter is not an error.
//   - Stepper exposes the same loop one expansion at a time for visual
//     stepping and tests.
//
// Why:
//
//   - A*, Theta* and interval search differ only in node type, identity key
//     and successor generation. Everything else (ordering, lazy deletion,
//     budgets, counters) lives here once.
//
// Budgets:
//
//	– WithContext:  checked once per iteration; cancellation returns ctx.Err() wrapped.
//	– WithMaxSteps: stops with ErrStepLimit after the given number of expansions.
//
// Complexity (n = nodes pushed):
//
//	– Time:   O(n log n) heap work plus the generator's own cost.
//	– Memory: O(n) for the frontier and the closed record.
//
// All state belongs to a single run. Nothing here is shared between runs, so
// independent searches may execute on different goroutines.
package search
