// Package anya implements ANYA, an optimal any-angle planner that searches
// over intervals of grid rows instead of single lattice points.
//
// What:
//
//   - A search node is a root point (I, J) together with a closed interval
//     [A, B] on point row Row. Every point of the interval is visible from the
//     root, and the root is either the start or an obstacle corner that a
//     taut path must bend around.
//   - A flat node lies on the root's own row; a cone node lies on another row
//     and is the projection of the root through a window of free cells.
//   - Interval endpoints are rational (rational.Frac) so that projection,
//     integrality tests and corner decisions are exact.
//
// How:
//
//  1. The start point is expanded into flat intervals to the left and right
//     and into cone intervals on the rows above and below.
//  2. A flat node continues along its row past the far endpoint and opens
//     cones around the corner found there.
//  3. A cone node is projected one row further, split wherever the next row
//     of cells changes between free and blocked, and turned around corners
//     at integral endpoints with that corner as the new root.
//  4. Nodes are ordered by F = G + H where H is the exact Euclidean distance
//     from the root through the interval to the goal, mirrored when the goal
//     lies behind the interval row.
//  5. A root point reached again with a larger G is pruned both when the
//     node is generated and when it is popped.
//
// The run ends when a popped interval contains the goal. Search wraps that
// node in a terminal node placed on the goal itself, whose G is the path
// length and whose Parent chain visits every turning point.
//
// Errors:
//
//   - ErrNilMap, ErrOutOfBounds for invalid arguments.
//   - ErrInvariant (as a panic value) when WithInvariantChecks is set and a
//     generated interval breaks the node invariants.
//
// Complexity: successors of one node cost O(W) where W is the map width.
// The number of expanded nodes is not bounded polynomially in theory but
// stays close to the number of obstacle corners on practical maps.
package anya
