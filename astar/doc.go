// Package astar implements two point-based planners on a gridmap.Map:
//
//   - AStar: A* over 2^k-directional moves between lattice points. Every move
//     is a primitive integer vector checked with Map.TraversableStep; its cost
//     is the Euclidean length of the vector. Points that are diagonal
//     obstacle corners are tracked per side, so a path never slips through
//     two obstacle cells that touch only at a corner.
//   - ThetaStar: the same enumeration, but a successor that can see its
//     grandparent (Map.LineOfSight) is attached to the grandparent directly.
//     This relaxes the path into any-angle segments.
//
// Both return the search.Result of the shared driver; the goal node's G is
// the path length and its Parent chain is the path.
//
// Complexity: O(n · 2^k · L) where n is the number of expanded points and L
// the longest move length (Theta* adds O(line length) per successor).
package astar
