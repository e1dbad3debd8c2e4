// Package gridmap models an immutable 2D occupancy grid and answers the
// geometric questions every planner in this module asks about it.
//
// What:
//
//   - Map wraps a height×width matrix of obstacle flags. Cells outside the
//     matrix are always obstacles.
//   - Searches move on the lattice of cell corners: point (i,j) is the
//     top-left corner of cell (i,j), so valid points satisfy 0 ≤ i ≤ height
//     and 0 ≤ j ≤ width. The four cells around point (i,j) are (i-1,j-1),
//     (i-1,j), (i,j-1) and (i,j).
//   - TraversableStep and LineOfSight decide whether a straight segment
//     between two lattice points stays clear of obstacle interiors, using
//     exact rational stepping.
//   - KNeighborDirections builds the 2^k uniformly spread move vectors used by
//     the k-directional planners; Neighbors applies them.
//   - IsDiagonalIntersection and SideOf describe points where two obstacle
//     cells touch only at a corner.
//
// Construction:
//
//   - New(height, width, cells)        from a [][]bool (true = obstacle).
//   - FromString(s, height, width)     from text, '.' free and '#' obstacle.
//   - Parse(r, height, width, opts...) from an io.Reader with custom glyphs.
//
// Complexity:
//
//   - IsObstacle, InBounds, IsDiagonalIntersection, SideOf: O(1).
//   - TraversableStep, LineOfSight: O(|Δi| + |Δj|).
//   - KNeighborDirections(k): O(2^k).
//
// Errors:
//
//   - ErrEmptyGrid: height or width below one.
//   - ErrDimensionMismatch: parsed rows or columns disagree with the declared size.
//   - ErrUnknownGlyph: strict parsing met a rune that is neither glyph.
//   - ErrInvalidConnectivity: k < 2 or k > MaxK.
//
// A Map is safe for concurrent readers; nothing mutates it after construction.
package gridmap
