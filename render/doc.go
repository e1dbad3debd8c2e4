// Package render draws a gridmap.Map and an optional pathfind.Path.
//
//   - Image / PNG: a raster image through fogleman/gg, one square per cell,
//     the path as a polyline through lattice points with start and goal
//     markers.
//   - Terminal: the map on a tcell screen, one character per cell, with the
//     cells crossed by the path highlighted.
//   - Text: the same character raster as a string, for plain output.
//
// A nil path draws the map alone.
package render
