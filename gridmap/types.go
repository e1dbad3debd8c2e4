package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap construction and queries.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")

	// ErrDimensionMismatch indicates the parsed matrix does not match the declared size.
	ErrDimensionMismatch = errors.New("gridmap: dimension mismatch")

	// ErrUnknownGlyph indicates a rune that is neither the free nor the obstacle glyph
	// (reported only with WithStrictGlyphs).
	ErrUnknownGlyph = errors.New("gridmap: unknown glyph")

	// ErrInvalidConnectivity indicates a connectivity parameter k outside [2, MaxK].
	ErrInvalidConnectivity = errors.New("gridmap: invalid connectivity")
)

// MaxK is the largest supported connectivity exponent (2^MaxK directions).
const MaxK = 16

// Default glyphs of the text format.
const (
	FreeGlyph     = '.'
	ObstacleGlyph = '#'
)

// Point is a lattice point (cell corner) addressed by row I and column J.
type Point struct {
	I, J int
}

// Add returns the point displaced by d.
func (p Point) Add(d Direction) Point {
	return Point{I: p.I + d.DI, J: p.J + d.DJ}
}

// String formats the point as "(i,j)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

// Direction is an integer move vector on the lattice.
type Direction struct {
	DI, DJ int
}

// ParseOptions configures Parse.
type ParseOptions struct {
	// Free is the glyph of a free cell. Default '.'.
	Free rune
	// Obstacle is the glyph of an obstacle cell. Default '#'.
	Obstacle rune
	// Strict rejects any rune other than Free, Obstacle or whitespace.
	Strict bool
}

// ParseOption configures Parse.
type ParseOption func(*ParseOptions)

// DefaultParseOptions returns '.'/'#' glyphs with lenient handling of other runes.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Free:     FreeGlyph,
		Obstacle: ObstacleGlyph,
		Strict:   false,
	}
}

// WithGlyphs overrides the free and obstacle glyphs.
func WithGlyphs(free, obstacle rune) ParseOption {
	return func(o *ParseOptions) {
		o.Free = free
		o.Obstacle = obstacle
	}
}

// WithStrictGlyphs makes Parse fail with ErrUnknownGlyph on unexpected runes
// instead of skipping them.
func WithStrictGlyphs() ParseOption {
	return func(o *ParseOptions) {
		o.Strict = true
	}
}
