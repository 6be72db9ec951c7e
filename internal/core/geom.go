// Package core provides fundamental types and utilities for the snake game.
// It contains no terminal or transport dependencies to keep game logic pure
// and testable.
package core

// Position is a 1-based grid coordinate. Position (x, y) is drawn at
// column x-1, row y-1 of the character grid.
type Position struct {
	X, Y int
}

// Pos creates a new position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position one unit away in the given direction delta.
func (p Position) Step(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Bounds is the board size in cells, re-queried from the terminal every tick.
type Bounds struct {
	W, H int
}

// NewBounds creates bounds with the given width and height.
func NewBounds(w, h int) Bounds {
	return Bounds{W: w, H: h}
}

// Playable reports whether p lies strictly inside the border.
// Coordinates 0 and 1 and anything >= the bound on either axis are border.
func (b Bounds) Playable(p Position) bool {
	return p.X > 1 && p.X < b.W && p.Y > 1 && p.Y < b.H
}

// HasInterior reports whether any playable cell exists.
func (b Bounds) HasInterior() bool {
	return b.W > 2 && b.H > 2
}

// IsBorderCell reports whether grid cell (col, row) belongs to the outer ring.
func (b Bounds) IsBorderCell(col, row int) bool {
	return row == 0 || row == b.H-1 || col == 0 || col == b.W-1
}

// Cell converts a position to zero-based grid coordinates.
func (b Bounds) Cell(p Position) (col, row int) {
	return p.X - 1, p.Y - 1
}
