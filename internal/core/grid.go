// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidGrid is returned when grid dimensions cannot host a game.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid describes the fixed size of a toroidal playfield in cells.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid, rejecting degenerate dimensions.
func NewGrid(width, height int) (Grid, error) {
	g := Grid{Width: width, Height: height}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate reports whether both dimensions are positive.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d, both dimensions must be positive", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains returns true if p lies inside the grid.
func (g Grid) Contains(p GridPos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Normalize wraps an arbitrary position onto the grid.
func (g Grid) Normalize(p GridPos) GridPos {
	return GridPos{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// GridPos is a cell coordinate on a Grid.
type GridPos struct {
	X, Y int
}

// NewGridPos creates a position from raw coordinates.
// Callers pass values that are already inside the grid.
func NewGridPos(x, y int) GridPos {
	return GridPos{X: x, Y: y}
}

// RandomGridPos returns a uniformly distributed cell of g.
func RandomGridPos(rng *rand.Rand, g Grid) GridPos {
	return GridPos{
		X: rng.Intn(g.Width),
		Y: rng.Intn(g.Height),
	}
}

// MoveIn returns the neighbouring cell in direction d, wrapping around the edges of g.
func (p GridPos) MoveIn(d Direction, g Grid) GridPos {
	dx, dy := d.Delta()
	return GridPos{
		X: Wrap(p.X+dx, g.Width),
		Y: Wrap(p.Y+dy, g.Height),
	}
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Wrap reduces v into [0, n) using Euclidean modulo, so -1 becomes n-1.
// Go's % truncates toward zero and keeps the sign of v.
func Wrap(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
