package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4}, // truncating % would give -1
		{-5, 5, 0},
		{-6, 5, 4},
		{12, 5, 2},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"default size", 30, 20, false},
		{"single cell", 1, 1, false},
		{"zero width", 0, 20, true},
		{"zero height", 30, 0, true},
		{"negative", -3, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.w, tc.h)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidGrid) {
					t.Errorf("NewGrid(%d, %d) error = %v, expected ErrInvalidGrid", tc.w, tc.h, err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewGrid(%d, %d) unexpected error: %v", tc.w, tc.h, err)
			}
		})
	}
}

func TestMoveInWrapsAtEdges(t *testing.T) {
	g := Grid{Width: 5, Height: 4}

	tests := []struct {
		name     string
		from     GridPos
		dir      Direction
		expected GridPos
	}{
		{"left edge", GridPos{0, 2}, DirLeft, GridPos{4, 2}},
		{"right edge", GridPos{4, 2}, DirRight, GridPos{0, 2}},
		{"top edge", GridPos{3, 0}, DirUp, GridPos{3, 3}},
		{"bottom edge", GridPos{3, 3}, DirDown, GridPos{3, 0}},
		{"interior", GridPos{2, 2}, DirRight, GridPos{3, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.MoveIn(tc.dir, g); got != tc.expected {
				t.Errorf("%v.MoveIn(%v) = %v, expected %v", tc.from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestMoveInInverseCancels(t *testing.T) {
	g := Grid{Width: 7, Height: 3}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := NewGridPos(x, y)
			for _, d := range Directions {
				moved := p.MoveIn(d, g)
				if !g.Contains(moved) {
					t.Fatalf("%v.MoveIn(%v) = %v left the grid", p, d, moved)
				}
				if back := moved.MoveIn(d.Inverse(), g); back != p {
					t.Errorf("%v -> %v -> %v, expected to return to start", p, d, back)
				}
			}
		}
	}
}

func TestRandomGridPosStaysInside(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	rng := rand.New(rand.NewSource(7))
	seen := make(map[GridPos]bool)

	for i := 0; i < 500; i++ {
		p := RandomGridPos(rng, g)
		if !g.Contains(p) {
			t.Fatalf("RandomGridPos returned %v outside %dx%d", p, g.Width, g.Height)
		}
		seen[p] = true
	}

	if len(seen) != g.Cells() {
		t.Errorf("expected every cell to be drawn, saw %d of %d", len(seen), g.Cells())
	}
}

func TestNormalize(t *testing.T) {
	g := Grid{Width: 30, Height: 20}
	if got := g.Normalize(GridPos{X: -1, Y: 20}); got != (GridPos{X: 29, Y: 0}) {
		t.Errorf("Normalize = %v, expected (29,0)", got)
	}
}
