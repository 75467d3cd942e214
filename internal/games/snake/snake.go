// Package snake implements the snake simulation: the movement and
// direction-queueing state machine, food placement and the per-session state
// the platform drives one tick at a time.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Outcome is the result of a single tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAteFood
	OutcomeAteSelf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeAteSelf:
		return "ate_self"
	default:
		return "unknown"
	}
}

// Segment is one cell occupied by the snake.
type Segment struct {
	Pos core.GridPos
}

// Snake holds the head, the body queue and the three-slot direction state.
//
// dir is the direction the next tick moves in. lastDir is the direction the
// previous tick actually moved in. While they differ a turn is still in flight
// and further requests are parked in next until the turn has been realized.
type Snake struct {
	grid core.Grid
	head Segment
	body []Segment // body[0] is the cell the head just left, last is the tail

	dir     core.Direction
	lastDir core.Direction
	next    core.Direction
	hasNext bool

	ate Outcome
}

// NewSnake creates a snake with its head at pos facing dir. The remaining
// length-1 segments are laid out in a straight line behind the head.
func NewSnake(grid core.Grid, pos core.GridPos, dir core.Direction, length int) *Snake {
	s := &Snake{
		grid:    grid,
		head:    Segment{Pos: grid.Normalize(pos)},
		dir:     dir,
		lastDir: dir,
	}

	behind := dir.Inverse()
	p := s.head.Pos
	for i := 1; i < length; i++ {
		p = p.MoveIn(behind, grid)
		s.body = append(s.body, Segment{Pos: p})
	}
	return s
}

// RequestTurn asks the snake to head in d. It may be called any number of
// times between ticks; reversing into the neck is always refused.
func (s *Snake) RequestTurn(d core.Direction) {
	if s.dir != s.lastDir && d != s.dir.Inverse() {
		// A turn is already queued for the coming tick, park this one.
		s.next = d
		s.hasNext = true
		return
	}
	if d != s.lastDir.Inverse() {
		s.dir = d
	}
}

// Tick advances the snake by one cell and reports what the head ran into.
func (s *Snake) Tick(food Food) Outcome {
	if s.lastDir == s.dir && s.hasNext {
		s.dir = s.next
		s.hasNext = false
	}

	newHead := Segment{Pos: s.head.Pos.MoveIn(s.dir, s.grid)}

	s.body = append(s.body, Segment{})
	copy(s.body[1:], s.body)
	s.body[0] = s.head
	s.head = newHead

	switch {
	case s.eatsSelf():
		s.ate = OutcomeAteSelf
	case s.head.Pos == food.Pos:
		s.ate = OutcomeAteFood
	default:
		s.ate = OutcomeNone
	}

	if s.ate == OutcomeNone {
		s.body = s.body[:len(s.body)-1]
	}

	s.lastDir = s.dir
	return s.ate
}

// eatsSelf reports whether the head overlaps any body segment.
func (s *Snake) eatsSelf() bool {
	for _, seg := range s.body {
		if seg.Pos == s.head.Pos {
			return true
		}
	}
	return false
}

// Head returns the head position.
func (s *Snake) Head() core.GridPos {
	return s.head.Pos
}

// Body returns a copy of the body positions, most recent first.
func (s *Snake) Body() []core.GridPos {
	out := make([]core.GridPos, len(s.body))
	for i, seg := range s.body {
		out[i] = seg.Pos
	}
	return out
}

// Positions returns the head followed by the body.
func (s *Snake) Positions() []core.GridPos {
	return append([]core.GridPos{s.head.Pos}, s.Body()...)
}

// Occupies reports whether any segment, head included, covers p.
func (s *Snake) Occupies(p core.GridPos) bool {
	if s.head.Pos == p {
		return true
	}
	for _, seg := range s.body {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// Len returns the number of cells the snake covers.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Direction returns the direction the next tick will move in.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// LastDirection returns the direction the previous tick moved in.
func (s *Snake) LastDirection() core.Direction {
	return s.lastDir
}

// Pending returns the parked turn, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.next, s.hasNext
}

// LastOutcome returns the outcome of the most recent tick.
func (s *Snake) LastOutcome() Outcome {
	return s.ate
}
