package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the observable session state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Len      int
	Head     core.GridPos
	Body     []core.GridPos
	Dir      core.Direction
	Food     core.GridPos
	Eaten    int
	Outcome  Outcome
	GameOver bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Seed:     s.seed,
		Len:      s.snake.Len(),
		Head:     s.snake.Head(),
		Body:     s.snake.Body(),
		Dir:      s.snake.Direction(),
		Food:     s.food.Pos,
		Eaten:    s.eaten,
		Outcome:  s.snake.LastOutcome(),
		GameOver: s.over,
	}
}

// DebugState returns a string representation of the session state.
func (s *Session) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Seed: %d, Eaten: %d\n", s.tick, s.seed, s.eaten)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Last: %s", s.snake.Len(), s.snake.Direction(), s.snake.LastDirection())
	if next, ok := s.snake.Pending(); ok {
		fmt.Fprintf(&b, ", Pending: %s", next)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Head: %v, Food: %v\n", s.snake.Head(), s.food.Pos)
	fmt.Fprintf(&b, "Outcome: %s, GameOver: %v\n", s.snake.LastOutcome(), s.over)
	return b.String()
}
