package snake

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidOptions is returned by NewSession for options that cannot host a game.
var ErrInvalidOptions = errors.New("invalid session options")

// Options configures a new Session.
type Options struct {
	Grid           core.Grid
	StartDirection core.Direction
	InitialLength  int
	// Start is the initial head cell. Nil places the head at (width/4, height/2).
	Start *core.GridPos
	// AvoidSnake places food only on cells the snake does not cover.
	AvoidSnake bool
	// Seed for the session RNG. 0 draws a seed from the OS entropy source.
	Seed int64
}

// DefaultOptions returns the classic 30x20 setup with a two-cell snake facing right.
func DefaultOptions() Options {
	return Options{
		Grid:           core.Grid{Width: 30, Height: 20},
		StartDirection: core.DirRight,
		InitialLength:  2,
	}
}

// Validate checks that the options describe a playable session.
func (o Options) Validate() error {
	if err := o.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d, must be at least 1", ErrInvalidOptions, o.InitialLength)
	}

	// The starting body is laid out in a straight line. It must leave a free
	// cell ahead of the head, or the first straight tick enters the tail.
	room := o.Grid.Width
	if o.StartDirection == core.DirUp || o.StartDirection == core.DirDown {
		room = o.Grid.Height
	}
	if o.InitialLength > 1 && o.InitialLength >= room {
		return fmt.Errorf("%w: initial length %d does not fit a %dx%d grid facing %s",
			ErrInvalidOptions, o.InitialLength, o.Grid.Width, o.Grid.Height, o.StartDirection)
	}

	if o.Start != nil && !o.Grid.Contains(*o.Start) {
		return fmt.Errorf("%w: start %v is outside the grid", ErrInvalidOptions, *o.Start)
	}
	return nil
}

// Session owns everything one game needs: the snake, the food and the RNG
// used to place food. Sessions share no state, so several can run side by side.
type Session struct {
	opts  Options
	seed  int64
	rng   *rand.Rand
	snake *Snake
	food  *Food
	tick  uint64
	eaten int
	over  bool
}

// NewSession validates opts and creates a fresh snake and food.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = entropySeed()
	}

	start := core.NewGridPos(opts.Grid.Width/4, opts.Grid.Height/2)
	if opts.Start != nil {
		start = *opts.Start
	}

	s := &Session{
		opts:  opts,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		snake: NewSnake(opts.Grid, start, opts.StartDirection, opts.InitialLength),
		food:  &Food{},
	}
	s.spawnFood()
	return s, nil
}

// entropySeed reads a seed from the OS entropy source.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// spawnFood places the food according to the session's placement policy.
func (s *Session) spawnFood() {
	if s.opts.AvoidSnake {
		s.food.RespawnAvoiding(s.rng, s.opts.Grid, s.snake.Occupies)
		return
	}
	s.food.Respawn(s.rng, s.opts.Grid)
}

// Tick advances the session by one step. Food is respawned after it is eaten
// and the session ends when the snake runs into itself. Ticks after the end
// change nothing and keep reporting OutcomeAteSelf.
func (s *Session) Tick() Outcome {
	if s.over {
		return OutcomeAteSelf
	}

	s.tick++
	outcome := s.snake.Tick(*s.food)

	switch outcome {
	case OutcomeAteFood:
		s.eaten++
		s.spawnFood()
	case OutcomeAteSelf:
		s.over = true
	}
	return outcome
}

// RequestTurn forwards a turn request to the snake. Ignored after game over.
func (s *Session) RequestTurn(d core.Direction) {
	if s.over {
		return
	}
	s.snake.RequestTurn(d)
}

// Snake returns the session's snake for read-only observation.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns a copy of the current food.
func (s *Session) Food() Food {
	return *s.food
}

// Grid returns the playfield dimensions.
func (s *Session) Grid() core.Grid {
	return s.opts.Grid
}

// Over reports whether the snake has run into itself.
func (s *Session) Over() bool {
	return s.over
}

// Ticks returns the number of ticks played.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Eaten returns how many pieces of food the snake has eaten.
func (s *Session) Eaten() int {
	return s.eaten
}

// Seed returns the seed the session RNG was created with.
func (s *Session) Seed() int64 {
	return s.seed
}
