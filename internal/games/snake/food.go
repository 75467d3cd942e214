package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single piece of food on the grid.
type Food struct {
	Pos core.GridPos
}

// NewFood creates food at pos.
func NewFood(pos core.GridPos) *Food {
	return &Food{Pos: pos}
}

// Respawn moves the food to a uniformly random cell.
// The new cell may lie under the snake.
func (f *Food) Respawn(rng *rand.Rand, grid core.Grid) {
	f.Pos = core.RandomGridPos(rng, grid)
}

// RespawnAvoiding moves the food to a uniformly random cell for which
// occupied returns false. When every cell is occupied it falls back to Respawn.
func (f *Food) RespawnAvoiding(rng *rand.Rand, grid core.Grid, occupied func(core.GridPos) bool) {
	var free []core.GridPos
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := core.NewGridPos(x, y)
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		f.Respawn(rng, grid)
		return
	}
	f.Pos = free[rng.Intn(len(free))]
}
