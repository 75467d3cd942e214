package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the board frame.
const hudHeight = 1

// RequiredSize returns the smallest screen that fits the HUD and the framed board.
func RequiredSize(grid core.Grid) (w, h int) {
	return grid.Width + 2, grid.Height + 2 + hudHeight
}

// Render draws the HUD, the board frame, the food and the snake into dst.
// It only reads session state.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	grid := s.opts.Grid
	reqW, reqH := RequiredSize(grid)
	offX := max(0, (dst.Width()-reqW)/2)
	offY := max(0, (dst.Height()-reqH)/2)

	hud := fmt.Sprintf("Snake  Length: %d  Eaten: %d", s.snake.Len(), s.eaten)
	dst.DrawText(offX, offY, hud, core.ColorHUD)

	boardY := offY + hudHeight
	dst.DrawBox(offX, boardY, reqW, grid.Height+2, core.ColorBorder)

	// Cell (x, y) lands inside the frame.
	cell := func(p core.GridPos) (int, int) {
		return offX + 1 + p.X, boardY + 1 + p.Y
	}

	fx, fy := cell(s.food.Pos)
	dst.SetColored(fx, fy, '*', core.ColorFood)

	for _, p := range s.snake.Body() {
		x, y := cell(p)
		dst.SetColored(x, y, 'o', core.ColorSnakeBody)
	}

	headRune := 'O'
	if s.over {
		headRune = 'X'
	}
	hx, hy := cell(s.snake.Head())
	dst.SetColored(hx, hy, headRune, core.ColorSnakeHead)
}
