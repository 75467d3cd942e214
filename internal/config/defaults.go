package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration: a 30x20 grid at 8 ticks
// per second with a two-cell snake facing right.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		TickRate:  8,
		FrameRate: 60,
		Snake: SnakeConfig{
			InitialLength:  2,
			StartDirection: core.DirRight.String(),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
