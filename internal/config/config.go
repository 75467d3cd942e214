// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for a snake session and its host.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	TickRate   int              `yaml:"tick_rate"`
	FrameRate  int              `yaml:"frame_rate"`
	Snake      SnakeConfig      `yaml:"snake"`
	Food       FoodConfig       `yaml:"food"`
	Seed       int64            `yaml:"seed"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	InitialLength  int    `yaml:"initial_length"`
	StartDirection string `yaml:"start_direction"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"`
}

// Validate reports the first problem that would keep the config from
// starting a session.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d, must be positive", ErrInvalidConfig, c.TickRate)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate %d, must be positive", ErrInvalidConfig, c.FrameRate)
	}
	if c.Difficulty != "" {
		if _, err := LookupPreset(c.Difficulty); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := c.SessionOptions(); err != nil {
		return err
	}
	return nil
}

// GridSize returns the configured playfield.
func (c Config) GridSize() core.Grid {
	return core.Grid{Width: c.Grid.Width, Height: c.Grid.Height}
}

// SessionOptions converts the config into options for snake.NewSession.
func (c Config) SessionOptions() (snake.Options, error) {
	dir, err := core.ParseDirection(c.Snake.StartDirection)
	if err != nil {
		return snake.Options{}, fmt.Errorf("%w: snake.start_direction: %w", ErrInvalidConfig, err)
	}

	opts := snake.Options{
		Grid:           c.GridSize(),
		StartDirection: dir,
		InitialLength:  c.Snake.InitialLength,
		AvoidSnake:     c.Food.AvoidSnake,
		Seed:           c.Seed,
	}
	if err := opts.Validate(); err != nil {
		return snake.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return opts, nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
