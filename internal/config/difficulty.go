package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for difficulty names that are not presets.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Preset describes one difficulty level. Difficulty only changes how fast
// the snake moves.
type Preset struct {
	Name        DifficultyPreset
	TickRate    int
	Description string
}

var presets = []Preset{
	{DifficultyEasy, 5, "slow snake, plenty of time to turn"},
	{DifficultyNormal, 8, "the classic pace"},
	{DifficultyHard, 12, "fast snake, quick reflexes needed"},
}

// Presets returns all difficulty presets, slowest first.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by name, ignoring case and surrounding space.
func LookupPreset(name DifficultyPreset) (Preset, error) {
	key := DifficultyPreset(strings.ToLower(strings.TrimSpace(string(name))))
	for _, p := range presets {
		if p.Name == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// ApplyPreset sets the tick rate from a difficulty preset.
func ApplyPreset(cfg *Config, name DifficultyPreset) error {
	p, err := LookupPreset(name)
	if err != nil {
		return err
	}
	cfg.Difficulty = p.Name
	cfg.TickRate = p.TickRate
	return nil
}
