package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirRight, DirDown, DirLeft, DirUp}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step of d in screen coordinates (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name as produced by String.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("unknown direction %q (want up, down, left or right)", s)
}

// DirectionFromKey maps a key name to a direction.
// Keys without a mapping return false and should be ignored.
func DirectionFromKey(key string) (Direction, bool) {
	switch key {
	case "up", "w", "W":
		return DirUp, true
	case "down", "s", "S":
		return DirDown, true
	case "left", "a", "A":
		return DirLeft, true
	case "right", "d", "D":
		return DirRight, true
	}
	return DirRight, false
}
