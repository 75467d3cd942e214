// Package loop provides the fixed-timestep driver that decides how many
// simulation ticks are due for a given amount of real time.
package loop

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTickRate is returned by NewDriver for non-positive rates.
var ErrInvalidTickRate = errors.New("tick rate must be positive")

// Driver accumulates elapsed real time and converts it into whole ticks.
// Frames may arrive at any rate; the simulation always advances in steps
// of exactly one interval.
type Driver struct {
	rate        int
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	started     bool
	ticks       uint64
}

// NewDriver creates a driver running tickRate ticks per second.
func NewDriver(tickRate int) (*Driver, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTickRate, tickRate)
	}
	return &Driver{
		rate:     tickRate,
		interval: time.Second / time.Duration(tickRate),
	}, nil
}

// Start anchors the clock at now. Time before now is never accumulated,
// so calling Start on resume skips the paused interval.
func (d *Driver) Start(now time.Time) {
	d.last = now
	d.started = true
}

// Due adds the time elapsed since the previous call and returns how many
// ticks are owed. The owed ticks are consumed.
func (d *Driver) Due(now time.Time) int {
	if !d.started {
		d.Start(now)
		return 0
	}

	// A frame stamped before the anchor is stale; keep the anchor so its
	// time is not counted twice.
	elapsed := now.Sub(d.last)
	if elapsed <= 0 {
		return 0
	}
	d.last = now
	d.accumulator += elapsed

	n := 0
	for d.accumulator >= d.interval {
		d.accumulator -= d.interval
		n++
	}
	d.ticks += uint64(n)
	return n
}

// Advance runs step once for every tick due at now and returns how many ran.
// A slow frame runs several steps back to back.
func (d *Driver) Advance(now time.Time, step func()) int {
	n := d.Due(now)
	for i := 0; i < n; i++ {
		step()
	}
	return n
}

// Alpha returns the fractional progress toward the next tick, in [0, 1).
func (d *Driver) Alpha() float64 {
	return float64(d.accumulator) / float64(d.interval)
}

// Ticks returns the total number of ticks handed out.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Rate returns the configured ticks per second.
func (d *Driver) Rate() int {
	return d.rate
}

// Interval returns the duration of one tick.
func (d *Driver) Interval() time.Duration {
	return d.interval
}
