package loop

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewDriverRejectsBadRate(t *testing.T) {
	for _, rate := range []int{0, -1, -60} {
		d, err := NewDriver(rate)
		if !errors.Is(err, ErrInvalidTickRate) {
			t.Errorf("NewDriver(%d) error = %v, expected ErrInvalidTickRate", rate, err)
		}
		if d != nil {
			t.Errorf("NewDriver(%d) should return nil driver", rate)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{5, 200 * time.Millisecond},
		{8, 125 * time.Millisecond},
		{10, 100 * time.Millisecond},
	}
	for _, tc := range tests {
		d, err := NewDriver(tc.rate)
		if err != nil {
			t.Fatalf("NewDriver(%d) failed: %v", tc.rate, err)
		}
		if d.Rate() != tc.rate {
			t.Errorf("Rate() = %d, expected %d", d.Rate(), tc.rate)
		}
		if d.Interval() != tc.expected {
			t.Errorf("Interval() at %d/s = %v, expected %v", tc.rate, d.Interval(), tc.expected)
		}
	}
}

func TestAdvanceAtFrameRate(t *testing.T) {
	// 60 frames of ~16.7ms at 10 ticks/s yield 10 ticks.
	d, _ := NewDriver(10)
	d.Start(epoch)

	frame := time.Second / 60
	now := epoch
	steps := 0
	for i := 0; i < 60; i++ {
		now = now.Add(frame)
		d.Advance(now, func() { steps++ })
	}

	// 60 * (1s/60) truncates slightly below one second.
	if steps != 9 && steps != 10 {
		t.Errorf("steps = %d, expected about 10", steps)
	}
	if d.Ticks() != uint64(steps) {
		t.Errorf("Ticks() = %d, expected %d", d.Ticks(), steps)
	}
}

func TestAdvanceCatchesUp(t *testing.T) {
	d, _ := NewDriver(8)
	d.Start(epoch)

	steps := 0
	n := d.Advance(epoch.Add(time.Second), func() { steps++ })
	if n != 8 || steps != 8 {
		t.Errorf("Advance() = %d with %d steps, expected 8", n, steps)
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	d, _ := NewDriver(10)
	d.Start(epoch)

	if n := d.Due(epoch.Add(150 * time.Millisecond)); n != 1 {
		t.Fatalf("Due() = %d, expected 1", n)
	}
	if a := d.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("Alpha() = %v, expected 0.5", a)
	}
	if n := d.Due(epoch.Add(200 * time.Millisecond)); n != 1 {
		t.Errorf("Due() = %d, expected the carried half tick to complete", n)
	}
}

func TestStartSkipsPausedTime(t *testing.T) {
	d, _ := NewDriver(10)
	d.Start(epoch)
	d.Due(epoch.Add(50 * time.Millisecond))

	// Resume an hour later: the gap is not owed.
	resume := epoch.Add(time.Hour)
	d.Start(resume)
	if n := d.Due(resume.Add(60 * time.Millisecond)); n != 1 {
		t.Errorf("Due() after resume = %d, expected 1", n)
	}
}

func TestDueBeforeStartAnchors(t *testing.T) {
	d, _ := NewDriver(10)

	if n := d.Due(epoch); n != 0 {
		t.Errorf("first Due() = %d, expected 0", n)
	}
	if n := d.Due(epoch.Add(time.Second)); n != 10 {
		t.Errorf("Due() = %d, expected 10", n)
	}
}

func TestClockGoingBackwardsIsIgnored(t *testing.T) {
	d, _ := NewDriver(10)
	d.Start(epoch)

	if n := d.Due(epoch.Add(-time.Second)); n != 0 {
		t.Errorf("Due() = %d, expected 0", n)
	}
	if d.Alpha() != 0 {
		t.Errorf("Alpha() = %v, expected 0", d.Alpha())
	}
}

func TestStaleFrameIsNotCountedTwice(t *testing.T) {
	d, _ := NewDriver(10)
	d.Start(epoch)

	total := d.Due(epoch.Add(time.Second))
	// A frame queued before the previous one arrives late.
	if n := d.Due(epoch.Add(500 * time.Millisecond)); n != 0 {
		t.Errorf("stale Due() = %d, expected 0", n)
	}
	total += d.Due(epoch.Add(1100 * time.Millisecond))

	if total != 11 || d.Ticks() != 11 {
		t.Errorf("ticks for 1.1s = %d (Ticks() = %d), expected 11", total, d.Ticks())
	}
}

func TestFrameBeforeResumeAnchorIsIgnored(t *testing.T) {
	d, _ := NewDriver(10)
	d.Start(epoch)

	resume := epoch.Add(time.Minute)
	d.Start(resume)
	d.Due(resume.Add(-time.Second))

	if n := d.Due(resume.Add(200 * time.Millisecond)); n != 2 {
		t.Errorf("Due() = %d after resume, expected 2", n)
	}
}
