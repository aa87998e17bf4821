package sim

import "fmt"

// Clock is the in-game time of day plus the day counter.
type Clock struct {
	Hour float64 // [0, DayLength)
	Day  int
}

// Advance moves the clock forward by dt real seconds. On reaching the end of
// the day it wraps to the start hour (not midnight) and bumps the day
// counter; the return value reports whether that happened.
func (c *Clock) Advance(dt float64, t Tuning) bool {
	c.Hour += dt * t.TimeScale
	if c.Hour < t.DayLength {
		return false
	}
	c.Hour = t.DayStartHour
	c.Day++
	return true
}

// Expired reports whether the day counter has passed the limit.
func (c Clock) Expired(t Tuning) bool { return c.Day > t.DayLimit }

// String renders the clock the way the HUD shows it, e.g. "Day 2 - 7:05 AM".
func (c Clock) String() string {
	hours := int(c.Hour)
	minutes := int((c.Hour - float64(hours)) * 60)
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("Day %d - %d:%02d %s", c.Day, display, minutes, ampm)
}
