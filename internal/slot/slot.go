// Package slot defines the fixed discretization of a day into ten-minute slots
// and the conversions between slot indices and clock times.
package slot

import (
	"errors"
	"fmt"
)

// A day is divided into 144 slots of 10 minutes each.
const (
	PerDay      = 144
	PerHour     = 6
	MinutesEach = 10
)

// Validation errors.
var (
	ErrOutOfRange      = errors.New("slot index out of day range")
	ErrInvalidDuration = errors.New("duration must be at least one slot")
)

// TimeFormat selects the clock rendering for human-readable output.
type TimeFormat string

const (
	Format24h TimeFormat = "24h"
	Format12h TimeFormat = "12h"
)

// Validate rejects slot indices outside the absolute day domain [0, PerDay).
// Spillover computations intentionally bypass this and clamp afterwards.
func Validate(s int) error {
	if s < 0 || s >= PerDay {
		return fmt.Errorf("%w: %d", ErrOutOfRange, s)
	}
	return nil
}

// ValidateDuration rejects non-positive durations at the mutation boundary.
func ValidateDuration(d int) error {
	if d < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, d)
	}
	return nil
}

// Clock returns the hour and minute at which slot s begins.
// The result is only meaningful for s in [0, PerDay).
func Clock(s int) (hour, minute int) {
	return s / PerHour, (s % PerHour) * MinutesEach
}

// FromClock returns the slot containing the given clock time.
func FromClock(hour, minute int) int {
	return hour*PerHour + minute/MinutesEach
}

// FromMinutes converts minutes since midnight to a slot index.
func FromMinutes(m int) int {
	return m / MinutesEach
}

// ToMinutes converts a slot index to minutes since midnight.
func ToMinutes(s int) int {
	return s * MinutesEach
}

// ClampEnd restricts an exclusive range end to [0, PerDay].
func ClampEnd(s int) int {
	if s < 0 {
		return 0
	}
	if s > PerDay {
		return PerDay
	}
	return s
}

// Format renders the start of slot s as a clock time in the given format.
func Format(s int, f TimeFormat) string {
	h, m := Clock(s)
	if f == Format12h {
		suffix := "AM"
		display := h
		switch {
		case h == 0:
			display = 12
		case h == 12:
			suffix = "PM"
		case h > 12:
			display = h - 12
			suffix = "PM"
		}
		return fmt.Sprintf("%d:%02d %s", display, m, suffix)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatRange renders [start, start+duration) as a human-readable time span.
// The end is rendered at the slot boundary following the last occupied slot,
// so a single slot at 09:00 renders as "09:00-09:10".
func FormatRange(start, duration int, f TimeFormat) string {
	end := start + duration
	if end > PerDay {
		end = PerDay
	}
	return Format(start, f) + "-" + formatEnd(end, f)
}

// formatEnd renders an exclusive range end; PerDay maps to midnight.
func formatEnd(s int, f TimeFormat) string {
	if s >= PerDay {
		if f == Format12h {
			return "12:00 AM"
		}
		return "24:00"
	}
	return Format(s, f)
}
