package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/slot"
)

// timeNow is swapped out by tests that need a fixed clock.
var timeNow = time.Now

// timeFormat returns the clock rendering: the persisted setting wins over
// the config file.
func (a *App) timeFormat() slot.TimeFormat {
	tf := a.config.Display.TimeFormat
	if a.settings.TimeFormat != "" {
		tf = a.settings.TimeFormat
	}
	if tf == "12h" {
		return slot.Format12h
	}
	return slot.Format24h
}

// parseClock converts "HH:MM" to a slot index, rejecting times that do not
// fall on a ten-minute boundary.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	if minute%slot.MinutesEach != 0 {
		return 0, fmt.Errorf("time %q must fall on a %d-minute boundary", s, slot.MinutesEach)
	}
	return slot.FromClock(hour, minute), nil
}

// parseDateFlag resolves a --date flag value, defaulting to today.
// Accepts yyyy-MM-dd, "today", "tomorrow", "yesterday", and weekday names.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return dateutil.TruncateToDay(timeNow()), nil
	}
	return dateutil.ParseRelativeDate(s, timeNow())
}

// minutesToSlots converts a duration in minutes to slots, rounding up so a
// 25-minute request still reserves three full slots.
func minutesToSlots(minutes int) int {
	return (minutes + slot.MinutesEach - 1) / slot.MinutesEach
}

// formatDuration renders a slot count as a compact hours/minutes string.
func formatDuration(slots int) string {
	minutes := slot.ToMinutes(slots)
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// parseWeekdays parses a comma list like "mon,wed,fri" into weekdays.
func parseWeekdays(s string) ([]time.Weekday, error) {
	names := map[string]time.Weekday{
		"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
		"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
		"sat": time.Saturday,
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if len(part) > 3 {
			part = part[:3]
		}
		d, ok := names[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, d)
	}
	return days, nil
}
