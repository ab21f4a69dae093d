package ui

import (
	"strings"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 54},
		{"09:30", 57},
		{"12:10", 73},
		{"23:50", 143},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.input)
		if err != nil {
			t.Errorf("parseClock(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseClockRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "9", "24:00", "09:60", "-1:00", "09:05", "nine:thirty"} {
		if _, err := parseClock(input); err == nil {
			t.Errorf("parseClock(%q) expected error", input)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	days, err := parseWeekdays("mon,wed,fri")
	if err != nil {
		t.Fatalf("parseWeekdays() error = %v", err)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %v, want %v", i, days[i], want[i])
		}
	}
}

func TestParseWeekdaysAcceptsFullNames(t *testing.T) {
	days, err := parseWeekdays("Monday, Saturday")
	if err != nil {
		t.Fatalf("parseWeekdays() error = %v", err)
	}
	if len(days) != 2 || days[0] != time.Monday || days[1] != time.Saturday {
		t.Errorf("parseWeekdays() = %v, want [Monday Saturday]", days)
	}
}

func TestParseWeekdaysRejectsUnknownDay(t *testing.T) {
	if _, err := parseWeekdays("mon,funday"); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestMinutesToSlots(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{10, 1},
		{25, 3}, // rounds up
		{60, 6},
		{90, 9},
	}
	for _, tt := range tests {
		if got := minutesToSlots(tt.minutes); got != tt.want {
			t.Errorf("minutesToSlots(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		slots int
		want  string
	}{
		{1, "10m"},
		{6, "1h"},
		{9, "1h30m"},
		{12, "2h"},
		{4, "40m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.slots); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.slots, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	if got := bar(50, 10); got != strings.Repeat("█", 5)+strings.Repeat("░", 5) {
		t.Errorf("bar(50, 10) = %q", got)
	}
	if got := bar(0, 10); got != strings.Repeat("░", 10) {
		t.Errorf("bar(0, 10) = %q", got)
	}
	if got := bar(150, 10); got != strings.Repeat("█", 10) {
		t.Errorf("bar(150, 10) = %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"); got != "6ba7b810" {
		t.Errorf("shortID() = %q, want %q", got, "6ba7b810")
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, want %q", got, "abc")
	}
}
