package block

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/slot"
)

// Template validation errors.
var (
	ErrNoWeekdays     = errors.New("template needs at least one weekday")
	ErrInvalidWeekday = errors.New("weekday must be in 0..6")
	ErrWindowInverted = errors.New("template end date before start date")
)

// Template is a recurring pattern that materializes a virtual block on every
// matching weekday, optionally bounded by an inclusive [StartDate, EndDate]
// window. Weekdays follow time.Weekday numbering (0 = Sunday).
// StartTime+Duration may exceed the day; the excess spills into the next day.
type Template struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	StartTime        int            `json:"startTime"`
	Duration         int            `json:"duration"`
	Color            Color          `json:"color"`
	DaysOfWeek       []time.Weekday `json:"daysOfWeek"`
	ReminderLeadTime int            `json:"reminderLeadTime"`
	StartDate        string         `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate          string         `json:"endDate,omitempty"`   // YYYY-MM-DD
}

// NewTemplate creates a recurring Template with a fresh id after validation.
func NewTemplate(title string, start, duration int, color Color, days []time.Weekday) (*Template, error) {
	t := &Template{
		ID:         uuid.NewString(),
		Title:      strings.TrimSpace(title),
		StartTime:  start,
		Duration:   duration,
		Color:      color,
		DaysOfWeek: days,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the template's fields.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.StartTime < 0 || t.StartTime >= slot.PerDay {
		return fmt.Errorf("%w: %d", ErrInvalidStart, t.StartTime)
	}
	if t.Duration < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, t.Duration)
	}
	if t.Color != "" && !t.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, t.Color)
	}
	if t.ReminderLeadTime < 0 {
		return ErrNegativeLead
	}
	if len(t.DaysOfWeek) == 0 {
		return ErrNoWeekdays
	}
	for _, d := range t.DaysOfWeek {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
		}
	}
	start, end, err := t.window()
	if err != nil {
		return err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return ErrWindowInverted
	}
	return nil
}

// AppliesOn reports whether the template materializes on the given date:
// the weekday must be in DaysOfWeek and the date must fall inside the
// optional [StartDate, EndDate] window (inclusive on both ends).
func (t *Template) AppliesOn(date time.Time) bool {
	if !t.onWeekday(date.Weekday()) {
		return false
	}
	start, end, err := t.window()
	if err != nil {
		return false
	}
	day := dateutil.TruncateToDay(date)
	if !start.IsZero() && day.Before(start) {
		return false
	}
	if !end.IsZero() && day.After(end) {
		return false
	}
	return true
}

func (t *Template) onWeekday(w time.Weekday) bool {
	for _, d := range t.DaysOfWeek {
		if d == w {
			return true
		}
	}
	return false
}

// window parses the optional date bounds. Zero times mean unbounded.
func (t *Template) window() (start, end time.Time, err error) {
	if t.StartDate != "" {
		start, err = dateutil.ParseDate(t.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("template %s start date: %w", t.ID, err)
		}
	}
	if t.EndDate != "" {
		end, err = dateutil.ParseDate(t.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("template %s end date: %w", t.ID, err)
		}
	}
	return start, end, nil
}

// End returns the exclusive end slot, possibly beyond the day boundary.
func (t *Template) End() int {
	return t.StartTime + t.Duration
}

// Spillover returns how many slots the template extends past midnight,
// or 0 when it ends within its own day.
func (t *Template) Spillover() int {
	over := t.End() - slot.PerDay
	if over < 0 {
		return 0
	}
	return over
}
