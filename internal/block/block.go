// Package block defines the core schedule record types for tempo.
package block

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/javiermolinar/tempo/internal/slot"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidColor    = errors.New("unknown color token")
	ErrNegativeLead    = errors.New("reminder lead time cannot be negative")
	ErrInvalidStart    = errors.New("start slot outside day range")
	ErrInvalidDuration = errors.New("duration must be at least one slot")
)

// Color is a named palette token carried on blocks and templates.
// Rendering maps tokens to actual colors; the core only stores them.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorTeal   Color = "teal"
	ColorPink   Color = "pink"
)

// Colors lists every palette token in display order.
var Colors = []Color{
	ColorBlue, ColorRed, ColorGreen, ColorYellow,
	ColorPurple, ColorOrange, ColorTeal, ColorPink,
}

// Valid returns true if the color is a known palette token.
func (c Color) Valid() bool {
	switch c {
	case ColorBlue, ColorRed, ColorGreen, ColorYellow,
		ColorPurple, ColorOrange, ColorTeal, ColorPink:
		return true
	default:
		return false
	}
}

// Block is a one-off schedule entry tied to exactly one calendar date.
// StartTime and Duration are in ten-minute slots.
type Block struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	StartTime        int    `json:"startTime"`
	Duration         int    `json:"duration"`
	Color            Color  `json:"color"`
	ReminderLeadTime int    `json:"reminderLeadTime"` // minutes before start
	IsRecurring      bool   `json:"isRecurring"`
	DeadlineFor      string `json:"deadlineFor,omitempty"` // inbox item id
}

// New creates a one-off Block with a fresh id after validating its fields.
func New(title string, start, duration int, color Color) (*Block, error) {
	b := &Block{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		StartTime: start,
		Duration:  duration,
		Color:     color,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the block's fields at the mutation boundary.
func (b *Block) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if b.StartTime < 0 || b.StartTime >= slot.PerDay {
		return fmt.Errorf("%w: %d", ErrInvalidStart, b.StartTime)
	}
	if b.Duration < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, b.Duration)
	}
	if b.Color != "" && !b.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, b.Color)
	}
	if b.ReminderLeadTime < 0 {
		return ErrNegativeLead
	}
	return nil
}

// End returns the exclusive end slot, which may conceptually exceed the day.
func (b *Block) End() int {
	return b.StartTime + b.Duration
}

// Occupies reports whether the block covers slot s within the day.
func (b *Block) Occupies(s int) bool {
	return s >= b.StartTime && s < b.End() && s < slot.PerDay
}

// Clone returns a copy of the block.
func (b *Block) Clone() *Block {
	cp := *b
	return &cp
}
