// Package habit defines habits, their life pillars, and daily check-ins.
package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/tempo/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyName     = errors.New("habit name cannot be empty")
	ErrInvalidPillar = errors.New("unknown pillar")
	ErrMalformedKey  = errors.New("malformed check-in key")
	ErrHabitNotFound = errors.New("habit not found")
)

// Pillar groups habits into life areas for coverage and radar metrics.
type Pillar string

const (
	PillarHealth        Pillar = "health"
	PillarCareer        Pillar = "career"
	PillarMind          Pillar = "mind"
	PillarRelationships Pillar = "relationships"
	PillarFinance       Pillar = "finance"
)

// Pillars lists every pillar in display order.
var Pillars = []Pillar{PillarHealth, PillarCareer, PillarMind, PillarRelationships, PillarFinance}

// Valid returns true if the pillar is a known value.
func (p Pillar) Valid() bool {
	switch p {
	case PillarHealth, PillarCareer, PillarMind, PillarRelationships, PillarFinance:
		return true
	default:
		return false
	}
}

// Habit represents a tracked recurring practice assigned to a pillar.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pillar    Pillar    `json:"pillar"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a Habit with a fresh id after validation.
func New(name string, pillar Pillar) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !pillar.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPillar, pillar)
	}
	return &Habit{
		ID:        uuid.NewString(),
		Name:      name,
		Pillar:    pillar,
		CreatedAt: time.Now(),
	}, nil
}

// MaxIntensity is the highest check-in intensity; cycling past it deletes
// the record, so persisted intensities are always 1..MaxIntensity.
const MaxIntensity = 4

// CheckIns maps "habitID__yyyy-MM-dd" keys to intensity values.
// An absent key means no check-in (intensity 0); zero is never stored.
type CheckIns map[string]int

// Key builds the check-in store key for a habit on a date.
func Key(habitID string, date time.Time) string {
	return habitID + "__" + dateutil.Key(date)
}

// ParseKey splits a check-in key back into habit id and date.
func ParseKey(key string) (habitID string, date time.Time, err error) {
	idx := strings.LastIndex(key, "__")
	if idx <= 0 {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	date, err = dateutil.ParseDate(key[idx+2:])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	return key[:idx], date, nil
}

// Intensity returns the recorded intensity for a habit on a date, 0 if none.
func (c CheckIns) Intensity(habitID string, date time.Time) int {
	return c[Key(habitID, date)]
}

// Cycle advances the check-in for a habit on a date through the mutation
// contract 0→1→2→3→4→deleted: each call increments the intensity, and a
// cycle past MaxIntensity removes the record entirely. Five applications
// from absent return the record to absent.
func (c CheckIns) Cycle(habitID string, date time.Time) int {
	key := Key(habitID, date)
	next := c[key] + 1
	if next > MaxIntensity {
		delete(c, key)
		return 0
	}
	c[key] = next
	return next
}
