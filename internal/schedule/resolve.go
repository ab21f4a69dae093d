// Package schedule resolves per-day slot occupancy from recurring templates
// and one-off blocks, and guards all block mutations with conflict detection.
package schedule

import (
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/slot"
)

// Entry is a resolved occupant of one or more slots on a single date.
// It is either a one-off block or a materialized recurring template
// instance; recurring instances carry a synthesized id encoding the
// template and date. Entries are ephemeral and never persisted.
type Entry struct {
	ID               string
	Title            string
	StartTime        int // first slot occupied on this date
	Duration         int // slots occupied on this date (clipped)
	Color            block.Color
	ReminderLeadTime int
	IsRecurring      bool
	Spillover        bool   // carried over midnight from the previous day
	TemplateID       string // set for recurring instances
	DeadlineFor      string // set for one-off deadline blocks
}

// End returns the exclusive end slot of the entry on its date.
func (e *Entry) End() int {
	return e.StartTime + e.Duration
}

// Schedule is the resolved slot→entry mapping for one date.
type Schedule map[int]*Entry

// At returns the entry occupying slot s, or nil when it is free.
func (s Schedule) At(i int) *Entry {
	return s[i]
}

// Free reports whether every slot in [start, start+duration) is unoccupied.
// The range is clamped to the day domain before scanning.
func (s Schedule) Free(start, duration int) bool {
	end := slot.ClampEnd(start + duration)
	for i := max(start, 0); i < end; i++ {
		if s[i] != nil {
			return false
		}
	}
	return true
}

// Entries returns the distinct entries in the schedule, sorted by start slot.
func (s Schedule) Entries() []*Entry {
	seen := make(map[string]bool, len(s))
	var out []*Entry
	for i := 0; i < slot.PerDay; i++ {
		e := s[i]
		if e == nil || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

// Resolve produces the authoritative slot occupancy for a date from the
// recurring templates and the one-off blocks stored under that date.
//
// Precedence, lowest slot priority first written:
//  1. Spillover from templates applicable to the previous day whose span
//     crosses midnight claims [0, spill) first.
//  2. Templates applicable to the date itself claim their span, first
//     writer wins; a slot already taken by spillover stays taken.
//  3. One-off blocks overwrite unconditionally, letting a concrete block
//     break a recurring template on a specific day.
//
// The function is pure: identical inputs produce an identical mapping.
func Resolve(date time.Time, templates []*block.Template, oneOffs []*block.Block) Schedule {
	sched := make(Schedule)
	key := dateutil.Key(date)
	prev := dateutil.PreviousDay(date)

	for _, t := range templates {
		if !t.AppliesOn(prev) {
			continue
		}
		spill := t.Spillover()
		if spill <= 0 {
			continue
		}
		spill = slot.ClampEnd(spill)
		entry := &Entry{
			ID:               t.ID + "-" + key + "-spillover",
			Title:            t.Title,
			StartTime:        0,
			Duration:         spill,
			Color:            t.Color,
			ReminderLeadTime: t.ReminderLeadTime,
			IsRecurring:      true,
			Spillover:        true,
			TemplateID:       t.ID,
		}
		for i := 0; i < spill; i++ {
			if sched[i] == nil {
				sched[i] = entry
			}
		}
	}

	for _, t := range templates {
		if !t.AppliesOn(date) {
			continue
		}
		end := slot.ClampEnd(t.End())
		if end <= t.StartTime {
			continue
		}
		entry := &Entry{
			ID:               t.ID + "-" + key,
			Title:            t.Title,
			StartTime:        t.StartTime,
			Duration:         end - t.StartTime,
			Color:            t.Color,
			ReminderLeadTime: t.ReminderLeadTime,
			IsRecurring:      true,
			TemplateID:       t.ID,
		}
		for i := t.StartTime; i < end; i++ {
			if sched[i] == nil {
				sched[i] = entry
			}
		}
	}

	for _, b := range oneOffs {
		end := slot.ClampEnd(b.End())
		start := b.StartTime
		if start < 0 {
			start = 0
		}
		if end <= start {
			continue
		}
		entry := &Entry{
			ID:               b.ID,
			Title:            b.Title,
			StartTime:        start,
			Duration:         end - start,
			Color:            b.Color,
			ReminderLeadTime: b.ReminderLeadTime,
			DeadlineFor:      b.DeadlineFor,
		}
		for i := start; i < end; i++ {
			sched[i] = entry
		}
	}

	return sched
}
