// Package remind watches the resolved schedule and emits an event when a
// block's reminder lead time elapses. Delivery (terminal bell, desktop
// notification) is the caller's concern.
package remind

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/slot"
)

// DefaultInterval is the polling cadence when none is configured.
const DefaultInterval = 30 * time.Second

// Event is a fired reminder for one schedule entry.
type Event struct {
	Entry    *schedule.Entry
	Date     time.Time // the day the entry belongs to
	StartsAt time.Time // wall-clock start of the block
	LeadTime int       // minutes of advance notice requested
}

// Resolver supplies the schedule for a given day. *schedule.Planner
// satisfies it.
type Resolver interface {
	Resolve(date time.Time) schedule.Schedule
}

// Scanner polls the resolved schedule and pushes due reminders onto a
// channel. Each entry fires at most once per day.
type Scanner struct {
	resolver Resolver
	interval time.Duration
	now      func() time.Time
	log      *log.Logger

	events chan Event
	fired  map[string]bool // dateKey + "/" + entryID
	day    string          // dateKey the fired set belongs to
}

// NewScanner creates a Scanner. A zero interval falls back to
// DefaultInterval; a nil clock uses time.Now.
func NewScanner(resolver Resolver, interval time.Duration, clock func() time.Time, logger *log.Logger) *Scanner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = time.Now
	}
	return &Scanner{
		resolver: resolver,
		interval: interval,
		now:      clock,
		log:      logger,
		events:   make(chan Event, 16),
		fired:    make(map[string]bool),
	}
}

// Events returns the channel reminders are delivered on.
func (s *Scanner) Events() <-chan Event {
	return s.events
}

// Run polls until ctx is cancelled. It closes the event channel on exit.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.events)

	s.Scan()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Scan()
		}
	}
}

// Scan performs one pass over today's schedule, emitting any reminder whose
// lead window has opened. Exposed so tests can drive the scanner without a
// ticker.
func (s *Scanner) Scan() {
	now := s.now()
	key := dateutil.Key(now)
	if key != s.day {
		s.day = key
		s.fired = make(map[string]bool)
	}

	midnight := dateutil.TruncateToDay(now)
	for _, e := range s.resolver.Resolve(now).Entries() {
		if e.ReminderLeadTime <= 0 || e.Spillover {
			continue
		}
		id := key + "/" + e.ID
		if s.fired[id] {
			continue
		}
		startsAt := midnight.Add(time.Duration(slot.ToMinutes(e.StartTime)) * time.Minute)
		remindAt := startsAt.Add(-time.Duration(e.ReminderLeadTime) * time.Minute)
		if now.Before(remindAt) || !now.Before(startsAt) {
			continue
		}
		s.fired[id] = true
		select {
		case s.events <- Event{Entry: e, Date: midnight, StartsAt: startsAt, LeadTime: e.ReminderLeadTime}:
		default:
			if s.log != nil {
				s.log.Warn("reminder dropped, event channel full", "entry", e.Title)
			}
		}
	}
}
