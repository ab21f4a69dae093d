package remind

import (
	"testing"
	"time"

	"github.com/javiermolinar/tempo/internal/logger"
	"github.com/javiermolinar/tempo/internal/schedule"
)

type fixedResolver struct {
	sched schedule.Schedule
}

func (r fixedResolver) Resolve(date time.Time) schedule.Schedule {
	return r.sched
}

func scheduleWith(entries ...*schedule.Entry) schedule.Schedule {
	sched := schedule.Schedule{}
	for _, e := range entries {
		for i := e.StartTime; i < e.StartTime+e.Duration; i++ {
			sched[i] = e
		}
	}
	return sched
}

func receiveEvent(t *testing.T, s *Scanner) (Event, bool) {
	t.Helper()
	select {
	case ev := <-s.Events():
		return ev, true
	default:
		return Event{}, false
	}
}

func TestScanFiresWithinLeadWindow(t *testing.T) {
	// Standup at 09:00 with 10 minutes of notice.
	standup := &schedule.Entry{ID: "b1", Title: "Standup", StartTime: 54, Duration: 3, ReminderLeadTime: 10}
	now := time.Date(2026, 8, 31, 8, 52, 0, 0, time.UTC) // Monday

	s := NewScanner(fixedResolver{scheduleWith(standup)}, time.Minute, func() time.Time { return now }, logger.Discard())
	s.Scan()

	ev, ok := receiveEvent(t, s)
	if !ok {
		t.Fatal("expected a reminder event")
	}
	if ev.Entry.ID != "b1" {
		t.Errorf("Entry.ID = %q, want %q", ev.Entry.ID, "b1")
	}
	if want := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC); !ev.StartsAt.Equal(want) {
		t.Errorf("StartsAt = %v, want %v", ev.StartsAt, want)
	}
	if ev.LeadTime != 10 {
		t.Errorf("LeadTime = %d, want 10", ev.LeadTime)
	}
}

func TestScanDoesNotFireBeforeWindow(t *testing.T) {
	standup := &schedule.Entry{ID: "b1", Title: "Standup", StartTime: 54, Duration: 3, ReminderLeadTime: 10}
	now := time.Date(2026, 8, 31, 8, 49, 0, 0, time.UTC)

	s := NewScanner(fixedResolver{scheduleWith(standup)}, time.Minute, func() time.Time { return now }, logger.Discard())
	s.Scan()

	if _, ok := receiveEvent(t, s); ok {
		t.Fatal("fired before the lead window opened")
	}
}

func TestScanDoesNotFireAfterStart(t *testing.T) {
	standup := &schedule.Entry{ID: "b1", Title: "Standup", StartTime: 54, Duration: 3, ReminderLeadTime: 10}
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	s := NewScanner(fixedResolver{scheduleWith(standup)}, time.Minute, func() time.Time { return now }, logger.Discard())
	s.Scan()

	if _, ok := receiveEvent(t, s); ok {
		t.Fatal("fired after the block already started")
	}
}

func TestScanFiresOncePerDay(t *testing.T) {
	standup := &schedule.Entry{ID: "b1", Title: "Standup", StartTime: 54, Duration: 3, ReminderLeadTime: 10}
	now := time.Date(2026, 8, 31, 8, 52, 0, 0, time.UTC)

	s := NewScanner(fixedResolver{scheduleWith(standup)}, time.Minute, func() time.Time { return now }, logger.Discard())
	s.Scan()
	now = now.Add(2 * time.Minute)
	s.Scan()

	if _, ok := receiveEvent(t, s); !ok {
		t.Fatal("expected the first scan to fire")
	}
	if _, ok := receiveEvent(t, s); ok {
		t.Fatal("second scan fired the same reminder again")
	}
}

func TestScanSkipsZeroLeadAndSpillover(t *testing.T) {
	noLead := &schedule.Entry{ID: "b1", Title: "No reminder", StartTime: 54, Duration: 3}
	carried := &schedule.Entry{ID: "t1-2026-08-31-spillover", Title: "Night shift", StartTime: 0, Duration: 6, ReminderLeadTime: 10, Spillover: true}
	now := time.Date(2026, 8, 31, 8, 55, 0, 0, time.UTC)

	s := NewScanner(fixedResolver{scheduleWith(noLead, carried)}, time.Minute, func() time.Time { return now }, logger.Discard())
	s.Scan()

	if _, ok := receiveEvent(t, s); ok {
		t.Fatal("fired for an entry that should be skipped")
	}
}

func TestScanResetsFiredSetOnNewDay(t *testing.T) {
	// A recurring block materializes with the same template id every day;
	// the fired set must not suppress tomorrow's instance.
	gym := &schedule.Entry{ID: "t1-gym", Title: "Gym", StartTime: 54, Duration: 6, ReminderLeadTime: 10, IsRecurring: true}
	now := time.Date(2026, 8, 31, 8, 52, 0, 0, time.UTC)

	s := NewScanner(fixedResolver{scheduleWith(gym)}, time.Minute, func() time.Time { return now }, logger.Discard())
	s.Scan()
	if _, ok := receiveEvent(t, s); !ok {
		t.Fatal("expected Monday's reminder")
	}

	now = now.Add(24 * time.Hour)
	s.Scan()
	if _, ok := receiveEvent(t, s); !ok {
		t.Fatal("expected Tuesday's reminder after the day rolled over")
	}
}
