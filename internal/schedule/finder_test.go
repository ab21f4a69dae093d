package schedule

import (
	"testing"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/slot"
)

func TestFindNextAvailableSlot_EmptyDay(t *testing.T) {
	p := NewPlanner()
	start, ok := p.FindNextAvailableSlot(monday, 6, 0)
	if !ok || start != 0 {
		t.Errorf("got (%d, %v), want (0, true)", start, ok)
	}
}

func TestFindNextAvailableSlot_AfterOccupiedPrefix(t *testing.T) {
	p := NewPlanner()
	mustAdd(t, p, monday, "Morning", 0, 36) // [0,36)

	start, ok := p.FindNextAvailableSlot(monday, 6, 0)
	if !ok || start != 36 {
		t.Errorf("got (%d, %v), want (36, true)", start, ok)
	}
}

func TestFindNextAvailableSlot_SkipsShortGaps(t *testing.T) {
	p := NewPlanner()
	mustAdd(t, p, monday, "A", 0, 10)  // [0,10)
	mustAdd(t, p, monday, "B", 13, 10) // [13,23): gap [10,13) is too short for 6

	start, ok := p.FindNextAvailableSlot(monday, 6, 0)
	if !ok || start != 23 {
		t.Errorf("got (%d, %v), want (23, true)", start, ok)
	}
}

func TestFindNextAvailableSlot_FromSlot(t *testing.T) {
	p := NewPlanner()

	start, ok := p.FindNextAvailableSlot(monday, 6, 90)
	if !ok || start != 90 {
		t.Errorf("got (%d, %v), want (90, true)", start, ok)
	}

	// Negative fromSlot clamps to the start of the day.
	start, ok = p.FindNextAvailableSlot(monday, 6, -5)
	if !ok || start != 0 {
		t.Errorf("got (%d, %v), want (0, true)", start, ok)
	}
}

func TestFindNextAvailableSlot_NoRoom(t *testing.T) {
	p := NewPlanner()
	mustAdd(t, p, monday, "All day", 0, slot.PerDay)

	if _, ok := p.FindNextAvailableSlot(monday, 1, 0); ok {
		t.Error("expected no free slot on a fully booked day")
	}

	q := NewPlanner()
	if _, ok := q.FindNextAvailableSlot(monday, 6, 140); ok {
		t.Error("expected no room for 6 slots starting at 140")
	}

	if _, ok := q.FindNextAvailableSlot(monday, 0, 0); ok {
		t.Error("expected zero duration to find nothing")
	}
}

func TestFindNextAvailableSlot_SeesTemplates(t *testing.T) {
	p := NewPlanner()
	p.LoadTemplates([]*block.Template{tpl("t1", "Morning block", 0, 36, time.Monday)})

	start, ok := p.FindNextAvailableSlot(monday, 6, 0)
	if !ok || start != 36 {
		t.Errorf("got (%d, %v), want (36, true)", start, ok)
	}
}

// End-to-end: recurring gym, one-off call moved next to it, then the finder
// placing a follow-up task right after both.
func TestPlanner_DayScenario(t *testing.T) {
	p := NewPlanner()
	p.LoadTemplates([]*block.Template{tpl("gym", "Gym", 84, 6, time.Monday)}) // 14:00-15:00

	call := mustAdd(t, p, monday, "Call", 60, 6) // 10:00-11:00

	// Move the call to 15:00, right after the gym block.
	if err := p.MoveBlock(monday, monday, call.ID, 90, nil); err != nil {
		t.Fatalf("moving call: %v", err)
	}

	// Moving it onto the gym block is rejected outright.
	if err := p.MoveBlock(monday, monday, call.ID, 86, nil); err == nil {
		t.Fatal("expected recurring conflict")
	}

	sched := p.Resolve(monday)
	for i := 84; i < 90; i++ {
		if e := sched.At(i); e == nil || e.TemplateID != "gym" {
			t.Fatalf("slot %d: want gym, got %+v", i, e)
		}
	}
	for i := 90; i < 96; i++ {
		if e := sched.At(i); e == nil || e.ID != call.ID {
			t.Fatalf("slot %d: want call, got %+v", i, e)
		}
	}

	start, ok := NextAvailable(sched, 6, 84)
	if !ok || start != 96 {
		t.Errorf("next free hour = (%d, %v), want (96, true)", start, ok)
	}
}
