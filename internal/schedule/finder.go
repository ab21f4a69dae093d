package schedule

import (
	"time"

	"github.com/javiermolinar/tempo/internal/slot"
)

// FindNextAvailableSlot linearly scans the resolved schedule for the first
// run of `duration` free slots starting at or after fromSlot. Returns the
// starting slot and true, or 0 and false when no run of that length remains
// in the day. Used for quick-add and for auto-rescheduling a bumped block.
func (p *Planner) FindNextAvailableSlot(date time.Time, duration, fromSlot int) (int, bool) {
	if duration < 1 {
		return 0, false
	}
	return NextAvailable(p.Resolve(date), duration, fromSlot)
}

// NextAvailable is the scan itself, usable against an already-resolved
// schedule to avoid re-resolving in a loop.
func NextAvailable(sched Schedule, duration, fromSlot int) (int, bool) {
	if fromSlot < 0 {
		fromSlot = 0
	}
	for i := fromSlot; i <= slot.PerDay-duration; i++ {
		if sched.Free(i, duration) {
			return i, true
		}
	}
	return 0, false
}
