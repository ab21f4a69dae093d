package ui

import (
	"fmt"
	"time"

	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/slot"
)

// overwriteHandler is the --force conflict policy: the losing block is
// deleted from the date before the new range is committed, so the store
// never holds two overlapping one-offs. A recurring conflict has no stored
// record to delete; the committed one-off wins the resolved view on its own.
func (a *App) overwriteHandler(date time.Time, tf slot.TimeFormat) schedule.ConflictFunc {
	return func(conflict *schedule.Entry, commit func()) {
		fmt.Println(formatWarn(fmt.Sprintf("overwriting %q at %s",
			conflict.Title, slot.Format(conflict.StartTime, tf))))
		if !conflict.IsRecurring {
			a.planner.DeleteBlock(date, conflict.ID)
		}
		commit()
	}
}
