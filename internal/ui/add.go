package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/slot"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		at       string
		minutes  int
		colorTok string
		remind   int
		every    string
		deadline string
		force    bool
		bump     bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a time block or recurring routine",
		Long: `Add a one-off time block, or a recurring routine with --every.

A one-off block that collides with an existing entry is rejected unless
--force (overwrite the occupied slots) or --bump (push the existing block
to the next free stretch) is given.`,
		Example: `  tempo add "Deep work" --at=09:00 --mins=90
  tempo add "Gym" --at=18:00 --mins=60 --date=tomorrow --color=green
  tempo add "Standup" --at=09:00 --mins=30 --bump
  tempo add "Morning pages" --at=07:00 --mins=30 --every=mon,tue,wed,thu,fri`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := parseClock(at)
			if err != nil {
				return err
			}
			duration := minutesToSlots(minutes)
			tf := a.timeFormat()

			if every != "" {
				days, err := parseWeekdays(every)
				if err != nil {
					return err
				}
				t, err := block.NewTemplate(args[0], start, duration, block.Color(colorTok), days)
				if err != nil {
					return err
				}
				t.ReminderLeadTime = remind
				if err := a.planner.AddTemplate(t); err != nil {
					return err
				}
				fmt.Printf("Added routine %q %s on %s\n",
					t.Title, slot.FormatRange(t.StartTime, t.Duration, tf), every)
				return nil
			}

			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			draft := schedule.Draft{
				Title:            args[0],
				StartTime:        start,
				Duration:         duration,
				Color:            block.Color(colorTok),
				ReminderLeadTime: remind,
				DeadlineFor:      deadline,
			}

			declined := false
			var onConflict schedule.ConflictFunc
			switch {
			case force:
				onConflict = a.overwriteHandler(day, tf)
			case bump:
				onConflict = func(conflict *schedule.Entry, commit func()) {
					if conflict.IsRecurring {
						fmt.Println(formatWarn(fmt.Sprintf("cannot bump routine %q", conflict.Title)))
						declined = true
						return
					}
					scanFrom := max(start+duration, conflict.StartTime+conflict.Duration)
					dest, ok := a.planner.FindNextAvailableSlot(day, conflict.Duration, scanFrom)
					if !ok {
						fmt.Println(formatWarn(fmt.Sprintf("no room left to bump %q", conflict.Title)))
						declined = true
						return
					}
					if err := a.planner.MoveBlock(day, day, conflict.ID, dest, nil); err != nil {
						fmt.Println(formatWarn(fmt.Sprintf("cannot bump %q: %v", conflict.Title, err)))
						declined = true
						return
					}
					commit()
					fmt.Printf("Bumped %q to %s\n",
						conflict.Title, slot.FormatRange(dest, conflict.Duration, tf))
				}
			}

			b, err := a.planner.AddBlock(day, draft, onConflict)
			if err != nil {
				return err
			}
			if declined {
				return nil
			}

			fmt.Printf("Added %q %s on %s (id %s)\n",
				b.Title,
				slot.FormatRange(b.StartTime, b.Duration, tf),
				day.Format("2006-01-02"),
				shortID(b.ID),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&minutes, "mins", 60, "Duration in minutes")
	cmd.Flags().StringVar(&colorTok, "color", string(block.ColorBlue), "Color token")
	cmd.Flags().IntVar(&remind, "remind", 0, "Reminder lead time in minutes (0: none)")
	cmd.Flags().StringVar(&every, "every", "", "Weekdays for a recurring routine (e.g. mon,wed,fri)")
	cmd.Flags().StringVar(&deadline, "deadline-for", "", "Inbox item this block is the deadline of")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite conflicting blocks")
	cmd.Flags().BoolVar(&bump, "bump", false, "Push a conflicting block to the next free stretch")

	_ = cmd.MarkFlagRequired("at")

	return cmd
}

// shortID truncates a uuid to its first segment for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
