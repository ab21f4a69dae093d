package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/slot"
)

func (a *App) dayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the resolved schedule for a day",
		Long: `Show the resolved schedule for a day.

Recurring routines, midnight spillover from the previous day, and one-off
blocks are merged into a single timeline. With no argument, shows today.`,
		Example: `  tempo day
  tempo day tomorrow
  tempo day 2026-09-04`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			date, err := parseDateFlag(arg)
			if err != nil {
				return err
			}

			sched := a.planner.Resolve(date)
			entries := sched.Entries()

			fmt.Println(formatHeader(fmt.Sprintf("%s (%s)", date.Format("2006-01-02"), date.Weekday())))
			if len(entries) == 0 {
				fmt.Println(formatMuted("  nothing scheduled"))
				return nil
			}

			tf := a.timeFormat()
			width := termWidth()
			busy := 0
			for _, e := range entries {
				busy += e.Duration
				marker := " "
				switch {
				case e.Spillover:
					marker = "<"
				case e.IsRecurring:
					marker = "*"
				case e.DeadlineFor != "":
					marker = "!"
				}
				line := fmt.Sprintf("  %s %-13s %s (%s)",
					marker,
					slot.FormatRange(e.StartTime, e.Duration, tf),
					e.Title,
					formatDuration(e.Duration),
				)
				line = truncate(line, width)
				if e.StartTime+e.Duration <= a.settings.DayStartSlot {
					fmt.Println(formatMuted(line))
				} else {
					fmt.Println(paint(e.Color, line))
				}
			}

			free := slot.PerDay - busy
			fmt.Println(formatMuted(fmt.Sprintf("  %s scheduled, %s free",
				formatDuration(busy), formatDuration(free))))
			return nil
		},
	}

	return cmd
}
