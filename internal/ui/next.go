package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/slot"
)

func (a *App) nextCmd() *cobra.Command {
	var (
		date    string
		minutes int
		from    string
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Find the next free stretch of the day",
		Long: `Find the first gap in the resolved schedule long enough to hold
the requested duration, scanning forward from --from (or the start of
the day).`,
		Example: `  tempo next --mins=90
  tempo next --mins=30 --from=13:00 --date=tomorrow`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			fromSlot := 0
			if from != "" {
				if fromSlot, err = parseClock(from); err != nil {
					return err
				}
			}
			duration := minutesToSlots(minutes)

			start, ok := a.planner.FindNextAvailableSlot(day, duration, fromSlot)
			if !ok {
				fmt.Println(formatMuted(fmt.Sprintf("no free %s stretch left on %s",
					formatDuration(duration), day.Format("2006-01-02"))))
				return nil
			}

			fmt.Printf("%s is free on %s\n",
				slot.FormatRange(start, duration, a.timeFormat()),
				day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().IntVar(&minutes, "mins", 60, "Duration in minutes")
	cmd.Flags().StringVar(&from, "from", "", "Earliest start time (HH:MM)")

	return cmd
}
