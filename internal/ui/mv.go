package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/slot"
)

func (a *App) mvCmd() *cobra.Command {
	var (
		date   string
		toDate string
		at     string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "mv [id]",
		Short: "Move a block to another time or day",
		Long: `Move a one-off block to a new start time, optionally on another day.

If the destination collides with a recurring routine the move is rejected.
Any other collision is rejected unless --force is given. A rejected move
leaves the block where it was.`,
		Example: `  tempo mv 3f2a --at=14:00
  tempo mv 3f2a --to-date=tomorrow --at=09:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			to := from
			if toDate != "" {
				if to, err = parseDateFlag(toDate); err != nil {
					return err
				}
			}
			newStart, err := parseClock(at)
			if err != nil {
				return err
			}

			b, err := a.findBlock(from, args[0])
			if err != nil {
				return err
			}

			tf := a.timeFormat()
			var onConflict schedule.ConflictFunc
			if force {
				onConflict = a.overwriteHandler(to, tf)
			}

			if err := a.planner.MoveBlock(from, to, b.ID, newStart, onConflict); err != nil {
				return err
			}

			fmt.Printf("Moved %q to %s %s\n",
				b.Title, to.Format("2006-01-02"),
				slot.FormatRange(newStart, b.Duration, tf))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Current date of the block (default: today)")
	cmd.Flags().StringVar(&toDate, "to-date", "", "Destination date (default: same day)")
	cmd.Flags().StringVar(&at, "at", "", "New start time (HH:MM, required)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite conflicting blocks at the destination")

	_ = cmd.MarkFlagRequired("at")

	return cmd
}
