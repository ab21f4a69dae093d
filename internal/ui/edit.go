package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/schedule"
)

func (a *App) editCmd() *cobra.Command {
	var (
		date     string
		title    string
		at       string
		minutes  int
		colorTok string
		remind   int
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a block in place",
		Long: `Edit a one-off block's title, time, duration, color, or reminder.
Only the flags given change; everything else is kept. A new time that
collides with a recurring routine is rejected; any other collision is
rejected unless --force is given.`,
		Example: `  tempo edit 3f2a --title="Deep work II"
  tempo edit 3f2a --at=15:00 --mins=45
  tempo edit 3f2a --color=purple --remind=15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			b, err := a.findBlock(day, args[0])
			if err != nil {
				return err
			}

			var patch schedule.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("at") {
				start, err := parseClock(at)
				if err != nil {
					return err
				}
				patch.StartTime = &start
			}
			if cmd.Flags().Changed("mins") {
				duration := minutesToSlots(minutes)
				patch.Duration = &duration
			}
			if cmd.Flags().Changed("color") {
				c := block.Color(colorTok)
				patch.Color = &c
			}
			if cmd.Flags().Changed("remind") {
				patch.ReminderLeadTime = &remind
			}

			var onConflict schedule.ConflictFunc
			if force {
				onConflict = a.overwriteHandler(day, a.timeFormat())
			}

			if err := a.planner.UpdateBlock(day, b.ID, patch, onConflict); err != nil {
				return err
			}
			fmt.Printf("Updated %q on %s\n", b.Title, day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&at, "at", "", "New start time (HH:MM)")
	cmd.Flags().IntVar(&minutes, "mins", 0, "New duration in minutes")
	cmd.Flags().StringVar(&colorTok, "color", "", "New color token")
	cmd.Flags().IntVar(&remind, "remind", 0, "New reminder lead time in minutes")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite conflicting blocks")

	return cmd
}
