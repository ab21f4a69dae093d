package ui

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/remind"
	"github.com/javiermolinar/tempo/internal/slot"
)

func (a *App) remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Watch the schedule and print reminders as they come due",
		Long: `Watch today's schedule and print a reminder when a block's lead
time elapses. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			interval := time.Duration(a.config.Reminders.PollIntervalSecs) * time.Second
			scanner := remind.NewScanner(a.planner, interval, nil, a.log)

			go scanner.Run(ctx)

			tf := a.timeFormat()
			fmt.Println(formatMuted(fmt.Sprintf("watching schedule, polling every %s", interval)))
			for ev := range scanner.Events() {
				mins := int(time.Until(ev.StartsAt).Minutes())
				fmt.Printf("\a%s %q starts at %s (in %d min)\n",
					formatHeader("Reminder:"),
					ev.Entry.Title,
					slot.Format(ev.Entry.StartTime, tf),
					mins)
			}
			return nil
		},
	}
}
