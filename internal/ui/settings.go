package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/store"
)

// settings are per-user display preferences persisted alongside the
// schedule stores. They override the config file when set.
type settings struct {
	TimeFormat   string `json:"timeFormat,omitempty"`   // "24h" or "12h"
	DayStartSlot int    `json:"dayStartSlot,omitempty"` // entries before this render muted
}

func (a *App) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a persisted display preference",
		Long: `Set a persisted display preference. Known keys:

  time-format  24h or 12h
  day-start    HH:MM; the day view mutes anything that ends earlier`,
		Example: `  tempo set time-format 12h
  tempo set day-start 06:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "time-format":
				if args[1] != "24h" && args[1] != "12h" {
					return fmt.Errorf("time-format must be 24h or 12h, got %q", args[1])
				}
				a.settings.TimeFormat = args[1]
			case "day-start":
				s, err := parseClock(args[1])
				if err != nil {
					return err
				}
				a.settings.DayStartSlot = s
			default:
				return fmt.Errorf("unknown setting %q", args[0])
			}
			a.saveSettings()
			fmt.Printf("Set %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func (a *App) saveSettings() {
	a.writer.Schedule(store.KeySettings, func() (any, error) {
		return a.settings, nil
	})
}
