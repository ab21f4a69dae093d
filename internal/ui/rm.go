package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/schedule"
)

func (a *App) rmCmd() *cobra.Command {
	var (
		date      string
		recurring bool
	)

	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a block or recurring routine",
		Long: `Remove a one-off block from a day, or a recurring routine with
--recurring. The id may be any unique prefix of the full id.`,
		Example: `  tempo rm 3f2a
  tempo rm 3f2a --date=tomorrow
  tempo rm b81c --recurring`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if recurring {
				t, err := a.findTemplate(args[0])
				if err != nil {
					return err
				}
				if err := a.planner.DeleteTemplate(t.ID); err != nil {
					return err
				}
				fmt.Printf("Removed routine %q\n", t.Title)
				return nil
			}

			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			b, err := a.findBlock(day, args[0])
			if err != nil {
				return err
			}
			a.planner.DeleteBlock(day, b.ID)
			fmt.Printf("Removed %q from %s\n", b.Title, day.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "Remove a recurring routine instead of a block")

	return cmd
}

// findBlock resolves an id prefix against the blocks stored on a date.
func (a *App) findBlock(date time.Time, prefix string) (*block.Block, error) {
	var found *block.Block
	for _, b := range a.planner.BlocksOn(date) {
		if strings.HasPrefix(b.ID, prefix) {
			if found != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			found = b
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s on %s", schedule.ErrBlockNotFound, prefix, dateutil.Key(date))
	}
	return found, nil
}

// findTemplate resolves an id prefix against the recurring routines.
func (a *App) findTemplate(prefix string) (*block.Template, error) {
	var found *block.Template
	for _, t := range a.planner.Templates() {
		if strings.HasPrefix(t.ID, prefix) {
			if found != nil {
				return nil, fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			found = t
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", schedule.ErrTemplateNotFound, prefix)
	}
	return found, nil
}
