package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/slot"
	"github.com/javiermolinar/tempo/internal/suggest"
)

func (a *App) suggestCmd() *cobra.Command {
	var (
		date  string
		goals string
		apply bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the configured AI provider for time block suggestions",
		Long: `Ask the configured AI provider to propose time blocks for the free
slots of a day, given the resolved schedule and your habits. Suggestions
are printed by default; --apply inserts the ones that still fit.`,
		Example: `  tempo suggest
  tempo suggest --date=tomorrow --goals="finish the quarterly report" --apply`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			client, err := suggest.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return err
			}

			suggester := suggest.NewSuggester(client)
			suggestions, err := suggester.Suggest(cmd.Context(), suggest.Context{
				Date:     day,
				Schedule: a.planner.Resolve(day),
				Habits:   a.habits,
				Goals:    goals,
			})
			if err != nil {
				return err
			}

			if len(suggestions) == 0 {
				fmt.Println(formatMuted("no suggestions for this day"))
				return nil
			}

			tf := a.timeFormat()
			for _, sg := range suggestions {
				line := fmt.Sprintf("  %s %s (%s)",
					slot.FormatRange(sg.StartTime, sg.Duration, tf),
					sg.Title,
					formatDuration(sg.Duration))
				fmt.Println(paint(block.Color(sg.Color), line))
				fmt.Println(formatMuted("    " + sg.Reasoning))
			}

			if !apply {
				return nil
			}
			return a.applySuggestions(day, suggestions)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD or relative, default: today)")
	cmd.Flags().StringVar(&goals, "goals", "", "Free-form goals to steer the suggestions")
	cmd.Flags().BoolVar(&apply, "apply", false, "Insert the suggestions into the schedule")

	return cmd
}

// applySuggestions inserts suggestions through the normal conflict path,
// skipping any that no longer fit after earlier insertions.
func (a *App) applySuggestions(day time.Time, suggestions []suggest.Suggestion) error {
	applied := 0
	for _, sg := range suggestions {
		draft := schedule.Draft{
			Title:     sg.Title,
			StartTime: sg.StartTime,
			Duration:  sg.Duration,
			Color:     block.Color(sg.Color),
		}
		if _, err := a.planner.AddBlock(day, draft, nil); err != nil {
			if errors.Is(err, schedule.ErrSlotConflict) {
				fmt.Println(formatWarn(fmt.Sprintf("skipping %q, slot taken", sg.Title)))
				continue
			}
			return err
		}
		applied++
	}
	fmt.Printf("Applied %d of %d suggestions\n", applied, len(suggestions))
	return nil
}
