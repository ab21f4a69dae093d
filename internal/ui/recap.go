package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/analytics"
	"github.com/javiermolinar/tempo/internal/dateutil"
	"github.com/javiermolinar/tempo/internal/habit"
)

func (a *App) recapCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Show the recap for a rolling window ending today",
		Long: `Show aggregated statistics for a rolling window ending today:
check-ins with period-over-period delta, consistency, scheduled hours,
the discipline score, the pillar radar, and the momentum trend.`,
		Example: `  tempo recap
  tempo recap --days=30`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			in := a.analyticsInputs(days)
			scoring := a.scoring()
			recap := analytics.BuildRecap(in, scoring)
			radar := analytics.PillarRadar(in, scoring)
			trend := analytics.CumulativeTrend(in, scoring)

			fmt.Println(formatHeader(fmt.Sprintf("Last %d days (%s to %s)",
				days, in.Range.Start.Format("2006-01-02"), in.Range.End.Format("2006-01-02"))))

			fmt.Printf("  Check-ins:    %s %s %+.0f%% vs previous period\n",
				formatStats(fmt.Sprintf("%d", recap.CheckIns)),
				trendArrow(recap.CheckInDelta), recap.CheckInDelta)
			fmt.Printf("  Consistency:  %s\n", formatStats(fmt.Sprintf("%.0f%%", recap.ConsistencyPct)))
			fmt.Printf("  Habits:       %d active across %d pillars\n",
				recap.ActiveHabits, recap.PillarsCovered)
			fmt.Printf("  Scheduled:    %s\n", formatStats(fmt.Sprintf("%.1fh", recap.ScheduledHours)))
			fmt.Printf("  Discipline:   %s\n", formatStats(fmt.Sprintf("%d/100", recap.DisciplineScore)))

			fmt.Println(formatHeader("Pillars"))
			for _, p := range habit.Pillars {
				fmt.Printf("  %-14s %s %.0f%%\n", p, bar(radar[p], 20), radar[p])
			}

			if len(trend) > 0 {
				last := trend[len(trend)-1]
				delta := analytics.DayOverDay(trend)
				fmt.Println(formatHeader("Momentum"))
				fmt.Printf("  Score: %.1f %s %+.1f%% day over day\n",
					last.Score, trendArrow(delta), delta)
			}

			if len(recap.TimeDistribution) > 0 {
				fmt.Println(formatHeader("Time distribution"))
				for _, td := range recap.TimeDistribution {
					line := fmt.Sprintf("  %-24s %.1fh", td.Title, td.Hours)
					fmt.Println(paint(td.Color, line))
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Window length in days")

	return cmd
}

// analyticsInputs snapshots the stores for a rolling window ending today.
func (a *App) analyticsInputs(days int) analytics.Inputs {
	end := dateutil.TruncateToDay(timeNow())
	return analytics.Inputs{
		Range: &dateutil.DateRange{
			Start: end.AddDate(0, 0, -(days - 1)),
			End:   end,
		},
		Habits:       a.habits,
		CheckIns:     a.checkIns,
		BlocksByDate: a.planner.BlocksByDate(),
		Templates:    a.planner.Templates(),
	}
}

// scoring translates the user's config into the analytics scoring policy.
func (a *App) scoring() analytics.ScoringConfig {
	s := analytics.DefaultScoring()
	s.DailyDecay = a.config.Scoring.DailyDecay
	s.PillarMonthlyTarget = a.config.Scoring.PillarMonthlyTarget
	s.TargetHoursPerDay = a.config.Scoring.TargetHoursPerDay
	s.TimeWeight = a.config.Scoring.TimeWeight
	s.HabitWeight = a.config.Scoring.HabitWeight
	return s
}

// trendArrow renders the direction of a period-over-period delta.
func trendArrow(delta float64) string {
	switch {
	case delta > 0:
		return "↑"
	case delta < 0:
		return "↓"
	default:
		return "→"
	}
}

// bar renders a fixed-width percentage bar.
func bar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
