package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/habit"
)

func (a *App) habitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits and daily check-ins",
	}

	cmd.AddCommand(a.habitAddCmd())
	cmd.AddCommand(a.habitListCmd())
	cmd.AddCommand(a.habitCheckCmd())
	cmd.AddCommand(a.habitRmCmd())

	return cmd
}

func (a *App) habitAddCmd() *cobra.Command {
	var pillar string

	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Add a habit",
		Example: `  tempo habit add "Morning run" --pillar=health`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, err := habit.New(args[0], habit.Pillar(pillar))
			if err != nil {
				return err
			}
			a.habits = append(a.habits, h)
			a.saveHabits()
			fmt.Printf("Added habit %q (%s)\n", h.Name, h.Pillar)
			return nil
		},
	}

	pillars := make([]string, len(habit.Pillars))
	for i, p := range habit.Pillars {
		pillars[i] = string(p)
	}
	cmd.Flags().StringVar(&pillar, "pillar", "", "Life pillar: "+strings.Join(pillars, ", "))
	_ = cmd.MarkFlagRequired("pillar")

	return cmd
}

func (a *App) habitListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with the day's check-in intensity",
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			if len(a.habits) == 0 {
				fmt.Println(formatMuted("no habits yet"))
				return nil
			}
			for _, h := range a.habits {
				intensity := a.checkIns.Intensity(h.ID, day)
				bar := strings.Repeat("●", intensity) + strings.Repeat("○", habit.MaxIntensity-intensity)
				fmt.Printf("  %s %-24s %s %s\n",
					shortID(h.ID), h.Name, bar, formatMuted(string(h.Pillar)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (default: today)")

	return cmd
}

func (a *App) habitCheckCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "check [name or id]",
		Short: "Cycle a habit's check-in intensity for a day",
		Long: `Cycle a habit's check-in for a day. Each call raises the intensity
by one step; cycling past the maximum clears the check-in.`,
		Example: `  tempo habit check "Morning run"
  tempo habit check 9acb --date=yesterday`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			h, err := a.findHabit(args[0])
			if err != nil {
				return err
			}
			intensity := a.checkIns.Cycle(h.ID, day)
			a.saveHabits()
			if intensity == 0 {
				fmt.Printf("Cleared check-in for %q on %s\n", h.Name, day.Format("2006-01-02"))
			} else {
				fmt.Printf("%q on %s: intensity %d/%d\n", h.Name, day.Format("2006-01-02"), intensity, habit.MaxIntensity)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (default: today)")

	return cmd
}

func (a *App) habitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name or id]",
		Short: "Remove a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, err := a.findHabit(args[0])
			if err != nil {
				return err
			}
			for i, existing := range a.habits {
				if existing.ID == h.ID {
					a.habits = append(a.habits[:i], a.habits[i+1:]...)
					break
				}
			}
			a.saveHabits()
			fmt.Printf("Removed habit %q\n", h.Name)
			return nil
		},
	}
}

// findHabit matches a habit by exact name (case insensitive) or id prefix.
func (a *App) findHabit(ref string) (*habit.Habit, error) {
	var found *habit.Habit
	for _, h := range a.habits {
		if strings.EqualFold(h.Name, ref) || strings.HasPrefix(h.ID, ref) {
			if found != nil {
				return nil, fmt.Errorf("%q matches more than one habit", ref)
			}
			found = h
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", habit.ErrHabitNotFound, ref)
	}
	return found, nil
}
