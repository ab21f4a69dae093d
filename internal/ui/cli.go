package ui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/config"
	"github.com/javiermolinar/tempo/internal/habit"
	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/store"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state: the planner, the habit stores, and
// the persistence plumbing behind them.
type App struct {
	config  *config.Config
	log     *log.Logger
	backend store.Backend
	writer  *store.Writer

	planner  *schedule.Planner
	habits   []*habit.Habit
	checkIns habit.CheckIns
	settings settings

	root *cobra.Command
}

// NewApp creates a new CLI application, opening the configured storage
// backend and hydrating the planner from it.
func NewApp(cfg *config.Config, logger *log.Logger) (*App, error) {
	a := &App{config: cfg, log: logger}

	if err := a.openStores(); err != nil {
		return nil, err
	}

	a.root = &cobra.Command{
		Use:   "tempo",
		Short: "A CLI time-blocking and habit tracking planner",
		Long: `Tempo plans your day as a grid of ten-minute slots.

Recurring routines fill the grid automatically, one-off blocks override
them, and habit check-ins feed weekly recaps and trend scores.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var noColor bool
	a.root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	a.root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if noColor {
			DisableColor()
		}
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.setCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.mvCmd())
	a.root.AddCommand(a.nextCmd())
	a.root.AddCommand(a.habitCmd())
	a.root.AddCommand(a.recapCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.remindCmd())

	return a, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tempo %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes pending writes and releases the storage backend.
func (a *App) Close() error {
	if a.writer != nil {
		a.writer.Flush()
	}
	if a.backend != nil {
		return a.backend.Close()
	}
	return nil
}
