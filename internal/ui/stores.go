package ui

import (
	"fmt"
	"time"

	"github.com/javiermolinar/tempo/internal/block"
	"github.com/javiermolinar/tempo/internal/config"
	"github.com/javiermolinar/tempo/internal/habit"
	"github.com/javiermolinar/tempo/internal/schedule"
	"github.com/javiermolinar/tempo/internal/store"
)

// openStores opens the configured backend, hydrates the planner and habit
// stores, and wires planner mutations to the debounced writer.
func (a *App) openStores() error {
	backend, err := openBackend(a.config)
	if err != nil {
		return err
	}
	a.backend = backend

	debounce := time.Duration(a.config.Storage.SaveDebounceMs) * time.Millisecond
	a.writer = store.NewWriter(backend, debounce, a.log)

	a.planner = schedule.NewPlanner()
	a.checkIns = make(habit.CheckIns)

	var blocks map[string][]*block.Block
	if _, err := store.LoadJSON(backend, store.KeyBlocks, &blocks); err != nil {
		return err
	}
	a.planner.LoadBlocks(blocks)

	var templates []*block.Template
	if _, err := store.LoadJSON(backend, store.KeyTemplates, &templates); err != nil {
		return err
	}
	a.planner.LoadTemplates(templates)

	if _, err := store.LoadJSON(backend, store.KeyHabits, &a.habits); err != nil {
		return err
	}
	if _, err := store.LoadJSON(backend, store.KeyCheckIns, &a.checkIns); err != nil {
		return err
	}
	if _, err := store.LoadJSON(backend, store.KeySettings, &a.settings); err != nil {
		return err
	}

	a.planner.OnChange(func() {
		a.writer.Schedule(store.KeyBlocks, func() (any, error) {
			return a.planner.BlocksByDate(), nil
		})
		a.writer.Schedule(store.KeyTemplates, func() (any, error) {
			return a.planner.Templates(), nil
		})
	})

	return nil
}

// openBackend constructs the document store named by the config.
func openBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		backend, err := store.NewSQLite(cfg.Storage.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return backend, nil
	default:
		return store.NewDiskv(cfg.Storage.DataDir), nil
	}
}

// saveHabits persists the habit list and check-ins through the writer.
func (a *App) saveHabits() {
	a.writer.Schedule(store.KeyHabits, func() (any, error) {
		return a.habits, nil
	})
	a.writer.Schedule(store.KeyCheckIns, func() (any, error) {
		return a.checkIns, nil
	})
}
