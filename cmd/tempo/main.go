package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/tempo/internal/config"
	"github.com/javiermolinar/tempo/internal/logger"
	"github.com/javiermolinar/tempo/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Debug:   os.Getenv("TEMPO_DEBUG") != "",
		DataDir: cfg.Storage.DataDir,
	})
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	app, err := ui.NewApp(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return app.Execute()
}
