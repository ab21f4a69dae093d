package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tempo/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.`,
		Example: `  tempo config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Storage.Backend = promptValue(reader, "Storage backend (diskv/sqlite)", cfg.Storage.Backend)
	cfg.Storage.DataDir = promptValue(reader, "Data directory", cfg.Storage.DataDir)
	cfg.Storage.DBPath = promptValue(reader, "Database path (sqlite backend)", cfg.Storage.DBPath)
	cfg.Display.TimeFormat = promptValue(reader, "Time format (24h/12h)", cfg.Display.TimeFormat)
	cfg.LLM.Provider = promptValue(reader, "LLM provider", cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, "LLM base URL (Ollama/LM Studio)", cfg.LLM.BaseURL)
	cfg.Reminders.PollIntervalSecs = promptInt(reader, "Reminder poll interval (seconds)", cfg.Reminders.PollIntervalSecs)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[storage]")
	fmt.Printf("  backend            = %s\n", cfg.Storage.Backend)
	fmt.Printf("  data_dir           = %s\n", cfg.Storage.DataDir)
	fmt.Printf("  db_path            = %s\n", cfg.Storage.DBPath)
	fmt.Printf("  save_debounce_ms   = %d\n", cfg.Storage.SaveDebounceMs)
	fmt.Println("\n[display]")
	fmt.Printf("  time_format        = %s\n", cfg.Display.TimeFormat)
	fmt.Println("\n[scoring]")
	fmt.Printf("  daily_decay        = %g\n", cfg.Scoring.DailyDecay)
	fmt.Printf("  target_hours/day   = %g\n", cfg.Scoring.TargetHoursPerDay)
	fmt.Println("\n[llm]")
	fmt.Printf("  provider           = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model              = %s\n", cfg.LLM.Model)
	fmt.Printf("  base_url           = %s\n", cfg.LLM.BaseURL)
	fmt.Println("\n[reminders]")
	fmt.Printf("  poll_interval_secs = %d\n", cfg.Reminders.PollIntervalSecs)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Printf("  Invalid number %q\n", value)
	}
}
