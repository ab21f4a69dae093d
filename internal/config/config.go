// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Display   DisplayConfig   `toml:"display"`
	Scoring   ScoringConfig   `toml:"scoring"`
	LLM       LLMConfig       `toml:"llm"`
	Reminders RemindersConfig `toml:"reminders"`
}

// StorageConfig holds document store settings.
type StorageConfig struct {
	Backend        string `toml:"backend"`          // "diskv" or "sqlite"
	DataDir        string `toml:"data_dir"`         // diskv root (also logs)
	DBPath         string `toml:"db_path"`          // sqlite file
	SaveDebounceMs int    `toml:"save_debounce_ms"` // per-store write coalescing
}

// DisplayConfig holds presentation settings threaded into formatting call sites.
type DisplayConfig struct {
	TimeFormat string `toml:"time_format"` // "24h" or "12h"
}

// ScoringConfig holds the analytics scoring policy. These mirror the named
// constants in the analytics package so the policy can be tuned per user.
type ScoringConfig struct {
	DailyDecay          float64 `toml:"daily_decay"`
	PillarMonthlyTarget float64 `toml:"pillar_monthly_target"`
	TargetHoursPerDay   float64 `toml:"target_hours_per_day"`
	TimeWeight          float64 `toml:"time_weight"`
	HabitWeight         float64 `toml:"habit_weight"`
}

// LLMConfig holds AI suggestion provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "copilot", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// RemindersConfig holds the reminder scanner settings.
type RemindersConfig struct {
	PollIntervalSecs int `toml:"poll_interval_secs"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:        "diskv",
			DataDir:        defaultDataDir(),
			DBPath:         filepath.Join(defaultDataDir(), "tempo.db"),
			SaveDebounceMs: 750,
		},
		Display: DisplayConfig{
			TimeFormat: "24h",
		},
		Scoring: ScoringConfig{
			DailyDecay:          0.99,
			PillarMonthlyTarget: 300,
			TargetHoursPerDay:   6,
			TimeWeight:          0.6,
			HabitWeight:         0.4,
		},
		LLM: LLMConfig{
			Provider: "copilot",
			Model:    "gpt-4o",
			BaseURL:  "http://localhost:11434",
		},
		Reminders: RemindersConfig{
			PollIntervalSecs: 30,
		},
	}
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tempo-data"
	}
	return filepath.Join(home, ".local", "share", "tempo")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tempo", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DataDir = expandPath(cfg.Storage.DataDir)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TEMPO_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("TEMPO_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("TEMPO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TEMPO_TIME_FORMAT"); v != "" {
		cfg.Display.TimeFormat = v
	}
	if v := os.Getenv("TEMPO_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("TEMPO_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("TEMPO_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("TEMPO_POLL_INTERVAL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Reminders.PollIntervalSecs = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "diskv", "sqlite":
	default:
		return fmt.Errorf("storage backend must be diskv or sqlite, got %q", c.Storage.Backend)
	}
	if c.Storage.DataDir == "" {
		return errors.New("data_dir must be set")
	}
	if c.Storage.Backend == "sqlite" && c.Storage.DBPath == "" {
		return errors.New("db_path must be set for the sqlite backend")
	}
	if c.Storage.SaveDebounceMs < 0 {
		return errors.New("save_debounce_ms cannot be negative")
	}

	switch c.Display.TimeFormat {
	case "24h", "12h":
	default:
		return fmt.Errorf("time_format must be 24h or 12h, got %q", c.Display.TimeFormat)
	}

	s := c.Scoring
	if s.DailyDecay <= 0 || s.DailyDecay > 1 {
		return errors.New("daily_decay must be in (0, 1]")
	}
	if s.PillarMonthlyTarget <= 0 {
		return errors.New("pillar_monthly_target must be positive")
	}
	if s.TargetHoursPerDay <= 0 || s.TargetHoursPerDay > 24 {
		return errors.New("target_hours_per_day must be in (0, 24]")
	}
	if s.TimeWeight < 0 || s.HabitWeight < 0 {
		return errors.New("scoring weights cannot be negative")
	}
	if diff := s.TimeWeight + s.HabitWeight - 1; diff > 0.001 || diff < -0.001 {
		return errors.New("time_weight and habit_weight must sum to 1")
	}

	if c.Reminders.PollIntervalSecs < 1 {
		return errors.New("poll_interval_secs must be at least 1")
	}

	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
