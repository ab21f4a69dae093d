// Package logger configures the shared structured logger.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Debug   bool
	DataDir string
}

// New builds a logger that writes to a rotating file under the data
// directory, mirroring to stderr when debug is enabled. Persistence
// failures and background scanner errors are reported through it.
func New(cfg Config) (*log.Logger, error) {
	logDir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "tempo.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	var writer io.Writer = fileWriter
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tempo",
	}), nil
}

// Discard returns a logger that drops everything. Useful in tests and as a
// default when callers pass nil.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
