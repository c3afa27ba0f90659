package app

import (
	"io"
	"log/slog"

	"aesguard/internal/logging"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel  slog.Level     // minimum level written to LogOutput
	LogFormat logging.Format // text or JSON
	LogOutput io.Writer      // optional; defaults to os.Stderr
}

// DefaultConfig mirrors logging.DefaultConfig.
func DefaultConfig() Config {
	d := logging.DefaultConfig()
	return Config{LogLevel: d.Level, LogFormat: d.Format, LogOutput: d.Output}
}
