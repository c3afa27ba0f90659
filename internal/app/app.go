package app

import (
	"log/slog"

	"aesguard/internal/domain"
	"aesguard/internal/logging"
	"aesguard/internal/services/primitive"
)

// App bundles the logger and services the CLI works with.
type App struct {
	Log       *slog.Logger
	Primitive domain.PrimitiveService
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	log := logging.New(logging.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Output:    cfg.LogOutput,
		Component: "aesguard",
	})
	return &App{
		Log:       log,
		Primitive: primitive.New(log),
	}
}
