package app

import (
	"context"

	"go-roster/internal/bootstrap"
	"go-roster/internal/config"
	"go-roster/internal/roster"

	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Audit  bootstrap.AuditLogger
	Roster roster.Service
}

// BuildApp wires the modules and loads the roster named by cfg.InputPath.
func BuildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	// 1. Register modules
	m := registerModules(cfg, logger)

	// 2. Load data
	n, err := m.roster.Load(ctx, cfg.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Info("roster ready", zap.String("input", cfg.InputPath), zap.Int("employees", n))

	m.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ROSTER_LOADED",
		Message: "Roster imported",
		Meta:    map[string]any{"input": cfg.InputPath, "employees": n},
	})

	return &App{
		Config: cfg,
		Logger: logger,
		Audit:  m.audit,
		Roster: m.roster,
	}, nil
}
