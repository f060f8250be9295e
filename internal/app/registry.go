package app

import (
	"go-roster/internal/bootstrap"
	"go-roster/internal/config"
	"go-roster/internal/roster"

	"go.uber.org/zap"
)

type modules struct {
	audit  bootstrap.AuditLogger
	roster roster.Service
}

func registerModules(cfg *config.Config, logger *zap.Logger) modules {
	// --- Repositories ---
	rosterRepo := roster.NewRepository()

	// --- Services ---
	rosterService := roster.NewService(rosterRepo, cfg.ResultsDir, logger)

	return modules{
		audit:  bootstrap.NewZapAuditLogger(logger),
		roster: rosterService,
	}
}
