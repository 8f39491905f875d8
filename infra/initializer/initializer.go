// Package initializer assembles the process dependencies: logger, store
// connection, unit of work and the ledger service.
package initializer

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/amitdube/netbank/config"
	"github.com/amitdube/netbank/infra"
	infrarepo "github.com/amitdube/netbank/infra/repository"
	"github.com/amitdube/netbank/pkg/service/ledger"
)

// Deps holds everything a process entrypoint needs.
type Deps struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *gorm.DB
	Ledger *ledger.Service
}

// Initialize loads configuration, connects to the store, runs migrations and
// builds the ledger service.
func Initialize(envFilePath ...string) (*Deps, error) {
	bootLogger := slog.Default()
	cfg, err := config.LoadAppConfig(bootLogger, envFilePath...)
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to connect to the store", "error", err)
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		logger.Error("failed to migrate the store", "error", err)
		return nil, err
	}

	uow := infrarepo.NewUoW(db)
	svc := ledger.New(uow, cfg.LockRetry, logger)

	return &Deps{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Ledger: svc,
	}, nil
}

// Close releases the dependencies that hold external resources.
func (d *Deps) Close() error {
	return infra.CloseDB(d.DB)
}
