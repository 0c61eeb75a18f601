// Package cli implements the pilotlog command line interface.
package cli

import (
	"fmt"

	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/internal/infrastructure/config"
	"github.com/DarrellThomas/PilotLog/internal/infrastructure/persistence"
	gormrepo "github.com/DarrellThomas/PilotLog/internal/interface/repository"
	"github.com/DarrellThomas/PilotLog/pkg/logger"
)

// openStore wires config, logger and the database for one command run.
func openStore() (repository.Store, *config.Config, logger.Logger, error) {
	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}

	store, err := gormrepo.NewGormStore(db)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("preparing schema: %w", err)
	}

	return store, cfg, log, nil
}
