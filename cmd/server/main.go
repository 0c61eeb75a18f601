package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/DarrellThomas/PilotLog/internal/domain/repository"
	"github.com/DarrellThomas/PilotLog/internal/infrastructure/config"
	"github.com/DarrellThomas/PilotLog/internal/infrastructure/persistence"
	gormrepo "github.com/DarrellThomas/PilotLog/internal/interface/repository"
	"github.com/DarrellThomas/PilotLog/internal/usecase"
	"github.com/DarrellThomas/PilotLog/pkg/logger"
	"github.com/DarrellThomas/PilotLog/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting PilotLog")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	store, err := gormrepo.NewGormStore(db)
	if err != nil {
		log.Fatal("Failed to prepare schema", "error", err)
	}

	m := metrics.NewMetrics("pilotlog")

	// Start roster inbox polling in a goroutine
	if cfg.ImportDir != "" {
		go pollImportDir(ctx, store, cfg, m, log)
	}

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the polling goroutine

	log.Info("PilotLog stopped")
}

// pollImportDir imports every roster CSV dropped into the inbox directory,
// renaming each file after a successful commit so it is not picked up again.
func pollImportDir(ctx context.Context, store repository.Store, cfg *config.Config, m *metrics.Metrics, log logger.Logger) {
	ticker := time.NewTicker(cfg.ImportInterval)
	defer ticker.Stop()

	log.Info("Watching roster inbox", "dir", cfg.ImportDir, "interval", cfg.ImportInterval)

	for {
		select {
		case <-ctx.Done():
			log.Info("Roster inbox polling stopped")
			return
		case <-ticker.C:
			entries, err := os.ReadDir(cfg.ImportDir)
			if err != nil {
				log.Error("Failed to read import dir", "dir", cfg.ImportDir, "error", err)
				continue
			}

			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
					continue
				}
				path := filepath.Join(cfg.ImportDir, entry.Name())

				// One importer per file so every file gets its own batch id.
				importer := usecase.NewRosterImporter(store, log, m)
				result, err := importer.ImportFile(ctx, path)
				if err != nil {
					log.Error("Import failed", "file", path, "error", err)
					continue
				}
				log.Info("Imported roster from inbox",
					"file", entry.Name(),
					"imported", result.RowsImported,
					"skipped", result.RowsSkipped,
					"duplicate", result.RowsDuplicate,
				)

				if err := os.Rename(path, path+".imported"); err != nil {
					log.Error("Failed to archive roster file", "file", path, "error", err)
				}
			}
		}
	}
}
