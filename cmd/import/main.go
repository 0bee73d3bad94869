package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/commercedesk/geodata-api/internal/config"
	"github.com/commercedesk/geodata-api/internal/database"
	"github.com/commercedesk/geodata-api/internal/importer"
	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/commercedesk/geodata-api/internal/repository"
	"github.com/commercedesk/geodata-api/internal/upstream"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// One-shot import from the command line: starts an import and polls the job
// until it reaches a terminal state.
func main() {
	var (
		format = flag.String("format", importer.FormatCSV, "Dataset format: csv or json")
		tables = flag.String("tables", "countries,states,cities", "Comma-separated tables to import")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			logger.Fatal("Failed to init migration driver", zap.Error(err))
		}
		m, err := migrate.NewWithDatabaseInstance("file://migrations/sqlite", "sqlite3", driver)
		if err != nil {
			logger.Fatal("Failed to init migration", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
	}

	repos := repository.NewRepositories(db, cfg.DB.Type)
	client := upstream.NewClient(cfg.Importer)
	imp := importer.New(repos, client, importer.NewJobStore(), logger)

	var requested []string
	for _, table := range strings.Split(*tables, ",") {
		if trimmed := strings.TrimSpace(table); trimmed != "" {
			requested = append(requested, trimmed)
		}
	}

	importID, err := imp.StartImport(*format, requested)
	if err != nil {
		logger.Fatal("Failed to start import", zap.Error(err))
	}
	logger.Info("Import started", zap.String("import_id", importID))

	for {
		time.Sleep(500 * time.Millisecond)

		job := imp.GetProgress(importID)
		if job == nil {
			logger.Fatal("Import job disappeared", zap.String("import_id", importID))
		}

		logger.Info("Import progress",
			zap.String("status", string(job.Status)),
			zap.Int("progress", job.Progress),
			zap.String("message", job.Message))

		if !job.Status.Terminal() {
			continue
		}

		if job.Status == model.ImportStatusFailed {
			errText := ""
			if job.Error != nil {
				errText = *job.Error
			}
			logger.Fatal("Import failed", zap.String("error", errText))
		}

		records := 0
		if job.RecordsImported != nil {
			records = *job.RecordsImported
		}
		logger.Info("Import completed", zap.Int("records_imported", records))
		fmt.Printf("imported %d records\n", records)
		return
	}
}
