package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"

	"github.com/vbonduro/donationtracker/internal/config"
	"github.com/vbonduro/donationtracker/internal/db"
	"github.com/vbonduro/donationtracker/internal/logging"
	"github.com/vbonduro/donationtracker/internal/reportstore/local"
	"github.com/vbonduro/donationtracker/internal/scenario"
	"github.com/vbonduro/donationtracker/internal/store"
	"github.com/vbonduro/donationtracker/internal/tracker"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	reports, err := local.NewLocalReportStore(cfg.ReportDir)
	if err != nil {
		logger.Error("failed to initialize report store", "error", err)
		return
	}

	var opts []tracker.Option
	if cfg.DBPath != "" {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			return
		}
		defer closeDB(database, logger)
		opts = append(opts, tracker.WithJournal(store.NewDonationStore(database), store.NewDistributionStore(database)))
	}

	ctx := context.Background()
	t := tracker.NewTracker(reports, logger, opts...)
	if cfg.Restore {
		if err := t.Replay(ctx); err != nil {
			logger.Error("failed to replay journal", "error", err)
			return
		}
	}

	sc, err := loadScenario(cfg)
	if err != nil {
		logger.Error("failed to load scenario", "error", err)
		return
	}

	paths, err := sc.Apply(ctx, t)
	if err != nil {
		logger.Error("scenario failed", "error", err)
		return
	}
	logger.Info("scenario complete", "reports", paths)
}

func loadScenario(cfg *config.Config) (*scenario.Scenario, error) {
	if cfg.ScenarioFile == "" {
		return scenario.Default()
	}
	return scenario.Load(cfg.ScenarioFile)
}

func closeDB(database *sql.DB, logger *slog.Logger) {
	if err := database.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}
