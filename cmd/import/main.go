// Command import loads a dataset CSV into the database once and exits.
// It runs the same normalization and upsert pipeline the scheduled refresh
// uses, so it is safe to re-run against an already populated database.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/deniz/uniscope/internal/app/migrations"
	"github.com/deniz/uniscope/internal/app/repositories"
	"github.com/deniz/uniscope/internal/bootstrap"
	"github.com/deniz/uniscope/internal/db"
	"github.com/deniz/uniscope/internal/ingest"
)

func main() {
	filePath := flag.String("file", "", "path to the dataset CSV (defaults to dataset.path from config)")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1) // already logged
	}

	path := *filePath
	if path == "" {
		path = cfg.Dataset.Path
	}
	if path == "" {
		lgr.Error().Msg("No dataset file given, pass -file or set dataset.path")
		os.Exit(1)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close()

	// Make sure the schema exists before writing to it
	if err := migrations.NewMigrator(database.Pool).MigrateFromDirectory("migrations"); err != nil {
		lgr.Error().Err(err).Msg("Database migrations failed")
		os.Exit(1)
	}

	importer := ingest.NewImporter(repositories.NewUniversityRepository(database.Pool))

	stats, err := importer.ImportFile(context.Background(), path)
	if err != nil {
		lgr.Error().Err(err).Str("file", path).Msg("Import failed")
		os.Exit(1)
	}

	lgr.Info().
		Str("file", path).
		Int("processed", stats.TotalProcessed).
		Int("created", stats.Created).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("Import complete")

	if stats.Errors > 0 {
		os.Exit(1)
	}
}
