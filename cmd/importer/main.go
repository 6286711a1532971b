package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/doruk/courseatlas/internal/config"
	"github.com/doruk/courseatlas/internal/db"
	"github.com/doruk/courseatlas/internal/ingest"
	"github.com/doruk/courseatlas/internal/pkg/logger"
)

func main() {
	// Local development convenience; a missing .env is not an error
	_ = godotenv.Load()

	csvPath := flag.String("csv", os.Getenv("CSV_PATH"), "path to the catalog CSV file")
	flag.Parse()

	if *csvPath == "" {
		logger.Fatal().Msg("No CSV file given; use -csv or set CSV_PATH")
	}

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	file, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *csvPath).Msg("Failed to open CSV file")
	}
	defer file.Close()

	records, err := ingest.ParseRecords(file)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse CSV file")
	}
	logger.Info().Int("rows", len(records)).Str("path", *csvPath).Msg("Catalog CSV loaded")

	stats := ingest.NewImporter(database).Import(context.Background(), records)
	logger.Info().Int("imported", stats.Imported).Int("failed", stats.Failed).Msg("Import complete")
}
