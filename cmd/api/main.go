package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/doruk/courseatlas/internal/pkg/logger"
	"github.com/doruk/courseatlas/internal/server"
)

// @title CourseAtlas API
// @version 1.0
// @description Course catalog search API with filtered pagination, relevance ranking and tag facets

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Local development convenience; a missing .env is not an error
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
