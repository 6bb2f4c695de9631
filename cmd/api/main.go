package main

import (
	"os"

	"github.com/yigit/campuslink/internal/pkg/logger"
	"github.com/yigit/campuslink/internal/server"
)

// @title CampusLink API
// @version 1.0
// @description Registration of student, department and company accounts.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
