// @title LitGen Backend API
// @version 1.0
// @description Backend server for the LitGen K-8 reading passage and assessment generator.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"litgen_backend/internal/app"
	"litgen_backend/internal/config"
	"litgen_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
