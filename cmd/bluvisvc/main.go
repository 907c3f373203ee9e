package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Juls010/bluvi-backend/internal/app"
	"github.com/Juls010/bluvi-backend/internal/config"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
