package main

import (
	"log"

	"github.com/itzme170605/diabetes-prediction-app/internal/config"
	"github.com/itzme170605/diabetes-prediction-app/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
