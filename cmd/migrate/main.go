package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/dailydish/backend/config"
	"github.com/dailydish/backend/internal/database"
)

func main() {
	if config.IsDevelopment() {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")
}
