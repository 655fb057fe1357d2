package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dailydish/backend/config"
	"github.com/dailydish/backend/internal/database"
	"github.com/dailydish/backend/internal/server"
)

func main() {
	// Load .env in development; the file is absent in containers.
	if config.IsDevelopment() {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rawDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer rawDB.Close()

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Image storage is optional; without AWS credentials the upload
	// endpoint reports the feature as unavailable.
	s3cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 not configured, image uploads disabled: %v", err)
		s3cfg = nil
	}

	srv := server.NewServer(rawDB, db, rdb, s3cfg, cfg)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
