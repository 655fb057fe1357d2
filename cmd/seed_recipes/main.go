package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dailydish/backend/config"
	"github.com/dailydish/backend/internal/database"
	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/service"
)

func main() {
	fixturePath := flag.String("file", "seed/recipes.json", "path to the recipe fixture file")
	flag.Parse()

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

	data, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to read fixture file %s: %v", *fixturePath, err)
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		log.Fatalf("Failed to parse fixture file: %v", err)
	}

	catalog := service.NewCatalogService(db)
	ctx := context.Background()

	created := 0
	for i := range recipes {
		recipe := &recipes[i]

		// Re-running the seeder must not duplicate recipes.
		var count int64
		if err := db.WithContext(ctx).Model(&model.Recipe{}).
			Where("title = ?", recipe.Title).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check for existing recipe %q: %v", recipe.Title, err)
		}
		if count > 0 {
			log.Printf("Skipping existing recipe %q", recipe.Title)
			continue
		}

		if _, err := catalog.CreateRecipe(ctx, recipe); err != nil {
			log.Fatalf("Failed to create recipe %q: %v", recipe.Title, err)
		}
		created++
	}

	log.Printf("Seeded %d recipes (%d already present)", created, len(recipes)-created)
}
