package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dailydish/backend/config"
	"github.com/dailydish/backend/internal/database"
	"github.com/dailydish/backend/internal/service"
)

// SetupAPI wires the services and registers every route group under /api/v1.
func SetupAPI(router *gin.Engine, db *gorm.DB, rdb *redis.Client, s3cfg *config.S3Config, cfg *config.Config) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPasswordHash)
		catalogService := service.NewCatalogService(db)
		profileService := service.NewProfileService(db)
		pickStore := database.NewRedisPickStateStore(rdb)
		pickService := service.NewDailyPickService(catalogService, pickStore, service.NewSystemClock())

		var imageService service.IImageService
		if s3cfg != nil {
			imageService = service.NewImageService(s3cfg)
		}

		// Initialize handlers
		authHandler := NewAuthHandler(authService)
		recipeHandler := NewRecipeHandler(catalogService, profileService, imageService, authService)
		todayHandler := NewTodayHandler(pickService, profileService)
		profileHandler := NewProfileHandler(profileService)

		// Register routes
		authHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
		todayHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)
	}
}
