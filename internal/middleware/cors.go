package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configures cross-origin access for the mobile webview and the admin
// console.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "capacitor://localhost"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", DeviceIDHeader, "X-Region"},
		AllowCredentials: true,
		CustomSchemas:    []string{"capacitor://"},
		MaxAge:           24 * time.Hour,
	})
}
