package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DeviceIDHeader carries the anonymous installation identifier the mobile
// clients generate on first launch.
const DeviceIDHeader = "X-Device-ID"

// DeviceIDKey is the gin context key the device id is stored under.
const DeviceIDKey = "device_id"

// DeviceRequired rejects requests that do not identify an installation.
func DeviceRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if deviceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + DeviceIDHeader + " header"})
			c.Abort()
			return
		}
		c.Set(DeviceIDKey, deviceID)
		c.Next()
	}
}

// DeviceID returns the device id stored by DeviceRequired.
func DeviceID(c *gin.Context) string {
	return c.GetString(DeviceIDKey)
}
