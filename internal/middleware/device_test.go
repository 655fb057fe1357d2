package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDeviceRequired(t *testing.T) {
	router := gin.New()
	router.GET("/probe", DeviceRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"device_id": DeviceID(c)})
	})

	// Missing header is rejected.
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// A blank header is as bad as a missing one.
	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(DeviceIDHeader, "   ")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(DeviceIDHeader, "device-1")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "device-1")
}
