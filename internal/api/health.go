package api

import (
	"net/http" // HTTP status codes
	"time"     // Response timestamp

	"github.com/gin-gonic/gin" // Gin web framework
)

// HealthHandler reports process liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",                                  // Liveness flag
			"message":   "Service is running",                  // Human-readable detail
			"timestamp": time.Now().UTC().Format(time.RFC3339), // Current server time
		})
	}
}

// NotFoundHandler answers unmatched routes with the error body shape
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found - " + c.Request.URL.Path})
	}
}
