package api

import (
	"errors" // Cause extraction

	"todo_service/internal/apperr" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// respondError renders a classified error as {message} with the mapped
// status. Outside release mode the underlying cause is attached for
// debugging; in production only the safe message leaves the process.
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,   // Request method
		"path":   c.Request.URL.Path, // Request path
		"status": status,             // Mapped status code
		"error":  err.Error(),        // Full error chain
	}).Error("Request failed")
	body := gin.H{"message": apperr.Message(err)}
	if gin.Mode() != gin.ReleaseMode {
		var e *apperr.Error
		if errors.As(err, &e) && e.Err != nil {
			body["error"] = e.Err.Error() // Cause, development only
		}
	}
	c.JSON(status, body)
}
