package api

import (
	"context"  // Request-scoped service calls
	"net/http" // HTTP status codes

	"todo_service/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthService is the authentication surface the handlers need
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"` // Username, 3-30 chars
	Email    string `json:"email" binding:"required,email"`           // Valid email address
	Password string `json:"password" binding:"required,min=6"`        // Password, at least 6 chars
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`    // Valid email address
	Password string `json:"password" binding:"required,min=6"` // Password, at least 6 chars
}

// RegisterHandler creates a user account and returns it with a fresh token
func RegisterHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding or validation fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error: " + err.Error()})
			return
		}
		user, token, err := auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Conflict or store failure
			return
		}
		// Return the user (password never serialized) and the token
		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    user,
			"token":   token,
		})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding or validation fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error: " + err.Error()})
			return
		}
		user, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err) // Invalid credentials or store failure
			return
		}
		// Return the user and the token in the response
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"token":   token,
		})
	}
}
