package api

import (
	"context"  // Request-scoped service calls
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"todo_service/internal/domain"     // Importing domain models
	"todo_service/internal/middleware" // Context key for the authenticated user

	"github.com/gin-gonic/gin" // Gin web framework
)

// TodoService is the todo surface the handlers need
type TodoService interface {
	Create(ctx context.Context, userID uint, title, description string) (*domain.Todo, error)
	GetByID(ctx context.Context, userID, todoID uint) (*domain.Todo, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Todo, error)
	Update(ctx context.Context, userID, todoID uint, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID uint) error
	ToggleCompleted(ctx context.Context, userID, todoID uint) (*domain.Todo, error)
}

// Request struct for creating a todo
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"` // Title, 1-255 chars
	Description string `json:"description"`                            // Optional free text
}

// Request struct for partially updating a todo; absent fields stay untouched
type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"` // New title, if present
	Description *string `json:"description"`                             // New description, if present
	Completed   *bool   `json:"completed"`                               // New completion flag, if present
}

// userID extracts the authenticated user's id placed by the JWT middleware
func userID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.UserIDKey) // Get userID from context
	if !exists {
		// Route reached without the auth middleware
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return 0, false
	}
	return v.(uint), true
}

// todoID parses and validates the :id path parameter
func todoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		// Non-numeric or non-positive id
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// CreateTodoHandler inserts a todo owned by the authenticated user
func CreateTodoHandler(todos TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		var req CreateTodoRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding or validation fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error: " + err.Error()})
			return
		}
		todo, err := todos.Create(c.Request.Context(), uid, req.Title, req.Description)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Todo created successfully", "todo": todo})
	}
}

// ListTodosHandler returns the authenticated user's todos, newest first
func ListTodosHandler(todos TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		list, err := todos.ListByUser(c.Request.Context(), uid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todos retrieved successfully", "todos": list})
	}
}

// GetTodoHandler returns a single todo the authenticated user owns
func GetTodoHandler(todos TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		id, ok := todoID(c)
		if !ok {
			return
		}
		todo, err := todos.GetByID(c.Request.Context(), uid, id)
		if err != nil {
			respondError(c, err) // NotFound, Forbidden or store failure
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todo retrieved successfully", "todo": todo})
	}
}

// UpdateTodoHandler applies a partial update to a todo the user owns
func UpdateTodoHandler(todos TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		id, ok := todoID(c)
		if !ok {
			return
		}
		var req UpdateTodoRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error: " + err.Error()})
			return
		}
		patch := domain.TodoPatch{Title: req.Title, Description: req.Description, Completed: req.Completed}
		todo, err := todos.Update(c.Request.Context(), uid, id, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todo updated successfully", "todo": todo})
	}
}

// DeleteTodoHandler removes a todo the user owns
func DeleteTodoHandler(todos TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		id, ok := todoID(c)
		if !ok {
			return
		}
		if err := todos.Delete(c.Request.Context(), uid, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
	}
}

// ToggleTodoHandler flips the completed flag of a todo the user owns
func ToggleTodoHandler(todos TodoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		id, ok := todoID(c)
		if !ok {
			return
		}
		todo, err := todos.ToggleCompleted(c.Request.Context(), uid, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todo status toggled successfully", "todo": todo})
	}
}
