package service

import (
	"context" // Request-scoped operations
	"errors"  // Store error classification

	"todo_service/internal/apperr" // Error taxonomy
	"todo_service/internal/cache"  // Cache key helpers
	"todo_service/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // Store sentinel errors
)

// TodoStore is the persistence surface the todo service needs
type TodoStore interface {
	Create(ctx context.Context, todo *domain.Todo) error
	FindByID(ctx context.Context, id uint) (*domain.Todo, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Todo, error)
	Update(ctx context.Context, id uint, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id uint) (int64, error)
	ToggleCompleted(ctx context.Context, id uint) (*domain.Todo, error)
}

// Cache is the key/value layer in front of todo reads. Implementations may
// fail; the service treats get errors as misses and swallows write errors.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// TodoService implements per-user CRUD with ownership checks and a
// read-through cache. Mutation paths read fresh state from the store;
// only GetByID tolerates cache staleness.
type TodoService struct {
	todos TodoStore // Todo store
	cache Cache     // Read-through cache
}

// NewTodoService wires the todo service to its collaborators
func NewTodoService(todos TodoStore, cache Cache) *TodoService {
	return &TodoService{todos: todos, cache: cache}
}

// Create inserts a todo owned by userID and invalidates the user's list cache
func (s *TodoService) Create(ctx context.Context, userID uint, title, description string) (*domain.Todo, error) {
	todo := &domain.Todo{Title: title, Description: description, UserID: userID}
	if err := s.todos.Create(ctx, todo); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Failed to create todo")
		return nil, apperr.Internal("Failed to create todo", err)
	}
	// Invalidate (not populate) the list so the next read reflects the insert
	s.invalidate(ctx, cache.UserTodosKey(userID))
	return todo, nil
}

// GetByID returns a todo the user owns. Read-through: a cache hit never
// touches the store; a miss populates the cache. The ownership check runs
// after the existence check regardless of where the todo came from.
func (s *TodoService) GetByID(ctx context.Context, userID, todoID uint) (*domain.Todo, error) {
	key := cache.TodoKey(todoID)
	var cached domain.Todo
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		// Cache trouble is a miss, never a request failure
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache get failed")
		found = false
	}
	if found {
		if cached.UserID != userID {
			return nil, apperr.Forbidden("You do not have permission to access this todo")
		}
		return &cached, nil
	}
	todo, err := s.findTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}
	s.populate(ctx, key, todo)
	if todo.UserID != userID {
		return nil, apperr.Forbidden("You do not have permission to access this todo")
	}
	return todo, nil
}

// ListByUser returns the user's todos, newest first, read-through cached
func (s *TodoService) ListByUser(ctx context.Context, userID uint) ([]domain.Todo, error) {
	key := cache.UserTodosKey(userID)
	var cached []domain.Todo
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache get failed")
		found = false
	}
	if found {
		return cached, nil
	}
	todos, err := s.todos.FindByUser(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Failed to list todos")
		return nil, apperr.Internal("Failed to retrieve todos", err)
	}
	s.populate(ctx, key, todos)
	return todos, nil
}

// Update applies a partial update to a todo the user owns, refreshes the
// todo cache entry and invalidates the user's list cache
func (s *TodoService) Update(ctx context.Context, userID, todoID uint, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Empty() {
		return nil, apperr.BadRequest("No fields to update")
	}
	if _, err := s.authorize(ctx, userID, todoID); err != nil {
		return nil, err
	}
	todo, err := s.todos.Update(ctx, todoID, patch)
	if err != nil {
		logrus.WithFields(logrus.Fields{"todo_id": todoID, "error": err.Error()}).Error("Failed to update todo")
		return nil, apperr.Internal("Failed to update todo", err)
	}
	s.populate(ctx, cache.TodoKey(todoID), todo)
	s.invalidate(ctx, cache.UserTodosKey(userID))
	return todo, nil
}

// Delete removes a todo the user owns and invalidates both cache entries.
// Zero rows affected after a passing ownership check means a concurrent
// delete won the race; that surfaces as an internal error, never a silent
// success.
func (s *TodoService) Delete(ctx context.Context, userID, todoID uint) error {
	if _, err := s.authorize(ctx, userID, todoID); err != nil {
		return err
	}
	rows, err := s.todos.Delete(ctx, todoID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"todo_id": todoID, "error": err.Error()}).Error("Failed to delete todo")
		return apperr.Internal("Failed to delete todo", err)
	}
	if rows == 0 {
		return apperr.Internal("Failed to delete todo", nil)
	}
	s.invalidate(ctx, cache.TodoKey(todoID))
	s.invalidate(ctx, cache.UserTodosKey(userID))
	return nil
}

// ToggleCompleted atomically flips the completed flag of a todo the user
// owns, with the same cache refresh/invalidate pattern as Update
func (s *TodoService) ToggleCompleted(ctx context.Context, userID, todoID uint) (*domain.Todo, error) {
	if _, err := s.authorize(ctx, userID, todoID); err != nil {
		return nil, err
	}
	todo, err := s.todos.ToggleCompleted(ctx, todoID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"todo_id": todoID, "error": err.Error()}).Error("Failed to toggle todo")
		return nil, apperr.Internal("Failed to update todo", err)
	}
	s.populate(ctx, cache.TodoKey(todoID), todo)
	s.invalidate(ctx, cache.UserTodosKey(userID))
	return todo, nil
}

// authorize is the uniform ownership pre-check for mutation paths. It reads
// the store directly, bypassing the cache, so mutations never act on stale
// ownership. Absence maps to NotFound, owner mismatch to Forbidden.
func (s *TodoService) authorize(ctx context.Context, userID, todoID uint) (*domain.Todo, error) {
	todo, err := s.findTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, apperr.Forbidden("You do not have permission to access this todo")
	}
	return todo, nil
}

// findTodo reads a todo from the store and classifies absence
func (s *TodoService) findTodo(ctx context.Context, todoID uint) (*domain.Todo, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Todo not found")
		}
		logrus.WithFields(logrus.Fields{"todo_id": todoID, "error": err.Error()}).Error("Failed to find todo")
		return nil, apperr.Internal("Failed to retrieve todo", err)
	}
	return todo, nil
}

// populate writes a cache entry, logging and swallowing failures
func (s *TodoService) populate(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache set failed")
	}
}

// invalidate deletes a cache entry, logging and swallowing failures
func (s *TodoService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache delete failed")
	}
}
