package store

import (
	"context" // Request-scoped store operations

	"todo_service/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// TodoStore persists todo records in the todos table
type TodoStore struct {
	db *gorm.DB // Shared connection pool
}

// NewTodoStore creates a store around the shared database handle
func NewTodoStore(db *gorm.DB) *TodoStore {
	return &TodoStore{db: db}
}

// Create inserts a new todo row
func (s *TodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	return s.db.WithContext(ctx).Create(todo).Error
}

// FindByID looks a todo up by primary key; gorm.ErrRecordNotFound when absent
func (s *TodoStore) FindByID(ctx context.Context, id uint) (*domain.Todo, error) {
	var todo domain.Todo
	if err := s.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// FindByUser returns a user's todos ordered by creation time, newest first
func (s *TodoStore) FindByUser(ctx context.Context, userID uint) ([]domain.Todo, error) {
	var todos []domain.Todo
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Update applies only the populated patch fields to the row and returns the
// updated record. Columns are named here, never assembled from input.
func (s *TodoStore) Update(ctx context.Context, id uint, patch domain.TodoPatch) (*domain.Todo, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title // New title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description // New description
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed // New completion flag
	}
	if err := s.db.WithContext(ctx).Model(&domain.Todo{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id) // Re-read the row with store-assigned updated_at
}

// Delete removes a todo row and reports how many rows were affected, so a
// race with a concurrent delete is detectable by the caller.
func (s *TodoStore) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&domain.Todo{}, id)
	return res.RowsAffected, res.Error
}

// ToggleCompleted flips the completed flag in a single atomic statement so
// two interleaved toggles can never lose an update, then returns the row.
func (s *TodoStore) ToggleCompleted(ctx context.Context, id uint) (*domain.Todo, error) {
	if err := s.db.WithContext(ctx).Model(&domain.Todo{}).Where("id = ?", id).
		Update("completed", gorm.Expr("NOT completed")).Error; err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}
