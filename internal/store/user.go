package store

import (
	"context" // Request-scoped store operations

	"todo_service/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserStore persists credential records in the users table
type UserStore struct {
	db *gorm.DB // Shared connection pool
}

// NewUserStore creates a store around the shared database handle
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user row. Duplicate username/email surfaces as
// gorm.ErrDuplicatedKey.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// FindByEmail looks a user up by email; gorm.ErrRecordNotFound when absent
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
