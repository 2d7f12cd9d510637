package service

import (
	"context" // Request-scoped operations
	"errors"  // Store error classification

	"todo_service/internal/apperr" // Error taxonomy
	"todo_service/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // Store sentinel errors
)

// UserStore is the credential persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer produces signed identity tokens
type TokenIssuer interface {
	Issue(userID uint, username, email string) (string, error)
}

// AuthService registers users and exchanges credentials for tokens
type AuthService struct {
	users  UserStore   // Credential store
	tokens TokenIssuer // Token manager
}

// NewAuthService wires the auth service to its collaborators
func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password and issues a token.
// A second registration with the same email fails with a conflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	// Check if a user with this email already exists
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", apperr.BadRequest("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Failed to look up user by email")
		return nil, "", apperr.Internal("Failed to create user", err)
	}
	// Hash the password; the plaintext is never persisted or logged
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Internal("Failed to create user", err)
	}
	user := &domain.User{Username: username, Email: email, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can still hit the unique constraint
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperr.BadRequest("User with this email already exists")
		}
		logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Failed to create user")
		return nil, "", apperr.Internal("Failed to create user", err)
	}
	tok, err := s.tokens.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", apperr.Internal("Failed to generate token", err)
	}
	return user, tok, nil
}

// Login verifies credentials and issues a token. Unknown email and hash
// mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.BadRequest("Invalid email or password")
		}
		logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Failed to look up user by email")
		return nil, "", apperr.Internal("Login failed", err)
	}
	// Constant-time comparison via the bcrypt library
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.BadRequest("Invalid email or password")
	}
	tok, err := s.tokens.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", apperr.Internal("Failed to generate token", err)
	}
	return user, tok, nil
}
