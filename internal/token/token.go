package token

import (
	"errors" // Sentinel error matching
	"time"   // Token lifetime arithmetic

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Verification failures, distinguishable so the HTTP boundary can emit
// distinct 401 messages for expired vs tampered/malformed tokens.
var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Claims embedded in every issued token
type Claims struct {
	UserID               uint   `json:"userId"`   // Authenticated user's id
	Username             string `json:"username"` // Authenticated user's name
	Email                string `json:"email"`    // Authenticated user's email
	jwt.RegisteredClaims        // Standard iat/exp claims
}

// Manager issues and verifies HS256-signed identity tokens
type Manager struct {
	secret   []byte        // Shared signing secret
	lifetime time.Duration // Token validity window
}

// NewManager creates a token manager with the given secret and lifetime
func NewManager(secret string, lifetime time.Duration) *Manager {
	return &Manager{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a signed token embedding the user's identity
func (m *Manager) Issue(userID uint, username, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,   // Custom claim for user ID
		Username: username, // Custom claim for username
		Email:    email,    // Custom claim for email
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),                 // Issued at current time
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)), // Expires after the configured lifetime
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return t.SignedString(m.secret)                        // Sign the token with the secret
}

// Verify parses and validates a token string. Returns ErrExpired when the
// token's lifetime has passed, ErrInvalid on any signature or structure
// problem.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil // Secret key for signature validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
