package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"todo_service/internal/apperr"
	"todo_service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	byEmail map[string]*domain.User
	nextID  uint
	findErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*domain.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

type fakeIssuer struct{ err error }

func (f fakeIssuer) Issue(userID uint, username, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + username, nil
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewAuthService(users, fakeIssuer{})

	user, tok, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "token-alice", tok)

	// The stored password is a salted hash of the plaintext, not the plaintext
	stored := users.byEmail["alice@example.com"]
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewAuthService(users, fakeIssuer{})

	_, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "alice2", "alice@example.com", "password456")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Equal(t, "User with this email already exists", apperr.Message(err))
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewAuthService(users, fakeIssuer{})

	_, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	user, tok, err := svc.Login(context.Background(), "bob@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "token-bob", tok)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := NewAuthService(users, fakeIssuer{})

	_, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	// Wrong password and unknown email are indistinguishable to the caller
	_, _, err = svc.Login(context.Background(), "bob@example.com", "wrongpass")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Equal(t, "Invalid email or password", apperr.Message(err))

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Equal(t, "Invalid email or password", apperr.Message(err))
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	users.findErr = errors.New("connection refused")
	svc := NewAuthService(users, fakeIssuer{})

	_, _, err := svc.Login(context.Background(), "bob@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))
}
