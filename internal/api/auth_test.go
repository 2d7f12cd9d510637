package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todo_service/internal/apperr"
	"todo_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	user *domain.User
	tok  string
	err  error
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	return s.user, s.tok, s.err
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.user, s.tok, s.err
}

func newAuthRouter(auth AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", RegisterHandler(auth))
	r.POST("/auth/login", LoginHandler(auth))
	return r
}

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	auth := &stubAuthService{
		user: &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "bcrypt-hash"},
		tok:  "signed-token",
	}
	r := newAuthRouter(auth)

	body := `{"username":"alice","email":"alice@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	// The password hash never appears in a response
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "bcrypt-hash")
}

func TestRegisterHandler_Validation(t *testing.T) {
	t.Parallel()

	r := newAuthRouter(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"ab","email":"a@example.com","password":"password123"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"password123"}`},
		{"short password", `{"username":"alice","email":"a@example.com","password":"pw"}`},
		{"missing fields", `{}`},
		{"not json", `title`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "message")
		})
	}
}

func TestRegisterHandler_Conflict(t *testing.T) {
	t.Parallel()

	auth := &stubAuthService{err: apperr.BadRequest("User with this email already exists")}
	r := newAuthRouter(auth)

	body := `{"username":"alice","email":"alice@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User with this email already exists")
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	auth := &stubAuthService{
		user: &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"},
		tok:  "signed-token",
	}
	r := newAuthRouter(auth)

	body := `{"email":"alice@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"signed-token"`)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	t.Parallel()

	auth := &stubAuthService{err: apperr.BadRequest("Invalid email or password")}
	r := newAuthRouter(auth)

	body := `{"email":"alice@example.com","password":"wrongpass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}
