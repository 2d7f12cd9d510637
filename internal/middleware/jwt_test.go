package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todo_service/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(tokens), func(c *gin.Context) {
		uid := c.MustGet(UserIDKey).(uint)
		c.JSON(http.StatusOK, gin.H{"userId": uid})
	})
	return r
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := token.NewManager("test-secret", time.Hour)
	r := newProtectedRouter(tokens)

	tok, err := tokens.Issue(7, "alice", "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":7}`, w.Body.String())
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	r := newProtectedRouter(token.NewManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Parallel()

	r := newProtectedRouter(token.NewManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc") // Not a bearer credential
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	tokens := token.NewManager("test-secret", time.Hour)
	r := newProtectedRouter(tokens)

	expired := token.NewManager("test-secret", -time.Minute)
	tok, err := expired.Issue(7, "alice", "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Expiry has its own message, distinct from a tampered token's
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token expired"}`, w.Body.String())
}

func TestJWTAuthMiddleware_TamperedToken(t *testing.T) {
	t.Parallel()

	r := newProtectedRouter(token.NewManager("test-secret", time.Hour))

	other := token.NewManager("other-secret", time.Hour)
	tok, err := other.Issue(7, "alice", "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
}
