package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AuMiauServices/petshop-api/internal/token"
)

func newAuthRouter(t *testing.T, tokens *token.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protegida", AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newAuthRouter(t, token.NewManager("test-secret", 60))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newAuthRouter(t, token.NewManager("test-secret", 60))

	for _, header := range []string{"Bearer lixo", "Token abc", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest && w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected rejection, got %d", header, w.Code)
		}
		if w.Code == http.StatusOK {
			t.Errorf("header %q: request passed authentication", header)
		}
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", 60)
	r := newAuthRouter(t, tokens)

	signed, _, err := tokens.Generate(9)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := newAuthRouter(t, token.NewManager("secret-a", 60))

	signed, _, err := token.NewManager("secret-b", 60).Generate(9)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
