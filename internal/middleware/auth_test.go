package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rakandev/portfolio-cms/internal/entity"
	"github.com/rakandev/portfolio-cms/internal/token"
)

const testSecret = "test-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := NewAuthMiddleware(testSecret)
	r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func signToken(t *testing.T, ttl time.Duration) (string, uuid.UUID) {
	t.Helper()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  entity.RoleAdmin,
	}
	signed, _, err := token.Generate(user, testSecret, ttl)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed, user.ID
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rr.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rr.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	r := setupRouter()
	signed, _ := signToken(t, -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rr.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	r := setupRouter()
	signed, userID := signToken(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if want := userID.String(); !strings.Contains(rr.Body.String(), want) {
		t.Errorf("response %q does not contain user id %q", rr.Body.String(), want)
	}
}

func TestRequireAuthQueryParamFallback(t *testing.T) {
	r := setupRouter()
	signed, _ := signToken(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+signed, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rr.Code)
	}
}
