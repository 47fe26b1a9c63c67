package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakandev/portfolio-cms/internal/config"
	"github.com/rakandev/portfolio-cms/internal/entity"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Project{},
		&entity.Post{},
		&entity.Experience{},
		&entity.Education{},
		&entity.Skill{},
		&entity.Certificate{},
		&entity.Testimonial{},
		&entity.SocialLink{},
		&entity.Message{},
		&entity.Setting{},
		&entity.PageView{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := &entity.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	cfg := &config.Config{
		AppEnv:            "test",
		Port:              "0",
		AllowedOrigins:    "http://localhost:3000",
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		ContactRateLimit:  5,
		ContactRateWindow: time.Hour,
	}

	return New(cfg, db, nil, nil, nil).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "s3cret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Data.AccessToken == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Data.AccessToken
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/projects", "", gin.H{
		"title":       "Sneaky",
		"description": "should not exist",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create returned %d, want 401", w.Code)
	}

	// The rejected request must not have created anything.
	token := login(t, router)
	w = doJSON(t, router, http.MethodGet, "/api/admin/projects", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d", w.Code)
	}
	var list struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if list.Pagination.Total != 0 {
		t.Errorf("total = %d, want 0", list.Pagination.Total)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password returned %d, want 401", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ghost@example.com",
		"password": "s3cret-pass",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email returned %d, want 401", w.Code)
	}
}

func TestProjectLifecycleThroughAPI(t *testing.T) {
	router := setupServer(t)
	token := login(t, router)

	// Draft projects stay invisible publicly.
	w := doJSON(t, router, http.MethodPost, "/api/admin/projects", token, gin.H{
		"title":       "My App",
		"description": "a thing I built",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Data struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.Data.Slug != "my-app" {
		t.Errorf("slug = %q, want my-app", created.Data.Slug)
	}

	w = doJSON(t, router, http.MethodGet, "/api/public/projects/my-app", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unpublished project returned %d publicly, want 404", w.Code)
	}

	// Publish, then it appears.
	w = doJSON(t, router, http.MethodPut, "/api/admin/projects/"+created.Data.ID, token, gin.H{
		"is_published": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("publish returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/public/projects/my-app", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("published project returned %d publicly: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/api/admin/projects/"+created.Data.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/public/projects/my-app", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted project returned %d publicly, want 404", w.Code)
	}
}

func TestContactFormFlow(t *testing.T) {
	router := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/public/messages", "", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"content": "I love your work",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit returned %d: %s", w.Code, w.Body.String())
	}

	// The public response must not leak the admin-side flags.
	if bytes.Contains(w.Body.Bytes(), []byte("is_read")) {
		t.Error("public create response leaks admin fields")
	}

	// Validation failures use the public envelope.
	w = doJSON(t, router, http.MethodPost, "/api/public/messages", "", gin.H{
		"name":  "No Email",
		"email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid submit returned %d, want 400", w.Code)
	}

	// Whitespace-only fields pass binding but must still be rejected.
	w = doJSON(t, router, http.MethodPost, "/api/public/messages", "", gin.H{
		"name":    "   ",
		"email":   "jane@example.com",
		"content": "   ",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank submit returned %d, want 400", w.Code)
	}

	token := login(t, router)
	w = doJSON(t, router, http.MethodGet, "/api/admin/messages", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list returned %d", w.Code)
	}
	var list struct {
		Data []struct {
			ID     string `json:"id"`
			IsRead bool   `json:"is_read"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("got %d messages, want 1", len(list.Data))
	}
	if list.Data[0].IsRead {
		t.Error("new message should be unread")
	}
}

func TestContactFormRateLimit(t *testing.T) {
	router := setupServer(t)

	submit := func(ip string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		body := gin.H{"name": "V", "email": "v@example.com", "content": "hi"}
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		req := httptest.NewRequest(http.MethodPost, "/api/public/messages", &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 5; i++ {
		if w := submit("203.0.113.50"); w.Code != http.StatusCreated {
			t.Fatalf("submit %d returned %d", i+1, w.Code)
		}
	}

	if w := submit("203.0.113.50"); w.Code != http.StatusTooManyRequests {
		t.Errorf("6th submit returned %d, want 429", w.Code)
	}

	// A different client IP still gets through.
	if w := submit("203.0.113.51"); w.Code != http.StatusCreated {
		t.Errorf("other ip returned %d, want 201", w.Code)
	}
}

func TestPublicViewTracking(t *testing.T) {
	router := setupServer(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/public/views", "", gin.H{"path": "/about"})
		if w.Code != http.StatusOK {
			t.Fatalf("track returned %d: %s", w.Code, w.Body.String())
		}
	}

	token := login(t, router)
	w := doJSON(t, router, http.MethodGet, "/api/admin/views", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin views returned %d", w.Code)
	}
	var views struct {
		Data []struct {
			Path  string `json:"path"`
			Count int64  `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("failed to decode views: %v", err)
	}
	if len(views.Data) != 1 || views.Data[0].Count != 3 {
		t.Errorf("views = %+v, want /about with count 3", views.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/api/admin/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats returned %d", w.Code)
	}
	var stats struct {
		Data struct {
			TotalViews int64 `json:"total_views"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.Data.TotalViews != 3 {
		t.Errorf("total_views = %d, want 3", stats.Data.TotalViews)
	}
}

func TestSearchUnavailableWithoutBackend(t *testing.T) {
	router := setupServer(t)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/public/search?q=%s", "app"), "", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("search without backend returned %d, want 503", w.Code)
	}
}
