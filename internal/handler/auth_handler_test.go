package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/cafemine/mine-backend/internal/middleware"
	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/cafemine/mine-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type stubAdminDirectory struct {
	admin *model.Admin
	err   error
}

func (s stubAdminDirectory) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return s.admin, s.err
}

func loginRouter(t *testing.T, directory adminDirectory) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()

	authService := service.NewAuthService(&config.Config{JWTSecret: "unit-test-secret"})
	h := NewAuthHandler(&config.Config{JWTSecret: "unit-test-secret"}, authService, directory)

	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginUnknownEmail(t *testing.T) {
	r := loginRouter(t, stubAdminDirectory{err: pgx.ErrNoRows})

	w := postLogin(t, r, "nobody@example.com", "whatever1")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLoginStorageFailureIsNotACredentialError(t *testing.T) {
	r := loginRouter(t, stubAdminDirectory{err: errors.New("connection refused")})

	w := postLogin(t, r, "admin@example.com", "whatever1")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for a storage failure", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	authService := service.NewAuthService(&config.Config{JWTSecret: "unit-test-secret"})
	hash, err := authService.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	r := loginRouter(t, stubAdminDirectory{
		admin: &model.Admin{ID: 1, Email: "admin@example.com", PasswordHash: hash},
	})

	w := postLogin(t, r, "admin@example.com", "wrong-password")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	authService := service.NewAuthService(&config.Config{JWTSecret: "unit-test-secret"})
	hash, err := authService.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	r := loginRouter(t, stubAdminDirectory{
		admin: &model.Admin{ID: 1, Email: "admin@example.com", PasswordHash: hash},
	})

	w := postLogin(t, r, "admin@example.com", "correct-password")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Admin   struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Admin.Email != "admin@example.com" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminTokenCookie && c.HttpOnly && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("HttpOnly token cookie not set")
	}
}
