package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/cafemine/mine-backend/internal/middleware"
	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/response"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/cafemine/mine-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// adminDirectory is the slice of AdminService the login flow reads from.
type adminDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// AuthHandler handles the admin login, logout, and session check endpoints.
type AuthHandler struct {
	cfg          *config.Config
	authService  *service.AuthService
	adminService adminDirectory
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, authService *service.AuthService, adminService adminDirectory) *AuthHandler {
	return &AuthHandler{cfg: cfg, authService: authService, adminService: adminService}
}

// Login godoc
// POST /api/admin/login
// Validates email + password, sets the token cookie on success. Unknown email
// and wrong password return the same message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Only a missing row is a credential failure; anything else is the
		// database misbehaving and must not masquerade as a bad password.
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateAdminToken(admin.ID, admin.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.setAdminCookie(c, token, service.TokenMaxAgeSeconds)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin":   gin.H{"email": admin.Email},
	})
}

// Logout godoc
// POST /api/admin/logout
// Clears the token cookie. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setAdminCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me godoc
// GET /api/admin/me
// Reports the authenticated admin, or {"admin": null} with 401.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"admin": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{"email": claims.Email},
	})
}

// setAdminCookie writes the token cookie with the session boundary attributes:
// HTTP-only, SameSite=Lax, Secure in release deployments, path /.
func (h *AuthHandler) setAdminCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, token, maxAge, "/", "", h.cfg.CookieSecure, true)
}
