package middleware

import (
	"net/http"

	"github.com/cafemine/mine-backend/internal/response"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminTokenCookie is the cookie carrying the signed admin token.
const AdminTokenCookie = "mine_admin_token"

// ContextKeyClaims is the Gin context key for verified admin claims.
const ContextKeyClaims = "admin_claims"

// RequireAdmin resolves the admin identity from the token cookie and rejects
// the request when the cookie is absent, malformed, tampered, or expired.
func RequireAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveClaims(c, authService)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorized)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// OptionalAdmin resolves the admin identity when a valid cookie is present but
// never rejects the request. Routes behind it serve both audiences, e.g. the
// menu listing that includes unavailable items only for an admin.
func OptionalAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := resolveClaims(c, authService); claims != nil {
			c.Set(ContextKeyClaims, claims)
		}
		c.Next()
	}
}

// GetClaims retrieves the verified admin claims from the Gin context, or nil
// when the request carries no admin identity.
func GetClaims(c *gin.Context) *service.AdminClaims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.AdminClaims)
	if !ok {
		return nil
	}
	return claims
}

func resolveClaims(c *gin.Context, authService *service.AuthService) *service.AdminClaims {
	token, err := c.Cookie(AdminTokenCookie)
	if err != nil || token == "" {
		return nil
	}
	claims, err := authService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return claims
}
