package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers every authentication mismatch, including a
// corrupt stored hash, so responses never reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	// bcryptCost is fixed; password hashes are only written by the seeding
	// command, so there is no need to tune this per deployment.
	bcryptCost = 12

	// tokenTTL is the fixed lifetime of an admin token and of the cookie
	// that carries it.
	tokenTTL = 24 * time.Hour
)

// TokenMaxAgeSeconds is the cookie max-age matching the token lifetime.
const TokenMaxAgeSeconds = int(tokenTTL / time.Second)

// AdminClaims are the signed claims carried by the admin cookie token.
type AdminClaims struct {
	jwt.RegisteredClaims
	AdminID int    `json:"adminId"`
	Email   string `json:"email"`
}

// AuthService handles password verification and the admin token codec.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// HashPassword hashes a password with bcrypt. Any input, including the empty
// string, produces a valid hash.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash. It
// returns ErrInvalidCredentials on any mismatch, including a hash that is not
// valid bcrypt output.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateAdminToken creates a signed token embedding the admin identity,
// expiring exactly 24 hours from issuance.
func (s *AuthService) GenerateAdminToken(adminID int, email string) (string, error) {
	now := time.Now()

	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		AdminID: adminID,
		Email:   email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates an admin token, returning its claims.
// Malformed, tampered, and expired tokens all yield an error.
func (s *AuthService) ValidateToken(tokenStr string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
