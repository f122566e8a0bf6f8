package service

import (
	"context"

	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/repository"
)

// AdminService handles admin identity lookups and out-of-band seeding.
type AdminService struct {
	adminRepo *repository.AdminRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// GetByEmail retrieves an admin by email.
func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return s.adminRepo.GetByEmail(ctx, email)
}

// Seed upserts the admin identified by email, rotating its password hash when
// the row already exists. Only the seeding command calls this.
func (s *AdminService) Seed(ctx context.Context, email, passwordHash string) (*model.Admin, error) {
	return s.adminRepo.Upsert(ctx, email, passwordHash)
}
