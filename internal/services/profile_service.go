package services

import (
	"context"

	"github.com/Juls010/bluvi-backend/domain"
)

// ProfileServiceImpl implements domain.ProfileService
type ProfileServiceImpl struct {
	userRepo domain.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo domain.UserRepository) domain.ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

// GetProfile implements domain.ProfileService
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	return s.userRepo.GetProfile(ctx, userID)
}

// Explore implements domain.ProfileService
func (s *ProfileServiceImpl) Explore(ctx context.Context, userID uint, filter domain.ExploreFilter) ([]domain.ExploreCard, error) {
	return s.userRepo.Explore(ctx, userID, filter)
}
