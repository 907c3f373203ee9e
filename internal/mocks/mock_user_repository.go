package mocks

import (
	"context"
	"time"

	"github.com/Juls010/bluvi-backend/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateWithAssociationsFunc func(ctx context.Context, user *domain.User, interestIDs, featureIDs []uint, photoURLs []string) error
	FindByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc               func(ctx context.Context, id uint) (*domain.User, error)
	EmailExistsFunc            func(ctx context.Context, email string) (bool, error)
	MarkVerifiedFunc           func(ctx context.Context, userID uint) error
	ResetVerificationCodeFunc  func(ctx context.Context, userID uint, code string, expiresAt time.Time) error
	GetProfileFunc             func(ctx context.Context, userID uint) (*domain.Profile, error)
	ExploreFunc                func(ctx context.Context, userID uint, filter domain.ExploreFilter) ([]domain.ExploreCard, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) CreateWithAssociations(ctx context.Context, user *domain.User, interestIDs, featureIDs []uint, photoURLs []string) error {
	if m.CreateWithAssociationsFunc != nil {
		return m.CreateWithAssociationsFunc(ctx, user, interestIDs, featureIDs, photoURLs)
	}
	// Default behavior: success, assign an id
	user.ID = 1
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	// Default behavior: available
	return false, nil
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, userID uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

func (m *MockUserRepository) ResetVerificationCode(ctx context.Context, userID uint, code string, expiresAt time.Time) error {
	if m.ResetVerificationCodeFunc != nil {
		return m.ResetVerificationCodeFunc(ctx, userID, code, expiresAt)
	}
	// Default behavior: success
	return nil
}

func (m *MockUserRepository) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Explore(ctx context.Context, userID uint, filter domain.ExploreFilter) ([]domain.ExploreCard, error) {
	if m.ExploreFunc != nil {
		return m.ExploreFunc(ctx, userID, filter)
	}
	// Default behavior: empty listing
	return []domain.ExploreCard{}, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
