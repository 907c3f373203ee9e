package mocks

import (
	"context"

	"github.com/Juls010/bluvi-backend/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	CheckEmailFunc  func(ctx context.Context, email string) (bool, error)
	RegisterFunc    func(ctx context.Context, reg *domain.Registration) (*domain.User, error)
	VerifyEmailFunc func(ctx context.Context, userID uint, code string) (*domain.AuthResult, error)
	LoginFunc       func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ResendCodeFunc  func(ctx context.Context, email string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if m.CheckEmailFunc != nil {
		return m.CheckEmailFunc(ctx, email)
	}
	// Default behavior: available
	return false, nil
}

func (m *MockAuthService) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	// Default behavior: pending account
	return &domain.User{
		ID:        1,
		Email:     reg.Email,
		FirstName: reg.FirstName,
		Role:      "user",
	}, nil
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, userID uint, code string) (*domain.AuthResult, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, userID, code)
	}
	// Default behavior: verified with a session token
	return &domain.AuthResult{
		User:      &domain.User{ID: userID, Role: "user", IsVerified: true},
		Token:     "test-token",
		ExpiresIn: 86400,
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: success
	return &domain.AuthResult{
		User:      &domain.User{ID: 1, Email: email, Role: "user", IsVerified: true},
		Token:     "test-token",
		ExpiresIn: 86400,
	}, nil
}

func (m *MockAuthService) ResendCode(ctx context.Context, email string) error {
	if m.ResendCodeFunc != nil {
		return m.ResendCodeFunc(ctx, email)
	}
	return nil
}

// MockProfileService implements domain.ProfileService interface for testing
type MockProfileService struct {
	GetProfileFunc func(ctx context.Context, userID uint) (*domain.Profile, error)
	ExploreFunc    func(ctx context.Context, userID uint, filter domain.ExploreFilter) ([]domain.ExploreCard, error)
}

func NewMockProfileService() *MockProfileService {
	return &MockProfileService{}
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return &domain.Profile{ID: userID}, nil
}

func (m *MockProfileService) Explore(ctx context.Context, userID uint, filter domain.ExploreFilter) ([]domain.ExploreCard, error) {
	if m.ExploreFunc != nil {
		return m.ExploreFunc(ctx, userID, filter)
	}
	return []domain.ExploreCard{}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.AuthService    = (*MockAuthService)(nil)
	_ domain.ProfileService = (*MockProfileService)(nil)
)
