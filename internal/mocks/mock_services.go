package mocks

import (
	"context"
	"time"

	"github.com/Juls010/bluvi-backend/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: reversible marker hash
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: matches the marker hash
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, role string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(userID uint, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	// Default behavior: static token
	return "test-token", nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: valid user claims
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Role:      "user",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc  func(ctx context.Context) (string, time.Time, error)
	ValidateFunc  func(stored *string, expiresAt *time.Time, submitted string, now time.Time) error
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
	MarkSentFunc  func(ctx context.Context, email string) error
}

func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Generate(ctx context.Context) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	// Default behavior: fixed code with a generous expiry
	return "123456", time.Now().Add(15 * time.Minute), nil
}

func (m *MockOTPService) Validate(stored *string, expiresAt *time.Time, submitted string, now time.Time) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(stored, expiresAt, submitted, now)
	}
	// Default behavior: plain comparison, no expiry handling
	if stored == nil || *stored != submitted {
		return domain.ErrCodeInvalid
	}
	return nil
}

func (m *MockOTPService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	// Default behavior: not throttled
	return true, 0, nil
}

func (m *MockOTPService) MarkSent(ctx context.Context, email string) error {
	if m.MarkSentFunc != nil {
		return m.MarkSentFunc(ctx, email)
	}
	return nil
}

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendVerificationCodeFunc func(to, code string) error

	// Sent records every delivery for assertion
	Sent []SentMail
}

// SentMail captures one outbound message
type SentMail struct {
	To   string
	Code string
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendVerificationCode(to, code string) error {
	m.Sent = append(m.Sent, SentMail{To: to, Code: code})
	if m.SendVerificationCodeFunc != nil {
		return m.SendVerificationCodeFunc(to, code)
	}
	return nil
}

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	AddPolicyFunc       func(role, resource, action string) error
	RemovePolicyFunc    func(role, resource, action string) error
	CheckPermissionFunc func(role, resource, action string) (bool, error)
	GetPoliciesFunc     func() [][]string
}

func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

func (m *MockPolicyService) AddPolicy(role, resource, action string) error {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(role, resource, action)
	}
	return nil
}

func (m *MockPolicyService) RemovePolicy(role, resource, action string) error {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(role, resource, action)
	}
	return nil
}

func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	// Default behavior: allow
	return true, nil
}

func (m *MockPolicyService) GetPolicies() [][]string {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	return [][]string{}
}

// MockCatalogRepository implements domain.CatalogRepository interface for testing
type MockCatalogRepository struct {
	ListInterestsFunc    func(ctx context.Context) ([]domain.CatalogEntry, error)
	RegisterMetadataFunc func(ctx context.Context) (*domain.RegisterMetadata, error)
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{}
}

func (m *MockCatalogRepository) ListInterests(ctx context.Context) ([]domain.CatalogEntry, error) {
	if m.ListInterestsFunc != nil {
		return m.ListInterestsFunc(ctx)
	}
	return []domain.CatalogEntry{}, nil
}

func (m *MockCatalogRepository) RegisterMetadata(ctx context.Context) (*domain.RegisterMetadata, error) {
	if m.RegisterMetadataFunc != nil {
		return m.RegisterMetadataFunc(ctx)
	}
	return &domain.RegisterMetadata{}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService   = (*MockPasswordService)(nil)
	_ domain.TokenService      = (*MockTokenService)(nil)
	_ domain.OTPService        = (*MockOTPService)(nil)
	_ domain.Mailer            = (*MockMailer)(nil)
	_ domain.PolicyService     = (*MockPolicyService)(nil)
	_ domain.CatalogRepository = (*MockCatalogRepository)(nil)
)
