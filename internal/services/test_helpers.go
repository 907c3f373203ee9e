package services

import (
	"context"
	"testing"
	"time"

	"github.com/Juls010/bluvi-backend/domain"
	"github.com/Juls010/bluvi-backend/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	mailer domain.Mailer) domain.AuthService {
	t.Helper()

	// Use provided mocks or create defaults
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpSvc == nil {
		otpSvc = mocks.NewMockOTPService()
	}
	if mailer == nil {
		mailer = mocks.NewMockMailer()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, mailer, 24*time.Hour)
}

// createVerifiedUser creates a verified user entity for testing
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "hashed_password123",
		FirstName:    "Lena",
		LastName:     "Moreau",
		BirthDate:    time.Date(1996, 4, 12, 0, 0, 0, 0, time.UTC),
		City:         "Lyon",
		Role:         "user",
		IsVerified:   true,
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createPendingUser creates an unverified user with a stored code for testing
func createPendingUser(t *testing.T, code string, expiresAt time.Time) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.IsVerified = false
	user.VerificationCode = &code
	user.CodeExpiresAt = &expiresAt
	return user
}

// createValidRegistration creates a complete sign-up payload for testing
func createValidRegistration(t *testing.T) *domain.Registration {
	t.Helper()

	return &domain.Registration{
		Email:        "newuser@example.com",
		Password:     "securepassword123",
		FirstName:    "Marta",
		LastName:     "Silva",
		BirthDate:    time.Date(1998, 9, 3, 0, 0, 0, 0, time.UTC),
		City:         "Porto",
		Description:  "Board games and long walks",
		GenderID:     2,
		PreferenceID: 1,
		InterestIDs:  []uint{1, 3},
		FeatureIDs:   []uint{2},
		PhotoURLs:    []string{"https://cdn.example.com/p/1.jpg", "https://cdn.example.com/p/2.jpg"},
	}
}

// assertAuthResult validates the structure and content of an AuthResult
func assertAuthResult(t *testing.T, result *domain.AuthResult, expectedUser *domain.User) {
	t.Helper()

	if result == nil {
		t.Fatal("AuthResult is nil")
	}

	if result.User == nil {
		t.Fatal("AuthResult.User is nil")
	}

	if result.User.ID != expectedUser.ID {
		t.Errorf("expected user ID %d, got %d", expectedUser.ID, result.User.ID)
	}

	if result.User.Email != expectedUser.Email {
		t.Errorf("expected user email %s, got %s", expectedUser.Email, result.User.Email)
	}

	if result.Token == "" {
		t.Error("Token is empty")
	}

	if result.ExpiresIn <= 0 {
		t.Errorf("expected positive ExpiresIn, got %d", result.ExpiresIn)
	}
}

// createTestContext creates a context for testing with timeout
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
