package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Juls010/bluvi-backend/domain"
	"github.com/Juls010/bluvi-backend/internal/mocks"
)

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockOTPService, *mocks.MockMailer)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User, mailer *mocks.MockMailer)
	}{
		{
			name: "successful registration leaves account pending",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				otpSvc.GenerateFunc = func(ctx context.Context) (string, time.Time, error) {
					return "654321", time.Now().Add(15 * time.Minute), nil
				}
			},
			expectedError: nil,
			validateUser: func(t *testing.T, user *domain.User, mailer *mocks.MockMailer) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected email %s, got %s", "newuser@example.com", user.Email)
				}
				if user.Role != "user" {
					t.Errorf("expected role %s, got %s", "user", user.Role)
				}
				if user.IsVerified {
					t.Error("expected freshly registered user to be unverified")
				}
				if user.VerificationCode == nil || *user.VerificationCode != "654321" {
					t.Error("expected the generated code to be stored on the user")
				}
				if user.CodeExpiresAt == nil {
					t.Error("expected a code expiry to be stored on the user")
				}
				if user.PasswordHash != "hashed_securepassword123" {
					t.Errorf("expected password hash %s, got %s", "hashed_securepassword123", user.PasswordHash)
				}
				if len(mailer.Sent) != 1 {
					t.Fatalf("expected 1 verification email, got %d", len(mailer.Sent))
				}
				if mailer.Sent[0].To != "newuser@example.com" || mailer.Sent[0].Code != "654321" {
					t.Errorf("unexpected delivery %+v", mailer.Sent[0])
				}
			},
		},
		{
			name: "email already taken",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				// Unique constraint fires inside the transaction
				userRepo.CreateWithAssociationsFunc = func(ctx context.Context, user *domain.User, interestIDs, featureIDs []uint, photoURLs []string) error {
					return domain.ErrEmailTaken
				}
			},
			expectedError: domain.ErrEmailTaken,
			validateUser: func(t *testing.T, user *domain.User, mailer *mocks.MockMailer) {
				if user != nil {
					t.Error("expected user to be nil when email is taken")
				}
				if len(mailer.Sent) != 0 {
					t.Errorf("expected no email when registration fails, got %d", len(mailer.Sent))
				}
			},
		},
		{
			name: "password hashing fails",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: fmt.Errorf("failed to hash password: %w", errors.New("hashing failed")),
			validateUser: func(t *testing.T, user *domain.User, mailer *mocks.MockMailer) {
				if user != nil {
					t.Error("expected user to be nil when password hashing fails")
				}
			},
		},
		{
			name: "user creation fails",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				userRepo.CreateWithAssociationsFunc = func(ctx context.Context, user *domain.User, interestIDs, featureIDs []uint, photoURLs []string) error {
					return errors.New("database error")
				}
			},
			expectedError: fmt.Errorf("failed to create user: %w", errors.New("database error")),
			validateUser: func(t *testing.T, user *domain.User, mailer *mocks.MockMailer) {
				if user != nil {
					t.Error("expected user to be nil when creation fails")
				}
			},
		},
		{
			name: "mailer failure does not undo the registration",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				mailer.SendVerificationCodeFunc = func(to, code string) error {
					return errors.New("SMTP unreachable")
				}
			},
			expectedError: nil,
			validateUser: func(t *testing.T, user *domain.User, mailer *mocks.MockMailer) {
				if user == nil {
					t.Fatal("expected the registration to survive a failed delivery")
				}
				if user.ID == 0 {
					t.Error("expected the committed user to carry an id")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			otpSvc := mocks.NewMockOTPService()
			mailer := mocks.NewMockMailer()

			tt.setupMocks(userRepo, passwordSvc, otpSvc, mailer)

			authService := createAuthServiceForTest(t, userRepo, passwordSvc, nil, otpSvc, mailer)
			ctx := createTestContext(t)

			user, err := authService.Register(ctx, createValidRegistration(t))

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				expectedMsg := tt.expectedError.Error()
				actualMsg := err.Error()
				if !strings.Contains(actualMsg, expectedMsg) {
					t.Errorf("expected error containing '%s', got '%s'", expectedMsg, actualMsg)
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
			}

			tt.validateUser(t, user, mailer)
		})
	}
}

func TestAuthServiceImpl_CheckEmail(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMocks     func(*mocks.MockUserRepository)
		expectedExists bool
		expectedError  bool
	}{
		{
			name:  "email available",
			email: "fresh@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.EmailExistsFunc = func(ctx context.Context, email string) (bool, error) {
					return false, nil
				}
			},
			expectedExists: false,
		},
		{
			name:  "email taken",
			email: "taken@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.EmailExistsFunc = func(ctx context.Context, email string) (bool, error) {
					return true, nil
				}
			},
			expectedExists: true,
		},
		{
			name:  "repository failure",
			email: "any@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.EmailExistsFunc = func(ctx context.Context, email string) (bool, error) {
					return false, errors.New("database error")
				}
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			authService := createAuthServiceForTest(t, userRepo, nil, nil, nil, nil)
			ctx := createTestContext(t)

			exists, err := authService.CheckEmail(ctx, tt.email)

			if tt.expectedError {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if exists != tt.expectedExists {
				t.Errorf("expected exists=%v, got %v", tt.expectedExists, exists)
			}
		})
	}
}

func TestAuthServiceImpl_VerifyEmail(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockOTPService, *mocks.MockTokenService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name: "successful verification issues a session",
			code: "654321",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, tokenSvc *mocks.MockTokenService) {
				pending := createPendingUser(t, "654321", time.Now().Add(10*time.Minute))
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return pending, nil
				}
				tokenSvc.GenerateFunc = func(userID uint, role string) (string, error) {
					return "session-token-123", nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				expected := createVerifiedUser(t)
				assertAuthResult(t, result, expected)
				if !result.User.IsVerified {
					t.Error("expected the user to come back verified")
				}
				if result.User.VerificationCode != nil || result.User.CodeExpiresAt != nil {
					t.Error("expected the stored code to be cleared after verification")
				}
				if result.Token != "session-token-123" {
					t.Errorf("expected token session-token-123, got %s", result.Token)
				}
			},
		},
		{
			name: "unknown user",
			code: "654321",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrUserNotFound,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for an unknown user")
				}
			},
		},
		{
			name: "wrong code",
			code: "000000",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, tokenSvc *mocks.MockTokenService) {
				pending := createPendingUser(t, "654321", time.Now().Add(10*time.Minute))
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return pending, nil
				}
				userRepo.MarkVerifiedFunc = func(ctx context.Context, userID uint) error {
					t.Error("MarkVerified must not be called on a failed attempt")
					return nil
				}
			},
			expectedError: domain.ErrCodeInvalid,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for a wrong code")
				}
			},
		},
		{
			name: "expired code",
			code: "654321",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, tokenSvc *mocks.MockTokenService) {
				pending := createPendingUser(t, "654321", time.Now().Add(-1*time.Minute))
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return pending, nil
				}
				otpSvc.ValidateFunc = func(stored *string, expiresAt *time.Time, submitted string, now time.Time) error {
					return domain.ErrCodeExpired
				}
			},
			expectedError: domain.ErrCodeExpired,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for an expired code")
				}
			},
		},
		{
			name: "already verified account has no stored code",
			code: "654321",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrCodeInvalid,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected a repeat verification to fail")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()
			tokenSvc := mocks.NewMockTokenService()

			// Real validation semantics unless the case overrides them
			otpSvc.ValidateFunc = NewOTPService(nil, OTPConfig{}).Validate

			tt.setupMocks(userRepo, otpSvc, tokenSvc)

			authService := createAuthServiceForTest(t, userRepo, nil, tokenSvc, otpSvc, nil)
			ctx := createTestContext(t)

			result, err := authService.VerifyEmail(ctx, 1, tt.code)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateResult(t, result)
		})
	}
}

func TestAuthServiceImpl_VerifyEmail_RetryAfterWrongCode(t *testing.T) {
	// A failed attempt must not burn the stored code
	pending := createPendingUser(t, "654321", time.Now().Add(10*time.Minute))

	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return pending, nil
	}

	otpSvc := mocks.NewMockOTPService()
	otpSvc.ValidateFunc = NewOTPService(nil, OTPConfig{}).Validate

	authService := createAuthServiceForTest(t, userRepo, nil, nil, otpSvc, nil)
	ctx := createTestContext(t)

	if _, err := authService.VerifyEmail(ctx, 1, "111111"); !errors.Is(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected ErrCodeInvalid on the wrong code, got %v", err)
	}

	result, err := authService.VerifyEmail(ctx, 1, "654321")
	if err != nil {
		t.Fatalf("expected the correct code to still work, got %v", err)
	}
	if result == nil || !result.User.IsVerified {
		t.Fatal("expected the retry with the correct code to verify the account")
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		password       string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockTokenService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				testUser := createVerifiedUser(t)
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					if email == testUser.Email {
						return testUser, nil
					}
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				assertAuthResult(t, result, createVerifiedUser(t))
			},
		},
		{
			name:     "user not found reads as invalid credentials",
			email:    "nonexistent@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil when user not found")
				}
			},
		},
		{
			name:     "wrong password reads as invalid credentials",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil on a wrong password")
				}
			},
		},
		{
			name:     "unverified account may still log in",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				pending := createPendingUser(t, "654321", time.Now().Add(10*time.Minute))
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pending, nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("expected a pending account to log in")
				}
				if result.User.IsVerified {
					t.Error("expected the user to still read as unverified")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tokenSvc := mocks.NewMockTokenService()

			tt.setupMocks(userRepo, passwordSvc, tokenSvc)

			authService := createAuthServiceForTest(t, userRepo, passwordSvc, tokenSvc, nil, nil)
			ctx := createTestContext(t)

			result, err := authService.Login(ctx, tt.email, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateResult(t, result)
		})
	}
}

func TestAuthServiceImpl_Login_StorageFailure(t *testing.T) {
	// A storage outage must stay distinct from bad credentials so the
	// handler's generic 500 branch fires instead of a 401
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, errors.New("pg: connection refused")
	}

	authService := createAuthServiceForTest(t, userRepo, nil, nil, nil, nil)
	ctx := createTestContext(t)

	result, err := authService.Login(ctx, "test@example.com", "password123")
	if err == nil {
		t.Fatal("expected an error on a storage failure")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("a storage failure must not read as invalid credentials")
	}
	if !strings.Contains(err.Error(), "failed to look up user") {
		t.Errorf("expected a wrapped lookup error, got %v", err)
	}
	if result != nil {
		t.Error("expected no result on a storage failure")
	}
}

func TestAuthServiceImpl_ResendCode(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPService, *mocks.MockMailer)
		expectedError error
		validate      func(t *testing.T, mailer *mocks.MockMailer)
	}{
		{
			name: "resend stores and delivers a fresh code",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				pending := createPendingUser(t, "654321", time.Now().Add(-1*time.Minute))
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pending, nil
				}
				otpSvc.GenerateFunc = func(ctx context.Context) (string, time.Time, error) {
					return "777777", time.Now().Add(15 * time.Minute), nil
				}
				userRepo.ResetVerificationCodeFunc = func(ctx context.Context, userID uint, code string, expiresAt time.Time) error {
					if code != "777777" {
						t.Errorf("expected the fresh code to be stored, got %s", code)
					}
					return nil
				}
			},
			expectedError: nil,
			validate: func(t *testing.T, mailer *mocks.MockMailer) {
				if len(mailer.Sent) != 1 || mailer.Sent[0].Code != "777777" {
					t.Errorf("expected one delivery of the fresh code, got %+v", mailer.Sent)
				}
			},
		},
		{
			name: "unknown address",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrUserNotFound,
			validate:      func(t *testing.T, mailer *mocks.MockMailer) {},
		},
		{
			name: "already verified account",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrAlreadyVerified,
			validate: func(t *testing.T, mailer *mocks.MockMailer) {
				if len(mailer.Sent) != 0 {
					t.Error("expected no delivery for a verified account")
				}
			},
		},
		{
			name: "throttled inside the resend window",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService, mailer *mocks.MockMailer) {
				pending := createPendingUser(t, "654321", time.Now().Add(10*time.Minute))
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pending, nil
				}
				otpSvc.CanResendFunc = func(ctx context.Context, email string) (bool, int64, error) {
					return false, 42, nil
				}
			},
			expectedError: domain.ErrResendThrottled,
			validate: func(t *testing.T, mailer *mocks.MockMailer) {
				if len(mailer.Sent) != 0 {
					t.Error("expected no delivery while throttled")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()
			mailer := mocks.NewMockMailer()

			tt.setupMocks(userRepo, otpSvc, mailer)

			authService := createAuthServiceForTest(t, userRepo, nil, nil, otpSvc, mailer)
			ctx := createTestContext(t)

			err := authService.ResendCode(ctx, "test@example.com")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validate(t, mailer)
		})
	}
}
