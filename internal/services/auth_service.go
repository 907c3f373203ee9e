package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Juls010/bluvi-backend/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	mailer      domain.Mailer
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	mailer domain.Mailer,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		mailer:      mailer,
		tokenTTL:    tokenTTL,
	}
}

// CheckEmail implements domain.AuthService. Read-only, safe to call any
// number of times.
func (s *AuthServiceImpl) CheckEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// Register implements domain.AuthService. The account row and every
// association are written in one transaction; concurrent registrations with
// the same email race at the unique constraint, so no pre-check is needed.
func (s *AuthServiceImpl) Register(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	hashedPassword, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, expiresAt, err := s.otpSvc.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	user := &domain.User{
		Email:            reg.Email,
		PasswordHash:     hashedPassword,
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		BirthDate:        reg.BirthDate,
		City:             reg.City,
		Description:      reg.Description,
		GenderID:         reg.GenderID,
		PreferenceID:     reg.PreferenceID,
		Role:             "user",
		IsVerified:       false,
		VerificationCode: &code,
		CodeExpiresAt:    &expiresAt,
	}

	if err := s.userRepo.CreateWithAssociations(ctx, user, reg.InterestIDs, reg.FeatureIDs, reg.PhotoURLs); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Best-effort delivery after commit: a failed send never undoes the
	// committed registration.
	if err := s.mailer.SendVerificationCode(user.Email, code); err != nil {
		log.Printf("EMAIL_DELIVERY_FAILED: user_id=%d email=%s error=%v timestamp=%s",
			user.ID, user.Email, err, time.Now().UTC().Format(time.RFC3339))
	}

	return user, nil
}

// VerifyEmail implements domain.AuthService. Success flips the verification
// flag and clears the code in one update, then issues the session credential.
// After success the code is gone, so a repeat call reads as code incorrect.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, userID uint, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Validate(user.VerificationCode, user.CodeExpiresAt, code, time.Now()); err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user.IsVerified = true
	user.VerificationCode = nil
	user.CodeExpiresAt = nil

	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("EMAIL_VERIFIED: user_id=%d email=%s timestamp=%s",
		user.ID, user.Email, time.Now().UTC().Format(time.RFC3339))

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// Login implements domain.AuthService. Unknown email and wrong password are
// indistinguishable to the caller; storage failures stay distinct so they
// never read as bad credentials. Verification is not required to log in,
// matching upstream behavior.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// ResendCode implements domain.AuthService. Issues a fresh code for a pending
// account, throttled per address through Redis.
func (s *AuthServiceImpl) ResendCode(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}

	canResend, wait, err := s.otpSvc.CanResend(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check resend throttle: %w", err)
	}
	if !canResend {
		return fmt.Errorf("%w: retry in %d seconds", domain.ErrResendThrottled, wait)
	}

	code, expiresAt, err := s.otpSvc.Generate(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.userRepo.ResetVerificationCode(ctx, user.ID, code, expiresAt); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.otpSvc.MarkSent(ctx, email); err != nil {
		return fmt.Errorf("failed to start resend throttle: %w", err)
	}

	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		log.Printf("EMAIL_DELIVERY_FAILED: user_id=%d email=%s error=%v timestamp=%s",
			user.ID, email, err, time.Now().UTC().Format(time.RFC3339))
	}

	return nil
}
