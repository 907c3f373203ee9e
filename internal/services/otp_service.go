package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Juls010/bluvi-backend/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes live in the account row;
// Redis only backs the resend throttle.
type OTPServiceImpl struct {
	redisClient *redis.Client
	config      OTPConfig
}

type OTPConfig struct {
	TTL          time.Duration
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		redisClient: redisClient,
		config:      config,
	}
}

// Generate implements domain.OTPService. The code is drawn uniformly from
// 100000-999999 with crypto/rand, so it always has exactly six digits.
func (s *OTPServiceImpl) Generate(ctx context.Context) (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate verification code: %w", err)
	}

	code := strconv.FormatInt(n.Int64()+100000, 10)
	return code, time.Now().Add(s.config.TTL), nil
}

// Validate implements domain.OTPService. Expiry wins over mismatch: a stale
// code reports expired even when the digits happen to match. An account with
// no stored code (already verified, or never issued) reads as incorrect.
// Failed attempts never clear the stored code; the user may retry until expiry.
func (s *OTPServiceImpl) Validate(stored *string, expiresAt *time.Time, submitted string, now time.Time) error {
	if stored == nil || expiresAt == nil {
		return domain.ErrCodeInvalid
	}
	if !now.Before(*expiresAt) {
		return domain.ErrCodeExpired
	}
	if *stored != submitted {
		return domain.ErrCodeInvalid
	}
	return nil
}

// CanResend implements domain.OTPService with a Redis TTL throttle key.
func (s *OTPServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := resendKey(email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key does not exist or has expired.
	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// MarkSent implements domain.OTPService
func (s *OTPServiceImpl) MarkSent(ctx context.Context, email string) error {
	if err := s.redisClient.Set(ctx, resendKey(email), 1, s.config.ResendWindow).Err(); err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}
	return nil
}

func resendKey(email string) string {
	return fmt.Sprintf("otp:res:%s", email)
}
