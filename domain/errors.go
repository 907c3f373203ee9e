package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAlreadyVerified    = errors.New("account already verified")
)

// Verification code errors
var (
	ErrCodeInvalid     = errors.New("verification code incorrect")
	ErrCodeExpired     = errors.New("verification code expired")
	ErrResendThrottled = errors.New("verification code resend throttled")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
