package domain

import (
	"context"
	"time"
)

// UserRepository defines account data access operations.
type UserRepository interface {
	// CreateWithAssociations inserts the account row together with its
	// interest links, feature links and photos in a single transaction.
	// Any insert failure rolls back the whole registration.
	CreateWithAssociations(ctx context.Context, user *User, interestIDs, featureIDs []uint, photoURLs []string) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// MarkVerified flips is_verified and clears the code fields in one update.
	MarkVerified(ctx context.Context, userID uint) error
	// ResetVerificationCode stores a freshly issued code and expiry.
	ResetVerificationCode(ctx context.Context, userID uint, code string, expiresAt time.Time) error
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	Explore(ctx context.Context, userID uint, filter ExploreFilter) ([]ExploreCard, error)
}

// CatalogRepository defines read access to the fixed tag catalogs.
type CatalogRepository interface {
	ListInterests(ctx context.Context) ([]CatalogEntry, error)
	RegisterMetadata(ctx context.Context) (*RegisterMetadata, error)
}

// AuthService defines the registration and authentication business logic.
type AuthService interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, reg *Registration) (*User, error)
	VerifyEmail(ctx context.Context, userID uint, code string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ResendCode(ctx context.Context, email string) error
}

// ProfileService defines authenticated read projections.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	Explore(ctx context.Context, userID uint, filter ExploreFilter) ([]ExploreCard, error)
}

// OTPService defines one-time verification code operations.
type OTPService interface {
	// Generate returns a fresh 6-digit code and its expiry.
	Generate(ctx context.Context) (string, time.Time, error)
	// Validate checks a submitted code against the stored code and expiry.
	// A failed attempt never invalidates the stored code.
	Validate(stored *string, expiresAt *time.Time, submitted string, now time.Time) error
	// CanResend reports whether a new code may be issued for the address,
	// and if not, how many seconds remain.
	CanResend(ctx context.Context, email string) (bool, int64, error)
	// MarkSent starts the resend throttle window for the address.
	MarkSent(ctx context.Context, email string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session credential operations
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Mailer defines outbound email delivery. Failures are non-fatal to the
// operations that trigger them.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// TokenClaims represents the session credential claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
