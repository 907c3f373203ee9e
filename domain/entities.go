package domain

import "time"

// User represents an account in the system. VerificationCode and CodeExpiresAt
// are either both set (account pending) or both nil (verified, or never issued).
type User struct {
	ID               uint
	Email            string
	PasswordHash     string `gorm:"column:password"`
	FirstName        string
	LastName         string
	BirthDate        time.Time
	City             string
	Description      string
	GenderID         uint
	PreferenceID     uint
	Role             string
	IsVerified       bool
	VerificationCode *string
	CodeExpiresAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Registration is the full sign-up payload: account fields plus the
// associations persisted in the same transaction.
type Registration struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	BirthDate    time.Time
	City         string
	Description  string
	GenderID     uint
	PreferenceID uint
	InterestIDs  []uint
	FeatureIDs   []uint
	PhotoURLs    []string
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// CatalogEntry is a row of one of the fixed tag catalogs
// (interests, neurodivergences, genders, preferences, communication styles).
type CatalogEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RegisterMetadata bundles every catalog the sign-up form needs.
type RegisterMetadata struct {
	Interests           []CatalogEntry
	Neurodivergences    []CatalogEntry
	Sexualities         []CatalogEntry
	Genders             []CatalogEntry
	CommunicationStyles []CatalogEntry
}

// Profile is the authenticated user's own profile projection.
type Profile struct {
	ID               uint
	Email            string
	FirstName        string
	LastName         string
	BirthDate        time.Time
	City             string
	Description      string
	Photos           []string
	Interests        []string
	Neurodivergences []string
}

// ExploreCard is one entry of the filtered explore listing.
type ExploreCard struct {
	ID          uint
	FirstName   string
	City        string
	Description string
	MainPhoto   string
	Interests   []string
	Features    []string
}

// ExploreFilter narrows the explore listing. Zero values mean "no filter".
type ExploreFilter struct {
	City    string
	Feature string
	Limit   int
}
