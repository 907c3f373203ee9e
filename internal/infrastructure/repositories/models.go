package repositories

import "time"

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint    `gorm:"primaryKey"`
	Email            string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string  `gorm:"column:password;not null"`
	FirstName        string  `gorm:"size:100"`
	LastName         string  `gorm:"size:100"`
	BirthDate        time.Time
	City             string  `gorm:"index;size:100"`
	Description      string  `gorm:"type:text"`
	GenderID         uint
	PreferenceID     uint
	Role             string  `gorm:"size:64;default:user"`
	IsVerified       bool    `gorm:"index;default:false"`
	VerificationCode *string `gorm:"size:6"`
	CodeExpiresAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (DBUser) TableName() string { return "users" }

// DBInterest is a fixed catalog tag.
type DBInterest struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (DBInterest) TableName() string { return "interest" }

// DBFeature is a neurodivergence catalog tag.
type DBFeature struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (DBFeature) TableName() string { return "feature" }

type DBGender struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (DBGender) TableName() string { return "gender" }

type DBPreference struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (DBPreference) TableName() string { return "preference" }

type DBCommunicationStyle struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (DBCommunicationStyle) TableName() string { return "communication_style" }

// DBUserInterest links an account to an interest tag. Rows only exist if
// created inside the registration transaction.
type DBUserInterest struct {
	UserID     uint `gorm:"column:id_user;primaryKey;autoIncrement:false"`
	InterestID uint `gorm:"column:id_interest;primaryKey;autoIncrement:false"`
}

func (DBUserInterest) TableName() string { return "user_interest" }

// DBUserFeature links an account to a neurodivergence tag.
type DBUserFeature struct {
	UserID    uint `gorm:"column:id_user;primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"column:id_feature;primaryKey;autoIncrement:false"`
}

func (DBUserFeature) TableName() string { return "user_feature" }

// DBPhoto is an ordered media reference; the first supplied photo is main.
type DBPhoto struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"column:id_user;index;not null"`
	URL      string `gorm:"column:url_photo;size:512;not null"`
	IsMain   bool   `gorm:"default:false"`
	Position int
}

func (DBPhoto) TableName() string { return "photo" }
