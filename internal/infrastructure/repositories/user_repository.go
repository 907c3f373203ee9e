package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Juls010/bluvi-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// CreateWithAssociations implements domain.UserRepository. The account row,
// interest links, feature links and photos commit or roll back as one unit.
func (r *UserRepositoryImpl) CreateWithAssociations(ctx context.Context, user *domain.User, interestIDs, featureIDs []uint, photoURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbUser := r.domainToDB(user)
		if err := tx.Create(dbUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrEmailTaken
			}
			return err
		}
		user.ID = dbUser.ID

		for _, id := range interestIDs {
			if err := tx.Create(&DBUserInterest{UserID: dbUser.ID, InterestID: id}).Error; err != nil {
				return err
			}
		}

		for _, id := range featureIDs {
			if err := tx.Create(&DBUserFeature{UserID: dbUser.ID, FeatureID: id}).Error; err != nil {
				return err
			}
		}

		for i, url := range photoURLs {
			photo := &DBPhoto{
				UserID:   dbUser.ID,
				URL:      url,
				IsMain:   i == 0,
				Position: i,
			}
			if err := tx.Create(photo).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// EmailExists implements domain.UserRepository
func (r *UserRepositoryImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkVerified implements domain.UserRepository. Flipping the flag and
// clearing the code fields is one update, so "verified with a leftover code"
// is never observable.
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_verified":       true,
		"verification_code": nil,
		"code_expires_at":   nil,
	}).Error
}

// ResetVerificationCode implements domain.UserRepository
func (r *UserRepositoryImpl) ResetVerificationCode(ctx context.Context, userID uint, code string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verification_code": code,
		"code_expires_at":   expiresAt,
	}).Error
}

// GetProfile implements domain.UserRepository
func (r *UserRepositoryImpl) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	photos, err := r.photoURLs(ctx, userID)
	if err != nil {
		return nil, err
	}

	interests, err := r.interestNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	features, err := r.featureNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		ID:               dbUser.ID,
		Email:            dbUser.Email,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		BirthDate:        dbUser.BirthDate,
		City:             dbUser.City,
		Description:      dbUser.Description,
		Photos:           photos,
		Interests:        interests,
		Neurodivergences: features,
	}, nil
}

// Explore implements domain.UserRepository. Only verified accounts are listed,
// the caller is excluded, and optional city/feature filters apply.
func (r *UserRepositoryImpl) Explore(ctx context.Context, userID uint, filter domain.ExploreFilter) ([]domain.ExploreCard, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 20 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("users.id <> ? AND users.is_verified = ?", userID, true)

	if filter.City != "" {
		q = q.Where("users.city = ?", filter.City)
	}
	if filter.Feature != "" {
		q = q.Joins("JOIN user_feature ON user_feature.id_user = users.id").
			Joins("JOIN feature ON feature.id = user_feature.id_feature").
			Where("feature.name = ?", filter.Feature)
	}

	var dbUsers []DBUser
	if err := q.Limit(limit).Find(&dbUsers).Error; err != nil {
		return nil, err
	}

	cards := make([]domain.ExploreCard, 0, len(dbUsers))
	for _, u := range dbUsers {
		card := domain.ExploreCard{
			ID:          u.ID,
			FirstName:   u.FirstName,
			City:        u.City,
			Description: u.Description,
		}

		var photo DBPhoto
		err := r.db.WithContext(ctx).
			Where("id_user = ?", u.ID).
			Order("is_main DESC, position ASC").
			First(&photo).Error
		if err == nil {
			card.MainPhoto = photo.URL
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if card.Interests, err = r.interestNames(ctx, u.ID); err != nil {
			return nil, err
		}
		if card.Features, err = r.featureNames(ctx, u.ID); err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

func (r *UserRepositoryImpl) photoURLs(ctx context.Context, userID uint) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).Model(&DBPhoto{}).
		Where("id_user = ?", userID).
		Order("is_main DESC, position ASC").
		Pluck("url_photo", &urls).Error
	return urls, err
}

func (r *UserRepositoryImpl) interestNames(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Table("interest").
		Joins("JOIN user_interest ON user_interest.id_interest = interest.id").
		Where("user_interest.id_user = ?", userID).
		Order("interest.name ASC").
		Pluck("interest.name", &names).Error
	return names, err
}

func (r *UserRepositoryImpl) featureNames(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Table("feature").
		Joins("JOIN user_feature ON user_feature.id_feature = feature.id").
		Where("user_feature.id_user = ?", userID).
		Order("feature.name ASC").
		Pluck("feature.name", &names).Error
	return names, err
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		BirthDate:        user.BirthDate,
		City:             user.City,
		Description:      user.Description,
		GenderID:         user.GenderID,
		PreferenceID:     user.PreferenceID,
		Role:             user.Role,
		IsVerified:       user.IsVerified,
		VerificationCode: user.VerificationCode,
		CodeExpiresAt:    user.CodeExpiresAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		BirthDate:        dbUser.BirthDate,
		City:             dbUser.City,
		Description:      dbUser.Description,
		GenderID:         dbUser.GenderID,
		PreferenceID:     dbUser.PreferenceID,
		Role:             dbUser.Role,
		IsVerified:       dbUser.IsVerified,
		VerificationCode: dbUser.VerificationCode,
		CodeExpiresAt:    dbUser.CodeExpiresAt,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
