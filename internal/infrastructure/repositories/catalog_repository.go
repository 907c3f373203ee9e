package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Juls010/bluvi-backend/domain"
)

// CatalogRepositoryImpl implements domain.CatalogRepository using GORM
type CatalogRepositoryImpl struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

// ListInterests implements domain.CatalogRepository
func (r *CatalogRepositoryImpl) ListInterests(ctx context.Context) ([]domain.CatalogEntry, error) {
	return r.listCatalog(ctx, &DBInterest{})
}

// RegisterMetadata implements domain.CatalogRepository. Bundles every catalog
// the sign-up form needs in one response.
func (r *CatalogRepositoryImpl) RegisterMetadata(ctx context.Context) (*domain.RegisterMetadata, error) {
	interests, err := r.listCatalog(ctx, &DBInterest{})
	if err != nil {
		return nil, err
	}

	features, err := r.listCatalog(ctx, &DBFeature{})
	if err != nil {
		return nil, err
	}

	preferences, err := r.listCatalog(ctx, &DBPreference{})
	if err != nil {
		return nil, err
	}

	genders, err := r.listCatalog(ctx, &DBGender{})
	if err != nil {
		return nil, err
	}

	styles, err := r.listCatalog(ctx, &DBCommunicationStyle{})
	if err != nil {
		return nil, err
	}

	return &domain.RegisterMetadata{
		Interests:           interests,
		Neurodivergences:    features,
		Sexualities:         preferences,
		Genders:             genders,
		CommunicationStyles: styles,
	}, nil
}

func (r *CatalogRepositoryImpl) listCatalog(ctx context.Context, model interface{}) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	err := r.db.WithContext(ctx).Model(model).
		Select("id", "name").
		Order("name ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
