package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kolok/internal/models/db_models"
)

type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Location, error)
	List(ctx context.Context, featuredOnly bool, page, pageSize int) ([]db_models.Location, error)
	ListAll(ctx context.Context) ([]db_models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// Read helpers return a default value and nil error when no rows match.

func (r *locationRepository) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).
		First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context, featuredOnly bool, page, pageSize int) ([]db_models.Location, error) {
	var locations []db_models.Location
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize)
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// ListAll backs catalog-wide progress aggregation, where pagination would
// corrupt the totals.
func (r *locationRepository) ListAll(ctx context.Context) ([]db_models.Location, error) {
	var locations []db_models.Location
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
