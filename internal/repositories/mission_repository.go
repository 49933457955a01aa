package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolok/internal/models/db_models"
)

type MissionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Mission, error)
	ListActiveByLocation(ctx context.Context, locationID uuid.UUID) ([]db_models.Mission, error)
}

type missionRepository struct {
	db *gorm.DB
}

func NewMissionRepository(db *gorm.DB) MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Mission, error) {
	var mission db_models.Mission
	err := r.db.WithContext(ctx).
		First(&mission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mission, nil
}

func (r *missionRepository) ListActiveByLocation(ctx context.Context, locationID uuid.UUID) ([]db_models.Mission, error) {
	var missions []db_models.Mission
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND active = ?", locationID, true).
		Order("created_at ASC").
		Find(&missions).Error
	if err != nil {
		return nil, err
	}
	return missions, nil
}
