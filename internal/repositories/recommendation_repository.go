package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolok/internal/models/db_models"
)

type RecommendationRepository interface {
	ListActiveBySource(ctx context.Context, sourceLocationID uuid.UUID) ([]db_models.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// Priority is an opaque backend sort key; ascending with creation order as
// tiebreak is the only ordering applied anywhere in the system.
func (r *recommendationRepository) ListActiveBySource(ctx context.Context, sourceLocationID uuid.UUID) ([]db_models.Recommendation, error) {
	var recommendations []db_models.Recommendation
	err := r.db.WithContext(ctx).
		Preload("RecommendedLocation").
		Where("source_location_id = ? AND active = ?", sourceLocationID, true).
		Order("priority ASC, created_at ASC").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}
