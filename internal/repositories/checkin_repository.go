package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolok/internal/models/db_models"
)

type CheckInRepository interface {
	// CreateFromMission inserts a check-in whose points are snapshotted from
	// the mission row. Returns gorm.ErrDuplicatedKey when the account has
	// already checked into the mission.
	CreateFromMission(ctx context.Context, accountID uuid.UUID, mission *db_models.Mission) (*db_models.CheckIn, error)

	CompletedMissionIDs(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]struct{}, error)
	VisitedLocationIDs(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]struct{}, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.CheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) CreateFromMission(ctx context.Context, accountID uuid.UUID, mission *db_models.Mission) (*db_models.CheckIn, error) {
	checkIn := &db_models.CheckIn{
		AccountID:    accountID,
		LocationID:   mission.LocationID,
		MissionID:    mission.ID,
		PointsEarned: mission.Points,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.CheckIn{}).
			Where("account_id = ? AND mission_id = ?", accountID, mission.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(checkIn).Error
	})
	if err != nil {
		return nil, err
	}
	return checkIn, nil
}

func (r *checkInRepository) CompletedMissionIDs(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.CheckIn{}).
		Where("account_id = ?", accountID).
		Pluck("mission_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *checkInRepository) VisitedLocationIDs(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.CheckIn{}).
		Distinct("location_id").
		Where("account_id = ?", accountID).
		Pluck("location_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *checkInRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.CheckIn, error) {
	var checkIns []db_models.CheckIn
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Mission").
		Preload("Location").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}
