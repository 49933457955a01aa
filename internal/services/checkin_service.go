package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolok/internal/models/db_models"
	"kolok/internal/models/response_models"
	"kolok/internal/repositories"
	"kolok/pkg/memcache"
	"kolok/pkg/utils"
)

type CheckInServiceInterface interface {
	CheckIn(ctx context.Context, accountID, locationID, missionID uuid.UUID) (response_models.CheckIn, error)
	GetMissions(ctx context.Context, locationID uuid.UUID) ([]response_models.Mission, error)
	GetHistory(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.CheckInHistoryItem, error)
}

type CheckInService struct {
	checkInRepo repositories.CheckInRepository
	missionRepo repositories.MissionRepository
	guard       memcache.InFlightGuard
}

func NewCheckInService(
	checkInRepo repositories.CheckInRepository,
	missionRepo repositories.MissionRepository,
	guard memcache.InFlightGuard,
) CheckInServiceInterface {
	return &CheckInService{
		checkInRepo: checkInRepo,
		missionRepo: missionRepo,
		guard:       guard,
	}
}

// CheckIn validates preconditions, then records the visit with points taken
// from the mission row inside the insert transaction. The caller never
// supplies a points value.
func (s *CheckInService) CheckIn(ctx context.Context, accountID, locationID, missionID uuid.UUID) (response_models.CheckIn, error) {
	if accountID == uuid.Nil {
		return response_models.CheckIn{}, utils.ErrUnauthenticated
	}

	// A second request for the same pair while the first is still in
	// flight loses immediately, instead of racing to the unique index.
	if !s.guard.Acquire(accountID, missionID) {
		return response_models.CheckIn{}, utils.ErrAlreadyCheckedIn
	}
	defer s.guard.Release(accountID, missionID)

	completed, err := s.checkInRepo.CompletedMissionIDs(ctx, accountID)
	if err != nil {
		log.Printf("Error loading completed missions: %v", err)
		return response_models.CheckIn{}, utils.ErrDatabaseError
	}
	if _, done := completed[missionID]; done {
		return response_models.CheckIn{}, utils.ErrAlreadyCheckedIn
	}

	mission, err := s.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		log.Printf("Error fetching mission: %v", err)
		return response_models.CheckIn{}, utils.ErrDatabaseError
	}
	if mission == nil || mission.LocationID != locationID {
		return response_models.CheckIn{}, utils.ErrMissionNotFound
	}
	if !mission.Active {
		return response_models.CheckIn{}, utils.ErrMissionInactive
	}

	checkIn, err := s.checkInRepo.CreateFromMission(ctx, accountID, mission)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.CheckIn{}, utils.ErrAlreadyCheckedIn
		}
		log.Printf("Error creating check-in: %v", err)
		return response_models.CheckIn{}, utils.ErrDatabaseError
	}

	return toCheckInResponse(checkIn), nil
}

func (s *CheckInService) GetMissions(ctx context.Context, locationID uuid.UUID) ([]response_models.Mission, error) {
	missions, err := s.missionRepo.ListActiveByLocation(ctx, locationID)
	if err != nil {
		log.Printf("Error listing missions: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Mission, 0, len(missions))
	for _, m := range missions {
		responses = append(responses, response_models.Mission{
			ID:          m.ID.String(),
			LocationID:  m.LocationID.String(),
			Title:       m.Title,
			Description: m.Description,
			Points:      m.Points,
		})
	}
	return responses, nil
}

func (s *CheckInService) GetHistory(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.CheckInHistoryItem, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrUnauthenticated
	}

	checkIns, err := s.checkInRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		log.Printf("Error listing check-ins: %v", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.CheckInHistoryItem, 0, len(checkIns))
	for _, c := range checkIns {
		items = append(items, response_models.CheckInHistoryItem{
			CheckIn: toCheckInResponse(&c),
			Mission: response_models.MissionRef{
				Title:       c.Mission.Title,
				Description: c.Mission.Description,
				Points:      c.Mission.Points,
			},
			Location: response_models.LocationRef{
				Name:    c.Location.Name,
				City:    c.Location.City,
				Country: c.Location.Country,
			},
		})
	}
	return items, nil
}

func toCheckInResponse(c *db_models.CheckIn) response_models.CheckIn {
	return response_models.CheckIn{
		ID:           c.ID.String(),
		LocationID:   c.LocationID.String(),
		MissionID:    c.MissionID.String(),
		PointsEarned: c.PointsEarned,
		CreatedAt:    c.CreatedAt,
	}
}
