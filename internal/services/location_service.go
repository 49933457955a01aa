package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"kolok/internal/models/response_models"
	"kolok/internal/repositories"
	"kolok/pkg/progression"
	"kolok/pkg/utils"
)

type LocationServiceInterface interface {
	GetLocationByID(id string, ctx context.Context) (response_models.Location, error)
	ListLocations(featuredOnly bool, page, pageSize int, ctx context.Context) ([]response_models.Location, error)
	GetProgressOverview(ctx context.Context, accountID uuid.UUID) (response_models.ProgressOverview, error)
}

type LocationService struct {
	locationRepo repositories.LocationRepository
	missionRepo  repositories.MissionRepository
	checkInRepo  repositories.CheckInRepository
	masterPolicy progression.MasterPolicy
}

func NewLocationService(
	locationRepo repositories.LocationRepository,
	missionRepo repositories.MissionRepository,
	checkInRepo repositories.CheckInRepository,
	masterPolicy progression.MasterPolicy,
) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
		missionRepo:  missionRepo,
		checkInRepo:  checkInRepo,
		masterPolicy: masterPolicy,
	}
}

func (s *LocationService) GetLocationByID(id string, ctx context.Context) (response_models.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return response_models.Location{}, utils.ErrDatabaseError
	}
	if location == nil {
		return response_models.Location{}, utils.ErrLocationNotFound
	}
	return toLocationResponse(location), nil
}

func (s *LocationService) ListLocations(featuredOnly bool, page, pageSize int, ctx context.Context) ([]response_models.Location, error) {
	locations, err := s.locationRepo.List(ctx, featuredOnly, page, pageSize)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Location, 0, len(locations))
	for i := range locations {
		responses = append(responses, toLocationResponse(&locations[i]))
	}
	return responses, nil
}

// GetProgressOverview walks the whole catalog and summarizes the account's
// completion per location plus the master aggregate, the way the
// achievements screen consumes it.
func (s *LocationService) GetProgressOverview(ctx context.Context, accountID uuid.UUID) (response_models.ProgressOverview, error) {
	if accountID == uuid.Nil {
		return response_models.ProgressOverview{}, utils.ErrUnauthenticated
	}

	locations, err := s.locationRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return response_models.ProgressOverview{}, utils.ErrDatabaseError
	}

	completed, err := s.checkInRepo.CompletedMissionIDs(ctx, accountID)
	if err != nil {
		log.Printf("Error loading completed missions: %v", err)
		return response_models.ProgressOverview{}, utils.ErrDatabaseError
	}

	overview := response_models.ProgressOverview{
		Locations: make([]response_models.LocationProgress, 0, len(locations)),
	}
	summaries := make([]progression.Summary, 0, len(locations))

	for i := range locations {
		missions, err := s.missionRepo.ListActiveByLocation(ctx, locations[i].ID)
		if err != nil {
			log.Printf("Error listing missions for %s: %v", locations[i].ID, err)
			return response_models.ProgressOverview{}, utils.ErrDatabaseError
		}

		summary := progression.Summarize(missions, completed)
		summaries = append(summaries, summary)
		overview.Locations = append(overview.Locations, response_models.LocationProgress{
			Location:          toLocationResponse(&locations[i]),
			CompletedMissions: summary.CompletedMissions,
			TotalMissions:     summary.TotalMissions,
			CompletedPoints:   summary.CompletedPoints,
			TotalPoints:       summary.TotalPoints,
			Ratio:             summary.Ratio,
			HasRatio:          summary.HasRatio,
			FullyCompleted:    summary.FullyCompleted,
		})
	}

	agg := progression.Aggregate(summaries)
	overview.CompletedMissions = agg.CompletedMissions
	overview.TotalMissions = agg.TotalMissions
	overview.CompletedPoints = agg.CompletedPoints
	overview.TotalPoints = agg.TotalPoints
	overview.Ratio = agg.Ratio
	overview.HasRatio = agg.HasRatio
	overview.MasterEligible = progression.MasterEligible(s.masterPolicy, summaries)

	return overview, nil
}
