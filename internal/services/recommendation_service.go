package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"kolok/internal/models/db_models"
	"kolok/internal/models/response_models"
	"kolok/internal/repositories"
)

type RecommendationServiceInterface interface {
	RecommendationsFor(ctx context.Context, sourceLocationID, accountID uuid.UUID) []response_models.RecommendedLocation
}

type RecommendationService struct {
	recommendationRepo repositories.RecommendationRepository
	checkInRepo        repositories.CheckInRepository
}

func NewRecommendationService(
	recommendationRepo repositories.RecommendationRepository,
	checkInRepo repositories.CheckInRepository,
) RecommendationServiceInterface {
	return &RecommendationService{
		recommendationRepo: recommendationRepo,
		checkInRepo:        checkInRepo,
	}
}

// RecommendationsFor returns the backend-ranked candidates for a source
// location, minus any the account has already checked into. Fetch failures
// degrade to an empty list; the surrounding screen renders without
// recommendations rather than erroring.
func (s *RecommendationService) RecommendationsFor(ctx context.Context, sourceLocationID, accountID uuid.UUID) []response_models.RecommendedLocation {
	candidates, err := s.recommendationRepo.ListActiveBySource(ctx, sourceLocationID)
	if err != nil {
		log.Printf("Error fetching recommendations for %s: %v", sourceLocationID, err)
		return []response_models.RecommendedLocation{}
	}

	visited := map[uuid.UUID]struct{}{}
	if accountID != uuid.Nil {
		visited, err = s.checkInRepo.VisitedLocationIDs(ctx, accountID)
		if err != nil {
			// Filtering is best effort; an unfiltered list beats none.
			log.Printf("Error fetching visited locations for %s: %v", accountID, err)
			visited = map[uuid.UUID]struct{}{}
		}
	}

	results := make([]response_models.RecommendedLocation, 0, len(candidates))
	for _, rec := range candidates {
		if _, seen := visited[rec.RecommendedLocationID]; seen {
			continue
		}
		results = append(results, response_models.RecommendedLocation{
			Location: toLocationResponse(&rec.RecommendedLocation),
			Priority: rec.Priority,
			Reason:   rec.Reason,
		})
	}
	return results
}

func toLocationResponse(l *db_models.Location) response_models.Location {
	return response_models.Location{
		ID:          l.ID.String(),
		Name:        l.Name,
		City:        l.City,
		Country:     l.Country,
		Description: l.Description,
		ImageURL:    l.ImageURL,
		Facts:       l.Facts,
		ModelURL:    l.ModelURL,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Featured:    l.Featured,
	}
}
