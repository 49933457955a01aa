package recommendationsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kolok/internal/repositories"
	"kolok/internal/services"
)

var Module = fx.Provide(
	provideRecommendationRepo, provideRecommendationService)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationService(
	recommendationRepo repositories.RecommendationRepository,
	checkInRepo repositories.CheckInRepository,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(recommendationRepo, checkInRepo)
}
