package locationsfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"kolok/internal/repositories"
	"kolok/internal/services"
	"kolok/pkg/progression"
)

var Module = fx.Provide(
	provideLocationRepo, provideMissionRepo, provideLocationService)

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideMissionRepo(db *gorm.DB) repositories.MissionRepository {
	return repositories.NewMissionRepository(db)
}

func provideLocationService(
	locationRepo repositories.LocationRepository,
	missionRepo repositories.MissionRepository,
	checkInRepo repositories.CheckInRepository,
) services.LocationServiceInterface {
	policy := progression.ParseMasterPolicy(os.Getenv("MASTER_CERT_POLICY"))
	return services.NewLocationService(locationRepo, missionRepo, checkInRepo, policy)
}
