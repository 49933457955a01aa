package checkinsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kolok/internal/repositories"
	"kolok/internal/services"
	"kolok/pkg/memcache"
)

var Module = fx.Provide(
	provideCheckInRepo, provideInFlightGuard, provideCheckInService)

func provideCheckInRepo(db *gorm.DB) repositories.CheckInRepository {
	return repositories.NewCheckInRepository(db)
}

func provideInFlightGuard() memcache.InFlightGuard {
	return memcache.NewInFlightGuard()
}

func provideCheckInService(
	checkInRepo repositories.CheckInRepository,
	missionRepo repositories.MissionRepository,
	guard memcache.InFlightGuard,
) services.CheckInServiceInterface {
	return services.NewCheckInService(checkInRepo, missionRepo, guard)
}
