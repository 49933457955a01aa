package controllersfx

import (
	"go.uber.org/fx"

	"kolok/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewLocationsController,
	controllers.NewCheckInsController,
	controllers.NewCertificatesController,
	controllers.NewRecommendationsController,
	controllers.NewAccountsController,
)
