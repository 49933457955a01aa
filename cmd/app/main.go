package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountsfx "kolok/cmd/fx/accounts_fx"
	certificatesfx "kolok/cmd/fx/certificates_fx"
	checkinsfx "kolok/cmd/fx/checkins_fx"
	controllersfx "kolok/cmd/fx/controllers_fx"
	dbfx "kolok/cmd/fx/db_fx"
	locationsfx "kolok/cmd/fx/locations_fx"
	"kolok/cmd/fx/mail_fx"
	recommendationsfx "kolok/cmd/fx/recommendations_fx"
	"kolok/internal/api/controllers"
	"kolok/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		accountsfx.Module,
		locationsfx.Module,
		checkinsfx.Module,
		certificatesfx.Module,
		recommendationsfx.Module,
		mail_fx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	locationsController *controllers.LocationsController,
	checkInsController *controllers.CheckInsController,
	certificatesController *controllers.CertificatesController,
	recommendationsController *controllers.RecommendationsController,
	accountsController *controllers.AccountsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		locationsController,
		checkInsController,
		certificatesController,
		recommendationsController,
		accountsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	locationsController *controllers.LocationsController,
	checkInsController *controllers.CheckInsController,
	certificatesController *controllers.CertificatesController,
	recommendationsController *controllers.RecommendationsController,
	accountsController *controllers.AccountsController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/signup", accountsController.SignUp)
	accountsGroup.POST("/login", accountsController.Login)

	locationsGroup := r.Group("/locations")
	locationsGroup.GET("", locationsController.ListLocations)
	locationsGroup.GET("/:id", locationsController.GetLocationById)
	locationsGroup.GET("/:id/missions", checkInsController.GetMissions)

	checkInsGroup := r.Group("/checkins")
	checkInsGroup.Use(middleware.JWTAuthMiddleware())
	checkInsGroup.POST("", checkInsController.CheckIn)
	checkInsGroup.GET("", checkInsController.GetHistory)

	certificatesGroup := r.Group("/certificates")
	certificatesGroup.Use(middleware.JWTAuthMiddleware())
	certificatesGroup.POST("", certificatesController.RequestCertificate)
	certificatesGroup.GET("", certificatesController.ListCertificates)

	progressGroup := r.Group("/progress")
	progressGroup.Use(middleware.JWTAuthMiddleware())
	progressGroup.GET("", locationsController.GetProgressOverview)

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.Use(middleware.OptionalJWTAuthMiddleware())
	recommendationsGroup.GET("/:locationId", recommendationsController.GetRecommendations)
}
