package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripgenie/cmd/fx/account_fx"
	"tripgenie/cmd/fx/ai_fx"
	"tripgenie/cmd/fx/db_fx"
	"tripgenie/cmd/fx/maps_fx"
	"tripgenie/cmd/fx/trips_fx"
	"tripgenie/internal/api/controllers"
	"tripgenie/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		maps_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		trips_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	aiController *controllers.AIController,
	mapsController *controllers.MapsController,
	accountController *controllers.AccountController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, aiController, mapsController, accountController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	aiController *controllers.AIController,
	mapsController *controllers.MapsController,
	accountController *controllers.AccountController,
	tripsController *controllers.TripsController) {

	// generation calls are expensive, chat is cheaper and chattier
	aiLimiter := middleware.NewRateLimiter(10, 10, time.Minute)
	chatLimiter := middleware.NewRateLimiter(20, 20, time.Minute)

	api := r.Group("/api")

	aiGroup := api.Group("/ai")
	aiGroup.GET("/test", aiController.TestHandler)
	aiGroup.POST("/trip-plan", aiLimiter.Middleware(), aiController.GenerateTripPlanHandler)
	aiGroup.POST("/shuffle", aiLimiter.Middleware(), aiController.ShuffleHandler)
	aiGroup.POST("/adjust-itinerary", aiLimiter.Middleware(), aiController.AdjustItineraryHandler)
	aiGroup.POST("/chat", chatLimiter.Middleware(), aiController.ChatHandler)

	mapsGroup := api.Group("/maps")
	mapsGroup.GET("/geocode", mapsController.GeocodeHandler)
	mapsGroup.GET("/reverse-geocode", mapsController.ReverseGeocodeHandler)
	mapsGroup.GET("/search", mapsController.SearchHandler)
	mapsGroup.GET("/directions", mapsController.DirectionsHandler)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", accountController.SignupHandler)
	authGroup.POST("/login", accountController.LoginHandler)

	tripsGroup := api.Group("", middleware.JWTAuthMiddleware())
	tripsGroup.GET("/trips", tripsController.ListTripsHandler)
	tripsGroup.POST("/trips", tripsController.CreateTripHandler)
	tripsGroup.GET("/trips/:id", tripsController.GetTripHandler)
	tripsGroup.PUT("/trips/:id", tripsController.UpdateTripHandler)
	tripsGroup.DELETE("/trips/:id", tripsController.DeleteTripHandler)
	tripsGroup.GET("/trips/:id/attractions", tripsController.ListAttractionsHandler)
	tripsGroup.POST("/trips/:id/attractions", tripsController.CreateAttractionHandler)
	tripsGroup.GET("/trips/:id/restaurants", tripsController.ListRestaurantsHandler)
	tripsGroup.POST("/trips/:id/restaurants", tripsController.CreateRestaurantHandler)
	tripsGroup.GET("/trips/:id/nearby", tripsController.ListNearbyPlacesHandler)
	tripsGroup.POST("/attractions/:id/upvote", tripsController.UpvoteAttractionHandler)
	tripsGroup.POST("/nearby/:id/upvote", tripsController.UpvoteNearbyPlaceHandler)
}
