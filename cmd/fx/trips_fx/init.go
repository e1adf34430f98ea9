package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripgenie/internal/api/controllers"
	"tripgenie/internal/repositories"
	"tripgenie/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideEmbeddingRepo, provideTripService, provideTripsController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.PlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	embeddings repositories.PlaceEmbeddingRepository,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, embeddings)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}
